package constant

type contextKey string

const WorkerIDKey contextKey = "worker_id"
