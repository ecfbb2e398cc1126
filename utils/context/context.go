package context

import (
	"context"

	"github.com/wareflow/backoffice/constant"
)

func GetWorkerID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.WorkerIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}
