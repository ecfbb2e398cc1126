package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	allocationapp "github.com/wareflow/backoffice/application/allocation"
	authapp "github.com/wareflow/backoffice/application/auth"
	divergenceapp "github.com/wareflow/backoffice/application/divergence"
	gridapp "github.com/wareflow/backoffice/application/grid"
	outboundapp "github.com/wareflow/backoffice/application/outbound"
	selectionapp "github.com/wareflow/backoffice/application/selection"
	waveapp "github.com/wareflow/backoffice/application/wave"
	"github.com/wareflow/backoffice/cmd/config"
	redisclient "github.com/wareflow/backoffice/cmd/redis"
	_ "github.com/wareflow/backoffice/docs"
	divergenceRepo "github.com/wareflow/backoffice/repository/divergence"
	positionRepo "github.com/wareflow/backoffice/repository/position"
	redisRepo "github.com/wareflow/backoffice/repository/redis"
	stockRepo "github.com/wareflow/backoffice/repository/stock"
	txRepo "github.com/wareflow/backoffice/repository/tx"
	waveRepo "github.com/wareflow/backoffice/repository/wave"
	"github.com/wareflow/backoffice/thirdparty/rabbitmq"
	"github.com/wareflow/backoffice/transport"
	"github.com/wareflow/backoffice/utils/logger"
	"go.uber.org/zap"
)

// @title WAREFLOW BACKOFFICE API
// @version 1.0
// @description Pallet allocation and stock selection API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize RabbitMQ publisher and wave completion consumer
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.APIURL, cfg.Server.InternalKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()
	if err := consumer.Start(consumerCtx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	WaveRepo := waveRepo.NewWaveRepository(db)
	PositionRepo := positionRepo.NewPositionRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	DivergenceRepo := divergenceRepo.NewDivergenceRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(cfg, RedisRepo)
	WaveApp := waveapp.NewWaveApp(WaveRepo)
	GridApp := gridapp.NewGridApp(cfg, PositionRepo)
	SelectionApp := selectionapp.NewSelectionApp(cfg, StockRepo, RedisRepo)
	AllocationApp := allocationapp.NewAllocationApp(cfg, TxRepo, WaveRepo, PositionRepo, StockRepo, DivergenceRepo, RedisRepo, publisher)
	OutboundApp := outboundapp.NewOutboundApp(cfg, TxRepo, StockRepo, PositionRepo, SelectionApp)
	DivergenceApp := divergenceapp.NewDivergenceApp(DivergenceRepo)

	httpTransport := transport.NewTransport(WaveApp, AllocationApp, GridApp, SelectionApp, OutboundApp, DivergenceApp, AuthApp, cfg.Server.InternalKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
