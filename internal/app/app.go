package app

import (
	"context"

	"go-pet-storefront/internal/backend"
	"go-pet-storefront/internal/config"
	"go-pet-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure, wires every module onto router and
// starts the count hub relay. The returned func releases the connections.
func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	// 1. Setup Infrastructure
	redisClient, err := connectRedisWithRetry(cfg.RedisAddr, connectRetries, logger)
	if err != nil {
		return nil, err
	}

	kafkaWriter, err := connectKafkaWithRetry(cfg.KafkaBroker, cfg.OrderEventsTopic, connectRetries, logger)
	if err != nil {
		_ = redisClient.Close()
		return nil, err
	}

	// 2. Storefront backend
	backendClient := newBackendClient(cfg, logger)

	// 3. Global middleware
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
	)

	// 4. Register Modules & Routes
	hub := registerModules(router, infra{
		cfg:     cfg,
		logger:  logger,
		redis:   redisClient,
		kafka:   kafkaWriter,
		backend: backendClient,
	})

	go func() {
		if err := hub.Run(ctx); err != nil {
			logger.Error("count hub stopped", zap.Error(err))
		}
	}()

	return func() {
		if err := kafkaWriter.Close(); err != nil {
			logger.Warn("close kafka writer", zap.Error(err))
		}
		if err := redisClient.Close(); err != nil {
			logger.Warn("close redis", zap.Error(err))
		}
	}, nil
}

func newBackendClient(cfg *config.Config, logger *zap.Logger) *backend.Client {
	return backend.New(backend.Config{
		BaseURL:     cfg.BackendBaseURL,
		Timeout:     cfg.BackendTimeout,
		LoginPath:   cfg.BackendLoginPath,
		MaxFailures: cfg.BreakerMaxFailures,
		OpenTimeout: cfg.BreakerOpenTimeout,
	}, logger.Named("backend"))
}
