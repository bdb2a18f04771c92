package app

import (
	"context"

	"go-pet-storefront/internal/config"
	"go-pet-storefront/internal/counter"
	"go-pet-storefront/internal/session"

	"go.uber.org/zap"
)

// RunWorker runs the count poller until ctx is done. It is the only process
// that refreshes counts on a schedule.
func RunWorker(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting count worker")

	redisClient, err := connectRedisWithRetry(cfg.RedisAddr, connectRetries, logger)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	in := infra{
		cfg:     cfg,
		logger:  logger,
		redis:   redisClient,
		backend: newBackendClient(cfg, logger),
	}
	hub := counter.NewHub(redisClient, logger.Named("hub"))
	svc, cache := newCounterService(in, session.NewRedisStore(redisClient), hub)

	poller := counter.NewPoller(svc, cache, counter.PollerConfig{
		Interval: cfg.CountPollInterval,
		Logger:   logger.Named("poller"),
	})

	err = poller.Run(ctx)
	logger.Info("count worker stopped")
	return err
}
