package app

import (
	"context"

	"go-pet-storefront/internal/config"
	"go-pet-storefront/internal/counter"
	"go-pet-storefront/internal/messaging/kafka/consumer"
	"go-pet-storefront/internal/session"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerGroup = "storefront-counts"

// RunConsumer reads order events until ctx is done and refreshes the
// counts of sessions that just checked out.
func RunConsumer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger.Info("starting order event consumer")

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
	counts, _ := newCounterService(in, session.NewRedisStore(redisClient), hub)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   cfg.OrderEventsTopic,
		GroupID: consumerGroup,
	})
	defer reader.Close()
	logger.Info("kafka reader initialized", zap.String("topic", cfg.OrderEventsTopic))

	consumer.ConsumeMessages(ctx, reader, counts, logger.Named("consumer"))
	return nil
}
