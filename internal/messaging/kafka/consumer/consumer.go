package consumer

import (
	"context"
	"time"

	"go-pet-storefront/internal/messaging/kafka/producer"
	"go-pet-storefront/internal/order"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// CountInvalidator forgets cached counts and recomputes them.
type CountInvalidator interface {
	Invalidate(ctx context.Context, sid string) error
	Refresh(ctx context.Context, sid string)
}

var (
	fetchBackoff    = 500 * time.Millisecond
	maxFetchBackoff = 10 * time.Second
	handleAttempts  = 3
	handleRetryWait = 200 * time.Millisecond
)

// ConsumeMessages handles order events until ctx is done. Unknown events
// are committed and skipped. A handler is retried handleAttempts times; if
// it still fails the message is logged and skipped without a commit, so it
// is redelivered only when the group restarts before a later offset is
// committed. Fetch errors back off exponentially up to maxFetchBackoff.
func ConsumeMessages(ctx context.Context, reader MessageReader, counts CountInvalidator, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("consumer started")

	backoff := fetchBackoff
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("consumer stopped")
				return
			}
			logger.Warn("fetch message failed", zap.Error(err), zap.Duration("backoff", backoff))
			if !sleep(ctx, backoff) {
				logger.Info("consumer stopped")
				return
			}
			backoff = min(backoff*2, maxFetchBackoff)
			continue
		}
		backoff = fetchBackoff

		eventType := getHeader(msg.Headers, producer.HeaderEventType)
		log := logger.With(
			zap.String("event_type", eventType),
			zap.Int64("offset", msg.Offset),
		)

		switch eventType {
		case order.EventOrderPlaced:
			err := withRetry(ctx, func() error {
				return handleOrderPlaced(ctx, msg.Value, counts, log)
			})
			if err != nil {
				log.Error("handle order placed failed", zap.Error(err), zap.Int("attempts", handleAttempts))
				continue
			}
		default:
			log.Debug("skipping event")
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Warn("commit message failed", zap.Error(err))
		}
	}
}

func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= handleAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt < handleAttempts && !sleep(ctx, handleRetryWait) {
			return ctx.Err()
		}
	}
	return err
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
