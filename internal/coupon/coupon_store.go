package coupon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps the coupon code applied during one checkout session.
//
//go:generate mockgen -source=coupon_store.go -destination=../mock/coupon/coupon_store_mock.go -package=mock
type Store interface {
	Save(ctx context.Context, sid, code string, ttl time.Duration) error
	// Load returns "" when no coupon is applied.
	Load(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func couponKey(sid string) string {
	return fmt.Sprintf("checkout:%s:coupon", sid)
}

func (s *redisStore) Save(ctx context.Context, sid, code string, ttl time.Duration) error {
	if err := s.client.Set(ctx, couponKey(sid), code, ttl).Err(); err != nil {
		return fmt.Errorf("redis set coupon failed: %w", err)
	}
	return nil
}

func (s *redisStore) Load(ctx context.Context, sid string) (string, error) {
	code, err := s.client.Get(ctx, couponKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get coupon failed: %w", err)
	}
	return code, nil
}

func (s *redisStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, couponKey(sid)).Err(); err != nil {
		return fmt.Errorf("redis delete coupon failed: %w", err)
	}
	return nil
}
