package counter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const activeSessionsKey = "active_sessions"

type Cache interface {
	Get(ctx context.Context, sid string) (Counts, bool, error)
	Set(ctx context.Context, sid string, counts Counts) error
	Invalidate(ctx context.Context, sid string) error

	// Touch marks sid as active at now. Active returns sids touched within
	// the activity window and forgets the rest.
	Touch(ctx context.Context, sid string, now time.Time) error
	Active(ctx context.Context, now time.Time) ([]string, error)
	Drop(ctx context.Context, sid string) error
}

type RedisCacheConfig struct {
	TTL          time.Duration
	ActiveWindow time.Duration
}

type redisCache struct {
	client *redis.Client
	cfg    RedisCacheConfig
}

func NewRedisCache(client *redis.Client, cfg RedisCacheConfig) Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = 2 * time.Minute
	}
	if cfg.ActiveWindow <= 0 {
		cfg.ActiveWindow = 10 * time.Minute
	}
	return &redisCache{client: client, cfg: cfg}
}

func countsKey(sid string) string {
	return fmt.Sprintf("counts:%s", sid)
}

func (r *redisCache) Get(ctx context.Context, sid string) (Counts, bool, error) {
	raw, err := r.client.Get(ctx, countsKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Counts{}, false, nil
	}
	if err != nil {
		return Counts{}, false, fmt.Errorf("redis get counts failed: %w", err)
	}

	var counts Counts
	if err := json.Unmarshal(raw, &counts); err != nil {
		return Counts{}, false, fmt.Errorf("decode counts: %w", err)
	}
	return counts, true, nil
}

func (r *redisCache) Set(ctx context.Context, sid string, counts Counts) error {
	raw, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("encode counts: %w", err)
	}
	if err := r.client.Set(ctx, countsKey(sid), raw, r.cfg.TTL).Err(); err != nil {
		return fmt.Errorf("redis set counts failed: %w", err)
	}
	return nil
}

func (r *redisCache) Invalidate(ctx context.Context, sid string) error {
	if err := r.client.Del(ctx, countsKey(sid)).Err(); err != nil {
		return fmt.Errorf("redis delete counts failed: %w", err)
	}
	return nil
}

func (r *redisCache) Touch(ctx context.Context, sid string, now time.Time) error {
	err := r.client.ZAdd(ctx, activeSessionsKey, redis.Z{
		Score:  float64(now.Unix()),
		Member: sid,
	}).Err()
	if err != nil {
		return fmt.Errorf("redis touch session failed: %w", err)
	}
	return nil
}

func (r *redisCache) Active(ctx context.Context, now time.Time) ([]string, error) {
	cutoff := now.Add(-r.cfg.ActiveWindow).Unix()

	pipe := r.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, activeSessionsKey, "-inf", "("+strconv.FormatInt(cutoff, 10))
	members := pipe.ZRange(ctx, activeSessionsKey, 0, -1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("redis list active sessions failed: %w", err)
	}
	return members.Val(), nil
}

func (r *redisCache) Drop(ctx context.Context, sid string) error {
	pipe := r.client.TxPipeline()
	pipe.ZRem(ctx, activeSessionsKey, sid)
	pipe.Del(ctx, countsKey(sid))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis drop session failed: %w", err)
	}
	return nil
}
