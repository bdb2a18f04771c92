package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var errLockHeld = errors.New("cart lock held")

//go:generate mockgen -source=cart_lock.go -destination=../mock/cart/cart_lock_mock.go -package=mock
type Locker interface {
	// Lock serialises reconcile calls for one (session, shop) pair. The
	// returned func releases the lock.
	Lock(ctx context.Context, sid, shopID string) (func(), error)
}

type RedisLockerConfig struct {
	TTL  time.Duration
	Wait time.Duration
	Poll time.Duration
}

type redisLocker struct {
	client *redis.Client
	cfg    RedisLockerConfig
}

// only delete the key if we still own it
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

func NewRedisLocker(client *redis.Client, cfg RedisLockerConfig) Locker {
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Second
	}
	if cfg.Wait <= 0 {
		cfg.Wait = 2 * time.Second
	}
	if cfg.Poll <= 0 {
		cfg.Poll = 50 * time.Millisecond
	}
	return &redisLocker{client: client, cfg: cfg}
}

func lockKey(sid, shopID string) string {
	return fmt.Sprintf("cart-lock:%s:%s", sid, shopID)
}

func (l *redisLocker) Lock(ctx context.Context, sid, shopID string) (func(), error) {
	key := lockKey(sid, shopID)
	owner := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.cfg.Wait)
	defer cancel()

	ticker := time.NewTicker(l.cfg.Poll)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(waitCtx, key, owner, l.cfg.TTL).Result()
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("redis setnx cart lock failed: %w", err)
		}
		if ok {
			return func() {
				// release must outlive a cancelled request context
				_ = unlockScript.Run(context.Background(), l.client, []string{key}, owner).Err()
			}, nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, errLockHeld
		case <-ticker.C:
		}
	}
}

// noopLocker is used when no Redis is wired (tests, single-user tools).
type noopLocker struct{}

func (noopLocker) Lock(context.Context, string, string) (func(), error) {
	return func() {}, nil
}
