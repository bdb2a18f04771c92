package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNoSession = errors.New("session not found")

//go:generate mockgen -source=session_store.go -destination=../mock/session/session_store_mock.go -package=mock
type Store interface {
	Save(ctx context.Context, sid, token string, ttl time.Duration) error
	Load(ctx context.Context, sid string) (string, error)
	Delete(ctx context.Context, sid string) error

	SaveNext(ctx context.Context, sid, next string, ttl time.Duration) error
	PopNext(ctx context.Context, sid string) (string, error)
}

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func tokenKey(sid string) string {
	return fmt.Sprintf("session:%s", sid)
}

func nextKey(sid string) string {
	return fmt.Sprintf("session:%s:next", sid)
}

func (s *redisStore) Save(ctx context.Context, sid, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, tokenKey(sid), token, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session failed: %w", err)
	}
	return nil
}

func (s *redisStore) Load(ctx context.Context, sid string) (string, error) {
	token, err := s.client.Get(ctx, tokenKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("redis get session failed: %w", err)
	}
	return token, nil
}

func (s *redisStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, tokenKey(sid)).Err(); err != nil {
		return fmt.Errorf("redis delete session failed: %w", err)
	}
	return nil
}

func (s *redisStore) SaveNext(ctx context.Context, sid, next string, ttl time.Duration) error {
	if err := s.client.Set(ctx, nextKey(sid), next, ttl).Err(); err != nil {
		return fmt.Errorf("redis set next failed: %w", err)
	}
	return nil
}

// PopNext returns and forgets the saved post-login URL; "" when none.
func (s *redisStore) PopNext(ctx context.Context, sid string) (string, error) {
	next, err := s.client.GetDel(ctx, nextKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis getdel next failed: %w", err)
	}
	return next, nil
}
