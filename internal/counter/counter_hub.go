package counter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// UpdatesChannel carries count updates between the worker and API processes.
const UpdatesChannel = "counts:updates"

type update struct {
	SessionID string `json:"sid"`
	Counts    Counts `json:"counts"`
}

// Hub fans count updates out to the streams open in this process.
type Hub struct {
	rdb    *redis.Client
	logger *zap.Logger

	mu   sync.RWMutex
	subs map[string]map[chan Counts]struct{}
}

// NewHub returns a hub publishing through rdb. With a nil client updates
// only reach local subscribers.
func NewHub(rdb *redis.Client, logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		rdb:    rdb,
		logger: logger,
		subs:   make(map[string]map[chan Counts]struct{}),
	}
}

// Subscribe registers a listener for sid. Only the latest update is kept
// for a slow reader. The returned func unsubscribes and closes the channel.
func (h *Hub) Subscribe(sid string) (<-chan Counts, func()) {
	ch := make(chan Counts, 1)

	h.mu.Lock()
	if h.subs[sid] == nil {
		h.subs[sid] = make(map[chan Counts]struct{})
	}
	h.subs[sid][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[sid], ch)
			if len(h.subs[sid]) == 0 {
				delete(h.subs, sid)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Publish(ctx context.Context, sid string, counts Counts) error {
	if h.rdb == nil {
		h.broadcast(sid, counts)
		return nil
	}

	raw, err := json.Marshal(update{SessionID: sid, Counts: counts})
	if err != nil {
		return fmt.Errorf("encode count update: %w", err)
	}
	if err := h.rdb.Publish(ctx, UpdatesChannel, raw).Err(); err != nil {
		return fmt.Errorf("redis publish counts failed: %w", err)
	}
	return nil
}

func (h *Hub) broadcast(sid string, counts Counts) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[sid] {
		select {
		case ch <- counts:
		default:
			// drop the stale value, keep the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- counts:
			default:
			}
		}
	}
}

// Run relays updates from UpdatesChannel to local subscribers until ctx is
// done.
func (h *Hub) Run(ctx context.Context) error {
	if h.rdb == nil {
		<-ctx.Done()
		return nil
	}

	pubsub := h.rdb.Subscribe(ctx, UpdatesChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", UpdatesChannel, err)
	}
	h.logger.Info("count hub subscribed", zap.String("channel", UpdatesChannel))

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			var u update
			if err := json.Unmarshal([]byte(msg.Payload), &u); err != nil {
				h.logger.Warn("invalid count update", zap.Error(err))
				continue
			}
			h.broadcast(u.SessionID, u.Counts)
		}
	}
}
