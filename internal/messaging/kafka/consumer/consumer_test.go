package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-pet-storefront/internal/messaging/kafka/producer"
	"go-pet-storefront/internal/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []int64
	drained   chan struct{}
}

func newScriptedReader(msgs ...kafka.Message) *scriptedReader {
	return &scriptedReader{messages: msgs, drained: make(chan struct{})}
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.messages) == 0 {
		r.mu.Unlock()
		select {
		case <-r.drained:
		default:
			close(r.drained)
		}
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	r.mu.Unlock()
	return msg, nil
}

func (r *scriptedReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

type recordingCounts struct {
	mu          sync.Mutex
	invalidated []string
	refreshed   []string
	err         error
}

func (c *recordingCounts) Invalidate(ctx context.Context, sid string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, sid)
	return c.err
}

func (c *recordingCounts) Refresh(ctx context.Context, sid string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshed = append(c.refreshed, sid)
}

func eventMessage(t *testing.T, offset int64, eventType string, payload any) kafka.Message {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return kafka.Message{
		Offset: offset,
		Value:  raw,
		Headers: []kafka.Header{
			{Key: producer.HeaderEventType, Value: []byte(eventType)},
		},
	}
}

func fastRetries(t *testing.T) {
	t.Helper()
	prevBackoff, prevMax, prevWait := fetchBackoff, maxFetchBackoff, handleRetryWait
	fetchBackoff, maxFetchBackoff, handleRetryWait = 20*time.Millisecond, 80*time.Millisecond, time.Millisecond
	t.Cleanup(func() {
		fetchBackoff, maxFetchBackoff, handleRetryWait = prevBackoff, prevMax, prevWait
	})
}

func runConsumer(t *testing.T, reader *scriptedReader, counts CountInvalidator) {
	t.Helper()
	fastRetries(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ConsumeMessages(ctx, reader, counts, nil)
		close(done)
	}()

	select {
	case <-reader.drained:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not drain messages")
	}
	cancel()
	<-done
}

func TestConsumeMessages(t *testing.T) {
	t.Run("order_placed_refreshes_counts", func(t *testing.T) {
		reader := newScriptedReader(
			eventMessage(t, 1, order.EventOrderPlaced, order.OrderPlacedPayload{SessionID: "sid-1", OrderIDs: []string{"o-1"}}),
			eventMessage(t, 2, "SOMETHING_ELSE", map[string]string{}),
		)
		counts := &recordingCounts{}

		runConsumer(t, reader, counts)

		assert.Equal(t, []string{"sid-1"}, counts.invalidated)
		assert.Equal(t, []string{"sid-1"}, counts.refreshed)
		assert.Equal(t, []int64{1, 2}, reader.committed)
	})

	t.Run("failed_handler_is_not_committed", func(t *testing.T) {
		reader := newScriptedReader(
			eventMessage(t, 1, order.EventOrderPlaced, order.OrderPlacedPayload{SessionID: "sid-1"}),
		)
		counts := &recordingCounts{err: errors.New("redis down")}

		runConsumer(t, reader, counts)

		assert.Len(t, counts.invalidated, handleAttempts)
		assert.Empty(t, counts.refreshed)
		assert.Empty(t, reader.committed)
	})

	t.Run("transient_handler_failure_is_retried", func(t *testing.T) {
		reader := newScriptedReader(
			eventMessage(t, 3, order.EventOrderPlaced, order.OrderPlacedPayload{SessionID: "sid-1"}),
		)
		counts := &flakyCounts{failures: 1}

		runConsumer(t, reader, counts)

		assert.Equal(t, 2, counts.calls)
		assert.Equal(t, []int64{3}, reader.committed)
	})

	t.Run("bad_payload_is_not_committed", func(t *testing.T) {
		msg := eventMessage(t, 1, order.EventOrderPlaced, nil)
		msg.Value = []byte("{")
		reader := newScriptedReader(msg)
		counts := &recordingCounts{}

		runConsumer(t, reader, counts)

		assert.Empty(t, counts.invalidated)
		assert.Empty(t, reader.committed)
	})

	t.Run("missing_session_is_committed", func(t *testing.T) {
		reader := newScriptedReader(
			eventMessage(t, 7, order.EventOrderPlaced, order.OrderPlacedPayload{OrderIDs: []string{"o-1"}}),
		)
		counts := &recordingCounts{}

		runConsumer(t, reader, counts)

		assert.Empty(t, counts.invalidated)
		assert.Equal(t, []int64{7}, reader.committed)
	})
}

type flakyCounts struct {
	mu       sync.Mutex
	failures int
	calls    int
}

func (c *flakyCounts) Invalidate(ctx context.Context, sid string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.calls <= c.failures {
		return errors.New("redis blip")
	}
	return nil
}

func (c *flakyCounts) Refresh(ctx context.Context, sid string) {}

type failingReader struct {
	mu      sync.Mutex
	fetches int
}

func (r *failingReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	r.fetches++
	r.mu.Unlock()
	return kafka.Message{}, errors.New("broker unavailable")
}

func (r *failingReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	return nil
}

func TestConsumeMessages_FetchErrorsBackOff(t *testing.T) {
	fastRetries(t)
	reader := &failingReader{}
	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	ConsumeMessages(ctx, reader, &recordingCounts{}, nil)

	reader.mu.Lock()
	defer reader.mu.Unlock()
	// 20ms, 40ms, 80ms, 80ms... fits at most a handful of fetches.
	assert.GreaterOrEqual(t, reader.fetches, 2)
	assert.LessOrEqual(t, reader.fetches, 6)
}

func TestGetHeader(t *testing.T) {
	headers := []kafka.Header{{Key: "a", Value: []byte("1")}, {Key: producer.HeaderEventType, Value: []byte("X")}}

	assert.Equal(t, "X", getHeader(headers, producer.HeaderEventType))
	assert.Equal(t, "", getHeader(headers, "missing"))
}

func TestGetHeader_LastValueWins(t *testing.T) {
	headers := []kafka.Header{
		{Key: producer.HeaderEventType, Value: []byte("OLD")},
		{Key: producer.HeaderEventType, Value: []byte("NEW")},
	}

	assert.Equal(t, "NEW", getHeader(headers, producer.HeaderEventType))
}
