package producer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-pet-storefront/internal/messaging/kafka/producer"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("headers_and_key", func(t *testing.T) {
		w := &recordingWriter{}
		p := producer.NewPublisher(w)

		err := p.Publish(context.Background(), producer.Event{
			Type:          "ORDER_PLACED",
			AggregateType: "ORDER",
			AggregateID:   "sid-1",
			Payload:       map[string]string{"sessionId": "sid-1"},
		})

		require.NoError(t, err)
		require.Len(t, w.msgs, 1)
		msg := w.msgs[0]
		assert.Equal(t, "sid-1", string(msg.Key))
		assert.Equal(t, []kafka.Header{
			{Key: producer.HeaderEventType, Value: []byte("ORDER_PLACED")},
			{Key: producer.HeaderAggregateType, Value: []byte("ORDER")},
		}, msg.Headers)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(msg.Value, &payload))
		assert.Equal(t, "sid-1", payload["sessionId"])
	})

	t.Run("writer_error", func(t *testing.T) {
		p := producer.NewPublisher(&recordingWriter{err: errors.New("broker down")})

		err := p.Publish(context.Background(), producer.Event{Type: "ORDER_PLACED", Payload: struct{}{}})

		assert.EqualError(t, err, "broker down")
	})

	t.Run("unmarshalable_payload", func(t *testing.T) {
		p := producer.NewPublisher(&recordingWriter{})

		err := p.Publish(context.Background(), producer.Event{Type: "X", Payload: make(chan int)})

		assert.Error(t, err)
	})
}
