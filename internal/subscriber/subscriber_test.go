package subscriber_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devmarrez/payment-relay/config"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/subscriber"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

type dlqRecorder struct {
	messages []models.DLQMessage
	err      error
}

func (r *dlqRecorder) Publish(_ context.Context, topic string, message interface{}) error {
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, message.(models.DLQMessage))
	return nil
}

type fakeDeduper struct {
	seen map[string]bool
	err  error
}

func (d *fakeDeduper) Seen(_ context.Context, group, messageID string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	return d.seen[group+":"+messageID], nil
}

func fastRetryConfig() config.RetryConfig {
	return config.RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
		MaxDelay:    10 * time.Millisecond,
		Jitter:      false,
	}
}

func newTestSubscription(dlq subscriber.DLQPublisher, dedup subscriber.Deduper, threshold int) *subscriber.Subscription {
	return &subscriber.Subscription{
		GroupID:      "test-group",
		DLQPublisher: dlq,
		Deduper:      dedup,
		Threshold:    threshold,
		RetryConfig:  fastRetryConfig(),
	}
}

func testMessage() kafka.Message {
	return kafka.Message{
		Topic: models.PaymentStatusTopic,
		Key:   []byte("msg-1"),
		Value: []byte(`{"payment_id":"payment-123"}`),
		Headers: []kafka.Header{
			{Key: models.HeaderCorrelationID, Value: []byte("payment-123")},
		},
	}
}

func TestProcessMessage_Complete_NoDLQ(t *testing.T) {
	dlq := &dlqRecorder{}
	sub := newTestSubscription(dlq, nil, 3)

	var deliveries []subscriber.Delivery
	sub.ProcessMessage(context.Background(), testMessage(), func(_ context.Context, d subscriber.Delivery) subscriber.Disposition {
		deliveries = append(deliveries, d)
		return subscriber.Complete()
	})

	assert.Len(t, deliveries, 1)
	assert.Equal(t, 1, deliveries[0].DeliveryCount)
	assert.Equal(t, "msg-1", deliveries[0].Key)
	assert.Equal(t, "payment-123", deliveries[0].Headers[models.HeaderCorrelationID])
	assert.Empty(t, dlq.messages)
}

func TestProcessMessage_AbandonUntilThreshold_DeadLetters(t *testing.T) {
	dlq := &dlqRecorder{}
	sub := newTestSubscription(dlq, nil, 3)

	var counts []int
	sub.ProcessMessage(context.Background(), testMessage(), func(_ context.Context, d subscriber.Delivery) subscriber.Disposition {
		counts = append(counts, d.DeliveryCount)
		return subscriber.Abandon("gateway charge failed: unavailable")
	})

	assert.Equal(t, []int{1, 2, 3}, counts)
	if assert.Len(t, dlq.messages, 1) {
		assert.Equal(t, models.ReasonMaxDeliveryCountReached, dlq.messages[0].Reason)
		assert.Equal(t, "gateway charge failed: unavailable", dlq.messages[0].Description)
		assert.Equal(t, 3, dlq.messages[0].Attempts)
		assert.Equal(t, models.PaymentStatusTopic, dlq.messages[0].OriginalTopic)
		assert.Equal(t, "msg-1", dlq.messages[0].Key)
	}
}

func TestProcessMessage_RecoversAfterAbandon(t *testing.T) {
	dlq := &dlqRecorder{}
	sub := newTestSubscription(dlq, nil, 3)

	attempts := 0
	sub.ProcessMessage(context.Background(), testMessage(), func(_ context.Context, d subscriber.Delivery) subscriber.Disposition {
		attempts++
		if attempts < 2 {
			return subscriber.Abandon("transient")
		}
		return subscriber.Complete()
	})

	assert.Equal(t, 2, attempts)
	assert.Empty(t, dlq.messages)
}

func TestProcessMessage_DeadLetterDisposition_Immediate(t *testing.T) {
	dlq := &dlqRecorder{}
	sub := newTestSubscription(dlq, nil, 3)

	attempts := 0
	sub.ProcessMessage(context.Background(), testMessage(), func(_ context.Context, d subscriber.Delivery) subscriber.Disposition {
		attempts++
		return subscriber.DeadLetter(models.ReasonDeserializationFailed, "unexpected end of JSON input")
	})

	assert.Equal(t, 1, attempts)
	if assert.Len(t, dlq.messages, 1) {
		assert.Equal(t, models.ReasonDeserializationFailed, dlq.messages[0].Reason)
		assert.Equal(t, 1, dlq.messages[0].Attempts)
	}
}

func TestProcessMessage_DuplicateSkipped(t *testing.T) {
	dlq := &dlqRecorder{}
	dedup := &fakeDeduper{seen: map[string]bool{"test-group:msg-1": true}}
	sub := newTestSubscription(dlq, dedup, 3)

	called := false
	sub.ProcessMessage(context.Background(), testMessage(), func(_ context.Context, d subscriber.Delivery) subscriber.Disposition {
		called = true
		return subscriber.Complete()
	})

	assert.False(t, called)
	assert.Empty(t, dlq.messages)
}

func TestProcessMessage_DedupStoreError_ProcessesAnyway(t *testing.T) {
	dlq := &dlqRecorder{}
	dedup := &fakeDeduper{err: errors.New("redis down")}
	sub := newTestSubscription(dlq, dedup, 3)

	called := false
	sub.ProcessMessage(context.Background(), testMessage(), func(_ context.Context, d subscriber.Delivery) subscriber.Disposition {
		called = true
		return subscriber.Complete()
	})

	assert.True(t, called)
}

func TestProcessMessage_NilDLQPublisher_DoesNotPanic(t *testing.T) {
	sub := newTestSubscription(nil, nil, 2)

	assert.NotPanics(t, func() {
		sub.ProcessMessage(context.Background(), testMessage(), func(_ context.Context, d subscriber.Delivery) subscriber.Disposition {
			return subscriber.Abandon("always failing")
		})
	})
}
