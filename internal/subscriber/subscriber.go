package subscriber

import (
	"context"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/devmarrez/payment-relay/config"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/segmentio/kafka-go"
)

// Delivery is one attempt at handing a message to a handler. DeliveryCount
// starts at 1 and grows on every abandon of the same message.
type Delivery struct {
	Topic         string
	Key           string
	Value         []byte
	Headers       map[string]string
	DeliveryCount int
}

type Handler func(ctx context.Context, d Delivery) Disposition

// DLQPublisher publishes dead-letter records; satisfied by the Kafka
// publisher.
type DLQPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Deduper guards against redelivered duplicates. Seen reports whether the
// message id was already claimed by a consumer in this group.
type Deduper interface {
	Seen(ctx context.Context, group, messageID string) (bool, error)
}

// Subscription is an independently tracked consumer of one topic. A queue
// is a topic with a single subscription; a broadcast topic simply has one
// Subscription per consumer group, each with its own delivery counts and
// dead-letter state. Adding a subscription never affects existing ones.
type Subscription struct {
	Reader       *kafka.Reader
	GroupID      string
	DLQPublisher DLQPublisher
	Deduper      Deduper
	Threshold    int
	RetryConfig  config.RetryConfig
	sem          chan struct{}
}

func NewSubscription(
	brokers []string,
	topic string,
	groupID string,
	dlq DLQPublisher,
	deduper Deduper,
	threshold int,
	maxConcurrent int,
	retryConfig config.RetryConfig,
) *Subscription {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})

	if threshold <= 0 {
		threshold = 3
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &Subscription{
		Reader:       reader,
		GroupID:      groupID,
		DLQPublisher: dlq,
		Deduper:      deduper,
		Threshold:    threshold,
		RetryConfig:  retryConfig,
		sem:          make(chan struct{}, maxConcurrent),
	}
}

// Listen fetches messages until the context is cancelled. Each message is
// handled in its own goroutine, bounded by the configured concurrency
// limit; in-flight payments never share mutable state so no further
// coordination is needed.
func (s *Subscription) Listen(ctx context.Context, handler Handler) {
	go func() {
		defer s.Reader.Close()
		for {
			msg, err := s.Reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Println("Kafka error:", err)
				continue
			}

			select {
			case s.sem <- struct{}{}:
			case <-ctx.Done():
				return
			}

			go func(m kafka.Message) {
				defer func() { <-s.sem }()
				s.ProcessMessage(ctx, m, handler)
				if err := s.Reader.CommitMessages(ctx, m); err != nil {
					log.Printf("Failed to commit offset: topic=%s offset=%d: %v", m.Topic, m.Offset, err)
				}
			}(msg)
		}
	}()
}

// ProcessMessage drives one message through the handler until a terminal
// disposition is reached. Abandoned deliveries are retried with exponential
// backoff; once the delivery count reaches the threshold the message is
// dead-lettered instead of retried again.
func (s *Subscription) ProcessMessage(ctx context.Context, msg kafka.Message, handler Handler) {
	delivery := Delivery{
		Topic:   msg.Topic,
		Key:     string(msg.Key),
		Value:   msg.Value,
		Headers: headerMap(msg.Headers),
	}

	if s.Deduper != nil && delivery.Key != "" {
		seen, err := s.Deduper.Seen(ctx, s.GroupID, delivery.Key)
		if err != nil {
			log.Printf("Dedup store error, processing anyway: %v", err)
		} else if seen {
			log.Printf("Duplicate message skipped: topic=%s key=%s group=%s", msg.Topic, delivery.Key, s.GroupID)
			return
		}
	}

	var lastDescription string
	for attempt := 1; attempt <= s.Threshold; attempt++ {
		delivery.DeliveryCount = attempt

		disp := handler(ctx, delivery)
		switch disp.Outcome {
		case OutcomeComplete:
			return
		case OutcomeDeadLetter:
			s.deadLetter(ctx, msg, disp.Reason, disp.Description, attempt)
			return
		case OutcomeAbandon:
			lastDescription = disp.Description
			if attempt == s.Threshold {
				break
			}
			backoff := s.calculateBackoff(attempt - 1)
			log.Printf("Message abandoned, attempt %d/%d: %s. Redelivering in %v", attempt, s.Threshold, disp.Description, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return
			}
		}
	}

	s.deadLetter(ctx, msg, models.ReasonMaxDeliveryCountReached, lastDescription, s.Threshold)
}

func (s *Subscription) deadLetter(ctx context.Context, msg kafka.Message, reason, description string, attempts int) {
	log.Printf("Dead-lettering message: topic=%s key=%s reason=%s", msg.Topic, string(msg.Key), reason)
	if s.DLQPublisher == nil {
		return
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Reason:        reason,
		Description:   description,
		Timestamp:     time.Now().UTC(),
		Attempts:      attempts,
	}
	if err := s.DLQPublisher.Publish(ctx, models.PaymentsDLQTopic, dlqMessage); err != nil {
		log.Printf("Failed to send message to DLQ: %v", err)
	}
}

func (s *Subscription) calculateBackoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * s.RetryConfig.BaseDelay

	if delay > s.RetryConfig.MaxDelay {
		delay = s.RetryConfig.MaxDelay
	}

	if s.RetryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

func headerMap(hs []kafka.Header) map[string]string {
	m := make(map[string]string, len(hs))
	for _, h := range hs {
		m[h.Key] = string(h.Value)
	}
	return m
}
