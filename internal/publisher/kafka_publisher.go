package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/devmarrez/payment-relay/config"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/google/uuid"
	kafka "github.com/segmentio/kafka-go"
)

// KafkaPublisher is the shared outbound sender for every stage. Publishing
// is an append-only operation, so a single publisher is safely reused by
// concurrent message handlers. A publish with zero consumer groups on the
// destination topic is a success, not an error.
type KafkaPublisher struct {
	Writers     map[string]*kafka.Writer
	RetryConfig config.RetryConfig
}

func NewKafkaPublisher(kafkaURL string, topics []string, retryConfig config.RetryConfig) *KafkaPublisher {
	writers := make(map[string]*kafka.Writer)
	if retryConfig.MaxAttempts == 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay == 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay == 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}

	for _, t := range topics {
		writers[t] = &kafka.Writer{
			Addr:     kafka.TCP(kafkaURL),
			Topic:    t,
			Balancer: &kafka.LeastBytes{},
		}
	}

	return &KafkaPublisher{
		Writers:     writers,
		RetryConfig: retryConfig,
	}
}

// PublishRequest enqueues a PaymentRequest onto the single-consumer request
// queue. The message key is the payment id so the transport can deduplicate,
// and the order/amount/currency/customer attributes ride on headers for
// filtering without deserializing the body.
func (p *KafkaPublisher) PublishRequest(ctx context.Context, req *models.PaymentRequest) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("error marshaling payment request: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(req.PaymentID),
		Value: data,
		Headers: headers(map[string]string{
			models.HeaderContentType:   models.ContentTypeJSON,
			models.HeaderCorrelationID: req.OrderID,
			models.HeaderOrderID:       req.OrderID,
			models.HeaderCustomerID:    req.CustomerID,
			models.HeaderAmount:        strconv.FormatFloat(req.Amount, 'f', 2, 64),
			models.HeaderCurrency:      string(req.Currency),
		}),
	}

	return p.publish(ctx, models.PaymentRequestedTopic, msg)
}

// PublishStatus broadcasts a PaymentStatusRecord onto the status topic.
// Every subscription group receives its own copy. The message id is freshly
// generated per publish; the payment id is carried as the correlation id.
func (p *KafkaPublisher) PublishStatus(ctx context.Context, status *models.PaymentStatusRecord) error {
	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("error marshaling payment status: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(uuid.New().String()),
		Value: data,
		Headers: headers(map[string]string{
			models.HeaderContentType:   models.ContentTypeJSON,
			models.HeaderCorrelationID: status.PaymentID,
			models.HeaderPaymentID:     status.PaymentID,
			models.HeaderStatus:        string(status.Status),
			models.HeaderFraudFlagged:  strconv.FormatBool(status.FraudFlagged),
			models.HeaderAmount:        strconv.FormatFloat(status.Amount, 'f', 2, 64),
		}),
	}

	return p.publish(ctx, models.PaymentStatusTopic, msg)
}

// PublishEvent emits the outbound PaymentEvent envelope.
func (p *KafkaPublisher) PublishEvent(ctx context.Context, event *models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling payment event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
		Headers: headers(map[string]string{
			models.HeaderContentType:   models.ContentTypeJSON,
			models.HeaderCorrelationID: event.PaymentID,
			models.HeaderSubject:       event.Subject(),
			models.HeaderEventType:     string(event.EventType),
			models.HeaderDataVersion:   models.EventDataVersion,
		}),
	}

	return p.publish(ctx, models.PaymentEventsTopic, msg)
}

// Publish sends an arbitrary message to a configured topic. Used for
// dead-letter traffic.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("error marshaling message: %w", err)
	}

	return p.publish(ctx, topic, kafka.Message{Value: data})
}

func (p *KafkaPublisher) publish(ctx context.Context, topic string, msg kafka.Message) error {
	writer, ok := p.Writers[topic]
	if !ok {
		return fmt.Errorf("error no writer configured for topic %s", topic)
	}

	return p.publishWithRetry(ctx, writer, msg, topic)
}

func (p *KafkaPublisher) publishWithRetry(ctx context.Context, writer *kafka.Writer, msg kafka.Message, topic string) error {
	var lastErr error

	for attempt := 0; attempt < p.RetryConfig.MaxAttempts; attempt++ {
		err := writer.WriteMessages(ctx, msg)
		if err == nil {
			if attempt > 0 {
				fmt.Printf("[Kafka Publisher] Message successfully published to topic '%s' after %d attempts\n", topic, attempt+1)
			}
			return nil
		}

		lastErr = err

		if attempt == p.RetryConfig.MaxAttempts-1 {
			break
		}

		delay := p.calculateBackoff(attempt)

		fmt.Printf("[Kafka Publisher] Retry %d/%d for topic '%s' after %v: %v\n",
			attempt+1, p.RetryConfig.MaxAttempts, topic, delay, err)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	return fmt.Errorf("failed to publish message to topic '%s' after %d attempts: %w",
		topic, p.RetryConfig.MaxAttempts, lastErr)
}

func (p *KafkaPublisher) calculateBackoff(attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * p.RetryConfig.BaseDelay

	if delay > p.RetryConfig.MaxDelay {
		delay = p.RetryConfig.MaxDelay
	}

	if p.RetryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}

func headers(attrs map[string]string) []kafka.Header {
	hs := make([]kafka.Header, 0, len(attrs))
	for k, v := range attrs {
		hs = append(hs, kafka.Header{Key: k, Value: []byte(v)})
	}
	return hs
}
