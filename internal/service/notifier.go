package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/subscriber"
	"github.com/devmarrez/payment-relay/internal/webhook"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Dispatcher pushes a payment event to every registered webhook endpoint
// and reports per-endpoint outcomes.
type Dispatcher interface {
	Dispatch(ctx context.Context, event *models.PaymentEvent) []webhook.DeliveryReport
}

// DeliveryLogRepo persists finished deliveries that need operator
// attention, for manual redelivery.
type DeliveryLogRepo interface {
	Create(ctx context.Context, entry *models.WebhookDeliveryLog) error
}

// NotifierService is the webhook subscription on the events topic. Webhook
// failures never fail the stage: a terminal or exhausted delivery is logged
// and persisted, and the message completes so sibling endpoints and
// subscriptions are unaffected.
type NotifierService struct {
	Dispatcher Dispatcher
	LogRepo    DeliveryLogRepo
}

func NewNotifierService(dispatcher Dispatcher, logRepo DeliveryLogRepo) *NotifierService {
	return &NotifierService{
		Dispatcher: dispatcher,
		LogRepo:    logRepo,
	}
}

func (s *NotifierService) HandleEvent(ctx context.Context, d subscriber.Delivery) subscriber.Disposition {
	var event models.PaymentEvent
	if err := json.Unmarshal(d.Value, &event); err != nil {
		logrus.Errorf("Error unmarshalling PaymentEvent: %s", err.Error())
		return subscriber.DeadLetter(models.ReasonDeserializationFailed, err.Error())
	}
	if !event.EventType.IsValid() {
		return subscriber.DeadLetter(models.ReasonHandlerRejected,
			fmt.Sprintf("unknown event type %q", event.EventType))
	}

	reports := s.Dispatcher.Dispatch(ctx, &event)
	for _, report := range reports {
		switch report.State {
		case models.DeliverySent:
			continue
		case models.DeliveryTerminalFailed, models.DeliveryExhausted:
			s.recordFailure(ctx, &event, report)
		default:
			logrus.Warnf("Unexpected delivery state %s for endpoint %s", report.State, report.Endpoint)
		}
	}

	return subscriber.Complete()
}

func (s *NotifierService) recordFailure(ctx context.Context, event *models.PaymentEvent, report webhook.DeliveryReport) {
	logrus.Errorf("Webhook delivery failed: endpoint=%s state=%s attempts=%d status=%d err=%s",
		report.Endpoint, report.State, report.Attempts, report.LastStatus, report.LastError)

	if s.LogRepo == nil {
		return
	}

	entry := &models.WebhookDeliveryLog{
		ID:         uuid.New().String(),
		EventID:    event.EventID,
		PaymentID:  event.PaymentID,
		Endpoint:   report.Endpoint,
		URL:        report.URL,
		Payload:    string(report.Payload),
		State:      report.State,
		Attempts:   report.Attempts,
		LastStatus: report.LastStatus,
		LastError:  report.LastError,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.LogRepo.Create(ctx, entry); err != nil {
		logrus.Errorf("Error persisting webhook delivery log for event %s: %s", event.EventID, err.Error())
	}
}
