package service

import (
	"context"
	"time"

	"github.com/devmarrez/payment-relay/internal/gateway"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/google/uuid"
)

// EventPublisher maps a processing outcome onto the externally visible
// PaymentEvent and broadcasts it. No business logic beyond field mapping;
// a transport failure is an error, zero subscribers is not.
type EventPublisher struct {
	Publisher Publisher
}

func NewEventPublisher(publisher Publisher) *EventPublisher {
	return &EventPublisher{Publisher: publisher}
}

// PublishOutcome builds and publishes the event for a charge result. The
// event id is freshly generated and independent of the payment id, and the
// event type is PaymentCompleted iff the charge succeeded.
func (p *EventPublisher) PublishOutcome(ctx context.Context, status *models.PaymentStatusRecord, result *gateway.ChargeResult) (*models.PaymentEvent, error) {
	eventType := models.EventPaymentFailed
	finalState := models.StatusFailed
	if result.Success {
		eventType = models.EventPaymentCompleted
		finalState = models.StatusCompleted
	}

	event := &models.PaymentEvent{
		EventID:       uuid.New().String(),
		EventType:     eventType,
		PaymentID:     status.PaymentID,
		OrderID:       status.OrderID,
		CustomerID:    status.CustomerID,
		Amount:        status.Amount,
		Currency:      status.Currency,
		Status:        finalState,
		TransactionID: result.TransactionID,
		OccurredAt:    time.Now().UTC(),
		Data: map[string]string{
			"response_code": result.ResponseCode,
			"message":       result.Message,
		},
	}

	if err := p.Publisher.PublishEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}
