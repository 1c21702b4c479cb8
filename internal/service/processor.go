package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/devmarrez/payment-relay/internal/gateway"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/subscriber"
	"github.com/sirupsen/logrus"
)

// ProcessorService is the charging subscription on the status topic. Only
// records in the Validated state ever reach the gateway; everything else is
// acknowledged as handled without a charge.
type ProcessorService struct {
	Gateway gateway.GatewayClient
	Events  *EventPublisher
}

func NewProcessorService(gw gateway.GatewayClient, events *EventPublisher) *ProcessorService {
	return &ProcessorService{
		Gateway: gw,
		Events:  events,
	}
}

func (s *ProcessorService) HandleStatus(ctx context.Context, d subscriber.Delivery) subscriber.Disposition {
	var status models.PaymentStatusRecord
	if err := json.Unmarshal(d.Value, &status); err != nil {
		logrus.Errorf("Error unmarshalling PaymentStatusRecord: %s", err.Error())
		return subscriber.DeadLetter(models.ReasonDeserializationFailed, err.Error())
	}

	switch status.Status {
	case models.StatusValidated:
		return s.charge(ctx, &status)

	case models.StatusValidationFailed:
		logrus.Infof("Payment %s failed validation, no charge attempted", status.PaymentID)
		return subscriber.Complete()

	case models.StatusFraudReview:
		logrus.Warnf("Payment %s flagged for fraud review (score=%d), no charge attempted",
			status.PaymentID, status.FraudScore)
		return subscriber.Complete()

	case models.StatusProcessing, models.StatusCompleted, models.StatusFailed,
		models.StatusRefunded, models.StatusOnHold:
		// Already past this stage; nothing for the processor to do.
		return subscriber.Complete()

	default:
		return subscriber.DeadLetter(models.ReasonHandlerRejected,
			fmt.Sprintf("unknown payment status %q", status.Status))
	}
}

func (s *ProcessorService) charge(ctx context.Context, status *models.PaymentStatusRecord) subscriber.Disposition {
	result, err := s.Gateway.Charge(ctx, status.PaymentID, status.Amount, status.Currency)
	if err != nil {
		if errors.Is(err, gateway.ErrGatewayUnavailable) {
			logrus.Warnf("Gateway unavailable for payment %s, will retry: %s", status.PaymentID, err.Error())
		} else {
			logrus.Errorf("Gateway error for payment %s: %s", status.PaymentID, err.Error())
		}
		return subscriber.Abandon(fmt.Sprintf("gateway charge failed: %v", err))
	}

	event, err := s.Events.PublishOutcome(ctx, status, result)
	if err != nil {
		logrus.Errorf("Error publishing event for payment %s: %s", status.PaymentID, err.Error())
		return subscriber.Abandon(fmt.Sprintf("event publish failed: %v", err))
	}

	logrus.Infof("Payment %s processed: event=%s type=%s transaction=%s",
		status.PaymentID, event.EventID, event.EventType, result.TransactionID)
	return subscriber.Complete()
}
