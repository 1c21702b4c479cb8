package service

import (
	"context"
	"encoding/json"

	"github.com/devmarrez/payment-relay/internal/metrics"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/subscriber"
	"github.com/sirupsen/logrus"
)

// AnalyticsService is a passive subscription observing both the status and
// events topics. It only updates counters, so every message completes.
type AnalyticsService struct{}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{}
}

func (s *AnalyticsService) HandleStatus(_ context.Context, d subscriber.Delivery) subscriber.Disposition {
	var status models.PaymentStatusRecord
	if err := json.Unmarshal(d.Value, &status); err != nil {
		logrus.Errorf("Error unmarshalling PaymentStatusRecord: %s", err.Error())
		return subscriber.DeadLetter(models.ReasonDeserializationFailed, err.Error())
	}

	metrics.PaymentStatusTotal.WithLabelValues(string(status.Status)).Inc()
	metrics.PaymentAmounts.WithLabelValues(string(status.Currency)).Observe(status.Amount)
	metrics.FraudScores.Observe(float64(status.FraudScore))

	return subscriber.Complete()
}

func (s *AnalyticsService) HandleEvent(_ context.Context, d subscriber.Delivery) subscriber.Disposition {
	var event models.PaymentEvent
	if err := json.Unmarshal(d.Value, &event); err != nil {
		logrus.Errorf("Error unmarshalling PaymentEvent: %s", err.Error())
		return subscriber.DeadLetter(models.ReasonDeserializationFailed, err.Error())
	}

	metrics.PaymentEventsTotal.WithLabelValues(string(event.EventType)).Inc()

	return subscriber.Complete()
}
