package service

import (
	"context"
	"time"

	"github.com/devmarrez/payment-relay/internal/metrics"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/models/dto"
	"github.com/google/uuid"
)

// Publisher defines the interface for publishing pipeline messages to Kafka
// topics.
type Publisher interface {
	PublishRequest(ctx context.Context, req *models.PaymentRequest) error
	PublishStatus(ctx context.Context, status *models.PaymentStatusRecord) error
	PublishEvent(ctx context.Context, event *models.PaymentEvent) error
}

// IntakeService owns the synchronous API boundary. It checks the request
// shape, assigns the payment id, and enqueues the work; the caller only
// ever sees the accept/reject response, never downstream outcomes.
type IntakeService struct {
	Publisher Publisher
}

func NewIntakeService(publisher Publisher) *IntakeService {
	return &IntakeService{Publisher: publisher}
}

// Accept validates the inbound request shape and enqueues a PaymentRequest.
// A non-empty fieldErrs return means the request was rejected; err is
// reserved for transport failures.
func (s *IntakeService) Accept(ctx context.Context, req *dto.PaymentRequest) (*dto.AcceptedResponse, []string, error) {
	req.Sanitize()

	now := time.Now().UTC()
	if fieldErrs := req.CheckRequired(now); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	payment := req.ToEntity()
	payment.PaymentID = uuid.New().String()
	payment.RequestedAt = now

	if err := s.Publisher.PublishRequest(ctx, payment); err != nil {
		return nil, nil, err
	}

	metrics.PaymentsReceivedTotal.WithLabelValues(string(payment.Currency)).Inc()

	return &dto.AcceptedResponse{
		PaymentID: payment.PaymentID,
		Status:    "received",
		Message:   "Payment request accepted for processing",
		Timestamp: now,
	}, nil, nil
}
