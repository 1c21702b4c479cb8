package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/subscriber"
	"github.com/sirupsen/logrus"
)

// ValidatorService consumes the request queue, applies validation and fraud
// scoring, and broadcasts the assembled status record. Validation failures
// are normal outcomes, not errors: the message still completes and the
// failed status travels onward.
type ValidatorService struct {
	Publisher Publisher
	Scorer    FraudScorer
}

func NewValidatorService(publisher Publisher, scorer FraudScorer) *ValidatorService {
	return &ValidatorService{
		Publisher: publisher,
		Scorer:    scorer,
	}
}

func (s *ValidatorService) HandleRequest(ctx context.Context, d subscriber.Delivery) subscriber.Disposition {
	var req models.PaymentRequest
	if err := json.Unmarshal(d.Value, &req); err != nil {
		logrus.Errorf("Error unmarshalling PaymentRequest: %s", err.Error())
		return subscriber.DeadLetter(models.ReasonDeserializationFailed, err.Error())
	}

	vr := ValidatePayment(&req, time.Now().UTC())

	score, err := s.Scorer.Score(ctx, &req)
	if err != nil {
		logrus.Errorf("Fraud scoring failed for payment %s: %s", req.PaymentID, err.Error())
		return subscriber.Abandon(fmt.Sprintf("fraud scoring failed: %v", err))
	}

	status := AssembleStatus(&req, vr, score)

	if err := s.Publisher.PublishStatus(ctx, status); err != nil {
		logrus.Errorf("Error publishing status for payment %s: %s", req.PaymentID, err.Error())
		return subscriber.Abandon(fmt.Sprintf("status publish failed: %v", err))
	}

	logrus.Infof("Payment %s validated: status=%s fraud_score=%d delivery=%d",
		req.PaymentID, status.Status, score, d.DeliveryCount)
	return subscriber.Complete()
}
