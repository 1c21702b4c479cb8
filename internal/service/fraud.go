package service

import (
	"context"
	"math/rand"

	"github.com/devmarrez/payment-relay/internal/models"
)

// FraudScorer computes a risk score in [0,100] for a payment request. A
// score above models.FraudScoreThreshold sends the payment to manual
// review. Implementations may perform I/O and must be safe for concurrent
// use; scoring one payment never blocks another.
type FraudScorer interface {
	Score(ctx context.Context, req *models.PaymentRequest) (int, error)
}

// SimulatedFraudScorer stands in for a real scoring provider. The
// amount-derived base is deterministic and never decreases with amount; a
// bounded random component is layered on top. The total never exceeds 100.
type SimulatedFraudScorer struct{}

func NewSimulatedFraudScorer() *SimulatedFraudScorer {
	return &SimulatedFraudScorer{}
}

func (s *SimulatedFraudScorer) Score(_ context.Context, req *models.PaymentRequest) (int, error) {
	base := int(req.Amount / 200)
	if base > 60 {
		base = 60
	}
	if base < 0 {
		base = 0
	}

	score := base + rand.Intn(41)
	if score > 100 {
		score = 100
	}
	return score, nil
}
