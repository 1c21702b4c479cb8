package gateway

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrGatewayUnavailable marks a transient failure (timeout, upstream 5xx).
// Callers should retry. Definitive declines are not errors; they come back
// as an unsuccessful ChargeResult.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

type ChargeResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	ResponseCode  string `json:"response_code"`
	Message       string `json:"message"`
}

// GatewayClient charges a payment through an external acquirer. The real
// implementation is selected at composition time; business logic never
// branches on environment.
type GatewayClient interface {
	Charge(ctx context.Context, paymentID string, amount float64, currency models.Currency) (*ChargeResult, error)
}

// SimulatedGateway approves most charges, declines some, and occasionally
// fails transiently, mimicking an acquirer sandbox.
type SimulatedGateway struct{}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{}
}

func (g *SimulatedGateway) Charge(_ context.Context, paymentID string, amount float64, currency models.Currency) (*ChargeResult, error) {
	roll := rand.Float64()

	if roll < 0.05 {
		logrus.Warnf("Gateway timeout simulated for payment %s", paymentID)
		return nil, fmt.Errorf("charging payment %s: %w", paymentID, ErrGatewayUnavailable)
	}

	if roll < 0.15 {
		return &ChargeResult{
			Success:      false,
			ResponseCode: "51",
			Message:      "Insufficient funds",
		}, nil
	}

	return &ChargeResult{
		Success:       true,
		TransactionID: "txn_" + uuid.New().String(),
		ResponseCode:  "00",
		Message:       fmt.Sprintf("Approved %0.2f %s", amount, currency),
	}, nil
}
