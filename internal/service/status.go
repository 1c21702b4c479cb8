package service

import (
	"time"

	"github.com/devmarrez/payment-relay/internal/models"
)

// AssembleStatus combines a request with its validation result and fraud
// score into the status record broadcast to all subscriptions. It is total
// over its inputs: exactly one of ValidationFailed, FraudReview or
// Validated is produced, and FraudFlagged is true iff the score exceeds the
// review threshold.
func AssembleStatus(req *models.PaymentRequest, vr models.ValidationResult, fraudScore int) *models.PaymentStatusRecord {
	status := models.StatusValidated
	flagged := fraudScore > models.FraudScoreThreshold

	switch {
	case !vr.IsValid:
		status = models.StatusValidationFailed
	case flagged:
		status = models.StatusFraudReview
	}

	return &models.PaymentStatusRecord{
		PaymentID:          req.PaymentID,
		OrderID:            req.OrderID,
		CustomerID:         req.CustomerID,
		Amount:             req.Amount,
		Currency:           req.Currency,
		FraudScore:         fraudScore,
		FraudFlagged:       flagged,
		ValidationMessages: vr.Errors,
		Status:             status,
		ValidatedAt:        time.Now().UTC(),
	}
}
