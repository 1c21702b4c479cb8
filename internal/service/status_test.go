package service_test

import (
	"fmt"
	"testing"

	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestAssembleStatus_ValidationFailedWins(t *testing.T) {
	req := validRequest()
	vr := models.ValidationResult{IsValid: false, Errors: []string{service.MsgAmountOutOfBounds}}

	record := service.AssembleStatus(req, vr, 95)

	assert.Equal(t, models.StatusValidationFailed, record.Status)
	assert.True(t, record.FraudFlagged)
	assert.Equal(t, []string{service.MsgAmountOutOfBounds}, record.ValidationMessages)
}

func TestAssembleStatus_FraudReview(t *testing.T) {
	req := validRequest()
	vr := models.ValidationResult{IsValid: true}

	record := service.AssembleStatus(req, vr, 71)

	assert.Equal(t, models.StatusFraudReview, record.Status)
	assert.True(t, record.FraudFlagged)
}

func TestAssembleStatus_Validated(t *testing.T) {
	req := validRequest()
	vr := models.ValidationResult{IsValid: true}

	record := service.AssembleStatus(req, vr, 70)

	assert.Equal(t, models.StatusValidated, record.Status)
	assert.False(t, record.FraudFlagged)
}

func TestAssembleStatus_Totality(t *testing.T) {
	allowed := map[models.PaymentState]bool{
		models.StatusValidated:        true,
		models.StatusValidationFailed: true,
		models.StatusFraudReview:      true,
	}

	for _, isValid := range []bool{true, false} {
		for score := 0; score <= 100; score += 10 {
			t.Run(fmt.Sprintf("valid=%v score=%d", isValid, score), func(t *testing.T) {
				vr := models.ValidationResult{IsValid: isValid}
				if !isValid {
					vr.Errors = []string{service.MsgCardExpired}
				}

				record := service.AssembleStatus(validRequest(), vr, score)

				assert.True(t, allowed[record.Status], "unexpected status %s", record.Status)
				assert.Equal(t, score > models.FraudScoreThreshold, record.FraudFlagged)
				assert.NoError(t, record.Validate())
			})
		}
	}
}

func TestAssembleStatus_CorrelationPreserved(t *testing.T) {
	req := validRequest()
	vr := models.ValidationResult{IsValid: true}

	record := service.AssembleStatus(req, vr, 10)

	assert.Equal(t, req.PaymentID, record.PaymentID)
	assert.Equal(t, req.OrderID, record.OrderID)
	assert.Equal(t, req.CustomerID, record.CustomerID)
	assert.Equal(t, req.Amount, record.Amount)
	assert.Equal(t, req.Currency, record.Currency)
	assert.False(t, record.ValidatedAt.IsZero())
}
