package service

import (
	"time"

	"github.com/devmarrez/payment-relay/internal/models"
)

// Validation rule messages. Order of appearance in the result follows check
// order: expiry, card number, CVV, amount.
const (
	MsgCardExpired       = "Card has expired"
	MsgCardNumberLength  = "Card number length must be between 13 and 19 digits"
	MsgInvalidCVV        = "CVV must be 3 or 4 digits"
	MsgAmountOutOfBounds = "Amount must be between 0 and 10,000"
)

// ValidatePayment applies every business and card-format rule to a payment
// request. It is a pure function: no side effects, errors collected rather
// than short-circuited, identical input yields identical output.
func ValidatePayment(req *models.PaymentRequest, now time.Time) models.ValidationResult {
	var errs []string

	if expired(req.Method, now) {
		errs = append(errs, MsgCardExpired)
	}
	if l := len(req.Method.CardNumber); l < 13 || l > 19 {
		errs = append(errs, MsgCardNumberLength)
	}
	if l := len(req.Method.CVV); l < 3 || l > 4 {
		errs = append(errs, MsgInvalidCVV)
	}
	if req.Amount <= 0 || req.Amount > models.MaxPaymentAmount {
		errs = append(errs, MsgAmountOutOfBounds)
	}

	return models.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// expired reports whether the card's expiry month has fully elapsed. The
// card remains valid through the last instant of its expiry month.
func expired(m models.PaymentMethod, now time.Time) bool {
	endOfExpiryMonth := time.Date(m.ExpiryYear, time.Month(m.ExpiryMonth)+1, 1, 0, 0, 0, 0, time.UTC)
	return endOfExpiryMonth.Before(now)
}
