package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/devmarrez/payment-relay/internal/models"
)

type PaymentMethod struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

type PaymentRequest struct {
	OrderID        string                 `json:"order_id"`
	CustomerID     string                 `json:"customer_id"`
	Amount         float64                `json:"amount"`
	Currency       string                 `json:"currency"`
	Method         PaymentMethod          `json:"payment_method"`
	BillingAddress *models.BillingAddress `json:"billing_address,omitempty"`
	Metadata       map[string]string      `json:"metadata,omitempty"`
}

// AcceptedResponse is returned to the caller once the request has been
// queued. Downstream outcomes are never surfaced synchronously.
type AcceptedResponse struct {
	PaymentID string    `json:"payment_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (p *PaymentRequest) Sanitize() {
	p.OrderID = strings.TrimSpace(p.OrderID)
	p.CustomerID = strings.TrimSpace(p.CustomerID)
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	p.Method.CardNumber = strings.ReplaceAll(strings.TrimSpace(p.Method.CardNumber), " ", "")
	p.Method.CVV = strings.TrimSpace(p.Method.CVV)
	p.Method.HolderName = strings.TrimSpace(p.Method.HolderName)
}

// CheckRequired enforces the synchronous API boundary rules. Field errors
// are collected, not short-circuited, so callers get one structured list.
func (p *PaymentRequest) CheckRequired(now time.Time) []string {
	var errs []string
	if p.OrderID == "" {
		errs = append(errs, "order_id is required")
	}
	if p.CustomerID == "" {
		errs = append(errs, "customer_id is required")
	}
	if p.Amount <= 0 {
		errs = append(errs, "amount must be greater than zero")
	}
	if !models.Currency(p.Currency).IsValid() {
		errs = append(errs, fmt.Sprintf("unsupported currency: %s", p.Currency))
	}
	if p.Method.CardNumber == "" {
		errs = append(errs, "payment_method.card_number is required")
	}
	if p.Method.ExpiryMonth < 1 || p.Method.ExpiryMonth > 12 {
		errs = append(errs, "payment_method.expiry_month must be between 1 and 12")
	}
	if p.Method.ExpiryYear < now.Year() {
		errs = append(errs, "payment_method.expiry_year must not be in the past")
	}
	if len(p.Method.CVV) < 3 {
		errs = append(errs, "payment_method.cvv must be at least 3 digits")
	}
	return errs
}

func (p *PaymentRequest) ToEntity() *models.PaymentRequest {
	return &models.PaymentRequest{
		OrderID:    p.OrderID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount,
		Currency:   models.Currency(p.Currency),
		Method: models.PaymentMethod{
			CardNumber:  p.Method.CardNumber,
			ExpiryMonth: p.Method.ExpiryMonth,
			ExpiryYear:  p.Method.ExpiryYear,
			CVV:         p.Method.CVV,
			HolderName:  p.Method.HolderName,
		},
		BillingAddress: p.BillingAddress,
		Metadata:       p.Metadata,
	}
}
