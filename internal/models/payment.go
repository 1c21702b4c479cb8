package models

import (
	"fmt"
	"time"
)

type PaymentState string
type Currency string

const (
	StatusValidated        PaymentState = "VALIDATED"
	StatusValidationFailed PaymentState = "VALIDATION_FAILED"
	StatusFraudReview      PaymentState = "FRAUD_REVIEW"
	StatusProcessing       PaymentState = "PROCESSING"
	StatusCompleted        PaymentState = "COMPLETED"
	StatusFailed           PaymentState = "FAILED"
	StatusRefunded         PaymentState = "REFUNDED"
	StatusOnHold           PaymentState = "ON_HOLD"

	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyMXN Currency = "MXN"
	CurrencyCOP Currency = "COP"
)

// MaxPaymentAmount is the upper bound accepted by validation.
const MaxPaymentAmount = 10000.0

// FraudScoreThreshold is the score above which a payment is flagged for
// manual review instead of being charged.
const FraudScoreThreshold = 70

type PaymentMethod struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

type BillingAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// PaymentRequest is the immutable unit of work created at ingestion. It is
// owned by the intake stage until it is handed to the request queue;
// downstream stages only ever read it.
type PaymentRequest struct {
	PaymentID      string            `json:"payment_id"`
	OrderID        string            `json:"order_id"`
	CustomerID     string            `json:"customer_id"`
	Amount         float64           `json:"amount"`
	Currency       Currency          `json:"currency"`
	Method         PaymentMethod     `json:"payment_method"`
	BillingAddress *BillingAddress   `json:"billing_address,omitempty"`
	RequestedAt    time.Time         `json:"requested_at"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// ValidationResult collects the outcome of every validation rule. Rules
// never short-circuit; Errors preserves check order.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// PaymentStatusRecord is derived from a PaymentRequest plus the validation
// and fraud outcome. It is created once by the validator stage and never
// mutated after publication.
type PaymentStatusRecord struct {
	PaymentID          string       `json:"payment_id"`
	OrderID            string       `json:"order_id"`
	CustomerID         string       `json:"customer_id"`
	TransactionID      string       `json:"transaction_id,omitempty"`
	Amount             float64      `json:"amount"`
	Currency           Currency     `json:"currency"`
	FraudScore         int          `json:"fraud_score"`
	FraudFlagged       bool         `json:"fraud_flagged"`
	ValidationMessages []string     `json:"validation_messages,omitempty"`
	Status             PaymentState `json:"status"`
	ValidatedAt        time.Time    `json:"validated_at"`
}

func (s PaymentState) IsValid() bool {
	switch s {
	case StatusValidated, StatusValidationFailed, StatusFraudReview,
		StatusProcessing, StatusCompleted, StatusFailed, StatusRefunded, StatusOnHold:
		return true
	default:
		return false
	}
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyUSD, CurrencyEUR, CurrencyMXN, CurrencyCOP:
		return true
	default:
		return false
	}
}

func (r *PaymentStatusRecord) Validate() error {
	if r.PaymentID == "" {
		return fmt.Errorf("payment ID is required")
	}
	if !r.Status.IsValid() {
		return fmt.Errorf("invalid payment status: %s", r.Status)
	}
	if r.FraudFlagged != (r.FraudScore > FraudScoreThreshold) {
		return fmt.Errorf("fraud flag inconsistent with score %d", r.FraudScore)
	}
	return nil
}
