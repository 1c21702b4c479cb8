package models

import "time"

// WebhookPayload is the envelope delivered to external endpoints. The
// Signature is an HMAC-SHA256 over the payload serialized with an empty
// Signature field; retries reuse the same signed bytes.
type WebhookPayload struct {
	ID         string       `json:"id"`
	Type       EventType    `json:"type"`
	CreatedAt  time.Time    `json:"created_at"`
	Data       PaymentEvent `json:"data"`
	Signature  string       `json:"signature"`
	APIVersion string       `json:"api_version"`
}

type WebhookDeliveryState string

const (
	DeliveryPending        WebhookDeliveryState = "PENDING"
	DeliverySent           WebhookDeliveryState = "SENT"
	DeliveryRetrying       WebhookDeliveryState = "RETRYING"
	DeliveryTerminalFailed WebhookDeliveryState = "TERMINAL_FAILED"
	DeliveryExhausted      WebhookDeliveryState = "EXHAUSTED"
)

func (s WebhookDeliveryState) IsValid() bool {
	switch s {
	case DeliveryPending, DeliverySent, DeliveryRetrying, DeliveryTerminalFailed, DeliveryExhausted:
		return true
	default:
		return false
	}
}

// WebhookEndpoint is a registered external destination. Rows can come from
// the database registry or from configuration; secrets are resolved
// separately at startup and never persisted.
type WebhookEndpoint struct {
	Name      string    `json:"name" gorm:"primaryKey"`
	URL       string    `json:"url"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WebhookDeliveryLog records a finished delivery that needs operator
// attention, kept for manual redelivery.
type WebhookDeliveryLog struct {
	ID         string               `json:"id" gorm:"primaryKey"`
	EventID    string               `json:"event_id"`
	PaymentID  string               `json:"payment_id"`
	Endpoint   string               `json:"endpoint"`
	URL        string               `json:"url"`
	Payload    string               `json:"payload"`
	State      WebhookDeliveryState `json:"state"`
	Attempts   int                  `json:"attempts"`
	LastStatus int                  `json:"last_status"`
	LastError  string               `json:"last_error,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}
