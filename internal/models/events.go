package models

import "time"

type EventType string

const (
	EventPaymentCompleted EventType = "PaymentCompleted"
	EventPaymentFailed    EventType = "PaymentFailed"
)

const (
	PaymentRequestedTopic = "payments.requested"
	PaymentStatusTopic    = "payments.status"
	PaymentEventsTopic    = "payments.events"
	PaymentsDLQTopic      = "payments.dlq"
)

// Envelope header keys shared by publisher and subscribers. Attributes ride
// on message headers so consumers can filter without deserializing bodies.
const (
	HeaderContentType   = "content-type"
	HeaderCorrelationID = "correlation-id"
	HeaderOrderID       = "order_id"
	HeaderPaymentID     = "payment_id"
	HeaderCustomerID    = "customer_id"
	HeaderAmount        = "amount"
	HeaderCurrency      = "currency"
	HeaderStatus        = "status"
	HeaderFraudFlagged  = "fraud_flagged"
	HeaderSubject       = "subject"
	HeaderEventType     = "event-type"
	HeaderDataVersion   = "data-version"

	ContentTypeJSON  = "application/json"
	EventDataVersion = "1.0"
)

// Dead-letter reason codes.
const (
	ReasonDeserializationFailed   = "DeserializationFailed"
	ReasonMaxDeliveryCountReached = "MaxDeliveryCountExceeded"
	ReasonHandlerRejected         = "HandlerRejected"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventPaymentCompleted, EventPaymentFailed:
		return true
	default:
		return false
	}
}

// PaymentEvent is the externally visible fact produced once per processing
// outcome. EventID is independent of PaymentID and is what downstream
// systems deduplicate on.
type PaymentEvent struct {
	EventID       string            `json:"event_id"`
	EventType     EventType         `json:"event_type"`
	PaymentID     string            `json:"payment_id"`
	OrderID       string            `json:"order_id"`
	CustomerID    string            `json:"customer_id"`
	Amount        float64           `json:"amount"`
	Currency      Currency          `json:"currency"`
	Status        PaymentState      `json:"status"`
	TransactionID string            `json:"transaction_id,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
	Data          map[string]string `json:"data,omitempty"`
}

// Subject returns the outbound event subject, "payments/{paymentId}".
func (e PaymentEvent) Subject() string {
	return "payments/" + e.PaymentID
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Reason        string    `json:"reason"`
	Description   string    `json:"description,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
