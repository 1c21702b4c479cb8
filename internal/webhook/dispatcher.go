package webhook

import (
	"bytes"
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/devmarrez/payment-relay/config"
	"github.com/devmarrez/payment-relay/internal/metrics"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Endpoint is a resolved external destination: URL plus the HMAC secret
// looked up from the SecretStore at startup.
type Endpoint struct {
	Name   string
	URL    string
	Secret string
}

// DeliveryReport is the terminal outcome of delivering one payload to one
// endpoint. The dispatcher never dead-letters; persisting failed deliveries
// is the caller's concern.
type DeliveryReport struct {
	Endpoint   string
	URL        string
	State      models.WebhookDeliveryState
	Attempts   int
	LastStatus int
	LastError  string
	Payload    []byte
}

// Dispatcher signs and pushes payment events to every registered endpoint.
// Endpoints are fully independent: no shared retry budget, no ordering, and
// one endpoint's failure or slowness never blocks another's delivery.
type Dispatcher struct {
	Endpoints   []Endpoint
	client      *http.Client
	timeout     time.Duration
	maxAttempts int
	backoffBase time.Duration
	apiVersion  string
}

func NewDispatcher(endpoints []Endpoint, cfg config.Webhook) *Dispatcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	backoffBase := cfg.BackoffBase
	if backoffBase <= 0 {
		backoffBase = time.Second
	}
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = models.EventDataVersion
	}

	return &Dispatcher{
		Endpoints:   endpoints,
		client:      &http.Client{},
		timeout:     timeout,
		maxAttempts: maxAttempts,
		backoffBase: backoffBase,
		apiVersion:  apiVersion,
	}
}

// Dispatch delivers the event to all endpoints concurrently and returns one
// report per endpoint, in endpoint order.
func (d *Dispatcher) Dispatch(ctx context.Context, event *models.PaymentEvent) []DeliveryReport {
	reports := make([]DeliveryReport, len(d.Endpoints))

	var wg sync.WaitGroup
	for i, ep := range d.Endpoints {
		wg.Add(1)
		go func(i int, ep Endpoint) {
			defer wg.Done()
			reports[i] = d.deliver(ctx, ep, event)
			metrics.WebhookDeliveriesTotal.WithLabelValues(ep.Name, string(reports[i].State)).Inc()
		}(i, ep)
	}
	wg.Wait()

	return reports
}

func (d *Dispatcher) deliver(ctx context.Context, ep Endpoint, event *models.PaymentEvent) DeliveryReport {
	report := DeliveryReport{
		Endpoint: ep.Name,
		URL:      ep.URL,
		State:    models.DeliveryPending,
	}

	payload := &models.WebhookPayload{
		ID:         uuid.New().String(),
		Type:       event.EventType,
		CreatedAt:  time.Now().UTC(),
		Data:       *event,
		APIVersion: d.apiVersion,
	}

	// The payload is fixed before the first attempt; retries reuse the
	// same signed bytes.
	body, err := SignPayload(payload, ep.Secret)
	if err != nil {
		report.State = models.DeliveryTerminalFailed
		report.LastError = err.Error()
		return report
	}
	report.Payload = body

	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		report.Attempts = attempt

		status, err := d.post(ctx, ep.URL, body)
		switch {
		case err == nil && status >= 200 && status < 300:
			report.State = models.DeliverySent
			report.LastStatus = status
			logrus.Infof("Webhook delivered to %s (%s) on attempt %d", ep.Name, ep.URL, attempt)
			return report

		case err == nil && status >= 400 && status < 500:
			// Client errors cannot self-resolve; never retried.
			report.State = models.DeliveryTerminalFailed
			report.LastStatus = status
			logrus.Errorf("Webhook to %s rejected with %d, not retrying", ep.Name, status)
			return report

		default:
			report.LastStatus = status
			if err != nil {
				report.LastError = err.Error()
			}
			if attempt == d.maxAttempts {
				report.State = models.DeliveryExhausted
				logrus.Errorf("Webhook to %s failed after %d attempts", ep.Name, attempt)
				return report
			}
			report.State = models.DeliveryRetrying

			backoff := d.backoffBase * (1 << attempt)
			logrus.Warnf("Webhook to %s failed (status=%d err=%v), retry %d/%d in %v",
				ep.Name, status, err, attempt, d.maxAttempts, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				report.State = models.DeliveryExhausted
				report.LastError = ctx.Err().Error()
				return report
			}
		}
	}

	return report
}

// post performs a single attempt with its own timeout. A timed-out attempt
// cancels only itself, never the surrounding retry loop.
func (d *Dispatcher) post(ctx context.Context, url string, body []byte) (int, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
