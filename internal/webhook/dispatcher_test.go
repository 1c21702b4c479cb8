package webhook_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/devmarrez/payment-relay/config"
	"github.com/devmarrez/payment-relay/internal/models"
	"github.com/devmarrez/payment-relay/internal/webhook"
	"github.com/stretchr/testify/assert"
)

func testEvent() *models.PaymentEvent {
	return &models.PaymentEvent{
		EventID:       "event-1",
		EventType:     models.EventPaymentCompleted,
		PaymentID:     "payment-123",
		OrderID:       "order-456",
		Amount:        99.99,
		Currency:      models.CurrencyUSD,
		Status:        models.StatusCompleted,
		TransactionID: "txn_abc",
		OccurredAt:    time.Now().UTC(),
	}
}

func testConfig() config.Webhook {
	return config.Webhook{
		Timeout:     2 * time.Second,
		MaxAttempts: 3,
		BackoffBase: 5 * time.Millisecond,
		APIVersion:  "1.0",
	}
}

func TestDispatch_Success_SingleAttempt(t *testing.T) {
	var attempts atomic.Int32
	var gotBody []byte
	var mu sync.Mutex

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotBody = body
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := webhook.NewDispatcher([]webhook.Endpoint{
		{Name: "erp", URL: server.URL, Secret: "secret-1"},
	}, testConfig())

	reports := d.Dispatch(context.Background(), testEvent())

	assert.Len(t, reports, 1)
	assert.Equal(t, models.DeliverySent, reports[0].State)
	assert.Equal(t, 1, reports[0].Attempts)
	assert.Equal(t, http.StatusOK, reports[0].LastStatus)
	assert.Equal(t, int32(1), attempts.Load())

	mu.Lock()
	defer mu.Unlock()
	ok, err := webhook.VerifyPayload(gotBody, "secret-1")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestDispatch_ServerError_RetriedUntilExhausted(t *testing.T) {
	var attempts atomic.Int32
	var timestamps []time.Time
	var mu sync.Mutex

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		mu.Lock()
		timestamps = append(timestamps, time.Now())
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	d := webhook.NewDispatcher([]webhook.Endpoint{
		{Name: "erp", URL: server.URL, Secret: "secret-1"},
	}, testConfig())

	reports := d.Dispatch(context.Background(), testEvent())

	assert.Equal(t, models.DeliveryExhausted, reports[0].State)
	assert.Equal(t, 3, reports[0].Attempts)
	assert.Equal(t, int32(3), attempts.Load())

	// Backoff grows geometrically: base*2, then base*4.
	mu.Lock()
	defer mu.Unlock()
	if assert.Len(t, timestamps, 3) {
		first := timestamps[1].Sub(timestamps[0])
		second := timestamps[2].Sub(timestamps[1])
		assert.GreaterOrEqual(t, first, 10*time.Millisecond)
		assert.GreaterOrEqual(t, second, 20*time.Millisecond)
		assert.Greater(t, second, first)
	}
}

func TestDispatch_ClientError_NeverRetried(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound} {
		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts.Add(1)
			w.WriteHeader(status)
		}))

		d := webhook.NewDispatcher([]webhook.Endpoint{
			{Name: "erp", URL: server.URL, Secret: "secret-1"},
		}, testConfig())

		reports := d.Dispatch(context.Background(), testEvent())

		assert.Equal(t, models.DeliveryTerminalFailed, reports[0].State)
		assert.Equal(t, 1, reports[0].Attempts)
		assert.Equal(t, status, reports[0].LastStatus)
		assert.Equal(t, int32(1), attempts.Load())

		server.Close()
	}
}

func TestDispatch_ConnectionError_Retryable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	d := webhook.NewDispatcher([]webhook.Endpoint{
		{Name: "erp", URL: server.URL, Secret: "secret-1"},
	}, testConfig())

	reports := d.Dispatch(context.Background(), testEvent())

	assert.Equal(t, models.DeliveryExhausted, reports[0].State)
	assert.Equal(t, 3, reports[0].Attempts)
	assert.NotEmpty(t, reports[0].LastError)
}

func TestDispatch_EndpointsAreIndependent(t *testing.T) {
	var healthyReceivedAt time.Time
	var mu sync.Mutex

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(30 * time.Millisecond)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		healthyReceivedAt = time.Now()
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	d := webhook.NewDispatcher([]webhook.Endpoint{
		{Name: "failing", URL: failing.URL, Secret: "secret-1"},
		{Name: "healthy", URL: healthy.URL, Secret: "secret-2"},
	}, testConfig())

	start := time.Now()
	reports := d.Dispatch(context.Background(), testEvent())

	assert.Equal(t, models.DeliveryExhausted, reports[0].State)
	assert.Equal(t, models.DeliverySent, reports[1].State)
	assert.Equal(t, 1, reports[1].Attempts)

	// The healthy endpoint must not wait for the failing one's retries.
	mu.Lock()
	defer mu.Unlock()
	assert.Less(t, healthyReceivedAt.Sub(start), 25*time.Millisecond)
}

func TestDispatch_PayloadsSignedPerEndpointSecret(t *testing.T) {
	bodies := make(map[string][]byte)
	var mu sync.Mutex

	newServer := func(name string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			mu.Lock()
			bodies[name] = body
			mu.Unlock()
			w.WriteHeader(http.StatusOK)
		}))
	}
	erp := newServer("erp")
	defer erp.Close()
	crm := newServer("crm")
	defer crm.Close()

	d := webhook.NewDispatcher([]webhook.Endpoint{
		{Name: "erp", URL: erp.URL, Secret: "erp-secret"},
		{Name: "crm", URL: crm.URL, Secret: "crm-secret"},
	}, testConfig())

	d.Dispatch(context.Background(), testEvent())

	mu.Lock()
	defer mu.Unlock()

	ok, err := webhook.VerifyPayload(bodies["erp"], "erp-secret")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = webhook.VerifyPayload(bodies["crm"], "crm-secret")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = webhook.VerifyPayload(bodies["crm"], "erp-secret")
	assert.NoError(t, err)
	assert.False(t, ok)
}
