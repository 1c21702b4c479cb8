package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PaymentsReceivedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_received_total",
			Help: "Total payment requests accepted at the API boundary",
		},
		[]string{"currency"},
	)

	PaymentStatusTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_status_total",
			Help: "Status records observed on the broadcast topic",
		},
		[]string{"status"},
	)

	PaymentAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "payment_amounts",
			Help:    "Distribution of payment amounts",
			Buckets: prometheus.LinearBuckets(0, 500, 20),
		},
		[]string{"currency"},
	)

	FraudScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fraud_scores",
			Help:    "Distribution of fraud scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	PaymentEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_events_total",
			Help: "Payment events observed by the analytics subscription",
		},
		[]string{"event_type"},
	)

	WebhookDeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_deliveries_total",
			Help: "Webhook delivery outcomes per endpoint",
		},
		[]string{"endpoint", "state"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		PaymentsReceivedTotal,
		PaymentStatusTotal,
		PaymentAmounts,
		FraudScores,
		PaymentEventsTotal,
		WebhookDeliveriesTotal,
	)
}
