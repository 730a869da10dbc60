package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics
type Metrics struct {
	// Payment workflow metrics
	PaymentsCreated *prometheus.CounterVec
	PaymentErrors   *prometheus.CounterVec

	// Provider metrics
	ProviderRequestDuration *prometheus.HistogramVec
	CircuitBreakerState     *prometheus.GaugeVec

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Consumer metrics
	ConsumerMessagesReceived *prometheus.CounterVec
	ConsumerEventsPublished  *prometheus.CounterVec
	ConsumerMessagesDeleted  *prometheus.CounterVec
	ConsumerMessagesSkipped  *prometheus.CounterVec
	ConsumerReceiveErrors    *prometheus.CounterVec
}

// NewMetrics creates and registers all metrics against the given registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := prometheus.WrapRegistererWith(nil, reg)

	m := &Metrics{
		PaymentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_created_total",
				Help:      "Total number of payments created by method and status",
			},
			[]string{"method", "status"},
		),
		PaymentErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_errors_total",
				Help:      "Total number of payment workflow errors by stage",
			},
			[]string{"stage"},
		),
		ProviderRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Payment provider request duration in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"provider"},
		),
		CircuitBreakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "circuit_breaker_state",
				Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
			},
			[]string{"name"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		ConsumerMessagesReceived: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "consumer_messages_received_total",
				Help:      "Total number of queue messages received",
			},
			[]string{"queue"},
		),
		ConsumerEventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "consumer_events_published_total",
				Help:      "Total number of status events published to the bus",
			},
			[]string{"queue"},
		),
		ConsumerMessagesDeleted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "consumer_messages_deleted_total",
				Help:      "Total number of queue messages deleted after delivery",
			},
			[]string{"queue"},
		),
		ConsumerMessagesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "consumer_messages_skipped_total",
				Help:      "Total number of messages left in the queue by reason",
			},
			[]string{"queue", "reason"},
		),
		ConsumerReceiveErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "consumer_receive_errors_total",
				Help:      "Total number of failed batch receive calls",
			},
			[]string{"queue"},
		),
	}

	// Register all collectors
	factory.MustRegister(
		m.PaymentsCreated,
		m.PaymentErrors,
		m.ProviderRequestDuration,
		m.CircuitBreakerState,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.ConsumerMessagesReceived,
		m.ConsumerEventsPublished,
		m.ConsumerMessagesDeleted,
		m.ConsumerMessagesSkipped,
		m.ConsumerReceiveErrors,
	)

	return m
}
