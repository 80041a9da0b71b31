package provider

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instrumentation for provider dispatch.
// Scaled down from a full payment-metrics surface to what the
// orchestrator (C3) and its adapters (C4, C5) actually observe:
// checkout/webhook counts and latency, broken out by provider.
type Metrics struct {
	CheckoutsTotal   *prometheus.CounterVec
	CheckoutDuration *prometheus.HistogramVec
	WebhooksTotal    *prometheus.CounterVec
	WebhookDuration  *prometheus.HistogramVec
	ProviderErrors   *prometheus.CounterVec
	CircuitState     *prometheus.GaugeVec
}

// NewMetrics creates and registers the provider-dispatch metrics. A nil
// registerer falls back to prometheus.DefaultRegisterer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Metrics{
		CheckoutsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_checkouts_total",
				Help: "Total number of checkout attempts by provider and outcome",
			},
			[]string{"provider", "status"},
		),
		CheckoutDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_checkout_duration_seconds",
				Help:    "Time taken by a provider to create a checkout",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"provider"},
		),
		WebhooksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_webhooks_total",
				Help: "Total number of inbound provider webhooks by outcome",
			},
			[]string{"provider", "status"},
		),
		WebhookDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_webhook_duration_seconds",
				Help:    "Time taken to verify, parse, and apply a provider webhook",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2},
			},
			[]string{"provider"},
		),
		ProviderErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_provider_errors_total",
				Help: "Total number of provider-adapter errors by classification",
			},
			[]string{"provider", "code"},
		),
		CircuitState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "gateway_circuit_breaker_state",
				Help: "Current circuit breaker state per provider (0=closed, 1=half-open, 2=open)",
			},
			[]string{"provider"},
		),
	}
}

// ObserveCheckout records a checkout attempt's outcome and latency.
func (m *Metrics) ObserveCheckout(providerName string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	m.CheckoutsTotal.WithLabelValues(providerName, status).Inc()
	m.CheckoutDuration.WithLabelValues(providerName).Observe(duration.Seconds())
}

// ObserveWebhook records a webhook dispatch's outcome and latency.
func (m *Metrics) ObserveWebhook(providerName string, status string, duration time.Duration) {
	m.WebhooksTotal.WithLabelValues(providerName, status).Inc()
	m.WebhookDuration.WithLabelValues(providerName).Observe(duration.Seconds())
}

// ObserveProviderError records a classified provider-adapter failure.
func (m *Metrics) ObserveProviderError(providerName, code string) {
	m.ProviderErrors.WithLabelValues(providerName, code).Inc()
}
