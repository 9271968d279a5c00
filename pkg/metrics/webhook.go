package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for the relay duration histogram.
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
)

// WebhookMetrics records the webhook relay pipeline.
type WebhookMetrics struct {
	received         *prometheus.CounterVec
	forwarded        prometheus.Counter
	parseFailures    prometheus.Counter
	deliveryFailures prometheus.Counter
	duplicates       prometheus.Counter
	relayDuration    *prometheus.HistogramVec
}

// NewWebhookMetrics registers the relay metrics on the provided registerer.
func NewWebhookMetrics(reg prometheus.Registerer) *WebhookMetrics {
	if reg == nil {
		return &WebhookMetrics{}
	}
	received := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_events_received_total",
		Help: "Webhook events received, labeled by taxonomy category.",
	}, []string{"category"})
	forwarded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhook_events_forwarded_total",
		Help: "Message cards successfully delivered to Teams.",
	})
	parseFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhook_parse_failures_total",
		Help: "Inbound envelopes rejected as malformed.",
	})
	deliveryFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhook_delivery_failures_total",
		Help: "Card deliveries that failed toward Teams.",
	})
	duplicates := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "webhook_duplicate_deliveries_total",
		Help: "Webhook deliveries skipped by the duplicate guard.",
	})
	relayDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "webhook_relay_duration_seconds",
		Help:    "End-to-end unwrap/compose/deliver duration in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	reg.MustRegister(received, forwarded, parseFailures, deliveryFailures, duplicates, relayDuration)
	return &WebhookMetrics{
		received:         received,
		forwarded:        forwarded,
		parseFailures:    parseFailures,
		deliveryFailures: deliveryFailures,
		duplicates:       duplicates,
		relayDuration:    relayDuration,
	}
}

// IncReceived counts one inbound event for the given category.
func (m *WebhookMetrics) IncReceived(category string) {
	if m == nil || m.received == nil {
		return
	}
	m.received.WithLabelValues(normalizeLabel(category)).Inc()
}

// IncForwarded counts one successful Teams delivery.
func (m *WebhookMetrics) IncForwarded() {
	if m == nil || m.forwarded == nil {
		return
	}
	m.forwarded.Inc()
}

// IncParseFailure counts one rejected envelope.
func (m *WebhookMetrics) IncParseFailure() {
	if m == nil || m.parseFailures == nil {
		return
	}
	m.parseFailures.Inc()
}

// IncDeliveryFailure counts one failed Teams delivery.
func (m *WebhookMetrics) IncDeliveryFailure() {
	if m == nil || m.deliveryFailures == nil {
		return
	}
	m.deliveryFailures.Inc()
}

// IncDuplicate counts one delivery skipped by the duplicate guard.
func (m *WebhookMetrics) IncDuplicate() {
	if m == nil || m.duplicates == nil {
		return
	}
	m.duplicates.Inc()
}

// ObserveRelayDuration records the end-to-end handling time for both delivered
// and failed relays; timeouts toward Teams land in the failed series instead of
// vanishing.
func (m *WebhookMetrics) ObserveRelayDuration(outcome string, duration time.Duration) {
	if m == nil || m.relayDuration == nil {
		return
	}
	m.relayDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func normalizeLabel(category string) string {
	if category == "" {
		return "unknown"
	}
	return category
}
