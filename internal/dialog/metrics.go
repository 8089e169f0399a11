package dialog

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the conversation engine.
type Metrics struct {
	MessagesTotal   *prometheus.CounterVec
	EntitiesTotal   *prometheus.CounterVec
	ActiveSessions  prometheus.Gauge
	MessageDuration prometheus.Histogram
}

// NewMetrics creates and registers the engine metrics. Registration happens
// once per process via sync.Once, so repeated engine construction (tests,
// restarts of the serve loop) cannot panic with duplicate collectors.
//
// Metrics:
//   - chatterd_messages_total{intent} - messages processed, by classified intent
//   - chatterd_entities_extracted_total{kind} - entities extracted, by kind
//   - chatterd_active_sessions - sessions currently in the store
//   - chatterd_message_duration_seconds - message processing latency
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			MessagesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "chatterd_messages_total",
					Help: "Total number of messages processed",
				},
				[]string{"intent"},
			),

			EntitiesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "chatterd_entities_extracted_total",
					Help: "Total number of entities extracted from messages",
				},
				[]string{"kind"},
			),

			ActiveSessions: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "chatterd_active_sessions",
					Help: "Current number of sessions in the store",
				},
			),

			MessageDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "chatterd_message_duration_seconds",
					Help:    "Duration of message processing in seconds",
					Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8), // 10µs to ~160ms
				},
			),
		}
	})

	return globalMetrics
}

// RecordMessage records one processed message and its latency.
func (m *Metrics) RecordMessage(intentTag string, durationSeconds float64) {
	m.MessagesTotal.WithLabelValues(intentTag).Inc()
	m.MessageDuration.Observe(durationSeconds)
}

// RecordEntity records one extracted entity.
func (m *Metrics) RecordEntity(kind string) {
	m.EntitiesTotal.WithLabelValues(kind).Inc()
}

// SetActiveSessions updates the session gauge.
func (m *Metrics) SetActiveSessions(n int) {
	m.ActiveSessions.Set(float64(n))
}
