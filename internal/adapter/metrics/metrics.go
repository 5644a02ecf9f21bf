package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for the order feed and payment
// reconciliation. Implements port.Metrics.
type Metrics struct {
	feedErrors           prometheus.Counter
	ordersNotified       prometheus.Counter
	notificationFailures *prometheus.CounterVec
	reconcileResults     *prometheus.CounterVec
	conflictRetries      prometheus.Counter
}

// MustNewMetrics constructs a Metrics instance using the provided registerer.
// Pass a fresh registry when unique metric names are required, for example
// in tests. Registration errors panic, mirroring promauto semantics.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		feedErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vitrine",
			Subsystem: "feed",
			Name:      "errors_total",
			Help:      "Snapshot-level errors reported by the order watch subscription.",
		}),
		ordersNotified: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vitrine",
			Subsystem: "feed",
			Name:      "orders_notified_total",
			Help:      "New-order events emitted past the watermark.",
		}),
		notificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitrine",
			Subsystem: "feed",
			Name:      "notification_failures_total",
			Help:      "Best-effort notification deliveries that failed.",
		}, []string{"sink"}),
		reconcileResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitrine",
			Subsystem: "payment",
			Name:      "reconcile_total",
			Help:      "Payment reconciliation attempts by outcome.",
		}, []string{"result"}),
		conflictRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "vitrine",
			Subsystem: "orders",
			Name:      "conflict_retries_total",
			Help:      "Order read-modify-writes retried after a version conflict.",
		}),
	}

	reg.MustRegister(m.feedErrors, m.ordersNotified, m.notificationFailures,
		m.reconcileResults, m.conflictRetries)

	return m
}

func (m *Metrics) FeedError() {
	m.feedErrors.Inc()
}

func (m *Metrics) OrderNotified() {
	m.ordersNotified.Inc()
}

func (m *Metrics) NotificationFailed(sink string) {
	m.notificationFailures.WithLabelValues(sink).Inc()
}

func (m *Metrics) ReconcileResult(result string) {
	m.reconcileResults.WithLabelValues(result).Inc()
}

func (m *Metrics) ConflictRetry() {
	m.conflictRetries.Inc()
}
