package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TrackerMetrics covers the order lifecycle and the notification path.
type TrackerMetrics struct {
	OrdersCreatedTotal prometheus.CounterVec

	StepsCompletedTotal        prometheus.CounterVec
	StepCompletionRejectsTotal prometheus.CounterVec

	NotificationsDispatchedTotal prometheus.Counter
	NotificationsDroppedTotal    prometheus.Counter

	HTTPRequestDuration prometheus.HistogramVec

	WSConnectionsActive prometheus.Gauge
}

func NewTrackerMetrics() *TrackerMetrics {
	return &TrackerMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total number of orders created",
			},
			[]string{"source_location"},
		),

		StepsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_steps_completed_total",
				Help: "Total number of workflow steps marked completed",
			},
			[]string{"step_name"},
		),

		StepCompletionRejectsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_step_completion_rejects_total",
				Help: "Step completion attempts rejected by the progression engine",
			},
			[]string{"reason"},
		),

		NotificationsDispatchedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "notifications_dispatched_total",
				Help: "Notifications written and handed to the realtime channel",
			},
		),

		NotificationsDroppedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "notifications_dropped_total",
				Help: "Notifications that found no live connection to push to",
			},
		),

		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"method", "path", "status"},
		),

		WSConnectionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ws_connections_active",
				Help: "Currently open websocket connections",
			},
		),
	}
}

func (m *TrackerMetrics) RecordOrderCreated(sourceLocation string) {
	if sourceLocation == "" {
		sourceLocation = "unknown"
	}
	m.OrdersCreatedTotal.WithLabelValues(sourceLocation).Inc()
}

func (m *TrackerMetrics) RecordStepCompleted(stepName string) {
	m.StepsCompletedTotal.WithLabelValues(stepName).Inc()
}

func (m *TrackerMetrics) RecordStepRejected(reason string) {
	m.StepCompletionRejectsTotal.WithLabelValues(reason).Inc()
}

func (m *TrackerMetrics) RecordNotificationDispatched() {
	m.NotificationsDispatchedTotal.Inc()
}

func (m *TrackerMetrics) RecordNotificationDropped() {
	m.NotificationsDroppedTotal.Inc()
}
