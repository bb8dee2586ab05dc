package worker

import (
	"post-scheduler/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// WorkerMetrics provides Prometheus metrics for the dispatch worker.
// It embeds the standard ConfigMetrics for configuration monitoring and adds
// worker-specific metrics for dispatch cycle tracking.
//
// Embedded metrics (from ConfigMetrics):
//   - worker_config_load_timestamp: Unix timestamp of last configuration load
//   - worker_config_validation_errors_total: Total validation errors by field
//   - worker_config_fallbacks_total: Total fallback operations by field
//   - worker_config_fallback_active: 1 if any fallback active, 0 otherwise
//
// Worker-specific metrics:
//   - worker_dispatch_cycles_total: Total dispatch cycles by status (success/failure)
//   - worker_dispatch_cycle_duration_seconds: Duration histogram of dispatch cycles
//   - worker_items_published_total: Total scheduled items published by outcome
//   - worker_dispatch_last_success_timestamp: Unix timestamp of last successful cycle
type WorkerMetrics struct {
	// Embedded configuration metrics
	*config.ConfigMetrics

	// DispatchCyclesTotal counts the total number of dispatch cycles.
	// Labels: status (success, failure)
	DispatchCyclesTotal *prometheus.CounterVec

	// DispatchCycleDurationSeconds measures the duration of dispatch cycles.
	// Buckets cover the 30-second cadence up to the 5-minute cycle timeout.
	DispatchCycleDurationSeconds prometheus.Histogram

	// ItemsPublishedTotal counts scheduled items processed per cycle by outcome.
	// Labels: outcome (success, retry, failed)
	ItemsPublishedTotal *prometheus.CounterVec

	// DispatchLastSuccessTimestamp records the Unix timestamp of the last
	// successful dispatch cycle.
	DispatchLastSuccessTimestamp prometheus.Gauge
}

// NewWorkerMetrics creates a new WorkerMetrics instance with all metrics initialized.
// Metrics are created but not registered with Prometheus. Call MustRegister() to register.
func NewWorkerMetrics() *WorkerMetrics {
	return &WorkerMetrics{
		ConfigMetrics: config.NewConfigMetrics("worker"),

		DispatchCyclesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_dispatch_cycles_total",
			Help: "Total number of dispatch cycles by status (success/failure)",
		}, []string{"status"}),

		DispatchCycleDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_dispatch_cycle_duration_seconds",
			Help:    "Duration of dispatch cycle execution in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 180, 300},
		}),

		ItemsPublishedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_items_published_total",
			Help: "Total number of scheduled items processed by outcome (success/retry/failed)",
		}, []string{"outcome"}),

		DispatchLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_dispatch_last_success_timestamp",
			Help: "Unix timestamp of the last successful dispatch cycle",
		}),
	}
}

// MustRegister is a no-op method for API compatibility.
// Metrics are automatically registered via promauto when created in NewWorkerMetrics.
func (m *WorkerMetrics) MustRegister() {
	// No-op: metrics are auto-registered via promauto
}

// RecordCycle increments the dispatch cycle counter for the given status.
// Status should be either "success" or "failure".
func (m *WorkerMetrics) RecordCycle(status string) {
	m.DispatchCyclesTotal.WithLabelValues(status).Inc()
}

// RecordCycleDuration observes the duration of a dispatch cycle in seconds.
func (m *WorkerMetrics) RecordCycleDuration(seconds float64) {
	m.DispatchCycleDurationSeconds.Observe(seconds)
}

// RecordItemsPublished adds the number of items processed with the given outcome.
// Outcome should be one of "success", "retry" or "failed".
func (m *WorkerMetrics) RecordItemsPublished(outcome string, count int) {
	m.ItemsPublishedTotal.WithLabelValues(outcome).Add(float64(count))
}

// RecordLastSuccess records the current time as the last successful cycle completion.
func (m *WorkerMetrics) RecordLastSuccess() {
	m.DispatchLastSuccessTimestamp.SetToCurrentTime()
}
