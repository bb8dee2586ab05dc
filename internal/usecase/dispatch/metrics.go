package dispatch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for dispatch cycle monitoring
var (
	// dispatchCyclesTotal tracks completed dispatch cycles
	dispatchCyclesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_cycles_total",
			Help: "Total number of completed dispatch cycles",
		},
	)

	// dispatchDueItems tracks how many items were due at the start of a cycle
	dispatchDueItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_due_items",
			Help: "Number of due items observed at the start of the last cycle",
		},
	)

	// publishAttemptsTotal tracks publish attempts by outcome
	publishAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "publish_attempts_total",
			Help: "Total number of publish attempts",
		},
		[]string{"outcome"}, // outcome: success|retried|failed|skipped
	)

	// publishDuration tracks the duration of individual publish attempts
	publishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "publish_duration_seconds",
			Help:    "Publish attempt duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
	)

	// itemsReclaimedTotal tracks items recovered from a crashed cycle
	itemsReclaimedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_items_reclaimed_total",
			Help: "Total number of stuck publishing items reclaimed to pending",
		},
	)
)
