package qmetric

import (
	"time"
)

var (
	rowCounter     CounterVec
	failureCounter CounterVec
	opLatency      SummaryVec
)

// Init registers the library's default instruments under the given
// namespace. Call it once on startup; without it every default helper
// is a no-op.
func Init(namespace string) {
	if namespace == "" {
		panic("empty namespace")
	}

	const subsystem = "batch"

	rowCounter = NewCounterVec(&CounterVecOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rows_total",
		Help:      "rows evaluated, by operation",
		Labels:    []string{"op"},
	})

	failureCounter = NewCounterVec(&CounterVecOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "row_failures_total",
		Help:      "row-level failures, by operation and reason",
		Labels:    []string{"op", "reason"},
	})

	opLatency = NewSummaryVec(&SummaryVecOpts{
		Namespace:  namespace,
		Subsystem:  subsystem,
		Name:       "latency_ms",
		Help:       "batch evaluation latency, milliseconds",
		Labels:     []string{"op"},
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	})
}

// AddRows counts rows evaluated for an operation.
func AddRows(n int, op string) {
	if rowCounter != nil {
		rowCounter.Add(float64(n), op)
	}
}

// IncFailure counts one row-level failure.
func IncFailure(op, reason string) {
	if failureCounter != nil {
		failureCounter.Inc(op, reason)
	}
}

// ObserveLatencySince records a batch's wall time.
func ObserveLatencySince(t time.Time, op string) {
	if opLatency != nil && !t.IsZero() {
		opLatency.Observe(toMilliseconds(time.Since(t)), op)
	}
}

// toMilliseconds returns the duration as a floating point number of
// milliseconds.
func toMilliseconds(d time.Duration) float64 {
	sec := d / time.Millisecond
	nsec := d % time.Millisecond
	return float64(sec) + float64(nsec)/1e6
}
