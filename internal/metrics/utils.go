package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// IncrementJobsSubmitted increments the submitted job counter.
func (m *Metrics) IncrementJobsSubmitted() {
	m.jobsSubmittedTotal.Inc()
}

// RecordBatchClosed records one closed batch with its size and close reason.
// Example: metrics.RecordBatchClosed(3, "deadline")
func (m *Metrics) RecordBatchClosed(size int, reason string) {
	m.batchesClosedTotal.WithLabelValues(reason).Inc()
	m.batchSize.Observe(float64(size))
}

// IncrementUpstreamFailures increments the upstream failure counter for a
// given failure kind. Example: metrics.IncrementUpstreamFailures("transport")
func (m *Metrics) IncrementUpstreamFailures(reason string) {
	m.upstreamFailuresTotal.WithLabelValues(reason).Inc()
}

// DispatchStarted and DispatchFinished track the in-flight dispatch gauge.
func (m *Metrics) DispatchStarted()  { m.inflightDispatches.Inc() }
func (m *Metrics) DispatchFinished() { m.inflightDispatches.Dec() }

// RecordRequestDuration records the duration (in seconds) for a request
// endpoint. Example: defer metrics.RecordRequestDuration(time.Now(), "/embed")
func (m *Metrics) RecordRequestDuration(start time.Time, endpoint string) {
	duration := time.Since(start).Seconds()
	m.requestDuration.WithLabelValues(endpoint).Observe(duration)
}

// createCounterVec defines a new CounterVec with standard options.
// Used internally by NewMetrics to maintain consistency.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
// Used internally by NewMetrics for latency tracking.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}
