package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing the proxy's metrics.
//
// It also implements observability.Observer so that the batcher and the
// upstream client can report operations without depending on Prometheus.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// The service maintains its own isolated registry to prevent metric
	// name collisions.
	Registry *prometheus.Registry

	// Core proxy metrics
	batchesClosedTotal    *prometheus.CounterVec
	batchSize             prometheus.Histogram
	jobsSubmittedTotal    prometheus.Counter
	upstreamFailuresTotal *prometheus.CounterVec
	inflightDispatches    prometheus.Gauge
	requestDuration       *prometheus.HistogramVec
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers default system
// collectors, wraps all metrics with a constant `service` label, and creates
// an HTTP server exposing the /metrics endpoint.
//
// The setup includes:
//   - A dedicated Prometheus registry for the service
//   - Automatic registration of Go, process, and build info collectors
//   - A global "service" label applied to all metrics for easier aggregation
//   - An HTTP server exposing the metrics endpoint
//
// Access metrics at: http://<cfg.Address>/metrics
func NewMetrics(cfg Config) *Metrics {
	// Create a new isolated Prometheus registry for this service.
	registry := prometheus.NewRegistry()

	// Wrap the registry with a constant label for consistent observability.
	// All metrics emitted by this service will automatically include the
	// label: service="<cfg.ServiceName>"
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.batchesClosedTotal = createCounterVec(
		"batches_closed_total",
		"Total number of batches closed, labelled by close reason",
		[]string{"reason"},
	)
	m.batchSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "batch_size",
		Help:    "Number of jobs in each closed batch",
		Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
	})
	m.jobsSubmittedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jobs_submitted_total",
		Help: "Total number of jobs admitted into the batch queue",
	})
	m.upstreamFailuresTotal = createCounterVec(
		"upstream_failures_total",
		"Total number of failed upstream inference calls, labelled by failure kind",
		[]string{"reason"},
	)
	m.inflightDispatches = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "inflight_dispatches",
		Help: "Number of upstream batch calls currently in flight",
	})
	m.requestDuration = createHistogramVec(
		"request_duration_seconds",
		"Duration of HTTP requests in seconds",
		[]string{"endpoint"},
		prometheus.DefBuckets,
	)

	wrappedRegistry.MustRegister(
		m.batchesClosedTotal,
		m.batchSize,
		m.jobsSubmittedTotal,
		m.upstreamFailuresTotal,
		m.inflightDispatches,
		m.requestDuration,
	)

	// Register standard collectors if enabled.
	// These provide essential runtime metrics for Go processes:
	//   - GoCollector: Memory usage, goroutines, GC stats
	//   - ProcessCollector: CPU, file descriptors, memory stats
	//   - BuildInfoCollector: Binary version/build info
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: handler,
	}

	return m
}
