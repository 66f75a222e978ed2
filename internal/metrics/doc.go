// Package metrics exposes the proxy's Prometheus metrics.
//
// Each process runs its own isolated registry served on a dedicated HTTP
// server (METRICS_ADDRESS, default ":9090") at /metrics. All series carry a
// constant service label.
//
// Proxy-specific series:
//
//   - batches_closed_total{reason}   batches closed by "size", "deadline"
//     or "shutdown"
//   - batch_size                     histogram of jobs per closed batch
//   - jobs_submitted_total           jobs admitted into the queue
//   - upstream_failures_total{reason} failed upstream calls ("transport"
//     or "shape_mismatch")
//   - inflight_dispatches            upstream calls currently in flight
//   - request_duration_seconds{endpoint} HTTP handler latency
//
// The Metrics struct implements observability.Observer; the Fx module wires
// it in as the observer consumed by the batcher, so the core stays free of
// any Prometheus dependency.
package metrics
