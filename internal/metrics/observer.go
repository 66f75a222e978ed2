package metrics

import (
	"github.com/Aleph-Alpha/embedding-proxy/internal/observability"
)

// ObserveOperation implements observability.Observer, translating operation
// reports from the proxy core into Prometheus series.
//
// Recognized operations:
//
//   - batcher/job_submitted:    one job admitted into the queue
//   - batcher/batch_closed:     Resource carries the close reason, Size the
//     number of jobs in the batch
//   - batcher/dispatch_started: one upstream call is about to start; raises
//     the in-flight gauge
//   - batcher/dispatch:         one upstream call completed; lowers the
//     in-flight gauge, and a non-nil Error counts
//     as an upstream failure with the kind taken
//     from Metadata["failure_kind"]
//
// Unknown operations are ignored so the core can grow new events without
// breaking older observers.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	switch op.Component {
	case "batcher":
		switch op.Operation {
		case "job_submitted":
			m.IncrementJobsSubmitted()
		case "batch_closed":
			m.RecordBatchClosed(int(op.Size), op.Resource)
		case "dispatch_started":
			m.DispatchStarted()
		case "dispatch":
			m.DispatchFinished()
			if op.Error != nil {
				reason := "transport"
				if k, ok := op.Metadata["failure_kind"].(string); ok {
					reason = k
				}
				m.IncrementUpstreamFailures(reason)
			}
		}
	}
}

// compile-time check that Metrics satisfies the observer contract
var _ observability.Observer = (*Metrics)(nil)
