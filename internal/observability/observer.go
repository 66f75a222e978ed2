package observability

import "time"

// OperationContext carries everything an observer needs to know about a
// single completed operation inside the proxy.
//
// The core components (batcher, upstream) report through this structure so
// that metrics, tracing, or logging backends can consume operations without
// the core depending on any of them.
type OperationContext struct {
	// Component is the reporting component, e.g. "batcher" or "upstream".
	Component string

	// Operation is the action performed, e.g. "batch_closed" or "dispatch".
	Operation string

	// Resource identifies what the operation acted on, e.g. the upstream
	// endpoint or the close reason of a batch.
	Resource string

	// Duration is how long the operation took, zero if not applicable.
	Duration time.Duration

	// Error is the failure that ended the operation, nil on success.
	Error error

	// Size is an operation-specific magnitude, e.g. the number of jobs in
	// a closed batch.
	Size int64

	// Metadata holds any additional operation-specific values.
	Metadata map[string]interface{}
}

// Observer receives operation reports from proxy components.
//
// Implementations must be safe for concurrent use; the scheduler and any
// number of in-flight dispatchers report from their own goroutines.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// Batch close reasons reported via OperationContext.Resource on the
// "batch_closed" operation.
const (
	CloseReasonSize     = "size"
	CloseReasonDeadline = "deadline"
	CloseReasonShutdown = "shutdown"
)
