package batcher

import (
	"time"

	"github.com/Aleph-Alpha/embedding-proxy/internal/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured. This is used internally to track job admission, batch closes
// and dispatch outcomes for metrics.
func (b *Batcher) observeOperation(operation, resource string, duration time.Duration, err error, size int64, metadata map[string]interface{}) {
	if b.observer != nil {
		b.observer.ObserveOperation(observability.OperationContext{
			Component: "batcher",
			Operation: operation,
			Resource:  resource,
			Duration:  duration,
			Error:     err,
			Size:      size,
			Metadata:  metadata,
		})
	}
}
