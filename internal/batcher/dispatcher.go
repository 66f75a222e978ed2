package batcher

import (
	"context"
	"errors"
	"time"

	"github.com/Aleph-Alpha/embedding-proxy/internal/upstream"
)

// dispatchAsync hands a closed batch to its own goroutine. The optional
// in-flight semaphore is acquired inside that goroutine, so even under a
// strict concurrency cap the scheduler is never blocked from accumulating
// the next batch.
func (b *Batcher) dispatchAsync(bt *batch) {
	b.dispatches.Add(1)
	go func() {
		defer b.dispatches.Done()

		if b.sem != nil {
			if err := b.sem.Acquire(context.Background(), 1); err != nil {
				b.fail(bt, err)
				return
			}
			defer b.sem.Release(1)
		}

		b.dispatch(context.Background(), bt)
	}()
}

// dispatch turns one closed batch into individual replies. It calls the
// upstream exactly once with the batch's ordered texts; on success job i
// receives vector i, on any failure every job receives the same error.
// There are no retries and no partial results.
func (b *Batcher) dispatch(ctx context.Context, bt *batch) {
	ctx, span := b.startSpan(ctx, "dispatch-batch")
	defer span.End()
	b.setSpanAttributes(span, map[string]interface{}{
		"batch.size":   len(bt.jobs),
		"batch.reason": bt.reason,
	})

	b.observeOperation("dispatch_started", "", 0, nil, int64(len(bt.jobs)), nil)

	start := time.Now()
	embeddings, err := b.inference.Embed(ctx, bt.texts())

	// The upstream client already verifies the response shape, but the
	// ordering guarantee lives here, so the dispatcher re-checks before
	// mapping vectors onto jobs.
	if err == nil && len(embeddings) != len(bt.jobs) {
		err = upstream.ErrShapeMismatch
	}

	b.observeOperation("dispatch", "", time.Since(start), err, int64(len(bt.jobs)), map[string]interface{}{
		"failure_kind": failureKind(err),
	})

	if err != nil {
		b.recordSpanError(span, err)
		b.log.Warn("Upstream call failed, failing batch", err, map[string]interface{}{
			"batch_size": len(bt.jobs),
		})
		b.fail(bt, err)
		return
	}

	for i, j := range bt.jobs {
		j.deliver(Result{Embedding: embeddings[i]})
	}
}

// fail delivers the same error to every job in the batch.
func (b *Batcher) fail(bt *batch, err error) {
	for _, j := range bt.jobs {
		j.deliver(Result{Err: err})
	}
}

func failureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, upstream.ErrShapeMismatch):
		return "shape_mismatch"
	default:
		return "transport"
	}
}
