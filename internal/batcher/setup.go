package batcher

import (
	"context"
	"fmt"
	"sync"

	traceSpan "go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"github.com/Aleph-Alpha/embedding-proxy/internal/observability"
	"github.com/Aleph-Alpha/embedding-proxy/internal/tracer"
)

// Batcher coalesces concurrent single-text submissions into batches and
// fans the upstream results back out to the submitting goroutines.
//
// Exactly one scheduler goroutine runs per Batcher; it is the only owner of
// the batch under construction. Closed batches transfer wholesale to one
// dispatch goroutine each.
type Batcher struct {
	cfg       *Config
	inference Inference
	log       Logger

	queue *jobQueue

	// sem caps concurrent upstream calls when MaxInflightDispatches > 0.
	sem *semaphore.Weighted

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	// trc provides optional spans around dispatches
	trc *tracer.Tracer

	startOnce     sync.Once
	schedulerDone chan struct{}
	dispatches    sync.WaitGroup
}

// NewBatcher constructs a Batcher from Config. The batcher does not consume
// jobs until Start is called; Submit before Start only queues.
func NewBatcher(cfg *Config, inference Inference, log Logger) (*Batcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("batcher: invalid config: %w", err)
	}

	b := &Batcher{
		cfg:           cfg,
		inference:     inference,
		log:           log,
		queue:         newJobQueue(),
		schedulerDone: make(chan struct{}),
	}

	if cfg.MaxInflightDispatches > 0 {
		b.sem = semaphore.NewWeighted(int64(cfg.MaxInflightDispatches))
	}

	return b, nil
}

// WithObserver attaches an observer for operation tracking. Returns the
// batcher for chaining.
func (b *Batcher) WithObserver(observer observability.Observer) *Batcher {
	b.observer = observer
	return b
}

// WithTracer attaches a tracer so each dispatch runs under its own span.
// Returns the batcher for chaining.
func (b *Batcher) WithTracer(trc *tracer.Tracer) *Batcher {
	b.trc = trc
	return b
}

// Start launches the scheduler goroutine. Calling Start more than once has
// no effect.
func (b *Batcher) Start() {
	b.startOnce.Do(func() {
		b.log.Info("Starting batch scheduler", nil, map[string]interface{}{
			"max_batch_size": b.cfg.MaxBatchSize,
			"max_wait":       b.cfg.MaxWait.String(),
			"max_inflight":   b.cfg.MaxInflightDispatches,
		})
		go b.run()
	})
}

// Stop closes intake and waits for the scheduler to drain the queue and for
// all in-flight dispatches to deliver their results, or for ctx to expire.
// Jobs submitted before Stop still receive replies.
func (b *Batcher) Stop(ctx context.Context) error {
	b.queue.close()

	select {
	case <-b.schedulerDone:
	case <-ctx.Done():
		return ctx.Err()
	}

	drained := make(chan struct{})
	go func() {
		b.dispatches.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit enqueues one input text and blocks until its embedding arrives, the
// batch it joined fails, or ctx is done.
//
// Submit never blocks on queue capacity. Abandoning a submission by
// cancelling ctx does not cancel the upstream call committed for its batch
// and does not affect sibling jobs; the eventual delivery for the abandoned
// job is simply dropped.
func (b *Batcher) Submit(ctx context.Context, input string) ([]float64, error) {
	j := newJob(input)

	if err := b.queue.enqueue(j); err != nil {
		return nil, err
	}
	b.observeOperation("job_submitted", "", 0, nil, 1, nil)

	select {
	case res := <-j.reply:
		return res.Embedding, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// startSpan opens a dispatch span when a tracer is attached. Without one it
// returns the span already on the context, which is a no-op span for a
// background context.
func (b *Batcher) startSpan(ctx context.Context, name string) (context.Context, traceSpan.Span) {
	if b.trc == nil {
		return ctx, traceSpan.SpanFromContext(ctx)
	}
	return b.trc.StartSpan(ctx, name)
}

func (b *Batcher) setSpanAttributes(span traceSpan.Span, attrs map[string]interface{}) {
	if b.trc != nil {
		b.trc.SetAttributes(span, attrs)
	}
}

func (b *Batcher) recordSpanError(span traceSpan.Span, err error) {
	if b.trc != nil {
		b.trc.RecordErrorOnSpan(span, err)
	}
}
