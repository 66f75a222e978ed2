// Package batcher implements the batch accumulation and dispatch core of
// the proxy: many concurrent single-text submissions go in, one upstream
// call per batch comes out, and every submitter gets exactly the vector
// computed for its own text.
//
// # Overview
//
// Request handlers call:
//
//	vector, err := b.Submit(ctx, "some text")
//
// Submit creates a Job (the text plus a single-use reply slot), places it on
// an unbounded FIFO queue and blocks on the reply. A single scheduler
// goroutine consumes the queue and builds at most one open batch at a time:
//
//   - the first job opens the batch and anchors its deadline;
//   - further jobs are absorbed as they arrive;
//   - the batch closes when it reaches MaxBatchSize or when MaxWait has
//     elapsed since the first job, whichever comes first. If both happen at
//     the same instant, size wins.
//
// A closed batch is handed to its own dispatch goroutine, so the scheduler
// immediately begins accumulating the next batch while previous batches are
// still in flight. Batches may complete out of order relative to each
// other; within a batch, reply i always corresponds to input i.
//
// # Failure semantics
//
// Errors are batch-scoped. A failed upstream call (transport error, non-2xx
// status, or a response with the wrong number of vectors) fails every job
// in that batch with the same error and leaves all other batches untouched.
// The dispatcher never retries and never synthesizes partial results.
//
// A submitter that abandons its reply (context cancelled, connection
// dropped) does not cancel the upstream call already committed for its
// batch; the eventual delivery for that one job is silently dropped while
// its siblings complete normally.
//
// # Configuration
//
// Configuration is sourced from environment variables and constructed by
// NewConfig:
//
//   - BATCHER_MAX_BATCH_SIZE (default 32)
//   - BATCHER_MAX_WAIT_MS (default 10000)
//   - BATCHER_MAX_INFLIGHT_DISPATCHES (default 0 = unlimited)
//
// Setting BATCHER_MAX_INFLIGHT_DISPATCHES caps concurrent upstream calls
// with a weighted semaphore. The cap is enforced inside the dispatch
// goroutines; the scheduler itself is never blocked by it.
//
// # Dependency Injection (Fx)
//
// batcher.FXModule provides *Config and *Batcher, attaches the application
// observer and tracer, and registers lifecycle hooks: OnStart launches the
// scheduler, OnStop closes intake and waits until queued jobs are batched,
// dispatched and answered.
package batcher
