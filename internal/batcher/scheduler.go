package batcher

import (
	"time"

	"github.com/Aleph-Alpha/embedding-proxy/internal/observability"
)

// run is the scheduler: the sole consumer of the job queue and the only
// goroutine that ever holds an open batch. It blocks for the first job,
// accumulates until the batch closes, hands the closed batch to a dispatch
// goroutine, and immediately starts over. Dispatching never delays the
// accumulation of the next batch.
//
// run exits once the queue is closed and drained; the final partial batch,
// if any, is still dispatched.
func (b *Batcher) run() {
	defer close(b.schedulerDone)

	for {
		first, ok := <-b.queue.out
		if !ok {
			return
		}

		bt := b.accumulate(first)

		b.log.Debug("Batch closed", nil, map[string]interface{}{
			"size":   len(bt.jobs),
			"reason": bt.reason,
		})
		b.observeOperation("batch_closed", bt.reason, time.Since(bt.openedAt), nil, int64(len(bt.jobs)), nil)

		b.dispatchAsync(bt)
	}
}

// accumulate grows a batch around its first job until either the size
// threshold is hit or the wait deadline elapses, whichever comes first.
//
// The deadline is anchored to the first job's admission; absorbing further
// jobs does not reset it. The size condition is checked before each wait and
// re-checked when the timer fires, so when the capacity-th job arrives
// exactly as the deadline fires, size wins.
func (b *Batcher) accumulate(first *Job) *batch {
	bt := &batch{
		jobs:     []*Job{first},
		openedAt: time.Now(),
	}

	if len(bt.jobs) == b.cfg.MaxBatchSize {
		bt.reason = observability.CloseReasonSize
		return bt
	}

	timer := time.NewTimer(b.cfg.MaxWait)
	defer timer.Stop()

	for len(bt.jobs) < b.cfg.MaxBatchSize {
		select {
		case j, ok := <-b.queue.out:
			if !ok {
				// Intake stopped; close what we have so no job
				// waits on a batch that can never fill.
				bt.reason = observability.CloseReasonShutdown
				return bt
			}
			bt.jobs = append(bt.jobs, j)

		case <-timer.C:
			// Jobs that arrived by the deadline may still be racing
			// this timer in the select above. Absorb whatever is
			// already available before closing: a batch that can
			// reach capacity right now closes by size, not by
			// deadline.
			for len(bt.jobs) < b.cfg.MaxBatchSize {
				select {
				case j, ok := <-b.queue.out:
					if !ok {
						bt.reason = observability.CloseReasonShutdown
						return bt
					}
					bt.jobs = append(bt.jobs, j)
				default:
					bt.reason = observability.CloseReasonDeadline
					return bt
				}
			}
			bt.reason = observability.CloseReasonSize
			return bt
		}
	}

	bt.reason = observability.CloseReasonSize
	return bt
}
