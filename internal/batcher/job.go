package batcher

import (
	"sync"
	"time"
)

// Result is the single value delivered to a job's reply slot: either an
// embedding vector or the error that failed the whole batch.
type Result struct {
	Embedding []float64
	Err       error
}

// Job is the unit of work: one input text plus a single-use reply slot.
//
// The submitting goroutine holds the receiving end of the reply; the
// dispatcher holds the sending end via deliver. Exactly one value is ever
// written: deliver is guarded by a sync.Once and the channel is buffered,
// so a receiver that gave up (client disconnect) never blocks the sender.
type Job struct {
	input string
	reply chan Result
	once  sync.Once
}

func newJob(input string) *Job {
	return &Job{
		input: input,
		reply: make(chan Result, 1),
	}
}

// deliver writes the job's result. The first call wins; any further call is
// a no-op. The reply channel is closed after the send so the receiver can
// also detect termination with the two-value receive form.
func (j *Job) deliver(res Result) {
	j.once.Do(func() {
		j.reply <- res
		close(j.reply)
	})
}

// batch is an ordered group of jobs dispatched together in one upstream
// call. Insertion order is arrival order; the upstream response is
// positional, so the order is load-bearing.
//
// A batch is owned by the scheduler while open and handed wholesale to one
// dispatch goroutine once closed. No two goroutines ever mutate it
// concurrently.
type batch struct {
	jobs     []*Job
	openedAt time.Time
	reason   string // close reason, one of the observability.CloseReason values
}

func (bt *batch) texts() []string {
	texts := make([]string, len(bt.jobs))
	for i, j := range bt.jobs {
		texts[i] = j.input
	}
	return texts
}
