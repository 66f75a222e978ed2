package batcher

import "sync"

// jobQueue is the unbounded multi-producer/single-consumer FIFO between
// request handlers and the scheduler.
//
// enqueue never blocks on capacity: jobs land in a mutex-guarded slice and a
// pump goroutine feeds them one by one into the out channel the scheduler
// selects on. Backlog lives in the slice, never in the producers.
type jobQueue struct {
	mu      sync.Mutex
	pending []*Job
	closed  bool

	// notify wakes the pump; capacity 1 coalesces bursts of signals.
	notify chan struct{}

	// out is consumed exclusively by the scheduler and closed by the pump
	// once the queue is closed and fully drained.
	out chan *Job
}

func newJobQueue() *jobQueue {
	q := &jobQueue{
		notify: make(chan struct{}, 1),
		out:    make(chan *Job),
	}
	go q.pump()
	return q
}

// enqueue appends a job in FIFO position. It returns ErrBatcherClosed once
// close has been called; it never blocks waiting for the consumer.
func (q *jobQueue) enqueue(j *Job) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrBatcherClosed
	}
	q.pending = append(q.pending, j)
	q.mu.Unlock()

	q.wake()
	return nil
}

// close stops intake. Jobs already queued are still delivered to the
// consumer; out is closed after the last one.
func (q *jobQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.wake()
}

func (q *jobQueue) wake() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

func (q *jobQueue) pump() {
	defer close(q.out)
	for {
		<-q.notify
		for {
			q.mu.Lock()
			if len(q.pending) == 0 {
				closed := q.closed
				q.mu.Unlock()
				if closed {
					return
				}
				break
			}
			j := q.pending[0]
			q.pending[0] = nil
			q.pending = q.pending[1:]
			q.mu.Unlock()

			q.out <- j
		}
	}
}
