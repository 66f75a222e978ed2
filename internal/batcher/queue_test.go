package batcher

import (
	"fmt"
	"testing"
	"time"
)

func TestEnqueueNeverBlocksWithoutConsumer(t *testing.T) {
	q := newJobQueue()

	// Nobody reads q.out; every enqueue must still return immediately.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10_000; i++ {
			if err := q.enqueue(newJob(fmt.Sprintf("j%d", i))); err != nil {
				t.Errorf("enqueue %d: %v", i, err)
				return
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("enqueue blocked on queue capacity")
	}

	// Drain so the pump goroutine exits.
	q.close()
	count := 0
	for range q.out {
		count++
	}
	if count != 10_000 {
		t.Fatalf("expected 10000 jobs delivered, got %d", count)
	}
}

func TestQueueDeliversInFIFOOrder(t *testing.T) {
	q := newJobQueue()

	for i := 0; i < 100; i++ {
		if err := q.enqueue(newJob(fmt.Sprintf("j%d", i))); err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}
	q.close()

	i := 0
	for j := range q.out {
		if want := fmt.Sprintf("j%d", i); j.input != want {
			t.Fatalf("position %d: got %q, want %q", i, j.input, want)
		}
		i++
	}
	if i != 100 {
		t.Fatalf("expected 100 jobs, got %d", i)
	}
}

func TestEnqueueAfterCloseFails(t *testing.T) {
	q := newJobQueue()
	q.close()

	if err := q.enqueue(newJob("late")); err != ErrBatcherClosed {
		t.Fatalf("expected ErrBatcherClosed, got %v", err)
	}

	// out must close without delivering anything.
	if _, ok := <-q.out; ok {
		t.Fatal("expected out to be closed and empty")
	}
}
