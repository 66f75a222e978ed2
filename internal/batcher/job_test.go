package batcher

import (
	"errors"
	"testing"
	"time"
)

func TestDeliverWritesExactlyOnce(t *testing.T) {
	j := newJob("x")

	j.deliver(Result{Embedding: []float64{1}})
	// A second delivery must be a silent no-op, not a second value or a
	// panic on the closed channel.
	j.deliver(Result{Err: errors.New("should never be seen")})

	res, ok := <-j.reply
	if !ok {
		t.Fatal("expected one result before the channel closes")
	}
	if res.Err != nil || len(res.Embedding) != 1 || res.Embedding[0] != 1 {
		t.Fatalf("first delivery lost: %+v", res)
	}

	if _, ok := <-j.reply; ok {
		t.Fatal("expected the reply channel to be closed after one value")
	}
}

func TestDeliverToAbandonedJobDoesNotBlock(t *testing.T) {
	j := newJob("x")

	// No receiver exists and never will; the buffered slot absorbs the
	// write so the dispatcher can move on.
	done := make(chan struct{})
	go func() {
		defer close(done)
		j.deliver(Result{Embedding: []float64{1}})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deliver blocked with no receiver")
	}
}

func TestBatchTextsPreserveOrder(t *testing.T) {
	bt := &batch{jobs: []*Job{newJob("a"), newJob("b"), newJob("c")}}

	texts := bt.texts()
	if len(texts) != 3 || texts[0] != "a" || texts[1] != "b" || texts[2] != "c" {
		t.Fatalf("unexpected texts: %v", texts)
	}
}
