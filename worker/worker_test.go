package worker

import (
	"sync/atomic"
	"testing"
)

func TestPoolRunsEverything(t *testing.T) {
	p := New(4)
	var count atomic.Int32
	for range 100 {
		p.Submit(func() {
			count.Add(1)
		})
	}
	p.Close()

	if n := count.Load(); n != 100 {
		t.Fatalf("expected 100 functions to run, got %d", n)
	}
}

func TestPoolSurvivesPanic(t *testing.T) {
	p := New(1)
	var count atomic.Int32
	p.Submit(func() {
		panic("boom")
	})
	p.Submit(func() {
		count.Add(1)
	})
	p.Close()
	p.Close()

	if n := count.Load(); n != 1 {
		t.Fatalf("expected the worker to keep running after a panic, got %d", n)
	}
}
