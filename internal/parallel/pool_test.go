package parallel

import (
	"sync/atomic"
	"testing"
)

func TestNewPoolDefaultWorkers(t *testing.T) {
	p := NewPool(0)
	defer p.Close()

	if p.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", p.Workers())
	}
	if !p.IsRunning() {
		t.Error("IsRunning() = false for a fresh pool")
	}
}

func TestExecuteAllRunsEverything(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	const n = 100
	var sum atomic.Int64
	work := make([]func(), n)
	for i := range work {
		v := int64(i)
		work[i] = func() { sum.Add(v) }
	}

	p.ExecuteAll(work)

	want := int64(n * (n - 1) / 2)
	if got := sum.Load(); got != want {
		t.Errorf("sum after ExecuteAll = %d, want %d", got, want)
	}
}

func TestExecuteAllEmpty(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	// Must return immediately without blocking.
	p.ExecuteAll(nil)
	p.ExecuteAll([]func(){})
}

func TestExecuteAllMoreWorkThanQueue(t *testing.T) {
	// One worker, queue of 8: submission must interleave with execution
	// without deadlocking.
	p := NewPool(1)
	defer p.Close()

	var count atomic.Int64
	work := make([]func(), 64)
	for i := range work {
		work[i] = func() { count.Add(1) }
	}

	p.ExecuteAll(work)

	if got := count.Load(); got != 64 {
		t.Errorf("count = %d, want 64", got)
	}
}

func TestExecuteAllAfterClose(t *testing.T) {
	p := NewPool(2)
	p.Close()

	if p.IsRunning() {
		t.Fatal("IsRunning() = true after Close")
	}

	// A closed pool still runs the work, serially on the caller.
	var count atomic.Int64
	work := []func(){
		func() { count.Add(1) },
		func() { count.Add(1) },
		func() { count.Add(1) },
	}
	p.ExecuteAll(work)

	if got := count.Load(); got != 3 {
		t.Errorf("count after closed ExecuteAll = %d, want 3", got)
	}
}

func TestCloseIdempotent(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close() // must not panic or hang
}

func TestConcurrentExecuteAll(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var total atomic.Int64
	done := make(chan struct{})
	for range 8 {
		go func() {
			defer func() { done <- struct{}{} }()
			work := make([]func(), 50)
			for i := range work {
				work[i] = func() { total.Add(1) }
			}
			p.ExecuteAll(work)
		}()
	}
	for range 8 {
		<-done
	}

	if got := total.Load(); got != 400 {
		t.Errorf("total = %d, want 400", got)
	}
}
