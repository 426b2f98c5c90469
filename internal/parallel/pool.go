// Package parallel distributes per-row pixel work across a shared pool of
// worker goroutines.
//
// The transform pipeline is externally synchronous: an operation fans its
// rows out over the pool, joins every chunk, and only then returns, so no
// partial result is ever observable by the caller.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines fed from one shared queue.
//
// Row chunks are uniform in cost, so a single queue balances load without
// per-worker queues or stealing.
//
// Thread safety: Pool is safe for concurrent use. Tasks must not submit
// further work to the same pool.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// tasks feeds queued work to the workers.
	tasks chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), queueSize),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting.
			for {
				select {
				case task := <-p.tasks:
					if task != nil {
						task()
					}
				default:
					return
				}
			}

		case task := <-p.tasks:
			if task != nil {
				task()
			}
		}
	}
}

// ExecuteAll runs every work item and returns once all of them have
// completed. If the pool has been closed, the work runs serially on the
// calling goroutine instead; pixel loops must never lose rows.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}
	if !p.running.Load() {
		for _, fn := range work {
			fn()
		}
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(work))

	for _, fn := range work {
		task := fn
		wrapped := func() {
			defer completion.Done()
			task()
		}

		select {
		case p.tasks <- wrapped:
		case <-p.done:
			// Pool is closing; run on the caller instead.
			wrapped()
		}
	}

	completion.Wait()
}

// Close gracefully shuts down the pool: it stops accepting new work, waits
// for queued work to finish, and stops all workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
