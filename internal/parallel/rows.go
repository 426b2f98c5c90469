package parallel

import "sync"

// sharedPool lazily creates the process-wide pool used by Rows.
var sharedPool = sync.OnceValue(func() *Pool {
	return NewPool(0)
})

// Rows splits the half-open row range [0, n) into contiguous chunks and runs
// fn(lo, hi) for each chunk on the shared pool. It returns only after every
// chunk has completed.
//
// fn must be safe to call concurrently for disjoint ranges; chunks never
// overlap, so writers that stay inside their rows need no locking.
func Rows(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}

	p := sharedPool()
	chunks := p.Workers()
	if chunks > n {
		chunks = n
	}
	if chunks <= 1 {
		fn(0, n)
		return
	}

	step := (n + chunks - 1) / chunks
	work := make([]func(), 0, chunks)
	for lo := 0; lo < n; lo += step {
		lo, hi := lo, min(lo+step, n)
		work = append(work, func() { fn(lo, hi) })
	}

	p.ExecuteAll(work)
}
