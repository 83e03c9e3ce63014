package sedt

import (
	"runtime"

	"github.com/gogpu/sedt/internal/parallel"
)

// runFibers invokes fn(i) for i in [0,count). When opts.Threaded is
// false, fibers run serially on the calling goroutine in index order.
// When true, fibers are fanned out across a worker pool sized to
// opts.Workers (or GOMAXPROCS if unset); fibers never share scratch or
// output, so the two modes are guaranteed to produce identical results.
func runFibers(count int, opts Options, fn func(i int)) {
	if count == 0 {
		return
	}
	if !opts.Threaded || count == 1 {
		for i := 0; i < count; i++ {
			fn(i)
		}
		return
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > count {
		workers = count
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	work := make([]func(), count)
	for i := 0; i < count; i++ {
		idx := i
		work[i] = func() { fn(idx) }
	}
	pool.ExecuteAll(work)
}
