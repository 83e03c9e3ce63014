package sedt

// Options configures the CPU separable transform.
//
// Example:
//
//	// Serial fiber iteration (default)
//	out := sedt.Transform2D(f, sedt.Options{})
//
//	// Parallel fiber iteration across a worker pool sized to GOMAXPROCS
//	out := sedt.Transform2D(f, sedt.Options{Threaded: true})
type Options struct {
	// Threaded selects parallel fiber iteration within each axis pass.
	// When false (the default), fibers are processed serially in a
	// single goroutine. When true, the pass fans independent fibers out
	// across an internal worker pool. Both modes produce bit-identical
	// results: fibers never share scratch and floating-point operations
	// are never reassociated across fibers.
	Threaded bool

	// Workers overrides the worker pool size used when Threaded is true.
	// Zero or negative selects runtime.GOMAXPROCS(0).
	Workers int
}

// defaultOptions returns the zero-value Options: serial, GOMAXPROCS workers.
func defaultOptions() Options {
	return Options{}
}
