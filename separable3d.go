package sedt

// Transform3DInto computes the SEDT of f into output using the given
// scratch; it allocates no output or envelope scratch of its own. The
// plane passes (see [Transform2DInto]) and the axis-0 pass allocate
// small per-fiber gather buffers, and opts.Threaded starts a worker
// pool for each pass. It implements the 3D pass schedule of
// §4.2: for each index on axis 0, run the 2D separable transform over
// the (Dim1, Dim2) plane; copy back; then run Envelope1D along axis 0
// for every (d1, d2) pair.
//
// f is used as scratch between passes; use [Transform3D] to preserve
// the original input.
//
// f, output, and scratch must have matching shapes; mismatches panic.
func Transform3DInto(f, output Field3D, scratch *Scratch3D, opts Options) {
	panicIfField3DShapeMismatch(f, output)
	panicIfScratch3DShapeMismatch(f, scratch)

	dim0, dim1, dim2 := f.Dim0, f.Dim1, f.Dim2
	planeSize := dim1 * dim2

	// Pass over axes 1,2: one independent 2D separable transform per
	// axis-0 plane. Plane transforms always run their own fibers
	// serially; only the outer plane loop and the final axis-0 pass
	// honor opts.Threaded, to avoid nesting worker pools.
	planeOpts := Options{Threaded: false}
	runFibers(dim0, opts, func(d0 int) {
		planeF := Field2D{Data: f.Data[d0*planeSize : (d0+1)*planeSize], Width: dim2, Height: dim1}
		planeOut := Field2D{Data: output.Data[d0*planeSize : (d0+1)*planeSize], Width: dim2, Height: dim1}
		Transform2DInto(planeF, planeOut, scratch.Planes[d0], planeOpts)
	})

	copy(f.Data, output.Data)

	// Pass over axis 0: one fiber per (d1, d2) pair, gathered/scattered
	// through a local buffer since axis-0 fibers are not contiguous.
	count := dim1 * dim2
	runFibers(count, opts, func(idx int) {
		d1 := idx / dim2
		d2 := idx % dim2

		fCol := make([]float32, dim0)
		outCol := make([]float32, dim0)
		for d0 := 0; d0 < dim0; d0++ {
			fCol[d0] = f.Data[d0*planeSize+d1*dim2+d2]
		}
		v, z := scratch.axisFiber(idx, dim0)
		Envelope1D(fCol, outCol, v, z)
		for d0 := 0; d0 < dim0; d0++ {
			output.Data[d0*planeSize+d1*dim2+d2] = outCol[d0]
		}
	})
}
