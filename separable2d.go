package sedt

// Transform2DInto computes the SEDT of f into output using the given
// scratch; it allocates no output or envelope scratch of its own. The
// column pass does allocate two Height-length gather buffers per column
// fiber, and opts.Threaded starts a worker pool for each pass. It
// implements the pass schedule of
// §4.2: a row pass (Envelope1D along axis 1) followed by a copy-back
// and a column pass (Envelope1D along axis 0).
//
// f is used as scratch between passes: after Transform2DInto returns,
// f.Data holds the row-pass intermediate result, not the original
// input. Use [Transform2D] if the input must be preserved.
//
// f, output, and scratch must have matching shapes; mismatches panic.
func Transform2DInto(f, output Field2D, scratch *Scratch2D, opts Options) {
	panicIfField2DShapeMismatch(f, output)
	panicIfScratch2DShapeMismatch(f, scratch)

	width, height := f.Width, f.Height

	// Pass 1: envelope along axis 1 (columns), one fiber per row.
	runFibers(height, opts, func(i int) {
		rowF := f.Data[i*width : i*width+width]
		rowOut := output.Data[i*width : i*width+width]
		v, z := scratch.rowFiber(i, width)
		Envelope1D(rowF, rowOut, v, z)
	})

	// Copy-back: the column pass reads what the row pass just wrote.
	copy(f.Data, output.Data)

	// Pass 2: envelope along axis 0 (rows), one fiber per column.
	// Columns are not contiguous in row-major storage, so each fiber
	// is gathered into a local buffer and scattered back on return.
	runFibers(width, opts, func(j int) {
		colF := make([]float32, height)
		colOut := make([]float32, height)
		for i := 0; i < height; i++ {
			colF[i] = f.Data[i*width+j]
		}
		v, z := scratch.colFiber(j, height)
		Envelope1D(colF, colOut, v, z)
		for i := 0; i < height; i++ {
			output.Data[i*width+j] = colOut[i]
		}
	})
}
