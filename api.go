package sedt

// Transform1D allocates output and scratch and returns the SEDT of f.
// f is left unmodified.
func Transform1D(f []float32) []float32 {
	n := len(f)
	output := make([]float32, n)
	scratch := NewScratch1D(n)
	Envelope1D(f, output, scratch.V, scratch.Z)
	return output
}

// Transform2D allocates output and scratch and returns the SEDT of f.
// f is left unmodified.
func Transform2D(f Field2D, opts Options) Field2D {
	fCopy := f.clone()
	output := NewField2D(f.Width, f.Height)
	scratch := NewScratch2D(f.Width, f.Height)
	Transform2DInto(fCopy, output, scratch, opts)
	return output
}

// Transform3D allocates output and scratch and returns the SEDT of f.
// f is left unmodified.
func Transform3D(f Field3D, opts Options) Field3D {
	fCopy := f.clone()
	output := NewField3D(f.Dim0, f.Dim1, f.Dim2)
	scratch := NewScratch3D(f.Dim0, f.Dim1, f.Dim2)
	Transform3DInto(fCopy, output, scratch, opts)
	return output
}
