package sedt

import "fmt"

// Shape mismatches and undersized scratch buffers are programming
// errors, not recoverable conditions: the core reports them
// synchronously by panicking at entry, before any work is done.

func panicIfEnvelopeShapeMismatch(f, output []float32, v []int32, z []float32) {
	n := len(f)
	switch {
	case len(output) != n:
		panic(fmt.Sprintf("sedt: Envelope1D: len(output)=%d, want %d (len(f))", len(output), n))
	case len(v) != n:
		panic(fmt.Sprintf("sedt: Envelope1D: len(v)=%d, want %d (len(f))", len(v), n))
	case len(z) != n+1:
		panic(fmt.Sprintf("sedt: Envelope1D: len(z)=%d, want %d (len(f)+1)", len(z), n+1))
	}
}

func panicIfField2DShapeMismatch(f, output Field2D) {
	if f.Width != output.Width || f.Height != output.Height {
		panic(fmt.Sprintf("sedt: Transform2D: output shape (%d,%d) does not match input shape (%d,%d)",
			output.Width, output.Height, f.Width, f.Height))
	}
	want := f.Width * f.Height
	if len(f.Data) != want {
		panic(fmt.Sprintf("sedt: Transform2D: len(f.Data)=%d, want %d (Width*Height)", len(f.Data), want))
	}
	if len(output.Data) != want {
		panic(fmt.Sprintf("sedt: Transform2D: len(output.Data)=%d, want %d (Width*Height)", len(output.Data), want))
	}
}

func panicIfScratch2DShapeMismatch(f Field2D, s *Scratch2D) {
	wantRowV := f.Width * f.Height
	wantRowZ := f.Height * (f.Width + 1)
	wantColV := f.Width * f.Height
	wantColZ := f.Width * (f.Height + 1)
	switch {
	case len(s.RowV) != wantRowV:
		panic(fmt.Sprintf("sedt: Transform2D: len(scratch.RowV)=%d, want %d", len(s.RowV), wantRowV))
	case len(s.RowZ) != wantRowZ:
		panic(fmt.Sprintf("sedt: Transform2D: len(scratch.RowZ)=%d, want %d", len(s.RowZ), wantRowZ))
	case len(s.ColV) != wantColV:
		panic(fmt.Sprintf("sedt: Transform2D: len(scratch.ColV)=%d, want %d", len(s.ColV), wantColV))
	case len(s.ColZ) != wantColZ:
		panic(fmt.Sprintf("sedt: Transform2D: len(scratch.ColZ)=%d, want %d", len(s.ColZ), wantColZ))
	}
}

func panicIfField3DShapeMismatch(f, output Field3D) {
	if f.Dim0 != output.Dim0 || f.Dim1 != output.Dim1 || f.Dim2 != output.Dim2 {
		panic(fmt.Sprintf("sedt: Transform3D: output shape (%d,%d,%d) does not match input shape (%d,%d,%d)",
			output.Dim0, output.Dim1, output.Dim2, f.Dim0, f.Dim1, f.Dim2))
	}
	want := f.Dim0 * f.Dim1 * f.Dim2
	if len(f.Data) != want {
		panic(fmt.Sprintf("sedt: Transform3D: len(f.Data)=%d, want %d (Dim0*Dim1*Dim2)", len(f.Data), want))
	}
	if len(output.Data) != want {
		panic(fmt.Sprintf("sedt: Transform3D: len(output.Data)=%d, want %d (Dim0*Dim1*Dim2)", len(output.Data), want))
	}
}

func panicIfScratch3DShapeMismatch(f Field3D, s *Scratch3D) {
	if len(s.Planes) != f.Dim0 {
		panic(fmt.Sprintf("sedt: Transform3D: len(scratch.Planes)=%d, want %d (Dim0)", len(s.Planes), f.Dim0))
	}
	for _, p := range s.Planes {
		if p == nil {
			panic("sedt: Transform3D: scratch.Planes contains a nil *Scratch2D")
		}
		panicIfScratch2DShapeMismatch(Field2D{Width: f.Dim2, Height: f.Dim1}, p)
	}
	wantAxisV := f.Dim0 * f.Dim1 * f.Dim2
	wantAxisZ := f.Dim1 * f.Dim2 * (f.Dim0 + 1)
	if len(s.AxisV) != wantAxisV {
		panic(fmt.Sprintf("sedt: Transform3D: len(scratch.AxisV)=%d, want %d", len(s.AxisV), wantAxisV))
	}
	if len(s.AxisZ) != wantAxisZ {
		panic(fmt.Sprintf("sedt: Transform3D: len(scratch.AxisZ)=%d, want %d", len(s.AxisZ), wantAxisZ))
	}
}
