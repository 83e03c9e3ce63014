package sedt

// Field2D is a row-major 2D grid of samples: Data[y*Width+x] holds the
// value at (x, y). Foreground cells carry 0, background cells carry a
// large sentinel (see the package doc for the encoding convention used
// by the CPU entry points).
type Field2D struct {
	Data          []float32
	Width, Height int
}

// NewField2D allocates a zero-valued Field2D of the given dimensions.
func NewField2D(width, height int) Field2D {
	return Field2D{Data: make([]float32, width*height), Width: width, Height: height}
}

// At returns the value at (x, y).
func (f Field2D) At(x, y int) float32 { return f.Data[y*f.Width+x] }

// Set stores the value at (x, y).
func (f Field2D) Set(x, y int, v float32) { f.Data[y*f.Width+x] = v }

func (f Field2D) clone() Field2D {
	return Field2D{Data: append([]float32(nil), f.Data...), Width: f.Width, Height: f.Height}
}

// Field3D is a row-major 3D grid of samples with Dim2 as the
// fastest-varying axis: Data[d0*Dim1*Dim2 + d1*Dim2 + d2] holds the
// value at (d0, d1, d2).
type Field3D struct {
	Data             []float32
	Dim0, Dim1, Dim2 int
}

// NewField3D allocates a zero-valued Field3D of the given dimensions.
func NewField3D(dim0, dim1, dim2 int) Field3D {
	return Field3D{Data: make([]float32, dim0*dim1*dim2), Dim0: dim0, Dim1: dim1, Dim2: dim2}
}

// At returns the value at (d0, d1, d2).
func (f Field3D) At(d0, d1, d2 int) float32 {
	return f.Data[d0*f.Dim1*f.Dim2+d1*f.Dim2+d2]
}

// Set stores the value at (d0, d1, d2).
func (f Field3D) Set(d0, d1, d2 int, v float32) {
	f.Data[d0*f.Dim1*f.Dim2+d1*f.Dim2+d2] = v
}

func (f Field3D) clone() Field3D {
	return Field3D{Data: append([]float32(nil), f.Data...), Dim0: f.Dim0, Dim1: f.Dim1, Dim2: f.Dim2}
}
