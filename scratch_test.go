package sedt

import "testing"

func TestNewScratch1D(t *testing.T) {
	s := NewScratch1D(5)
	if len(s.V) != 5 {
		t.Errorf("len(V) = %d, want 5", len(s.V))
	}
	if len(s.Z) != 6 {
		t.Errorf("len(Z) = %d, want 6", len(s.Z))
	}
}

func TestNewScratch2D_Sizes(t *testing.T) {
	width, height := 6, 4
	s := NewScratch2D(width, height)
	if got, want := len(s.RowV), width*height; got != want {
		t.Errorf("len(RowV) = %d, want %d", got, want)
	}
	if got, want := len(s.RowZ), height*(width+1); got != want {
		t.Errorf("len(RowZ) = %d, want %d", got, want)
	}
	if got, want := len(s.ColV), width*height; got != want {
		t.Errorf("len(ColV) = %d, want %d", got, want)
	}
	if got, want := len(s.ColZ), width*(height+1); got != want {
		t.Errorf("len(ColZ) = %d, want %d", got, want)
	}
}

func TestScratch2D_FiberSlicesDisjoint(t *testing.T) {
	width, height := 5, 5
	s := NewScratch2D(width, height)
	seen := make(map[*int32]bool)
	for i := 0; i < height; i++ {
		v, _ := s.rowFiber(i, width)
		if len(v) != width {
			t.Fatalf("rowFiber(%d) len = %d, want %d", i, len(v), width)
		}
		seen[&v[0]] = true
	}
	if len(seen) != height {
		t.Errorf("row fibers overlap: got %d distinct base pointers, want %d", len(seen), height)
	}
}

func TestNewScratch3D_Sizes(t *testing.T) {
	dim0, dim1, dim2 := 3, 4, 5
	s := NewScratch3D(dim0, dim1, dim2)
	if len(s.Planes) != dim0 {
		t.Errorf("len(Planes) = %d, want %d", len(s.Planes), dim0)
	}
	for _, p := range s.Planes {
		if p.RowV == nil || len(p.RowV) != dim2*dim1 {
			t.Errorf("plane RowV size mismatch: got %d, want %d", len(p.RowV), dim2*dim1)
		}
	}
	if got, want := len(s.AxisV), dim0*dim1*dim2; got != want {
		t.Errorf("len(AxisV) = %d, want %d", got, want)
	}
	if got, want := len(s.AxisZ), dim1*dim2*(dim0+1); got != want {
		t.Errorf("len(AxisZ) = %d, want %d", got, want)
	}
}
