package sedt

import (
	"math"
	"testing"
)

const sentinel = float32(1e10)

// naive1D computes the SEDT reference by brute force in 64-bit float,
// per invariant 1 in the package's testable-properties list.
func naive1D(f []float32) []float32 {
	n := len(f)
	out := make([]float32, n)
	for p := 0; p < n; p++ {
		best := math.Inf(1)
		for q := 0; q < n; q++ {
			d := float64(p - q)
			v := float64(f[q]) + d*d
			if v < best {
				best = v
			}
		}
		out[p] = float32(best)
	}
	return out
}

func runEnvelope1D(f []float32) []float32 {
	n := len(f)
	output := make([]float32, n)
	v := make([]int32, n)
	z := make([]float32, n+1)
	Envelope1D(f, output, v, z)
	return output
}

func assertClose(t *testing.T, got, want []float32, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > tol {
			t.Errorf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEnvelope1D_ReferenceEquivalence(t *testing.T) {
	cases := [][]float32{
		{0, sentinel, 0, 0, 0, sentinel, sentinel, sentinel, sentinel, sentinel, 0},
		{sentinel, 0, sentinel, sentinel, sentinel, 0, 0, 0, 0, 0, sentinel},
		{0, 0, 0, 0, 0},
		{sentinel, sentinel, sentinel},
		{0},
		{0, sentinel},
		{3, 1, 4, 1, 5, 9, 2, 6},
	}
	for i, f := range cases {
		got := runEnvelope1D(f)
		want := naive1D(f)
		assertClose(t, got, want, 1e-4)
		_ = i
	}
}

func TestEnvelope1D_ZeroPreserving(t *testing.T) {
	f := []float32{sentinel, 0, sentinel, sentinel, 0, sentinel}
	got := runEnvelope1D(f)
	for i, v := range f {
		if v == 0 && got[i] != 0 {
			t.Errorf("index %d: f[i]=0 but output[i]=%v", i, got[i])
		}
	}
}

func TestEnvelope1D_MonotoneLowerBound(t *testing.T) {
	f := []float32{3, 1, 4, 1, 5, 9, 2, 6}
	got := runEnvelope1D(f)
	for i := range f {
		if got[i] > f[i] {
			t.Errorf("index %d: output[i]=%v > f[i]=%v", i, got[i], f[i])
		}
	}
}

func TestEnvelope1D_NonNegative(t *testing.T) {
	f := []float32{0, sentinel, 0, 0, 0, sentinel}
	got := runEnvelope1D(f)
	for i, v := range got {
		if v < 0 {
			t.Errorf("index %d: output[i]=%v < 0", i, v)
		}
	}
}

func TestEnvelope1D_SingleForegroundPoint(t *testing.T) {
	n := 9
	f := make([]float32, n)
	for i := range f {
		f[i] = sentinel
	}
	c := 4
	f[c] = 0
	got := runEnvelope1D(f)
	for i := range f {
		want := float32((i - c) * (i - c))
		if got[i] != want {
			t.Errorf("index %d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestEnvelope1D_AllForeground(t *testing.T) {
	f := make([]float32, 6)
	got := runEnvelope1D(f)
	for i, v := range got {
		if v != 0 {
			t.Errorf("index %d: got %v, want 0", i, v)
		}
	}
}

func TestEnvelope1D_AllBackground(t *testing.T) {
	f := make([]float32, 6)
	for i := range f {
		f[i] = sentinel
	}
	got := runEnvelope1D(f)
	for i, v := range got {
		if v != sentinel {
			t.Errorf("index %d: got %v, want %v", i, v, sentinel)
		}
	}
}

func TestEnvelope1D_LengthOne(t *testing.T) {
	f := []float32{7}
	got := runEnvelope1D(f)
	if got[0] != 7 {
		t.Errorf("got %v, want 7", got[0])
	}
}

func TestEnvelope1D_Empty(t *testing.T) {
	got := runEnvelope1D(nil)
	if len(got) != 0 {
		t.Errorf("got length %d, want 0", len(got))
	}
}

func TestEnvelope1D_PanicsOnOutputLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on output length mismatch")
		}
	}()
	f := make([]float32, 4)
	output := make([]float32, 3)
	v := make([]int32, 4)
	z := make([]float32, 5)
	Envelope1D(f, output, v, z)
}

func TestEnvelope1D_PanicsOnZLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on z length mismatch")
		}
	}()
	f := make([]float32, 4)
	output := make([]float32, 4)
	v := make([]int32, 4)
	z := make([]float32, 4)
	Envelope1D(f, output, v, z)
}

func TestEnvelope1D_PanicsOnVLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on v length mismatch")
		}
	}()
	f := make([]float32, 4)
	output := make([]float32, 4)
	v := make([]int32, 3)
	z := make([]float32, 5)
	Envelope1D(f, output, v, z)
}

func BenchmarkEnvelope1D(b *testing.B) {
	n := 4096
	f := make([]float32, n)
	for i := range f {
		if i%37 == 0 {
			f[i] = 0
		} else {
			f[i] = sentinel
		}
	}
	output := make([]float32, n)
	v := make([]int32, n)
	z := make([]float32, n+1)
	b.ReportAllocs()
	for b.Loop() {
		Envelope1D(f, output, v, z)
	}
}
