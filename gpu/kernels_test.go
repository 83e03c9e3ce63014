//go:build !nogpu

package gpu

import (
	"math"
	"testing"
)

// TestFloat32PackingRoundTrip covers scenario S8: packing a float32
// grid into device-transfer bytes and back must be lossless. This runs
// without a live GPU device.
func TestFloat32PackingRoundTrip(t *testing.T) {
	in := []float32{0, 1, 0.5, -3.25, 1e10, float32(math.Inf(1)), float32(math.Inf(-1))}
	packed := float32SliceToBytes(in)
	if len(packed) != len(in)*4 {
		t.Fatalf("len(packed) = %d, want %d", len(packed), len(in)*4)
	}

	out := make([]float32, len(in))
	bytesToFloat32Slice(packed, out)

	for i := range in {
		if out[i] != in[i] && !(math.IsInf(float64(in[i]), 0) && in[i] == out[i]) {
			t.Errorf("index %d: got %v, want %v", i, out[i], in[i])
		}
	}
}

func TestFloat32PackingEmpty(t *testing.T) {
	if got := float32SliceToBytes(nil); got != nil {
		t.Errorf("float32SliceToBytes(nil) = %v, want nil", got)
	}
	// Must not panic on an empty destination.
	bytesToFloat32Slice([]byte{}, nil)
}

func TestParamsToBytesLength(t *testing.T) {
	p := kernelParams{Dim0: 1, Dim1: 7, Dim2: 5, AxisStride: 1, AxisLen: 5, Pass: passSearch}
	b := paramsToBytes(p)
	if len(b) != 32 {
		t.Fatalf("len(paramsToBytes(...)) = %d, want 32", len(b))
	}
}

func TestGridDimsTotalMatchesFieldSize(t *testing.T) {
	dims := gridDims{dim0: 1, dim1: 7, dim2: 5}
	total := int(dims.dim0) * int(dims.dim1) * int(dims.dim2)
	if total != 35 {
		t.Errorf("total = %d, want 35", total)
	}
}
