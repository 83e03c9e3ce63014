package sedt

import "math"

// Envelope1D computes, for a single 1D fiber f of length n, the squared
// Euclidean distance transform
//
//	output[q] = min over i in [0,n) of ( f[i] + (q-i)^2 )
//
// using the O(n) lower-envelope algorithm of Felzenszwalb and
// Huttenlocher. v and z are caller-provided scratch: v holds the fiber
// indices of parabolas currently on the lower envelope (len(v) ==
// len(f)) and z holds the envelope's breakpoints, bracketed by -Inf and
// +Inf sentinels (len(z) == len(f)+1). Envelope1D resets both before
// use; callers need not zero them between calls.
//
// f and output must not alias; f must not alias v or z. Shape
// mismatches panic before any work is done.
func Envelope1D(f, output []float32, v []int32, z []float32) {
	panicIfEnvelopeShapeMismatch(f, output, v, z)

	n := len(f)
	if n == 0 {
		return
	}

	negInf := float32(math.Inf(-1))
	posInf := float32(math.Inf(1))

	// Phase 1: build the lower envelope.
	k := 0
	v[0] = 0
	z[0] = negInf
	z[1] = posInf

	for q := 1; q < n; q++ {
		qf := float32(q)
		s := intersect(f, qf, q, v[k])
		for s <= z[k] {
			k--
			s = intersect(f, qf, q, v[k])
		}
		k++
		v[k] = int32(q)
		z[k] = s
		z[k+1] = posInf
	}

	// Phase 2: query the envelope.
	k = 0
	for q := 0; q < n; q++ {
		qf := float32(q)
		for z[k+1] < qf {
			k++
		}
		vk := int(v[k])
		d := qf - float32(vk)
		output[q] = d*d + f[vk]
	}
}

// intersect returns the abscissa at which the parabola rooted at q
// crosses the parabola rooted at vk, both evaluated against f.
func intersect(f []float32, qf float32, q int, vk int32) float32 {
	vkf := float32(vk)
	return ((f[q] + qf*qf) - (f[vk] + vkf*vkf)) / (2*qf - 2*vkf)
}
