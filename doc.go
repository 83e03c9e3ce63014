// Package sedt computes the exact squared Euclidean distance transform
// (SEDT) of 1D, 2D, and 3D arrays of real numbers.
//
// # Overview
//
// Given a sampled function f over a regular grid, sedt computes at each
// grid point p the value
//
//	D(p) = min over q of ( f(q) + ||p - q||^2 )
//
// The canonical use encodes f as a binary indicator: 0 on foreground,
// a large sentinel on background. D(p) then holds the squared Euclidean
// distance from p to the nearest foreground point. The implementation
// follows the O(n) per-axis lower-envelope algorithm of Felzenszwalb and
// Huttenlocher, applied dimension-by-dimension.
//
// # Quick Start
//
//	import "github.com/gogpu/sedt"
//
//	f := []float32{0, 1e10, 0, 0, 0, 1e10, 1e10, 1e10, 1e10, 1e10, 0}
//	out := sedt.Transform1D(f)
//
// # GPU acceleration
//
// The sub-package github.com/gogpu/sedt/gpu implements the same
// transform as a set of WGSL compute kernels dispatched through
// github.com/gogpu/wgpu. The GPU path uses a bounded brute-force search
// rather than the envelope sweep and expects a thresholded 0/1 indicator
// rather than a 0/sentinel one; see the gpu package documentation.
//
// # Architecture
//
// The library is organized into:
//   - Envelope1D: the O(n) lower-envelope sweep over a single fiber.
//   - Separable-CPU: per-axis orchestration over 2D/3D arrays, with an
//     optional worker-pool fan-out across independent fibers.
//   - API surface: allocating wrappers (Transform1D, Transform2D, ...)
//     and in-place entry points (Envelope1D, Transform2DInto,
//     Transform3DInto) that take caller-provided output and scratch.
//   - gpu/: device-parallel kernels for the same computation.
//
// # Performance
//
// Envelope1D and the CPU separable passes are pure numeric code with no
// allocation in the inner loop. For large 2D/3D grids, pass
// sedt.Options{Threaded: true} to fan the fiber loop of each pass out
// across a worker pool sized to GOMAXPROCS.
package sedt

// Version information.
const (
	// Version is the current version of the library.
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version.
	VersionMajor = 0

	// VersionMinor is the minor version.
	VersionMinor = 1

	// VersionPatch is the patch version.
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier.
	VersionPrerelease = "alpha.1"
)
