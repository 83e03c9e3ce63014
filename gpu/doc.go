// Package gpu implements the squared Euclidean distance transform on
// the GPU via WGSL compute kernels dispatched through
// github.com/gogpu/wgpu/hal.
//
// Unlike the CPU package (github.com/gogpu/sedt), which runs the
// Felzenszwalb-Huttenlocher lower-envelope sweep, the GPU path performs
// a bounded brute-force nearest-nonzero search along the first axis
// (Kernel 1) followed by radius-pruned refinement along the remaining
// axes (Kernels 2 and 3). Both strategies compute the same squared
// distance field on binary-indicator inputs but are not line-by-line
// equivalent. The package's tests cover only the host-side packing
// helpers; they run no kernel on a device.
//
// Input encoding differs from the CPU package: a value >= 0.5 marks a
// foreground cell (distance 0); a value < 0.5 marks background. This
// mirrors the 0/1 thresholded indicator convention used by the rest of
// the WGSL kernel corpus this package is grounded on.
package gpu
