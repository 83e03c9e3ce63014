//go:build !nogpu

package gpu

import (
	"fmt"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sedt"
	"github.com/gogpu/wgpu/hal"
)

// Transform2D dispatches Kernel 1 (bounded search along axis 1, the
// columns) followed by Kernel 2 (radius-pruned refine along axis 0,
// the rows), per the 2D dispatch schedule in §4.3.3. f must be a
// thresholded 0/1 indicator: values >= 0.5 mark foreground.
func (a *Accelerator) Transform2D(f sedt.Field2D) (sedt.Field2D, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.ready {
		return sedt.Field2D{}, fmt.Errorf("gpu-sedt: Transform2D: accelerator not initialized")
	}

	dims := gridDims{dim0: 1, dim1: uint32(f.Height), dim2: uint32(f.Width)}

	afterSearch, err := a.dispatch(a.searchPipe, f.Data, dims, kernelParams{
		Dim0: dims.dim0, Dim1: dims.dim1, Dim2: dims.dim2,
		AxisStride: 1, AxisLen: dims.dim2, Pass: passSearch,
	})
	if err != nil {
		return sedt.Field2D{}, fmt.Errorf("gpu-sedt: Transform2D: kernel 1: %w", err)
	}

	afterRefine, err := a.dispatch(a.refinePipe, afterSearch, dims, kernelParams{
		Dim0: dims.dim0, Dim1: dims.dim1, Dim2: dims.dim2,
		AxisStride: dims.dim2, AxisLen: dims.dim1, Pass: passRefine,
	})
	if err != nil {
		return sedt.Field2D{}, fmt.Errorf("gpu-sedt: Transform2D: kernel 2: %w", err)
	}

	return sedt.Field2D{Data: afterRefine, Width: f.Width, Height: f.Height}, nil
}

// Transform3D dispatches Kernel 1 along axis 2 (Dim2, fastest-varying),
// Kernel 2 along axis 1 (Dim1), and Kernel 3 along axis 0 (Dim0), each
// synchronized before the next kernel reads its output, per §4.3.3.
// f must be a thresholded 0/1 indicator.
func (a *Accelerator) Transform3D(f sedt.Field3D) (sedt.Field3D, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.ready {
		return sedt.Field3D{}, fmt.Errorf("gpu-sedt: Transform3D: accelerator not initialized")
	}

	dims := gridDims{dim0: uint32(f.Dim0), dim1: uint32(f.Dim1), dim2: uint32(f.Dim2)}

	afterKernel1, err := a.dispatch(a.searchPipe, f.Data, dims, kernelParams{
		Dim0: dims.dim0, Dim1: dims.dim1, Dim2: dims.dim2,
		AxisStride: 1, AxisLen: dims.dim2, Pass: passSearch,
	})
	if err != nil {
		return sedt.Field3D{}, fmt.Errorf("gpu-sedt: Transform3D: kernel 1: %w", err)
	}

	afterKernel2, err := a.dispatch(a.refinePipe, afterKernel1, dims, kernelParams{
		Dim0: dims.dim0, Dim1: dims.dim1, Dim2: dims.dim2,
		AxisStride: dims.dim2, AxisLen: dims.dim1, Pass: passRefine,
	})
	if err != nil {
		return sedt.Field3D{}, fmt.Errorf("gpu-sedt: Transform3D: kernel 2: %w", err)
	}

	afterKernel3, err := a.dispatch(a.refinePipe, afterKernel2, dims, kernelParams{
		Dim0: dims.dim0, Dim1: dims.dim1, Dim2: dims.dim2,
		AxisStride: dims.dim1 * dims.dim2, AxisLen: dims.dim0, Pass: passRefine,
	})
	if err != nil {
		return sedt.Field3D{}, fmt.Errorf("gpu-sedt: Transform3D: kernel 3: %w", err)
	}

	return sedt.Field3D{Data: afterKernel3, Dim0: f.Dim0, Dim1: f.Dim1, Dim2: f.Dim2}, nil
}

type gridDims struct {
	dim0, dim1, dim2 uint32
}

// dispatch runs one compute pass over the whole lattice: upload src and
// params, run the pipeline, copy the result to a staging buffer, wait
// for the device to go idle, and read it back. It is the single-kernel unit
// both Transform2D and Transform3D compose into their multi-pass
// schedules; the caller is responsible for synchronizing passes by
// feeding one dispatch's output as the next dispatch's src.
func (a *Accelerator) dispatch(pipeline hal.ComputePipeline, src []float32, dims gridDims, params kernelParams) ([]float32, error) {
	total := int(dims.dim0) * int(dims.dim1) * int(dims.dim2)
	if len(src) != total {
		return nil, fmt.Errorf("dispatch: len(src)=%d, want %d", len(src), total)
	}

	dataSize := uint64(total * 4)
	paramsSize := uint64(unsafe.Sizeof(kernelParams{}))

	srcBuf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sedt_src", Size: dataSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create src buffer: %w", err)
	}
	defer a.device.DestroyBuffer(srcBuf)

	dstBuf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sedt_dst", Size: dataSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create dst buffer: %w", err)
	}
	defer a.device.DestroyBuffer(dstBuf)

	stagingBuf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sedt_staging", Size: dataSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer a.device.DestroyBuffer(stagingBuf)

	paramsBuf, err := a.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sedt_params", Size: paramsSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create params buffer: %w", err)
	}
	defer a.device.DestroyBuffer(paramsBuf)

	a.queue.WriteBuffer(srcBuf, 0, float32SliceToBytes(src))
	// dst starts equal to src: Kernel 1 overwrites every slot
	// unconditionally, and Kernels 2/3 refine dst in place starting
	// from the previous kernel's committed values.
	a.queue.WriteBuffer(dstBuf, 0, float32SliceToBytes(src))
	a.queue.WriteBuffer(paramsBuf, 0, paramsToBytes(params))

	bindGroup, err := a.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "sedt_bind", Layout: a.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: paramsBuf.NativeHandle(), Offset: 0, Size: paramsSize}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: srcBuf.NativeHandle(), Offset: 0, Size: dataSize}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: dstBuf.NativeHandle(), Offset: 0, Size: dataSize}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}
	defer a.device.DestroyBindGroup(bindGroup)

	encoder, err := a.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "sedt_encoder"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("sedt_pass"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "sedt_compute"})
	pass.SetPipeline(pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.Dispatch((uint32(total)+63)/64, 1, 1)
	pass.End()

	encoder.CopyBufferToBuffer(dstBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: dataSize},
	})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer a.device.FreeCommandBuffer(cmdBuf)

	if _, err := a.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	if err := a.device.WaitIdle(); err != nil {
		return nil, fmt.Errorf("wait for GPU: %w", err)
	}

	mapping, err := a.device.MapBuffer(stagingBuf, 0, dataSize)
	if err != nil {
		return nil, fmt.Errorf("map staging buffer: %w", err)
	}
	readback := make([]byte, dataSize)
	copy(readback, unsafe.Slice((*byte)(mapping.Ptr), dataSize))
	if err := a.device.UnmapBuffer(stagingBuf); err != nil {
		return nil, fmt.Errorf("unmap staging buffer: %w", err)
	}

	out := make([]float32, total)
	bytesToFloat32Slice(readback, out)
	return out, nil
}

// float32SliceToBytes reinterprets f's backing array as a byte slice
// for upload to the device, matching the raw little-endian layout the
// kernels expect for array<f32>.
func float32SliceToBytes(f []float32) []byte {
	if len(f) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&f[0])), len(f)*4) //nolint:gosec // raw float32 upload
}

// bytesToFloat32Slice copies a readback buffer into out, which must
// already be sized to the expected element count.
func bytesToFloat32Slice(b []byte, out []float32) {
	if len(out) == 0 {
		return
	}
	src := unsafe.Slice((*float32)(unsafe.Pointer(&b[0])), len(out)) //nolint:gosec // raw float32 readback
	copy(out, src)
}

func paramsToBytes(p kernelParams) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&p)), unsafe.Sizeof(p)) //nolint:gosec // safe struct upload
}
