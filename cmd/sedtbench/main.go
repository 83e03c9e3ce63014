// Command sedtbench benchmarks the CPU and GPU squared Euclidean
// distance transform paths against each other on a synthetic grid.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gogpu/sedt"
	sedtgpu "github.com/gogpu/sedt/gpu"
)

func main() {
	var (
		width    = flag.Int("width", 512, "grid width")
		height   = flag.Int("height", 512, "grid height")
		threaded = flag.Bool("threaded", true, "use the threaded CPU path")
		useGPU   = flag.Bool("gpu", true, "also benchmark the GPU path")
	)
	flag.Parse()

	cpuField := syntheticCPUField(*width, *height)

	start := time.Now()
	cpuOut := sedt.Transform2D(cpuField, sedt.Options{Threaded: *threaded})
	cpuElapsed := time.Since(start)
	log.Printf("cpu: %dx%d threaded=%v took %s, sample output[0,0]=%v",
		*width, *height, *threaded, cpuElapsed, cpuOut.At(0, 0))

	if !*useGPU {
		return
	}

	accel := sedtgpu.NewAccelerator()
	if err := accel.Init(); err != nil {
		log.Printf("gpu unavailable, skipping GPU benchmark: %v", err)
		return
	}
	defer accel.Close()

	gpuField := syntheticGPUField(*width, *height)
	start = time.Now()
	gpuOut, err := accel.Transform2D(gpuField)
	if err != nil {
		log.Fatalf("gpu transform failed: %v", err)
	}
	gpuElapsed := time.Since(start)
	log.Printf("gpu: %dx%d took %s, sample output[0,0]=%v",
		*width, *height, gpuElapsed, gpuOut.At(0, 0))
}

// syntheticCPUField builds a grid with foreground (0) on a sparse
// square lattice (every 16th cell along x and y) and background (sentinel) elsewhere, using the CPU
// path's 0/sentinel encoding.
func syntheticCPUField(width, height int) sedt.Field2D {
	const sentinel = float32(1e10)
	f := sedt.NewField2D(width, height)
	for i := range f.Data {
		f.Data[i] = sentinel
	}
	for y := 0; y < height; y += 16 {
		for x := 0; x < width; x += 16 {
			f.Set(x, y, 0)
		}
	}
	return f
}

// syntheticGPUField builds the same lattice using the GPU path's
// thresholded 0/1 encoding.
func syntheticGPUField(width, height int) sedt.Field2D {
	f := sedt.NewField2D(width, height)
	for y := 0; y < height; y += 16 {
		for x := 0; x < width; x += 16 {
			f.Set(x, y, 1)
		}
	}
	return f
}
