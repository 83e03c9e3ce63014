//go:build !nogpu

package gpu

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/sedt"
	"github.com/gogpu/wgpu/hal"

	// Import the Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// Accelerator dispatches the SEDT kernels on a GPU device via
// github.com/gogpu/wgpu/hal. A new Accelerator (the zero value, as
// returned by NewAccelerator) has no device attached; call Init or
// SetDeviceProvider before use.
type Accelerator struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	searchShader hal.ShaderModule
	refineShader hal.ShaderModule
	bindLayout   hal.BindGroupLayout
	pipeLayout   hal.PipelineLayout
	searchPipe   hal.ComputePipeline
	refinePipe   hal.ComputePipeline

	ready          bool
	externalDevice bool
}

// NewAccelerator returns an Accelerator with no GPU device attached.
// Call Init to acquire a device, or SetDeviceProvider to share one.
func NewAccelerator() *Accelerator {
	return &Accelerator{}
}

// Init acquires a Vulkan adapter and device and compiles the SEDT
// kernel pipelines. Init never panics: GPU acquisition failures are
// common (headless CI, missing drivers) and are reported through the
// returned error so callers can fall back to the CPU package.
func (a *Accelerator) Init() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.initGPU(); err != nil {
		sedt.Logger().Warn("gpu-sedt: GPU init failed", "error", err)
		return fmt.Errorf("gpu-sedt: init: %w", err)
	}
	return nil
}

// Close releases the pipelines and, unless the device was shared via
// SetDeviceProvider, the device and instance. Close is safe to call on
// an Accelerator that failed to initialize.
func (a *Accelerator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.destroyPipelines()
	if !a.externalDevice {
		if a.device != nil {
			a.device.Destroy()
		}
		if a.instance != nil {
			a.instance.Destroy()
		}
	}
	a.device = nil
	a.instance = nil
	a.queue = nil
	a.ready = false
	a.externalDevice = false
}

// Ready reports whether the accelerator has a usable GPU device.
func (a *Accelerator) Ready() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ready
}

// halProvider is the duck-typed interface a shared-device provider must
// satisfy. It mirrors the interface expected by the wider gogpu device
// sharing convention without importing a shared device-context package.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// SetDeviceProvider switches the accelerator to a GPU device owned by
// an external provider (for example a host application already running
// gogpu/gg). The provider must implement HalDevice() any and
// HalQueue() any, returning a hal.Device and hal.Queue respectively.
func (a *Accelerator) SetDeviceProvider(provider any) error {
	hp, ok := provider.(halProvider)
	if !ok {
		return fmt.Errorf("gpu-sedt: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("gpu-sedt: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("gpu-sedt: provider HalQueue is not hal.Queue")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.destroyPipelines()
	if !a.externalDevice && a.device != nil {
		a.device.Destroy()
	}
	if a.instance != nil {
		a.instance.Destroy()
		a.instance = nil
	}

	a.device = device
	a.queue = queue
	a.externalDevice = true

	if err := a.createPipelines(); err != nil {
		a.ready = false
		return fmt.Errorf("gpu-sedt: create pipelines with shared device: %w", err)
	}
	a.ready = true
	sedt.Logger().Info("gpu-sedt: switched to shared GPU device")
	return nil
}

func (a *Accelerator) initGPU() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	a.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	a.device = openDev.Device
	a.queue = openDev.Queue

	if err := a.createPipelines(); err != nil {
		a.device.Destroy()
		a.device = nil
		a.queue = nil
		return fmt.Errorf("create pipelines: %w", err)
	}
	a.ready = true
	sedt.Logger().Info("gpu-sedt: GPU accelerator initialized", "adapter", selected.Info.Name)
	return nil
}

func (a *Accelerator) createPipelines() error {
	searchShader, err := a.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "sedt_kernel_search",
		Source: hal.ShaderSource{WGSL: searchShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile search shader: %w", err)
	}
	a.searchShader = searchShader

	refineShader, err := a.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "sedt_kernel_refine",
		Source: hal.ShaderSource{WGSL: refineShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile refine shader: %w", err)
	}
	a.refineShader = refineShader

	bindLayout, err := a.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "sedt_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	a.bindLayout = bindLayout

	pipeLayout, err := a.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "sedt_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{a.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	a.pipeLayout = pipeLayout

	searchPipe, err := a.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:   "sedt_search_pipeline",
		Layout:  a.pipeLayout,
		Compute: hal.ComputeState{Module: a.searchShader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("create search pipeline: %w", err)
	}
	a.searchPipe = searchPipe

	refinePipe, err := a.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:   "sedt_refine_pipeline",
		Layout:  a.pipeLayout,
		Compute: hal.ComputeState{Module: a.refineShader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("create refine pipeline: %w", err)
	}
	a.refinePipe = refinePipe

	return nil
}

func (a *Accelerator) destroyPipelines() {
	if a.device == nil {
		return
	}
	if a.searchPipe != nil {
		a.device.DestroyComputePipeline(a.searchPipe)
	}
	if a.refinePipe != nil {
		a.device.DestroyComputePipeline(a.refinePipe)
	}
	if a.pipeLayout != nil {
		a.device.DestroyPipelineLayout(a.pipeLayout)
	}
	if a.bindLayout != nil {
		a.device.DestroyBindGroupLayout(a.bindLayout)
	}
	if a.searchShader != nil {
		a.device.DestroyShaderModule(a.searchShader)
	}
	if a.refineShader != nil {
		a.device.DestroyShaderModule(a.refineShader)
	}
}

// waitTimeout is a bound for a device fence wait. dispatch does not use
// it: it waits with Device.WaitIdle, which takes no deadline.
const waitTimeout = 5 * time.Second
