package gpu

import _ "embed"

// Embedded WGSL kernel sources, compiled into pipelines by
// (*Accelerator).createPipelines.

//go:embed shaders/kernel_search.wgsl
var searchShaderSource string

//go:embed shaders/kernel_refine.wgsl
var refineShaderSource string
