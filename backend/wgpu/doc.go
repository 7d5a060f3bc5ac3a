// Package wgpu provides a GPU-accelerated timeline renderer using gogpu/wgpu.
//
// This backend evaluates timeline background frames with WebGPU compute
// shaders. It uses the gogpu/wgpu Pure Go WebGPU implementation over its
// Vulkan HAL, with the timeline math expressed in WGSL and compiled to
// SPIR-V through gogpu/naga.
//
// # Architecture Overview
//
// A frame flows through the package as:
//
//	FrameParams -> FrameUniforms + sample buffer -> cs_shade pass -> cs_playhead pass -> readback -> target pixels
//
// Key components:
//
//   - Renderer: render.Renderer implementation with device acquisition
//     and the CPU fallback path
//   - TimelinePipeline: shader compilation, bind group layout, the two
//     compute pipelines, and per-frame dispatch
//   - FrameUniforms: std140-compatible mirror of the frame parameters
//   - shaders/timeline.wgsl: the per-pixel shading and playhead kernels
//
// # Frame Evaluation
//
// The shade pass runs one invocation per pixel in 8x8 workgroups. Each
// invocation maps its pixel center through the view transform, applies
// the hard-edged bar and subdivision stripes with their precomputed
// fade levels, shades the row from the scale template, and adds the
// content sample. The playhead pass then overwrites the two marker
// columns with the pulse gradient, one invocation per row. Both passes
// are recorded into a single command buffer; the implicit storage
// barrier between them keeps the marker on top.
//
// Per-frame quantities that need no per-pixel variation (grid fade
// levels, the pulse multiplier, the playhead column) are evaluated on
// the CPU and land in the uniform block, keeping the kernels pure
// per-pixel functions of their invocation id.
//
// # Registration and Selection
//
// The wgpu backend is automatically registered when this package is
// imported:
//
//	import _ "github.com/gogpu/rollgrid/backend/wgpu"
//
// The backend is preferred over the software backend in
// backend.Default. If GPU initialization fails, frames fall back to
// CPU evaluation.
//
// # Basic Usage
//
//	renderer, err := wgpu.NewRenderer(nil, wgpu.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer renderer.Close()
//
//	target := render.NewPixmapTarget(1280, 720)
//	err = renderer.Render(target, rollgrid.FrameParams{
//	    View:  rollgrid.DefaultView(),
//	    Tempo: rollgrid.TempoParams{BPM: 120, Elapsed: 3.5},
//	})
//
// # Device Sharing
//
// Hosts that already own a GPU device pass their render.DeviceHandle so
// frames land on the shared device:
//
//	renderer, err := wgpu.NewRenderer(host.DeviceHandle(), wgpu.DefaultConfig())
//
// The handle must expose HAL types via HalDevice/HalQueue methods.
// Shared devices are never destroyed by the renderer.
//
// # Current Status
//
// Frames are produced through a storage buffer with staging readback
// into CPU-accessible targets. GPU-only targets (TextureTarget,
// SurfaceTarget without CPU access) are not served yet; rendering into
// them returns an error. The playhead is composited into the background
// frame on the GPU path, so layered targets behave like plain targets.
//
// # Build Tags
//
// Building with the nogpu tag removes all GPU code paths and the
// backend registration; only the serialization helpers remain.
//
// # Thread Safety
//
// Renderer follows the render.Renderer contract and is not safe for
// concurrent use. TimelinePipeline serializes dispatches internally.
//
// # Error Handling
//
// Common errors returned by this package:
//
//   - ErrRendererClosed: Renderer has been closed
//
// GPU acquisition and dispatch failures are not surfaced as errors:
// they are logged through the rollgrid logger and the frame is served
// from the CPU fallback instead.
//
// # Related Packages
//
//   - github.com/gogpu/rollgrid: CPU frame evaluation, the reference semantics
//   - github.com/gogpu/rollgrid/render: renderer and target interfaces
//   - github.com/gogpu/rollgrid/backend: backend registry
//   - github.com/gogpu/wgpu: Pure Go WebGPU implementation
//   - github.com/gogpu/naga: WGSL to SPIR-V compiler
package wgpu
