//go:build !nogpu

package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/rollgrid"
	"github.com/gogpu/rollgrid/render"
)

// Renderer failure modes.
var (
	// ErrRendererClosed is returned when operations are called after Close.
	ErrRendererClosed = errors.New("wgpu: renderer is closed")

	errNilTarget   = errors.New("wgpu: nil target")
	errNoCPUAccess = errors.New("wgpu: target does not support CPU readback")
)

// Renderer evaluates timeline frames with wgpu/hal compute shaders.
//
// Frames are dispatched as a shade pass over every pixel plus a
// playhead pass when the marker is visible, read back over a staging
// buffer, and unpacked into the target's pixel memory. When no usable
// GPU device is found, or a dispatch fails, frames come from a CPU
// fallback built on the rollgrid root package, so Render always
// produces a frame.
//
// The playhead is always composited into the background frame; layered
// targets are treated as plain targets on the GPU path.
//
// Thread safety: like other render.Renderer implementations, a Renderer
// is not safe for concurrent use.
type Renderer struct {
	cfg Config

	instance       hal.Instance
	device         hal.Device
	queue          hal.Queue
	externalDevice bool
	deviceName     string

	pipeline *TimelinePipeline

	// fallback serves frames when the GPU is unavailable.
	fallback *render.SoftwareRenderer

	gpuReady bool
	closed   bool
}

// NewRenderer creates a GPU timeline renderer.
//
// A non-nil handle shares the host's device: the handle must expose
// HAL types via HalDevice/HalQueue, and the renderer never destroys
// the shared device. With a nil handle the renderer opens its own
// Vulkan device. If neither yields a working pipeline, the renderer
// logs a warning and serves frames from the CPU fallback instead of
// failing.
func NewRenderer(handle render.DeviceHandle, cfg Config) (*Renderer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Style.Validate(); err != nil {
		return nil, err
	}

	r := &Renderer{
		cfg:      cfg,
		fallback: render.NewSoftwareRenderer(cfg.options()...),
	}

	if err := r.initGPU(handle); err != nil {
		rollgrid.Logger().Warn("GPU init failed, using CPU fallback", "error", err)
		r.releaseDevice()
		return r, nil
	}

	rollgrid.Logger().Info("GPU pipeline created",
		"adapter", r.deviceName, "shared", r.externalDevice)
	return r, nil
}

// initGPU acquires a device and builds the timeline pipeline on it.
func (r *Renderer) initGPU(handle render.DeviceHandle) error {
	if handle != nil {
		if err := r.bindSharedDevice(handle); err != nil {
			return err
		}
	} else if err := r.openOwnDevice(); err != nil {
		return err
	}

	pipeline, err := NewTimelinePipeline(r.device, r.queue)
	if err != nil {
		return err
	}
	r.pipeline = pipeline
	r.gpuReady = true
	return nil
}

// bindSharedDevice adopts the host's device and queue. The handle must
// implement HalDevice() any and HalQueue() any returning hal.Device and
// hal.Queue.
func (r *Renderer) bindSharedDevice(handle render.DeviceHandle) error {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := handle.(halProvider)
	if !ok {
		return fmt.Errorf("wgpu: device handle does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return fmt.Errorf("wgpu: device handle HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return fmt.Errorf("wgpu: device handle HalQueue is not hal.Queue")
	}

	r.device = device
	r.queue = queue
	r.externalDevice = true
	return nil
}

// openOwnDevice creates a Vulkan instance and opens the first discrete
// or integrated adapter.
func (r *Renderer) openOwnDevice() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("wgpu: vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("wgpu: create instance: %w", err)
	}
	r.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("wgpu: no GPU adapters found")
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
		return fmt.Errorf("wgpu: open device: %w", err)
	}
	r.device = openDev.Device
	r.queue = openDev.Queue
	r.deviceName = selected.Info.Name
	return nil
}

// releaseDevice destroys the pipeline and any owned device resources.
// Shared resources are dropped without destroying them.
func (r *Renderer) releaseDevice() {
	if r.pipeline != nil {
		r.pipeline.Destroy()
		r.pipeline = nil
	}
	if !r.externalDevice {
		if r.device != nil {
			r.device.Destroy()
			r.device = nil
		}
		if r.instance != nil {
			r.instance.Destroy()
			r.instance = nil
		}
	} else {
		r.device = nil
		r.instance = nil
	}
	r.queue = nil
	r.gpuReady = false
	r.externalDevice = false
}

// Render evaluates one frame and writes it to the target.
//
// The target must support CPU access: the GPU path reads the frame
// back into the target's pixel memory, and the CPU fallback writes it
// directly. A dispatch failure is logged and the frame is served from
// the fallback.
func (r *Renderer) Render(target render.RenderTarget, params rollgrid.FrameParams) error {
	if r.closed {
		return ErrRendererClosed
	}
	if target == nil {
		return errNilTarget
	}
	if !r.gpuReady {
		return r.fallback.Render(target, params)
	}

	pixels := target.Pixels()
	if pixels == nil {
		return errNoCPUAccess
	}
	if err := params.Validate(); err != nil {
		return err
	}
	width, height := target.Width(), target.Height()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("wgpu: invalid target size %dx%d", width, height)
	}

	u := buildUniforms(params, r.cfg, width, height, r.cfg.Content != nil)
	samples := samplesToBytes(r.cfg.Template, r.cfg.Content, width, height)

	if err := r.pipeline.Dispatch(pixels, target.Stride(), width, height, u, samples, u.PlayheadX >= 0); err != nil {
		rollgrid.Logger().Warn("GPU dispatch failed, serving frame from CPU fallback", "error", err)
		return r.fallback.Render(target, params)
	}
	return nil
}

// Flush is a no-op: Dispatch submits and waits on a fence before
// returning, so the frame is complete when Render returns.
func (r *Renderer) Flush() error {
	if r.closed {
		return ErrRendererClosed
	}
	return nil
}

// SetContent swaps the content layer blended into subsequent frames.
// Pass nil to remove the layer.
func (r *Renderer) SetContent(c rollgrid.ContentLayer) {
	r.cfg.Content = c
	r.fallback.SetContent(c)
}

// GPUReady reports whether frames are served by the GPU pipeline.
func (r *Renderer) GPUReady() bool {
	return r.gpuReady
}

// Capabilities returns the renderer's capabilities. With no usable GPU
// device they are the CPU fallback's capabilities.
func (r *Renderer) Capabilities() render.RendererCapabilities {
	if !r.gpuReady {
		return r.fallback.Capabilities()
	}
	return render.RendererCapabilities{
		IsGPU:                   true,
		SupportsOverlays:        false,
		SupportsContentSampling: true,
		MaxTextureSize:          0,
	}
}

// Close releases GPU resources and the CPU fallback. Only resources
// the renderer created itself are destroyed; a shared device stays
// with its owner. The renderer must not be used after Close.
func (r *Renderer) Close() {
	if r.closed {
		return
	}
	r.releaseDevice()
	r.fallback.Close()
	r.closed = true
}

// Ensure Renderer implements Renderer and CapableRenderer.
var (
	_ render.Renderer        = (*Renderer)(nil)
	_ render.CapableRenderer = (*Renderer)(nil)
)
