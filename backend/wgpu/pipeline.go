//go:build !nogpu

package wgpu

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/timeline.wgsl
var timelineShaderWGSL string

// TimelinePipeline owns the compute pipelines that evaluate timeline
// frames on the GPU: cs_shade covers every background pixel and
// cs_playhead overwrites the two marker columns. Both passes share one
// bind group layout with the uniform snapshot, the template/content
// sample buffer, and the packed pixel output.
type TimelinePipeline struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	// Compute pipelines
	shadePipeline    hal.ComputePipeline
	playheadPipeline hal.ComputePipeline

	// Shader module (cached)
	shaderModule hal.ShaderModule

	// Pipeline layout and bind group layout
	pipelineLayout hal.PipelineLayout
	bindLayout     hal.BindGroupLayout

	// Compiled SPIR-V (cached for verification)
	spirvCode []uint32

	initialized bool
	shaderReady bool
}

// NewTimelinePipeline compiles the timeline shader and creates the
// compute pipelines on the given device.
func NewTimelinePipeline(device hal.Device, queue hal.Queue) (*TimelinePipeline, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: device and queue are required")
	}

	p := &TimelinePipeline{
		device: device,
		queue:  queue,
	}

	if err := p.init(); err != nil {
		p.Destroy()
		return nil, err
	}

	return p, nil
}

// init compiles the shader and builds pipelines and layouts.
func (p *TimelinePipeline) init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	spirvBytes, err := naga.Compile(timelineShaderWGSL)
	if err != nil {
		return fmt.Errorf("wgpu: failed to compile timeline shader: %w", err)
	}

	// Convert bytes to uint32 slice for SPIR-V
	p.spirvCode = make([]uint32, len(spirvBytes)/4)
	for i := range p.spirvCode {
		p.spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	p.shaderReady = true

	shaderModule, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "timeline_shader",
		Source: hal.ShaderSource{
			SPIRV: p.spirvCode,
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create shader module: %w", err)
	}
	p.shaderModule = shaderModule

	if err := p.createLayouts(); err != nil {
		return err
	}
	if err := p.createPipelines(); err != nil {
		return err
	}

	p.initialized = true
	return nil
}

// createLayouts creates the bind group layout and pipeline layout.
func (p *TimelinePipeline) createLayouts() error {
	bindLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "timeline_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type:           gputypes.BufferBindingTypeUniform,
					MinBindingSize: frameUniformsSize,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeReadOnlyStorage,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageCompute,
				Buffer: &gputypes.BufferBindingLayout{
					Type: gputypes.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create bind group layout: %w", err)
	}
	p.bindLayout = bindLayout

	layout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "timeline_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create pipeline layout: %w", err)
	}
	p.pipelineLayout = layout
	return nil
}

// createPipelines creates the compute pipelines.
func (p *TimelinePipeline) createPipelines() error {
	shadePipeline, err := p.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "timeline_shade_pipeline",
		Layout: p.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     p.shaderModule,
			EntryPoint: "cs_shade",
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create shade pipeline: %w", err)
	}
	p.shadePipeline = shadePipeline

	playheadPipeline, err := p.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "timeline_playhead_pipeline",
		Layout: p.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     p.shaderModule,
			EntryPoint: "cs_playhead",
		},
	})
	if err != nil {
		return fmt.Errorf("wgpu: failed to create playhead pipeline: %w", err)
	}
	p.playheadPipeline = playheadPipeline

	return nil
}

// Dispatch evaluates one frame on the GPU and unpacks the result into
// dst, honoring its stride. The shade pass runs over every pixel; the
// playhead pass runs only when playhead is true. Both passes land in
// one command buffer with a single submit and fence wait, so Dispatch
// is synchronous: when it returns without error, dst holds the frame.
//
// TODO: reuse the frame buffers across calls once target sizes prove
// stable in practice.
func (p *TimelinePipeline) Dispatch(dst []byte, dstStride, width, height int, u FrameUniforms, samples []byte, playhead bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return fmt.Errorf("wgpu: pipeline not initialized")
	}

	pixelBufSize := uint64(width) * uint64(height) * 4
	uniformBytes := uniformsToBytes(u)

	uniformBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "timeline_uniforms", Size: frameUniformsSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}
	defer p.device.DestroyBuffer(uniformBuf)

	samplesBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "timeline_samples", Size: uint64(len(samples)),
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create samples buffer: %w", err)
	}
	defer p.device.DestroyBuffer(samplesBuf)

	pixelsBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "timeline_pixels", Size: pixelBufSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create pixels buffer: %w", err)
	}
	defer p.device.DestroyBuffer(pixelsBuf)

	stagingBuf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "timeline_staging", Size: pixelBufSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create staging buffer: %w", err)
	}
	defer p.device.DestroyBuffer(stagingBuf)

	p.queue.WriteBuffer(uniformBuf, 0, uniformBytes)
	p.queue.WriteBuffer(samplesBuf, 0, samples)

	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "timeline_bind", Layout: p.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: frameUniformsSize}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: samplesBuf.NativeHandle(), Offset: 0, Size: uint64(len(samples))}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: pixelsBuf.NativeHandle(), Offset: 0, Size: pixelBufSize}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}
	defer p.device.DestroyBindGroup(bindGroup)

	cmdBuf, err := p.encodePasses(bindGroup, pixelsBuf, stagingBuf, width, height, pixelBufSize, playhead)
	if err != nil {
		return err
	}
	defer p.device.FreeCommandBuffer(cmdBuf)

	fence, err := p.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer p.device.DestroyFence(fence)
	if err := p.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := p.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, pixelBufSize)
	if err := p.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return fmt.Errorf("readback: %w", err)
	}
	unpackPixels(readback, dst, width, height, dstStride)
	return nil
}

// encodePasses records the shade pass, the optional playhead pass, and
// the staging copy into one command buffer. The implicit storage
// barrier between passes keeps the playhead on top of the background.
func (p *TimelinePipeline) encodePasses(
	bindGroup hal.BindGroup, pixelsBuf, stagingBuf hal.Buffer,
	width, height int, pixelBufSize uint64, playhead bool,
) (hal.CommandBuffer, error) {
	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "timeline_encoder"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("timeline_frame"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	w := uint32(width)  //nolint:gosec // dimensions validated by the renderer
	h := uint32(height) //nolint:gosec // dimensions validated by the renderer

	shadePass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "timeline_shade"})
	shadePass.SetPipeline(p.shadePipeline)
	shadePass.SetBindGroup(0, bindGroup, nil)
	shadePass.Dispatch((w+7)/8, (h+7)/8, 1)
	shadePass.End()

	if playhead {
		playheadPass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "timeline_playhead"})
		playheadPass.SetPipeline(p.playheadPipeline)
		playheadPass.SetBindGroup(0, bindGroup, nil)
		playheadPass.Dispatch((h+63)/64, 1, 1)
		playheadPass.End()
	}

	encoder.CopyBufferToBuffer(pixelsBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: pixelBufSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	return cmdBuf, nil
}

// IsInitialized returns whether the pipeline is ready for dispatch.
func (p *TimelinePipeline) IsInitialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// IsShaderReady returns whether the shader compiled successfully.
func (p *TimelinePipeline) IsShaderReady() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shaderReady
}

// SPIRVCode returns the compiled SPIR-V code (for debugging/verification).
func (p *TimelinePipeline) SPIRVCode() []uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.spirvCode
}

// Destroy releases all GPU resources.
func (p *TimelinePipeline) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.device == nil {
		return
	}

	if p.shadePipeline != nil {
		p.device.DestroyComputePipeline(p.shadePipeline)
		p.shadePipeline = nil
	}
	if p.playheadPipeline != nil {
		p.device.DestroyComputePipeline(p.playheadPipeline)
		p.playheadPipeline = nil
	}
	if p.pipelineLayout != nil {
		p.device.DestroyPipelineLayout(p.pipelineLayout)
		p.pipelineLayout = nil
	}
	if p.bindLayout != nil {
		p.device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.shaderModule != nil {
		p.device.DestroyShaderModule(p.shaderModule)
		p.shaderModule = nil
	}

	p.initialized = false
}
