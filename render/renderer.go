// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/rollgrid"
)

// Shared failure modes across renderer implementations.
var (
	errNilTarget       = errors.New("render: nil target")
	errNilDeviceHandle = errors.New("render: nil device handle")
	errNoCPUAccess     = errors.New("render: target does not support CPU rendering")
)

// Renderer evaluates timeline frames onto a render target.
//
// Implementations cover different execution strategies:
//
//   - SoftwareRenderer: CPU evaluation via the rollgrid root package
//   - backend/wgpu.Renderer: compute-shader evaluation on the host GPU
//
// A renderer holds no per-frame state between Render calls; the same
// renderer can serve targets of different sizes and parameter sets in
// any order.
//
// Thread safety: renderers are NOT safe for concurrent use. Drive each
// renderer from a single goroutine or serialize access externally.
type Renderer interface {
	// Render evaluates one frame for the given parameters and writes
	// it to the target. The parameters are not retained.
	Render(target RenderTarget, params rollgrid.FrameParams) error

	// Flush ensures all pending rendering operations are complete.
	//
	// For CPU renderers this is a no-op as evaluation is synchronous.
	// For GPU renderers this may submit command buffers and wait for
	// completion.
	Flush() error

	// Close releases the renderer's resources. The renderer must not
	// be used after Close.
	Close()
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a GPU-accelerated renderer.
	IsGPU bool

	// SupportsOverlays indicates if the renderer composites the
	// playhead onto its own layer when given a LayeredTarget.
	SupportsOverlays bool

	// SupportsContentSampling indicates if content layers are blended
	// into the background.
	SupportsContentSampling bool

	// MaxTextureSize is the maximum target dimension (0 = unlimited).
	MaxTextureSize int
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}
