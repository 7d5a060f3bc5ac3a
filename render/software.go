// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/rollgrid"
)

// SoftwareRenderer evaluates timeline frames on the CPU using the
// rollgrid root package.
//
// The renderer keeps a frame evaluator and scratch pixmaps sized to the
// last target; rendering to a target of a different size rebuilds them.
// Evaluation fans out over the evaluator's worker pool, so a single
// Render call already uses all available cores.
//
// On a plain target the playhead is drawn into the background. On a
// LayeredTarget it lands on its own overlay layer at PlayheadZ and the
// target is composited, leaving the background layer clean for hosts
// that stack their own overlays in between.
//
// Example:
//
//	renderer := render.NewSoftwareRenderer(
//		rollgrid.WithPulseStyle(rollgrid.DefaultPulseStyle()),
//	)
//	defer renderer.Close()
//
//	target := render.NewPixmapTarget(1280, 720)
//	renderer.Render(target, params)
//	img := target.Image()
type SoftwareRenderer struct {
	opts []rollgrid.Option

	// frame and its scratch pixmaps are rebuilt when the target size
	// changes.
	frame      *rollgrid.Renderer
	buf        *rollgrid.Pixmap
	overlay    *rollgrid.Pixmap
	lastWidth  int
	lastHeight int

	// content overrides the option-provided layer once SetContent has
	// been called, surviving evaluator rebuilds.
	content    rollgrid.ContentLayer
	hasContent bool
}

// NewSoftwareRenderer creates a CPU-based frame renderer. The options
// are applied to every evaluator the renderer builds.
func NewSoftwareRenderer(opts ...rollgrid.Option) *SoftwareRenderer {
	return &SoftwareRenderer{opts: opts}
}

// Render evaluates one frame and writes it to the target.
//
// Returns an error if the target is GPU-only (no Pixels() support) or
// the frame parameters fail validation.
func (r *SoftwareRenderer) Render(target RenderTarget, params rollgrid.FrameParams) error {
	if target == nil {
		return errNilTarget
	}
	pixels := target.Pixels()
	if pixels == nil {
		return errNoCPUAccess
	}

	r.ensureFrame(target.Width(), target.Height())

	if err := r.frame.RenderFrame(r.buf, params); err != nil {
		return err
	}

	lt, ok := target.(LayeredTarget)
	if !ok {
		if err := r.frame.DrawPlayhead(r.buf, params); err != nil {
			return err
		}
		copyPixels(pixels, target.Stride(), r.buf)
		return nil
	}

	// Background onto the base layer, playhead onto its own overlay.
	copyPixels(pixels, target.Stride(), r.buf)

	overlay := lt.GetLayer(PlayheadZ)
	if overlay == nil {
		created, err := lt.CreateLayer(PlayheadZ)
		if err != nil {
			return err
		}
		overlay = created
	}
	if overlay.Pixels() == nil {
		return errNoCPUAccess
	}

	r.overlay.Clear(rollgrid.RGBA{})
	if err := r.frame.DrawPlayhead(r.overlay, params); err != nil {
		return err
	}
	copyPixels(overlay.Pixels(), overlay.Stride(), r.overlay)

	lt.Composite()
	return nil
}

// Flush is a no-op: software evaluation completes before Render returns.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// SetContent swaps the content layer blended into subsequent frames.
// Pass nil to remove the layer.
func (r *SoftwareRenderer) SetContent(c rollgrid.ContentLayer) {
	r.content = c
	r.hasContent = true
	if r.frame != nil {
		r.frame.SetContent(c)
	}
}

// Close releases the worker pool backing frame evaluation.
// The renderer must not be used after Close.
func (r *SoftwareRenderer) Close() {
	if r.frame != nil {
		r.frame.Close()
		r.frame = nil
	}
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                   false,
		SupportsOverlays:        true,
		SupportsContentSampling: true,
		MaxTextureSize:          0,
	}
}

// ensureFrame rebuilds the evaluator and scratch pixmaps when the
// target size changes.
func (r *SoftwareRenderer) ensureFrame(width, height int) {
	if r.frame != nil && r.lastWidth == width && r.lastHeight == height {
		return
	}
	if r.frame != nil {
		r.frame.Close()
	}
	r.frame = rollgrid.NewRenderer(width, height, r.opts...)
	if r.hasContent {
		r.frame.SetContent(r.content)
	}
	r.buf = rollgrid.NewPixmap(width, height)
	r.overlay = rollgrid.NewPixmap(width, height)
	r.lastWidth = width
	r.lastHeight = height
}

// copyPixels copies a pixmap into a pixel buffer row by row, honoring
// the destination stride.
func copyPixels(dst []byte, dstStride int, src *rollgrid.Pixmap) {
	if dstStride == src.Stride() {
		copy(dst, src.Data())
		return
	}
	row := src.Width() * 4
	for y := 0; y < src.Height(); y++ {
		copy(dst[y*dstStride:y*dstStride+row], src.Data()[y*src.Stride():y*src.Stride()+row])
	}
}

// Ensure SoftwareRenderer implements Renderer and CapableRenderer.
var (
	_ Renderer        = (*SoftwareRenderer)(nil)
	_ CapableRenderer = (*SoftwareRenderer)(nil)
)
