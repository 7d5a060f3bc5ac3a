// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rollgrid"
)

// constLayer is a uniform content field used to probe compositing.
type constLayer float64

func (c constLayer) Intensity(u, v float64) float64 { return float64(c) }

func testParams() rollgrid.FrameParams {
	return rollgrid.FrameParams{
		View:  rollgrid.ViewParams{Pan: rollgrid.Pt(0.25, 3), Zoom: rollgrid.Pt(2, 24)},
		Tempo: rollgrid.TempoParams{BPM: 120, Elapsed: 0.5},
	}
}

func TestNewSoftwareRenderer(t *testing.T) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	if renderer == nil {
		t.Fatal("NewSoftwareRenderer() returned nil")
	}

	// Verify interface compliance.
	var _ Renderer = renderer
	var _ CapableRenderer = renderer
}

func TestSoftwareRendererMatchesCore(t *testing.T) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	target := NewPixmapTarget(16, 12)
	params := testParams()
	if err := renderer.Render(target, params); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	// The render layer must reproduce exactly what the core evaluator
	// produces for background plus playhead.
	core := rollgrid.NewRenderer(16, 12)
	defer core.Close()
	want := rollgrid.NewPixmap(16, 12)
	if err := core.RenderFrame(want, params); err != nil {
		t.Fatalf("RenderFrame() error = %v", err)
	}
	if err := core.DrawPlayhead(want, params); err != nil {
		t.Fatalf("DrawPlayhead() error = %v", err)
	}

	if !bytes.Equal(target.Pixels(), want.Data()) {
		t.Error("rendered pixels differ from core evaluator output")
	}
}

func TestSoftwareRendererNilTarget(t *testing.T) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	if err := renderer.Render(nil, testParams()); err == nil {
		t.Error("Render(nil, _) should return error")
	}
}

func TestSoftwareRendererGPUOnlyTarget(t *testing.T) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	target, err := NewTextureTarget(NullDeviceHandle{}, 64, 64, gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		t.Fatalf("NewTextureTarget() error = %v", err)
	}

	if err := renderer.Render(target, testParams()); err == nil {
		t.Error("Render() on GPU-only target should return error")
	}
}

func TestSoftwareRendererInvalidParams(t *testing.T) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	target := NewPixmapTarget(8, 8)
	params := testParams()
	params.View.Zoom = rollgrid.Pt(0, 16)

	if err := renderer.Render(target, params); err == nil {
		t.Error("Render() with zero zoom should return error")
	}
}

func TestSoftwareRendererResizesWithTarget(t *testing.T) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	small := NewPixmapTarget(8, 8)
	if err := renderer.Render(small, testParams()); err != nil {
		t.Fatalf("Render() 8x8 error = %v", err)
	}

	large := NewPixmapTarget(32, 16)
	if err := renderer.Render(large, testParams()); err != nil {
		t.Fatalf("Render() 32x16 error = %v", err)
	}
}

func TestSoftwareRendererLayeredPlayhead(t *testing.T) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	layered := NewLayeredPixmapTarget(32, 16)
	params := testParams()
	if err := renderer.Render(layered, params); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	layers := layered.Layers()
	if len(layers) != 1 || layers[0] != PlayheadZ {
		t.Fatalf("Layers() = %v, want [%d]", layers, PlayheadZ)
	}

	// The composited layered result must match the plain path, where
	// the playhead is drawn straight into the background.
	plain := NewPixmapTarget(32, 16)
	if err := renderer.Render(plain, params); err != nil {
		t.Fatalf("Render() plain error = %v", err)
	}
	if !bytes.Equal(layered.Pixels(), plain.Pixels()) {
		t.Error("composited layered output differs from plain output")
	}
}

func TestSoftwareRendererSetContent(t *testing.T) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	target := NewPixmapTarget(8, 8)
	params := testParams()
	if err := renderer.Render(target, params); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	before := target.Pixels()[0]

	renderer.SetContent(constLayer(0.3))
	if err := renderer.Render(target, params); err != nil {
		t.Fatalf("Render() with content error = %v", err)
	}
	after := target.Pixels()[0]
	if after <= before {
		t.Errorf("content layer did not brighten frame: before %d, after %d", before, after)
	}

	// The content override survives the evaluator rebuild on resize.
	large := NewPixmapTarget(16, 16)
	if err := renderer.Render(large, params); err != nil {
		t.Fatalf("Render() 16x16 error = %v", err)
	}
	comparison := NewSoftwareRenderer()
	defer comparison.Close()
	bare := NewPixmapTarget(16, 16)
	if err := comparison.Render(bare, params); err != nil {
		t.Fatalf("Render() comparison error = %v", err)
	}
	if large.Pixels()[0] <= bare.Pixels()[0] {
		t.Error("content layer lost after target resize")
	}
}

func TestSoftwareRendererFlush(t *testing.T) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	if err := renderer.Flush(); err != nil {
		t.Errorf("Flush() error = %v, want nil", err)
	}
}

func TestSoftwareRendererCapabilities(t *testing.T) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	caps := renderer.Capabilities()
	if caps.IsGPU {
		t.Error("SoftwareRenderer should not report IsGPU")
	}
	if !caps.SupportsOverlays {
		t.Error("SoftwareRenderer should support overlays")
	}
	if !caps.SupportsContentSampling {
		t.Error("SoftwareRenderer should support content sampling")
	}
}

func TestSoftwareRendererCloseIdempotent(t *testing.T) {
	renderer := NewSoftwareRenderer()

	target := NewPixmapTarget(8, 8)
	if err := renderer.Render(target, testParams()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	renderer.Close()
	renderer.Close()
}

func BenchmarkSoftwareRendererRender(b *testing.B) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	target := NewPixmapTarget(800, 600)
	params := testParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = renderer.Render(target, params)
	}
}

func BenchmarkSoftwareRendererLayered(b *testing.B) {
	renderer := NewSoftwareRenderer()
	defer renderer.Close()

	target := NewLayeredPixmapTarget(800, 600)
	params := testParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = renderer.Render(target, params)
	}
}
