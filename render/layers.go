// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"

	"github.com/gogpu/gputypes"
)

// PlayheadZ is the z-order renderers use for the playhead overlay on
// layered targets. Host layers below this value sit under the playhead;
// place tooltips or drag previews above it.
const PlayheadZ = 100

// LayeredTarget supports z-ordered overlay layers on top of the
// background frame.
//
// A timeline view is naturally layered: the shaded background at the
// bottom, note and selection overlays from the host in the middle, and
// the playhead on top. LayeredTarget extends RenderTarget with layer
// management so each of those can be drawn independently and composited
// once per frame. Layers render in ascending z-order.
type LayeredTarget interface {
	RenderTarget

	// CreateLayer creates a new layer at the specified z-order.
	// Higher z values are rendered on top of lower values.
	// Returns an error if a layer with the same z-order already exists.
	CreateLayer(z int) (RenderTarget, error)

	// GetLayer returns the layer at the given z-order, or nil if no
	// such layer exists.
	GetLayer(z int) RenderTarget

	// RemoveLayer removes a layer by z-order.
	// Returns an error if the layer does not exist.
	RemoveLayer(z int) error

	// SetLayerVisible controls layer visibility without removing it.
	// Invisible layers are not composited but retain their content.
	SetLayerVisible(z int, visible bool)

	// Layers returns all layer z-orders in render order (ascending).
	Layers() []int

	// Composite blends all visible layers onto the base target.
	// Call it after drawing to layers is complete.
	Composite()
}

// layer represents a single compositing layer.
type layer struct {
	img     *image.RGBA
	visible bool
}

// LayeredPixmapTarget is a CPU-backed implementation of LayeredTarget.
// It keeps an *image.RGBA per layer and composites them in z-order with
// source-over blending.
type LayeredPixmapTarget struct {
	base   *image.RGBA    // background frame, always visible
	layers map[int]*layer // overlay layers by z-order
	zOrder []int          // cached sorted z-order list
	width  int
	height int
}

// NewLayeredPixmapTarget creates a new layered CPU render target.
func NewLayeredPixmapTarget(width, height int) *LayeredPixmapTarget {
	return &LayeredPixmapTarget{
		base:   image.NewRGBA(image.Rect(0, 0, width, height)),
		layers: make(map[int]*layer),
		width:  width,
		height: height,
	}
}

// Width returns the target width in pixels.
func (t *LayeredPixmapTarget) Width() int {
	return t.width
}

// Height returns the target height in pixels.
func (t *LayeredPixmapTarget) Height() int {
	return t.height
}

// Format returns the pixel format (RGBA8).
func (t *LayeredPixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// TextureView returns nil as this is a CPU-only target.
func (t *LayeredPixmapTarget) TextureView() TextureView {
	return nil
}

// Pixels returns direct access to the base layer pixel data.
// Call Composite first to fold the overlays in; Pixels alone exposes
// the background frame only.
func (t *LayeredPixmapTarget) Pixels() []byte {
	return t.base.Pix
}

// Stride returns the number of bytes per row.
func (t *LayeredPixmapTarget) Stride() int {
	return t.base.Stride
}

// Image returns the base layer image. After Composite it holds the
// fully blended frame.
func (t *LayeredPixmapTarget) Image() *image.RGBA {
	return t.base
}

// CreateLayer creates a new overlay layer at the specified z-order and
// returns a RenderTarget for drawing into it.
func (t *LayeredPixmapTarget) CreateLayer(z int) (RenderTarget, error) {
	if _, exists := t.layers[z]; exists {
		return nil, fmt.Errorf("render: layer with z=%d already exists", z)
	}

	l := &layer{
		img:     image.NewRGBA(image.Rect(0, 0, t.width, t.height)),
		visible: true,
	}
	t.layers[z] = l
	t.zOrder = nil

	return NewPixmapTargetFromImage(l.img), nil
}

// GetLayer returns the RenderTarget for a specific layer, or nil if the
// layer does not exist.
func (t *LayeredPixmapTarget) GetLayer(z int) RenderTarget {
	l, exists := t.layers[z]
	if !exists {
		return nil
	}
	return NewPixmapTargetFromImage(l.img)
}

// RemoveLayer removes a layer by z-order.
func (t *LayeredPixmapTarget) RemoveLayer(z int) error {
	if _, exists := t.layers[z]; !exists {
		return fmt.Errorf("render: layer with z=%d does not exist", z)
	}

	delete(t.layers, z)
	t.zOrder = nil

	return nil
}

// SetLayerVisible controls layer visibility.
func (t *LayeredPixmapTarget) SetLayerVisible(z int, visible bool) {
	if l, exists := t.layers[z]; exists {
		l.visible = visible
	}
}

// Layers returns all layer z-orders in render order (ascending).
func (t *LayeredPixmapTarget) Layers() []int {
	if t.zOrder == nil {
		t.zOrder = make([]int, 0, len(t.layers))
		for z := range t.layers {
			t.zOrder = append(t.zOrder, z)
		}
		slices.Sort(t.zOrder)
	}
	result := make([]int, len(t.zOrder))
	copy(result, t.zOrder)
	return result
}

// Composite blends all visible layers onto the base target in z-order
// using source-over blending.
func (t *LayeredPixmapTarget) Composite() {
	for _, z := range t.Layers() {
		l := t.layers[z]
		if l.visible {
			draw.Draw(t.base, t.base.Bounds(), l.img, image.Point{}, draw.Over)
		}
	}
}

// Clear fills the base layer with the given color.
// Overlay layers are not affected.
func (t *LayeredPixmapTarget) Clear(c color.Color) {
	fillRGBA(t.base, c)
}

// ClearLayer fills a specific layer with a color.
// Returns an error if the layer does not exist.
func (t *LayeredPixmapTarget) ClearLayer(z int, c color.Color) error {
	l, exists := t.layers[z]
	if !exists {
		return fmt.Errorf("render: layer with z=%d does not exist", z)
	}

	fillRGBA(l.img, c)
	return nil
}

// Ensure LayeredPixmapTarget implements both RenderTarget and LayeredTarget.
var (
	_ RenderTarget  = (*LayeredPixmapTarget)(nil)
	_ LayeredTarget = (*LayeredPixmapTarget)(nil)
)
