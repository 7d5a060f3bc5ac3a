// Package canvas implements a mutable grayscale paint surface.
//
// A Canvas accumulates freehand strokes into a single-channel bitmap
// that plugs straight into the renderer as a content layer. Stroke
// coordinates are normalized to [0, 1) so painted input survives a
// resize of the backing surface.
//
// Reads never block painting: every mutation installs a fresh snapshot
// of the bitmap, so frame evaluation samples a consistent image even
// while strokes arrive from another goroutine.
package canvas

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/rollgrid"
	xdraw "golang.org/x/image/draw"
)

// Canvas is a single-channel paint surface addressed top-down, matching
// the content layer convention. The zero value is not usable; create
// one with New.
type Canvas struct {
	mu  sync.Mutex
	img atomic.Pointer[image.Gray]
}

var _ rollgrid.ContentLayer = (*Canvas)(nil)

// New creates an empty canvas with the given pixel dimensions.
// Dimensions smaller than one pixel are clamped to one.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{}
	c.img.Store(image.NewGray(image.Rect(0, 0, width, height)))
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Load().Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Load().Bounds().Dy()
}

// Stroke paints a straight line between two points given in normalized
// coordinates. A stroke with any endpoint outside [0, 1) is discarded
// whole and logged at debug level.
func (c *Canvas) Stroke(x0, y0, x1, y1 float64) {
	if x0 < 0 || y0 < 0 || x1 < 0 || y1 < 0 ||
		x0 >= 1 || y0 >= 1 || x1 >= 1 || y1 >= 1 {
		rollgrid.Logger().Debug("stroke outside canvas rejected",
			"x0", x0, "y0", y0, "x1", x1, "y1", y1)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := cloneGray(c.img.Load())
	w := float64(next.Bounds().Dx())
	h := float64(next.Bounds().Dy())
	drawLine(next, int(x0*w), int(y0*h), int(x1*w), int(y1*h))
	c.img.Store(next)
}

// Clear resets every pixel to zero intensity, keeping the dimensions.
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.img.Load().Bounds()
	c.img.Store(image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy())))
}

// Resize resamples the painted content to the new dimensions with
// bilinear filtering. Dimensions smaller than one pixel leave the
// canvas unchanged.
func (c *Canvas) Resize(width, height int) {
	if width < 1 || height < 1 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cur := c.img.Load()
	next := image.NewGray(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(next, next.Bounds(), cur, cur.Bounds(), xdraw.Src, nil)
	c.img.Store(next)
}

// Intensity returns the normalized painted value at (u, v), with v = 0
// addressing the top row. It is safe for concurrent use with painting
// and samples one consistent snapshot per call.
func (c *Canvas) Intensity(u, v float64) float64 {
	img := c.img.Load()
	b := img.Bounds()
	x := clampInt(int(u*float64(b.Dx())), 0, b.Dx()-1)
	y := clampInt(int(v*float64(b.Dy())), 0, b.Dy()-1)
	return float64(img.GrayAt(x, y).Y) / 255
}

// Image returns a copy of the current canvas contents.
func (c *Canvas) Image() *image.Gray {
	return cloneGray(c.img.Load())
}

// drawLine rasterizes the segment with Bresenham's algorithm, writing
// full intensity at every covered pixel including both endpoints.
func drawLine(img *image.Gray, x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)
	err := dx - dy

	x, y := x0, y0
	for {
		img.Pix[img.PixOffset(x, y)] = 255

		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func cloneGray(src *image.Gray) *image.Gray {
	dst := image.NewGray(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
