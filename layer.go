package rollgrid

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// ContentLayer is a read-only scalar intensity field sampled by the
// compositor. Coordinates are normalized to [0, 1] per axis in the
// layer's own image convention: v = 0 addresses the top row. The
// compositor flips its bottom-up screen coordinate before sampling, so
// externally produced content keeps its usual orientation.
//
// Implementations must be safe for concurrent reads; the compositor
// samples from multiple goroutines during a frame.
type ContentLayer interface {
	Intensity(u, v float64) float64
}

// ImageLayer samples a grayscale image as a content layer. Pixels are
// read with nearest sampling; out-of-range coordinates clamp to the
// image edge.
type ImageLayer struct {
	img *image.Gray
}

// NewImageLayer converts src to grayscale and wraps it as a content
// layer. The source is copied; mutating src afterwards does not affect
// the layer.
func NewImageLayer(src image.Image) *ImageLayer {
	b := src.Bounds()
	img := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &ImageLayer{img: img}
}

// NewScaledImageLayer converts src to grayscale and resamples it to
// w x h with bilinear filtering before wrapping it as a content layer.
func NewScaledImageLayer(src image.Image, w, h int) *ImageLayer {
	img := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(img, img.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return &ImageLayer{img: img}
}

// Intensity returns the normalized grayscale value at (u, v), with
// v = 0 addressing the top row.
func (l *ImageLayer) Intensity(u, v float64) float64 {
	b := l.img.Bounds()
	if b.Empty() {
		return 0
	}
	x := clampInt(int(u*float64(b.Dx())), 0, b.Dx()-1)
	y := clampInt(int(v*float64(b.Dy())), 0, b.Dy()-1)
	return float64(l.img.GrayAt(b.Min.X+x, b.Min.Y+y).Y) / 255
}

// Bounds returns the pixel bounds of the underlying image.
func (l *ImageLayer) Bounds() image.Rectangle {
	return l.img.Bounds()
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
