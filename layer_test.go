package rollgrid

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func TestImageLayerIntensity(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(0, 0, color.Gray{Y: 255}) // top-left
	img.SetGray(1, 1, color.Gray{Y: 51})  // bottom-right

	layer := NewImageLayer(img)

	if got := layer.Intensity(0, 0); math.Abs(got-1) > 1e-9 {
		t.Errorf("Intensity(0, 0) = %g, want 1 (top-left)", got)
	}
	if got := layer.Intensity(0.75, 0.75); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Intensity(0.75, 0.75) = %g, want 0.2 (bottom-right)", got)
	}
	if got := layer.Intensity(0.75, 0); got != 0 {
		t.Errorf("Intensity(0.75, 0) = %g, want 0", got)
	}
}

func TestImageLayerClamps(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 255})
	layer := NewImageLayer(img)

	for _, uv := range [][2]float64{{-1, 0}, {0, -1}, {2, 0}, {0.5, 7}} {
		if got := layer.Intensity(uv[0], uv[1]); got != 1 {
			t.Errorf("Intensity(%g, %g) = %g, want 1", uv[0], uv[1], got)
		}
	}
}

func TestImageLayerCopiesSource(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 255})
	layer := NewImageLayer(img)

	img.SetGray(0, 0, color.Gray{Y: 0})
	if got := layer.Intensity(0, 0); got != 1 {
		t.Errorf("Intensity(0, 0) after source mutation = %g, want 1", got)
	}
}

func TestNewScaledImageLayer(t *testing.T) {
	// A solid source stays solid through resampling.
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, color.Gray{Y: 128})
		}
	}

	layer := NewScaledImageLayer(img, 3, 5)
	if got := layer.Bounds(); got.Dx() != 3 || got.Dy() != 5 {
		t.Fatalf("Bounds() = %v, want 3x5", got)
	}
	if got := layer.Intensity(0.5, 0.5); math.Abs(got-128.0/255.0) > 0.01 {
		t.Errorf("Intensity(0.5, 0.5) = %g, want about %g", got, 128.0/255.0)
	}
}
