// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewPixmapTarget(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"small", 64, 64},
		{"frame", 1280, 720},
		{"wide", 2000, 90},
		{"tall", 90, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewPixmapTarget(tt.width, tt.height)

			if target.Width() != tt.width {
				t.Errorf("Width() = %d, want %d", target.Width(), tt.width)
			}
			if target.Height() != tt.height {
				t.Errorf("Height() = %d, want %d", target.Height(), tt.height)
			}
			if target.Format() != gputypes.TextureFormatRGBA8Unorm {
				t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
			}
			if target.TextureView() != nil {
				t.Error("TextureView() should be nil for CPU target")
			}
			if target.Pixels() == nil {
				t.Error("Pixels() should not be nil for CPU target")
			}
			if target.Stride() != tt.width*4 {
				t.Errorf("Stride() = %d, want %d", target.Stride(), tt.width*4)
			}
		})
	}
}

func TestPixmapTargetFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 80))
	img.SetRGBA(30, 40, color.RGBA{255, 0, 0, 255})

	target := NewPixmapTargetFromImage(img)

	if target.Width() != 120 || target.Height() != 80 {
		t.Errorf("dimensions = %dx%d, want 120x80", target.Width(), target.Height())
	}

	r, g, b, a := target.GetPixel(30, 40).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("GetPixel(30, 40) = (%d, %d, %d, %d), want red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestPixmapTargetClear(t *testing.T) {
	target := NewPixmapTarget(10, 10)
	target.Clear(color.RGBA{0, 0, 255, 255})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			pixel := target.GetPixel(x, y).(color.RGBA)
			if pixel.R != 0 || pixel.G != 0 || pixel.B != 255 || pixel.A != 255 {
				t.Fatalf("Pixel at (%d, %d) = %v, want blue", x, y, pixel)
			}
		}
	}
}

func TestPixmapTargetSetGetPixel(t *testing.T) {
	target := NewPixmapTarget(64, 64)

	tests := []struct {
		x, y int
		c    color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{63, 63, color.RGBA{0, 255, 0, 255}},
		{32, 16, color.RGBA{0, 0, 255, 255}},
	}

	for _, tt := range tests {
		target.SetPixel(tt.x, tt.y, tt.c)
		got := target.GetPixel(tt.x, tt.y).(color.RGBA)

		if got != tt.c {
			t.Errorf("GetPixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.c)
		}
	}
}

func TestPixmapTargetResize(t *testing.T) {
	target := NewPixmapTarget(100, 100)
	target.SetPixel(50, 50, color.RGBA{255, 0, 0, 255})

	target.Resize(200, 150)

	if target.Width() != 200 || target.Height() != 150 {
		t.Errorf("dimensions after Resize = %dx%d, want 200x150", target.Width(), target.Height())
	}

	// Contents are not preserved across a resize.
	pixel := target.GetPixel(50, 50).(color.RGBA)
	if pixel.A != 0 {
		t.Errorf("pixel after resize = %v, want transparent", pixel)
	}
}

func TestPixmapTargetImage(t *testing.T) {
	target := NewPixmapTarget(40, 30)
	target.Clear(color.White)

	img := target.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Errorf("Image bounds = %v, want (40, 30)", img.Bounds())
	}

	// The image shares memory with the target.
	img.SetRGBA(10, 10, color.RGBA{255, 0, 0, 255})
	pixel := target.GetPixel(10, 10).(color.RGBA)
	if pixel.R != 255 {
		t.Error("Image and target should share memory")
	}
}

func TestTextureTarget(t *testing.T) {
	target, err := NewTextureTarget(NullDeviceHandle{}, 512, 256, gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		t.Fatalf("NewTextureTarget() error = %v", err)
	}

	if target.Width() != 512 || target.Height() != 256 {
		t.Errorf("dimensions = %dx%d, want 512x256", target.Width(), target.Height())
	}
	if target.Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
	}
	if target.Pixels() != nil {
		t.Error("Pixels() should be nil for GPU target")
	}
	if target.Stride() != 0 {
		t.Errorf("Stride() = %d, want 0 for GPU target", target.Stride())
	}

	// Destroy without an attached view must not panic.
	target.Destroy()
}

func TestTextureTargetNilHandle(t *testing.T) {
	if _, err := NewTextureTarget(nil, 64, 64, gputypes.TextureFormatRGBA8Unorm); err == nil {
		t.Error("NewTextureTarget(nil, ...) should return error")
	}
}

func TestSurfaceTarget(t *testing.T) {
	target := NewSurfaceTarget(800, 600, gputypes.TextureFormatBGRA8Unorm, nil)

	if target.Width() != 800 || target.Height() != 600 {
		t.Errorf("dimensions = %dx%d, want 800x600", target.Width(), target.Height())
	}
	if target.Format() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format() = %v, want BGRA8Unorm", target.Format())
	}
	if target.Pixels() != nil {
		t.Error("Pixels() should be nil for surface target")
	}
}

func TestRenderTargetInterface(t *testing.T) {
	textureTarget, _ := NewTextureTarget(NullDeviceHandle{}, 100, 100, gputypes.TextureFormatRGBA8Unorm)
	targets := []RenderTarget{
		NewPixmapTarget(100, 100),
		textureTarget,
		NewSurfaceTarget(100, 100, gputypes.TextureFormatBGRA8Unorm, nil),
		NewLayeredPixmapTarget(100, 100),
	}

	for i, target := range targets {
		if target.Width() != 100 {
			t.Errorf("target[%d].Width() = %d, want 100", i, target.Width())
		}
		if target.Height() != 100 {
			t.Errorf("target[%d].Height() = %d, want 100", i, target.Height())
		}
	}
}
