package canvas

import (
	"sync"
	"testing"

	"github.com/gogpu/rollgrid"
)

func TestNew(t *testing.T) {
	c := New(8, 6)

	if c.Width() != 8 {
		t.Errorf("Width() = %d, want 8", c.Width())
	}
	if c.Height() != 6 {
		t.Errorf("Height() = %d, want 6", c.Height())
	}
	if n := countPainted(c); n != 0 {
		t.Errorf("new canvas has %d painted pixels, want 0", n)
	}
}

func TestNewClampsDimensions(t *testing.T) {
	c := New(0, -3)

	if c.Width() != 1 || c.Height() != 1 {
		t.Errorf("New(0, -3) = %dx%d, want 1x1", c.Width(), c.Height())
	}
}

func TestStrokeHorizontal(t *testing.T) {
	c := New(8, 8)
	c.Stroke(0, 0.5, 0.9, 0.5)

	img := c.Image()
	for x := 0; x < 8; x++ {
		if img.GrayAt(x, 4).Y != 255 {
			t.Errorf("pixel (%d, 4) = %d, want 255", x, img.GrayAt(x, 4).Y)
		}
	}
	if n := countPainted(c); n != 8 {
		t.Errorf("painted %d pixels, want 8", n)
	}
}

func TestStrokeVertical(t *testing.T) {
	c := New(8, 8)
	c.Stroke(0.25, 0, 0.25, 0.9)

	img := c.Image()
	for y := 0; y < 8; y++ {
		if img.GrayAt(2, y).Y != 255 {
			t.Errorf("pixel (2, %d) = %d, want 255", y, img.GrayAt(2, y).Y)
		}
	}
	if n := countPainted(c); n != 8 {
		t.Errorf("painted %d pixels, want 8", n)
	}
}

func TestStrokeDiagonal(t *testing.T) {
	c := New(8, 8)
	c.Stroke(0, 0, 0.875, 0.875)

	img := c.Image()
	for i := 0; i < 8; i++ {
		if img.GrayAt(i, i).Y != 255 {
			t.Errorf("pixel (%d, %d) = %d, want 255", i, i, img.GrayAt(i, i).Y)
		}
	}
	if n := countPainted(c); n != 8 {
		t.Errorf("painted %d pixels, want 8", n)
	}
}

func TestStrokeSinglePoint(t *testing.T) {
	c := New(8, 8)
	c.Stroke(0.5, 0.5, 0.5, 0.5)

	if got := c.Image().GrayAt(4, 4).Y; got != 255 {
		t.Errorf("pixel (4, 4) = %d, want 255", got)
	}
	if n := countPainted(c); n != 1 {
		t.Errorf("painted %d pixels, want 1", n)
	}
}

func TestStrokeRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
	}{
		{"negative start x", -0.1, 0.5, 0.5, 0.5},
		{"negative start y", 0.5, -0.1, 0.5, 0.5},
		{"negative end x", 0.5, 0.5, -0.01, 0.5},
		{"negative end y", 0.5, 0.5, 0.5, -1},
		{"start x at one", 1.0, 0.5, 0.5, 0.5},
		{"end y at one", 0.5, 0.5, 0.5, 1.0},
		{"end x beyond one", 0.5, 0.5, 1.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(8, 8)
			c.Stroke(tt.x0, tt.y0, tt.x1, tt.y1)

			if n := countPainted(c); n != 0 {
				t.Errorf("painted %d pixels, want 0", n)
			}
		})
	}
}

func TestClear(t *testing.T) {
	c := New(8, 8)
	c.Stroke(0, 0.5, 0.9, 0.5)
	c.Clear()

	if n := countPainted(c); n != 0 {
		t.Errorf("painted %d pixels after Clear, want 0", n)
	}
	if c.Width() != 8 || c.Height() != 8 {
		t.Errorf("dimensions after Clear = %dx%d, want 8x8", c.Width(), c.Height())
	}
}

func TestResizePreservesContent(t *testing.T) {
	c := New(4, 4)
	c.Stroke(0, 0.5, 0.9, 0.5)
	c.Resize(8, 8)

	if c.Width() != 8 || c.Height() != 8 {
		t.Fatalf("dimensions after Resize = %dx%d, want 8x8", c.Width(), c.Height())
	}

	// The stroked band lands in the vertical middle after resampling.
	band := c.Intensity(0.5, 0.56)
	edge := c.Intensity(0.5, 0.06)
	if band < 0.3 {
		t.Errorf("Intensity at band = %g, want > 0.3", band)
	}
	if edge > 0.1 {
		t.Errorf("Intensity at edge = %g, want < 0.1", edge)
	}
}

func TestResizeIgnoresInvalid(t *testing.T) {
	c := New(4, 4)
	c.Resize(0, 8)

	if c.Width() != 4 || c.Height() != 4 {
		t.Errorf("dimensions after Resize(0, 8) = %dx%d, want 4x4", c.Width(), c.Height())
	}
}

func TestIntensityClampsCoordinates(t *testing.T) {
	c := New(4, 4)
	c.Stroke(0.8, 0.8, 0.8, 0.8)

	if got := c.Intensity(0.9, 0.9); got != 1 {
		t.Errorf("Intensity(0.9, 0.9) = %g, want 1", got)
	}
	if got := c.Intensity(1.5, 1.5); got != 1 {
		t.Errorf("Intensity(1.5, 1.5) = %g, want 1 (clamped to corner)", got)
	}
	if got := c.Intensity(-0.5, -0.5); got != 0 {
		t.Errorf("Intensity(-0.5, -0.5) = %g, want 0", got)
	}
}

func TestIntensityConcurrentWithPainting(t *testing.T) {
	c := New(32, 32)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			p := float64(i%30) / 32
			c.Stroke(p, 0.1, p, 0.9)
		}
		close(stop)
	}()

	for sampling := true; sampling; {
		select {
		case <-stop:
			sampling = false
		default:
		}
		if v := c.Intensity(0.5, 0.5); v < 0 || v > 1 {
			t.Fatalf("Intensity out of range: %g", v)
		}
	}
	wg.Wait()

	if n := countPainted(c); n == 0 {
		t.Error("no pixels painted after concurrent strokes")
	}
}

func TestImageReturnsCopy(t *testing.T) {
	c := New(4, 4)

	img := c.Image()
	img.Pix[0] = 200

	if got := c.Intensity(0, 0); got != 0 {
		t.Errorf("Intensity(0, 0) = %g after mutating copy, want 0", got)
	}
}

func TestCanvasFeedsRenderer(t *testing.T) {
	c := New(8, 8)
	c.Stroke(0.5, 0.25, 0.5, 0.25)

	r := rollgrid.NewRenderer(8, 8, rollgrid.WithContent(c))
	defer r.Close()

	dst := rollgrid.NewPixmap(8, 8)
	params := rollgrid.FrameParams{View: rollgrid.DefaultView(), Tempo: rollgrid.DefaultTempo()}
	if err := r.RenderFrame(dst, params); err != nil {
		t.Fatalf("RenderFrame() error = %v", err)
	}

	// Canvas pixel (4, 2) maps onto frame pixel (4, 2): the canvas is
	// top-down and the compositor flips its bottom-up coordinate.
	painted := dst.GetPixel(4, 2)
	background := dst.GetPixel(6, 2)
	if painted.R <= background.R {
		t.Errorf("painted R = %g, background R = %g, want painted brighter", painted.R, background.R)
	}
}

func countPainted(c *Canvas) int {
	n := 0
	for _, p := range c.Image().Pix {
		if p != 0 {
			n++
		}
	}
	return n
}
