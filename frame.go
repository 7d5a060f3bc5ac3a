package rollgrid

import (
	"fmt"

	"github.com/gogpu/rollgrid/internal/parallel"
)

// FrameParams is the per-frame parameter snapshot supplied by the
// host: the view and the tempo clock. The renderer's scale template,
// grid style, pulse, and content layer are fixed at construction.
type FrameParams struct {
	View  ViewParams
	Tempo TempoParams
}

// Validate checks the frame parameters.
func (p FrameParams) Validate() error {
	if err := p.View.Validate(); err != nil {
		return err
	}
	return p.Tempo.Validate()
}

// Renderer evaluates timeline background frames on the CPU, splitting
// each frame into row bands executed on a worker pool.
//
// A Renderer is safe for concurrent RenderFrame calls with distinct
// destination pixmaps; the per-frame snapshot is read-only while a
// frame is shaded.
type Renderer struct {
	width  int
	height int

	opts rendererOptions
	pool *parallel.WorkerPool
}

// NewRenderer creates a renderer producing width x height frames.
func NewRenderer(width, height int, opts ...Option) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		width:  width,
		height: height,
		opts:   o,
		pool:   parallel.NewWorkerPool(o.workers),
	}

	Logger().Debug("renderer created",
		"width", width, "height", height, "workers", r.pool.Workers())

	return r
}

// Width returns the frame width in pixels.
func (r *Renderer) Width() int { return r.width }

// Height returns the frame height in pixels.
func (r *Renderer) Height() int { return r.height }

// SetContent replaces the content layer for subsequent frames. Must
// not be called while a frame is rendering.
func (r *Renderer) SetContent(c ContentLayer) {
	r.opts.content = c
}

// Close releases the renderer's worker pool. The renderer must not be
// used after Close.
func (r *Renderer) Close() {
	r.pool.Close()
}

// RenderFrame shades a full background frame into dst using the given
// parameters. dst must match the renderer's dimensions.
func (r *Renderer) RenderFrame(dst *Pixmap, params FrameParams) error {
	if dst == nil {
		return fmt.Errorf("rollgrid: nil destination pixmap")
	}
	if dst.Width() != r.width || dst.Height() != r.height {
		return fmt.Errorf("rollgrid: destination is %dx%d, renderer is %dx%d",
			dst.Width(), dst.Height(), r.width, r.height)
	}
	if err := params.Validate(); err != nil {
		return err
	}
	if err := r.opts.style.Validate(); err != nil {
		return err
	}

	shader := r.shader(params)
	level := shader.Style.Level(shader.View.Zoom.X)

	// Oversubscribe bands so stealing can even out content hot spots.
	bands := parallel.Bands(r.height, r.pool.Workers()*4)
	work := make([]func(), len(bands))
	for i, band := range bands {
		b := band
		work[i] = func() {
			r.shadeBand(dst, shader, level, b)
		}
	}
	r.pool.ExecuteAll(work)

	return nil
}

// shader assembles the per-frame shading snapshot.
func (r *Renderer) shader(params FrameParams) Shader {
	return Shader{
		View:     params.View,
		Tempo:    params.Tempo,
		Template: r.opts.template,
		Style:    r.opts.style,
		Content:  r.opts.content,
	}
}

// shadeBand fills one band of rows. Pixels sample at their centers;
// screen v rises from the bottom of the frame while pixmap rows run
// from the top.
func (r *Renderer) shadeBand(dst *Pixmap, shader Shader, level GridLevel, band parallel.Band) {
	data := dst.Data()
	w := float64(r.width)
	h := float64(r.height)

	for py := band.Y0; py < band.Y1; py++ {
		v := 1 - (float64(py)+0.5)/h
		i := py * dst.Stride()
		for px := 0; px < r.width; px++ {
			u := (float64(px) + 0.5) / w
			c := shader.shadeAt(u, v, level)
			data[i+0] = uint8(clamp255(c.R * 255))
			data[i+1] = uint8(clamp255(c.G * 255))
			data[i+2] = uint8(clamp255(c.B * 255))
			data[i+3] = uint8(clamp255(c.A * 255))
			i += 4
		}
	}
}

// DrawPlayhead overlays the pulsing playhead marker onto dst at the
// position selected by the frame parameters and the renderer's
// placement mode. The marker is a two pixel wide vertical line shading
// from the pulse gradient's dim end at the bottom to its bright end at
// the top. A marker outside the frame is skipped.
func (r *Renderer) DrawPlayhead(dst *Pixmap, params FrameParams) error {
	if dst == nil {
		return fmt.Errorf("rollgrid: nil destination pixmap")
	}
	if err := params.Validate(); err != nil {
		return err
	}

	line := PlayheadLine(params.View, params.Tempo, r.opts.placement)
	x := int((line[0].Pos.X*0.5 + 0.5) * float64(r.width))
	if x < 0 || x >= r.width {
		return nil
	}

	h := float64(r.height)
	for py := 0; py < r.height; py++ {
		v := 1 - (float64(py)+0.5)/h
		c := r.opts.pulse.ColorAt(v, params.Tempo)
		dst.SetPixel(x, py, c)
		dst.SetPixel(x+1, py, c)
	}
	return nil
}
