package rollgrid

// Shader is the per-frame parameter snapshot for background shading.
// All fields are read-only during a frame; ShadeAt is a pure function
// of the snapshot and may be called concurrently.
type Shader struct {
	View     ViewParams
	Tempo    TempoParams
	Template ScaleTemplate
	Style    GridStyle

	// Content is the optional foreground layer composited on top of
	// the grid. Nil means no contribution.
	Content ContentLayer
}

// ShadeAt computes the background color at screen UV (u, v), both in
// [0, 1] with the origin at the bottom-left.
//
// The color is white modulated by the faded bar and subdivision
// factors and the scale-row shade, with the content layer's intensity
// then added to all three channels. Alpha is fixed at 1.
func (s Shader) ShadeAt(u, v float64) RGBA {
	return s.shadeAt(u, v, s.Style.Level(s.View.Zoom.X))
}

// shadeAt is ShadeAt with the per-frame grid level hoisted out of the
// pixel loop.
func (s Shader) shadeAt(u, v float64, level GridLevel) RGBA {
	world := s.View.WorldAt(Pt(u, v))

	factor := s.Style.Factor(world.X, s.Tempo.BPM, s.View.Zoom.X, level)
	shade := s.Template.Shade(world.Y)

	c := White.Scale(factor * shade)
	if s.Content != nil {
		// The content layer is stored top-down; flip the bottom-up
		// screen coordinate before sampling.
		c = c.AddIntensity(s.Content.Intensity(u, 1-v))
	}
	return c.Clamp()
}
