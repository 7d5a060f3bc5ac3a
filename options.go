package rollgrid

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default C major shading at the stock grid tuning
//	r := rollgrid.NewRenderer(800, 600)
//
//	// Custom scale template and a tempo-locked pulse
//	r := rollgrid.NewRenderer(800, 600,
//	    rollgrid.WithScaleTemplate(custom),
//	    rollgrid.WithPulseStyle(pulse),
//	)
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	style     GridStyle
	template  ScaleTemplate
	pulse     PulseStyle
	content   ContentLayer
	placement PlacementMode
	workers   int
}

// defaultRendererOptions returns the default renderer options.
func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		style:     DefaultGridStyle(),
		template:  CMajor(),
		pulse:     DefaultPulseStyle(),
		placement: PlaceScrolling,
		workers:   0, // one per CPU
	}
}

// WithGridStyle overrides the bar and subdivision grid tuning,
// including the level-of-detail fade thresholds.
func WithGridStyle(s GridStyle) Option {
	return func(o *rendererOptions) {
		o.style = s
	}
}

// WithScaleTemplate sets the scale template driving row shading.
// The default is the C major white-key pattern.
func WithScaleTemplate(t ScaleTemplate) Option {
	return func(o *rendererOptions) {
		o.template = t
	}
}

// WithPulseStyle sets the playhead pulse configuration.
func WithPulseStyle(p PulseStyle) Option {
	return func(o *rendererOptions) {
		o.pulse = p
	}
}

// WithContent attaches a content layer composited onto the grid.
// Pass nil to render the bare grid.
//
// Example:
//
//	cv := canvas.New(512, 512)
//	r := rollgrid.NewRenderer(800, 600, rollgrid.WithContent(cv))
func WithContent(c ContentLayer) Option {
	return func(o *rendererOptions) {
		o.content = c
	}
}

// WithPlacement selects the playhead placement mode. The default
// scrolls the playhead with the view.
func WithPlacement(m PlacementMode) Option {
	return func(o *rendererOptions) {
		o.placement = m
	}
}

// WithWorkers sets the number of parallel workers used per frame.
// Zero or negative selects one worker per CPU.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}
