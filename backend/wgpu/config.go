package wgpu

import (
	"github.com/gogpu/rollgrid"
)

// Config holds configuration for creating a Renderer.
//
// The zero value is usable but plain: every row shades at the
// out-of-scale level and the playhead gradient is black. DefaultConfig
// returns the stock C major timeline instead.
type Config struct {
	// Template is the scale template driving row shading.
	Template rollgrid.ScaleTemplate

	// Style is the bar and subdivision grid tuning. A zero style is
	// replaced with rollgrid.DefaultGridStyle.
	Style rollgrid.GridStyle

	// Pulse is the playhead pulse configuration.
	Pulse rollgrid.PulseStyle

	// Placement selects the playhead placement mode.
	Placement rollgrid.PlacementMode

	// Content is the optional content layer blended into the
	// background. Nil renders the bare grid.
	Content rollgrid.ContentLayer
}

// DefaultConfig returns the stock timeline configuration: C major row
// shading, the default grid tuning, and the warm amber pulse.
func DefaultConfig() Config {
	return Config{
		Template:  rollgrid.CMajor(),
		Style:     rollgrid.DefaultGridStyle(),
		Pulse:     rollgrid.DefaultPulseStyle(),
		Placement: rollgrid.PlaceScrolling,
	}
}

// withDefaults fills in unset config fields.
func (c Config) withDefaults() Config {
	if c.Style == (rollgrid.GridStyle{}) {
		c.Style = rollgrid.DefaultGridStyle()
	}
	return c
}

// options converts the config to the root package's functional options,
// used to build the CPU fallback evaluator.
func (c Config) options() []rollgrid.Option {
	return []rollgrid.Option{
		rollgrid.WithScaleTemplate(c.Template),
		rollgrid.WithGridStyle(c.Style),
		rollgrid.WithPulseStyle(c.Pulse),
		rollgrid.WithPlacement(c.Placement),
		rollgrid.WithContent(c.Content),
	}
}
