package rollgrid

import "math"

// PulseMode selects the clock driving the playhead pulse.
type PulseMode int

const (
	// PulseTimeDriven breathes at a fixed period regardless of tempo.
	PulseTimeDriven PulseMode = iota

	// PulseTempoLocked expresses the oscillation phase in beats, so
	// the breathing rate follows the tempo.
	PulseTempoLocked
)

// PulseStyle configures the pulsing playhead marker: the oscillation
// clock and the dim/bright endpoints of its vertical gradient.
type PulseStyle struct {
	Mode PulseMode

	// Dim and Bright are the gradient endpoints, both variants of the
	// marker's hue. The interpolation factor rises along the marker's
	// vertical extent and breathes with the pulse, shading the marker
	// from Dim at the bottom toward Bright at the top.
	Dim    RGBA
	Bright RGBA
}

// DefaultPulseStyle returns a time-driven pulse over a warm amber
// gradient.
func DefaultPulseStyle() PulseStyle {
	return PulseStyle{
		Mode:   PulseTimeDriven,
		Dim:    RGB(0.3, 0.1, 0.05),
		Bright: RGB(1.0, 0.55, 0.2),
	}
}

// Multiplier returns the pulse brightness multiplier for the given
// clock. It stays within [0.3, 1.0]: the playhead never fully fades.
func (p PulseStyle) Multiplier(t TempoParams) float64 {
	phase := t.Elapsed
	if p.Mode == PulseTempoLocked {
		phase = t.Beats()
	}
	osc := math.Sin(phase*math.Pi*0.5)*0.5 + 0.5
	return osc*0.7 + 0.3
}

// ColorAt returns the playhead color at vertical texture coordinate v
// in [0, 1], measured from the bottom of the marker.
func (p PulseStyle) ColorAt(v float64, t TempoParams) RGBA {
	return p.Dim.Lerp(p.Bright, clamp01(v)*p.Multiplier(t))
}
