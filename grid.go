package rollgrid

import (
	"fmt"
	"math"
)

// Stripe dim levels: the dark half of a bar stripe and the marker band
// of a subdivision stripe.
const (
	barDimLevel         = 0.9
	subdivisionDimLevel = 0.8
)

// GridStyle configures the tempo-driven bar and subdivision grid.
//
// Rates are cycles per unit of x*BPM, so stripe frequency follows the
// tempo directly. Both stripe functions are hard-edged binary toggles;
// the level-of-detail fade is a separate blend toward 1.0 applied on
// top, never a softening of the stripe edge itself.
type GridStyle struct {
	// BarRate is the bar stripe frequency factor. The default of
	// 1/120 gives one light/dark cycle per two beats.
	BarRate float64

	// SubdivisionRate is the subdivision marker frequency factor,
	// by default eight times the bar rate.
	SubdivisionRate float64

	// SubdivisionWidth is the marker band width as a fraction of a
	// subdivision cycle. It is scaled by the horizontal zoom before
	// the phase comparison so the marker stays near one pixel wide
	// on screen.
	SubdivisionWidth float64

	// BarFadeDivisor and BarFadeBias shape the bar fade ramp
	// clamp(zoomX/divisor - bias, 0, 1). At ramp value 1 the bar
	// stripe is fully washed out.
	BarFadeDivisor float64
	BarFadeBias    float64

	// SubdivisionFadeDivisor and SubdivisionFadeBias shape the
	// subdivision fade ramp. The defaults wash subdivisions out well
	// before bars as the view zooms out.
	SubdivisionFadeDivisor float64
	SubdivisionFadeBias    float64
}

// DefaultGridStyle returns the grid tuning used by the reference
// timeline: bar stripes alternating every beat, eightfold subdivision
// markers, and fade ramps that retire subdivisions first.
func DefaultGridStyle() GridStyle {
	return GridStyle{
		BarRate:                1.0 / 120.0,
		SubdivisionRate:        8.0 / 120.0,
		SubdivisionWidth:       0.01,
		BarFadeDivisor:         16,
		BarFadeBias:            12,
		SubdivisionFadeDivisor: 8,
		SubdivisionFadeBias:    3,
	}
}

// Validate checks that the grid style is usable.
func (s GridStyle) Validate() error {
	if s.BarRate <= 0 || s.SubdivisionRate <= 0 {
		return fmt.Errorf("rollgrid: grid rates must be positive, got bar %g subdivision %g", s.BarRate, s.SubdivisionRate)
	}
	if s.SubdivisionWidth < 0 {
		return fmt.Errorf("rollgrid: subdivision width must not be negative, got %g", s.SubdivisionWidth)
	}
	if s.BarFadeDivisor <= 0 || s.SubdivisionFadeDivisor <= 0 {
		return fmt.Errorf("rollgrid: fade divisors must be positive, got bar %g subdivision %g", s.BarFadeDivisor, s.SubdivisionFadeDivisor)
	}
	return nil
}

// GridLevel is the per-frame fade position of each gridline class,
// derived from the horizontal zoom. 0 leaves the stripe fully visible,
// 1 washes it out completely. It is recomputed every frame and never
// stored.
type GridLevel struct {
	Bar         float64
	Subdivision float64
}

// Level computes the fade position of both gridline classes at the
// given horizontal zoom.
func (s GridStyle) Level(zoomX float64) GridLevel {
	return GridLevel{
		Bar:         clamp01(zoomX/s.BarFadeDivisor - s.BarFadeBias),
		Subdivision: clamp01(zoomX/s.SubdivisionFadeDivisor - s.SubdivisionFadeBias),
	}
}

// BarStripe returns the raw bar stripe factor at world time x: 1.0 on
// the light half of the cycle, 0.9 on the dark half.
func (s GridStyle) BarStripe(x, bpm float64) float64 {
	if fract(x*bpm*s.BarRate) > 0.5 {
		return 1
	}
	return barDimLevel
}

// SubdivisionStripe returns the raw subdivision marker factor at world
// time x: 0.8 inside the marker band at the start of each cycle, 1.0
// elsewhere.
func (s GridStyle) SubdivisionStripe(x, bpm, zoomX float64) float64 {
	if fract(x*bpm*s.SubdivisionRate) <= s.SubdivisionWidth*zoomX {
		return subdivisionDimLevel
	}
	return 1
}

// BarFactor returns the bar stripe factor with the level-of-detail
// fade applied.
func (s GridStyle) BarFactor(x, bpm float64, level GridLevel) float64 {
	return mix(s.BarStripe(x, bpm), 1, level.Bar)
}

// SubdivisionFactor returns the subdivision marker factor with the
// level-of-detail fade applied.
func (s GridStyle) SubdivisionFactor(x, bpm, zoomX float64, level GridLevel) float64 {
	return mix(s.SubdivisionStripe(x, bpm, zoomX), 1, level.Subdivision)
}

// Factor returns the combined gridline modulation at world time x: the
// product of the faded bar and subdivision factors.
func (s GridStyle) Factor(x, bpm, zoomX float64, level GridLevel) float64 {
	return s.BarFactor(x, bpm, level) * s.SubdivisionFactor(x, bpm, zoomX, level)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

// mix blends a toward b, exact at both endpoints.
func mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
