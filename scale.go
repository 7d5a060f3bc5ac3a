package rollgrid

import "math"

// TemplateSize is the number of pitch classes in a scale template.
const TemplateSize = 12

// SampleMode selects how a scale template is sampled between entries.
type SampleMode int

const (
	// SampleNearest snaps each pitch to the template entry whose row
	// contains it, giving hard edges between rows.
	SampleNearest SampleMode = iota

	// SampleLinear interpolates between adjacent entries, wrapping
	// from the last entry back to the first across the octave seam.
	SampleLinear
)

// ScaleTemplate assigns a shading weight to each of the twelve pitch
// classes of an octave. Sampling is periodic: pitch rows repeat the
// template every octave in both directions, negative rows included.
type ScaleTemplate struct {
	// Weights holds one weight per pitch class, index 0 the root.
	// Weights are typically in [0, 1].
	Weights [TemplateSize]float64

	// Offset shifts the template root by the given number of pitch
	// rows before sampling.
	Offset float64

	// Mode selects nearest or linear sampling.
	Mode SampleMode
}

// CMajor returns the template marking the white keys of a C major
// octave with weight 1 and the black keys with weight 0.
func CMajor() ScaleTemplate {
	return ScaleTemplate{
		Weights: [TemplateSize]float64{1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1},
	}
}

// Weight samples the template at a fractional pitch row.
func (t ScaleTemplate) Weight(pitch float64) float64 {
	u := (pitch + t.Offset) / TemplateSize
	u -= math.Floor(u)
	pos := u * TemplateSize

	if t.Mode == SampleLinear {
		i0 := int(pos) % TemplateSize
		i1 := (i0 + 1) % TemplateSize
		f := pos - math.Floor(pos)
		w0 := t.Weights[i0]
		w1 := t.Weights[i1]
		return w0 + (w1-w0)*f
	}

	i := int(pos)
	if i >= TemplateSize {
		i = TemplateSize - 1
	}
	return t.Weights[i]
}

// Shade returns the background shade of the row at a fractional pitch,
// combining Weight and RowShade.
func (t ScaleTemplate) Shade(pitch float64) float64 {
	return RowShade(t.Weight(pitch))
}

const (
	rowShadeBase = 0.2
	rowShadeGain = 0.05
)

// RowShade converts a template weight to a background shade level.
// Weight 0 gives 0.2 and weight 1 gives 0.25, so in-scale rows read
// slightly brighter than out-of-scale rows.
func RowShade(w float64) float64 {
	return rowShadeBase + w*rowShadeGain
}
