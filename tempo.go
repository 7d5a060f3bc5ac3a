package rollgrid

import "fmt"

// TempoParams is the musical clock for a frame: the tempo in beats per
// minute and the wall-clock time elapsed since transport start.
type TempoParams struct {
	// BPM is the tempo in beats per minute. Must be positive.
	BPM float64

	// Elapsed is the time since transport start, in seconds.
	Elapsed float64
}

// DefaultTempo returns a 120 BPM clock at transport start.
func DefaultTempo() TempoParams {
	return TempoParams{BPM: 120}
}

// Validate checks that the tempo parameters are usable.
func (t TempoParams) Validate() error {
	if t.BPM <= 0 {
		return fmt.Errorf("rollgrid: bpm must be positive, got %g", t.BPM)
	}
	return nil
}

// BeatDuration returns the length of one beat in seconds.
func (t TempoParams) BeatDuration() float64 {
	return 60 / t.BPM
}

// Beats returns the elapsed time expressed in beats.
func (t TempoParams) Beats() float64 {
	return t.Elapsed * t.BPM / 60
}
