// Package parallel provides the row-band worker pool used for frame
// evaluation.
//
// A frame is split into horizontal bands of pixel rows that are shaded
// independently: every pixel is a pure function of the frame's
// read-only parameter snapshot, so bands share nothing and need no
// locking. Bands are submitted to a WorkerPool whose workers steal
// from each other when idle.
package parallel

// Band is a half-open range [Y0, Y1) of pixel rows shaded as one unit.
type Band struct {
	Y0, Y1 int
}

// Height returns the number of rows in the band.
func (b Band) Height() int { return b.Y1 - b.Y0 }

// Bands partitions height pixel rows into at most count bands of near
// equal size; earlier bands are at most one row taller. It returns nil
// if height or count is not positive.
func Bands(height, count int) []Band {
	if height <= 0 || count <= 0 {
		return nil
	}
	if count > height {
		count = height
	}

	bands := make([]Band, 0, count)
	base := height / count
	extra := height % count

	y := 0
	for i := 0; i < count; i++ {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}
