package rollgrid

// ClipPos is a homogeneous clip-space position. W is always 1 for the
// flat timeline geometry this library places.
type ClipPos struct {
	X, Y, Z, W float64
}

// PlacementMode selects how the horizontal axis of a vertex is placed.
type PlacementMode int

const (
	// PlaceScrolling maps the vertex through the view transform, so
	// it scrolls and zooms with the grid.
	PlaceScrolling PlacementMode = iota

	// PlaceFixedTime pins the horizontal axis directly to the elapsed
	// time, independent of pan and zoom, for a playhead that sweeps
	// clip space itself. The vertical coordinate passes through
	// unchanged and must already be in clip space.
	PlaceFixedTime
)

// PlaceVertex computes the clip-space position of a world-space point
// under the given view and placement mode.
func PlaceVertex(world Point, view ViewParams, tempo TempoParams, mode PlacementMode) ClipPos {
	if mode == PlaceFixedTime {
		return ClipPos{X: tempo.Elapsed, Y: world.Y, W: 1}
	}
	ndc := view.NDCAt(world)
	return ClipPos{X: ndc.X, Y: ndc.Y, W: 1}
}

// PlayheadVertex is one endpoint of the playhead marker line: a
// clip-space position plus the vertical texture coordinate feeding the
// pulse gradient.
type PlayheadVertex struct {
	Pos ClipPos
	V   float64
}

// PlayheadLine places the two endpoints of the vertical playhead
// marker. The marker spans the full clip-space height; its horizontal
// position is the view-mapped elapsed time when scrolling, or the raw
// elapsed time when fixed.
func PlayheadLine(view ViewParams, tempo TempoParams, mode PlacementMode) [2]PlayheadVertex {
	x := tempo.Elapsed
	if mode == PlaceScrolling {
		x = view.NDCAt(Pt(tempo.Elapsed, 0)).X
	}

	var line [2]PlayheadVertex
	for i, y := range [...]float64{-1, 1} {
		line[i] = PlayheadVertex{
			Pos: ClipPos{X: x, Y: y, W: 1},
			V:   y*0.5 + 0.5,
		}
	}
	return line
}
