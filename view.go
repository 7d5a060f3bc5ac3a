package rollgrid

import "fmt"

// ViewParams describes the pan/zoom viewport that maps screen UV
// coordinates onto the world (time, pitch) plane.
//
// The forward transform is a single multiply-add on screen UV:
//
//	world = uv*Zoom + Pan
//
// Zoom is therefore the visible world extent: Zoom.X is the number of
// world seconds spanned by the screen width, Zoom.Y the number of pitch
// rows spanned by the screen height. Larger zoom shows more world, not
// less. The inverse map used for vertex placement is the exact
// algebraic inverse, uv = (world - Pan)/Zoom, so fragment shading and
// vertex placement always agree on where world coordinates land.
type ViewParams struct {
	// Pan is the world coordinate visible at the bottom-left corner
	// of the screen.
	Pan Point

	// Zoom is the world extent spanned by the full screen on each
	// axis. Both components must be positive.
	Zoom Point
}

// DefaultView returns a view spanning one second of time and sixteen
// pitch rows, anchored at the world origin.
func DefaultView() ViewParams {
	return ViewParams{Zoom: Pt(1, 16)}
}

// Validate checks that the view parameters are usable.
func (v ViewParams) Validate() error {
	if v.Zoom.X <= 0 || v.Zoom.Y <= 0 {
		return fmt.Errorf("rollgrid: zoom must be positive on both axes, got (%g, %g)", v.Zoom.X, v.Zoom.Y)
	}
	return nil
}

// WorldAt maps a screen UV coordinate to world space.
func (v ViewParams) WorldAt(uv Point) Point {
	return uv.MulXY(v.Zoom).Add(v.Pan)
}

// UVAt maps a world coordinate back to screen UV space.
func (v ViewParams) UVAt(world Point) Point {
	return world.Sub(v.Pan).DivXY(v.Zoom)
}

// NDCAt maps a world coordinate to normalized device coordinates with
// both axes in [-1, 1].
func (v ViewParams) NDCAt(world Point) Point {
	return v.UVAt(world).Mul(2).Sub(Pt(1, 1))
}
