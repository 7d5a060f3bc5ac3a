// Package rollgrid renders the background of a scrolling, zoomable
// piano-roll timeline: pitch-row shading from a musical scale template,
// tempo-driven bar and subdivision gridlines with level-of-detail fading,
// an additively composited content layer, and a tempo-pulsing playhead.
//
// # Overview
//
// rollgrid is a pure computation library. Everything it produces is a
// function of an immutable per-frame parameter snapshot: a pan/zoom view,
// a tempo clock, a 12-entry scale template, and an optional content layer.
// There is no hidden state. Hosts update the snapshot once per frame and
// evaluate pixels and vertices from it.
//
// # Quick Start
//
//	r := rollgrid.NewRenderer(800, 600)
//	defer r.Close()
//
//	pm := rollgrid.NewPixmap(800, 600)
//	params := rollgrid.FrameParams{
//	    View:  rollgrid.ViewParams{Zoom: rollgrid.Pt(1, 16)},
//	    Tempo: rollgrid.TempoParams{BPM: 120, Elapsed: 0.5},
//	}
//	if err := r.RenderFrame(pm, params); err != nil {
//	    log.Fatal(err)
//	}
//	pm.SavePNG("frame.png")
//
// # Coordinate System
//
// Three spaces appear throughout:
//   - Screen UV: each axis in [0, 1], origin bottom-left (the fragment
//     convention of the rendering pipelines this library feeds).
//   - World: the (time, pitch) plane of the timeline. X is time in
//     seconds, Y is pitch rows with row 0 the lowest pitch.
//   - Clip/NDC: [-1, 1] on both axes for vertex output.
//
// The view transform applies zoom multiplicatively on screen UV:
// world = uv*zoom + pan. The inverse map feeds the vertex stage. Both
// directions share the one convention; see ViewParams.
//
// # Concurrency
//
// Per-pixel and per-vertex evaluation is a pure function of the frame
// snapshot, so frames parallelize freely. Renderer splits each frame into
// row bands executed on a worker pool; see internal/parallel.
//
// # GPU Backend
//
// backend/wgpu carries the same math as WGSL compute shaders compiled
// through gogpu/naga and bound via gogpu/wgpu. The CPU implementation in
// this package is the reference; the backend mirrors it.
package rollgrid

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
