// Command rollgriddemo renders one frame of a piano-roll timeline
// background to a PNG file.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/rollgrid"
	"github.com/gogpu/rollgrid/canvas"
)

func main() {
	var (
		width   = flag.Int("width", 1280, "image width")
		height  = flag.Int("height", 720, "image height")
		output  = flag.String("output", "timeline.png", "output file")
		bpm     = flag.Float64("bpm", 120, "tempo in beats per minute")
		zoom    = flag.Float64("zoom", 4, "seconds spanned by the view")
		rows    = flag.Float64("rows", 24, "pitch rows spanned by the view")
		elapsed = flag.Float64("elapsed", 1.25, "transport position in seconds")
		linear  = flag.Bool("linear", false, "blend row shading between pitch rows")
	)
	flag.Parse()

	template := rollgrid.CMajor()
	if *linear {
		template.Mode = rollgrid.SampleLinear
	}

	// Paint a short phrase so the content compositing shows up.
	cv := canvas.New(512, 288)
	paintRiff(cv)

	r := rollgrid.NewRenderer(*width, *height,
		rollgrid.WithScaleTemplate(template),
		rollgrid.WithContent(cv),
	)
	defer r.Close()

	params := rollgrid.FrameParams{
		View: rollgrid.ViewParams{
			Pan:  rollgrid.Pt(0, 36),
			Zoom: rollgrid.Pt(*zoom, *rows),
		},
		Tempo: rollgrid.TempoParams{BPM: *bpm, Elapsed: *elapsed},
	}

	frame := rollgrid.NewPixmap(*width, *height)
	if err := r.RenderFrame(frame, params); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := r.DrawPlayhead(frame, params); err != nil {
		log.Fatalf("Failed to draw playhead: %v", err)
	}

	if err := frame.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Timeline saved to %s (%dx%d)\n", *output, *width, *height)
}

// paintRiff paints a melodic phrase: held notes as horizontal strokes
// and a rising sweep underneath.
func paintRiff(cv *canvas.Canvas) {
	notes := []struct {
		start, length, row float64
	}{
		{0.05, 0.10, 0.70},
		{0.17, 0.10, 0.60},
		{0.29, 0.10, 0.52},
		{0.41, 0.16, 0.40},
		{0.60, 0.08, 0.52},
		{0.70, 0.08, 0.60},
		{0.80, 0.14, 0.70},
	}
	for _, n := range notes {
		paintNote(cv, n.start, n.length, n.row)
	}

	cv.Stroke(0.05, 0.85, 0.94, 0.78)
}

// paintNote strokes three adjacent scanlines so the note has enough
// body to read at frame resolution.
func paintNote(cv *canvas.Canvas, start, length, row float64) {
	step := 1.0 / float64(cv.Height())
	for i := -1; i <= 1; i++ {
		y := row + float64(i)*step
		cv.Stroke(start, y, start+length, y)
	}
}
