package wgpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/rollgrid"
)

// frameUniformsSize is the byte size of the serialized uniform block.
// Uniform buffers want 16-byte multiples; the two trailing vec4 colors
// keep the struct aligned without padding fields.
const frameUniformsSize = 96

// Uniform flag bits. Must match the FLAG_ constants in
// shaders/timeline.wgsl.
const (
	flagContent        uint32 = 1 << 0
	flagLinearTemplate uint32 = 1 << 1
)

// FrameUniforms is the GPU-compatible frame parameter block: the view
// transform, grid tuning with the per-frame fade levels hoisted out of
// the shader, and the playhead column with its pulse gradient.
// Must match the Uniforms struct in shaders/timeline.wgsl.
type FrameUniforms struct {
	PanX             float32 // View pan, world x at the bottom-left corner
	PanY             float32 // View pan, world y at the bottom-left corner
	ZoomX            float32 // World seconds spanned by the screen width
	ZoomY            float32 // Pitch rows spanned by the screen height
	BPM              float32 // Tempo in beats per minute
	BarRate          float32 // Bar stripe frequency factor
	SubdivisionRate  float32 // Subdivision marker frequency factor
	SubdivisionWidth float32 // Marker band width before zoom scaling
	BarLevel         float32 // Bar fade level, precomputed per frame
	SubdivisionLevel float32 // Subdivision fade level, precomputed per frame
	Width            uint32  // Frame width in pixels
	Height           uint32  // Frame height in pixels
	Flags            uint32  // flagContent | flagLinearTemplate
	PlayheadX        int32   // Playhead pixel column, -1 when offscreen
	PulseMult        float32 // Pulse brightness multiplier for this frame
	TemplateOffset   float32 // Scale template root offset in pitch rows
	DimColor         [4]float32
	BrightColor      [4]float32
}

// buildUniforms assembles the uniform block for one frame. The grid
// fade levels, pulse multiplier, and playhead column are evaluated on
// the CPU so the shader stays a pure per-pixel function.
func buildUniforms(params rollgrid.FrameParams, cfg Config, width, height int, hasContent bool) FrameUniforms {
	level := cfg.Style.Level(params.View.Zoom.X)

	var flags uint32
	if hasContent {
		flags |= flagContent
	}
	if cfg.Template.Mode == rollgrid.SampleLinear {
		flags |= flagLinearTemplate
	}

	return FrameUniforms{
		PanX:             float32(params.View.Pan.X),
		PanY:             float32(params.View.Pan.Y),
		ZoomX:            float32(params.View.Zoom.X),
		ZoomY:            float32(params.View.Zoom.Y),
		BPM:              float32(params.Tempo.BPM),
		BarRate:          float32(cfg.Style.BarRate),
		SubdivisionRate:  float32(cfg.Style.SubdivisionRate),
		SubdivisionWidth: float32(cfg.Style.SubdivisionWidth),
		BarLevel:         float32(level.Bar),
		SubdivisionLevel: float32(level.Subdivision),
		Width:            uint32(width),  //nolint:gosec // dimensions validated by the renderer
		Height:           uint32(height), //nolint:gosec // dimensions validated by the renderer
		Flags:            flags,
		PlayheadX:        playheadColumn(params, cfg.Placement, width),
		PulseMult:        float32(cfg.Pulse.Multiplier(params.Tempo)),
		TemplateOffset:   float32(cfg.Template.Offset),
		DimColor:         colorToVec4(cfg.Pulse.Dim),
		BrightColor:      colorToVec4(cfg.Pulse.Bright),
	}
}

// playheadColumn maps the playhead marker's clip-space position to a
// pixel column the same way the CPU renderer does. Returns -1 when the
// marker falls outside the frame.
func playheadColumn(params rollgrid.FrameParams, mode rollgrid.PlacementMode, width int) int32 {
	line := rollgrid.PlayheadLine(params.View, params.Tempo, mode)
	x := int((line[0].Pos.X*0.5 + 0.5) * float64(width))
	if x < 0 || x >= width {
		return -1
	}
	return int32(x) //nolint:gosec // bounded by the frame width
}

func colorToVec4(c rollgrid.RGBA) [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}

// uniformsToBytes serializes the uniform block in the std140-compatible
// field order the shader expects.
func uniformsToBytes(u FrameUniforms) []byte {
	buf := make([]byte, frameUniformsSize)
	writeFloat32(buf, 0, u.PanX)
	writeFloat32(buf, 4, u.PanY)
	writeFloat32(buf, 8, u.ZoomX)
	writeFloat32(buf, 12, u.ZoomY)
	writeFloat32(buf, 16, u.BPM)
	writeFloat32(buf, 20, u.BarRate)
	writeFloat32(buf, 24, u.SubdivisionRate)
	writeFloat32(buf, 28, u.SubdivisionWidth)
	writeFloat32(buf, 32, u.BarLevel)
	writeFloat32(buf, 36, u.SubdivisionLevel)
	writeUint32(buf, 40, u.Width)
	writeUint32(buf, 44, u.Height)
	writeUint32(buf, 48, u.Flags)
	writeInt32(buf, 52, u.PlayheadX)
	writeFloat32(buf, 56, u.PulseMult)
	writeFloat32(buf, 60, u.TemplateOffset)
	for i, v := range u.DimColor {
		writeFloat32(buf, 64+i*4, v)
	}
	for i, v := range u.BrightColor {
		writeFloat32(buf, 80+i*4, v)
	}
	return buf
}

// samplesToBytes serializes the scale template weights followed, when a
// content layer is present, by its intensities rasterized at the frame
// resolution in row-major top-down order. The layout must match the
// samples buffer in shaders/timeline.wgsl.
func samplesToBytes(template rollgrid.ScaleTemplate, content rollgrid.ContentLayer, width, height int) []byte {
	n := rollgrid.TemplateSize
	if content != nil {
		n += width * height
	}
	buf := make([]byte, n*4)

	for i, w := range template.Weights {
		writeFloat32(buf, i*4, float32(w))
	}
	if content == nil {
		return buf
	}

	// Sample at pixel centers with v = 0 at the top row, matching how
	// the CPU compositor flips its bottom-up coordinate.
	fw := float64(width)
	fh := float64(height)
	off := rollgrid.TemplateSize * 4
	for py := 0; py < height; py++ {
		v := (float64(py) + 0.5) / fh
		for px := 0; px < width; px++ {
			u := (float64(px) + 0.5) / fw
			writeFloat32(buf, off, float32(content.Intensity(u, v)))
			off += 4
		}
	}
	return buf
}

// unpackPixels copies the GPU's packed RGBA words into dst rows,
// honoring the destination stride.
func unpackPixels(packed []byte, dst []byte, width, height, dstStride int) {
	for py := 0; py < height; py++ {
		src := py * width * 4
		di := py * dstStride
		for px := 0; px < width; px++ {
			val := binary.LittleEndian.Uint32(packed[src+px*4:])
			dst[di+0] = uint8(val & 0xFF)         //nolint:gosec // masked to 8 bits
			dst[di+1] = uint8((val >> 8) & 0xFF)  //nolint:gosec // masked to 8 bits
			dst[di+2] = uint8((val >> 16) & 0xFF) //nolint:gosec // masked to 8 bits
			dst[di+3] = uint8((val >> 24) & 0xFF) //nolint:gosec // masked to 8 bits
			di += 4
		}
	}
}

// Byte serialization helpers for GPU buffer upload.

func writeUint32(buf []byte, offset int, val uint32) {
	buf[offset] = byte(val)
	buf[offset+1] = byte(val >> 8)
	buf[offset+2] = byte(val >> 16)
	buf[offset+3] = byte(val >> 24)
}

func writeInt32(buf []byte, offset int, val int32) {
	//nolint:gosec // Intentional bit-cast for GPU buffer serialization
	writeUint32(buf, offset, uint32(val))
}

func writeFloat32(buf []byte, offset int, val float32) {
	writeUint32(buf, offset, math.Float32bits(val))
}
