package backend

import (
	"errors"

	"github.com/gogpu/rollgrid/render"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU evaluation backend.
	BackendSoftware = "software"
	// BackendWGPU is the name of the GPU compute backend (gogpu/wgpu).
	BackendWGPU = "wgpu"
)

// Factory creates a renderer for a backend.
//
// GPU backends build their pipelines on the handle's shared device when
// one is given and open their own device otherwise; CPU backends ignore
// the handle. Renderers come configured with the stock timeline
// defaults; hosts needing custom templates or grid tuning construct the
// concrete renderer types directly.
type Factory func(handle render.DeviceHandle) (render.Renderer, error)
