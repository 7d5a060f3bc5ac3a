//go:build !nogpu

package wgpu

import (
	"github.com/gogpu/rollgrid/backend"
	"github.com/gogpu/rollgrid/render"
)

// init registers the wgpu backend on package import.
// This enables automatic backend selection when using backend.Default().
//
// To use the wgpu backend, import this package:
//
//	import _ "github.com/gogpu/rollgrid/backend/wgpu"
//
// Building with the nogpu tag skips registration, and backend.Default
// falls back to the software backend.
func init() {
	backend.Register(backend.BackendWGPU, func(handle render.DeviceHandle) (render.Renderer, error) {
		return NewRenderer(handle, DefaultConfig())
	})
}
