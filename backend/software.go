package backend

import (
	"github.com/gogpu/rollgrid/render"
)

// init registers the software backend on package import. The factory
// ignores the device handle: CPU evaluation needs no GPU device.
func init() {
	Register(BackendSoftware, func(render.DeviceHandle) (render.Renderer, error) {
		return render.NewSoftwareRenderer(), nil
	})
}
