// Package backend provides a pluggable rendering backend abstraction.
//
// The backend package lets hosts pick how timeline frames are evaluated
// without binding to a concrete renderer type. The software backend
// registers on import of this package; the GPU backend registers when
// backend/wgpu is imported:
//
//	import (
//	    "github.com/gogpu/rollgrid/backend"
//	    _ "github.com/gogpu/rollgrid/backend/wgpu"
//	)
//
// # Backend Selection
//
// Use Default to get the best available backend, or New to request a
// specific backend by name:
//
//	// Best available: wgpu when registered, software otherwise.
//	renderer, err := backend.Default(nil)
//
//	// Or request a specific backend.
//	renderer, err := backend.New(backend.BackendSoftware, nil)
//
// Renderers from the registry use the stock timeline configuration:
// C major row shading, the default grid tuning, and the amber pulse.
// For custom configurations construct render.SoftwareRenderer or
// backend/wgpu.Renderer directly.
//
// # Device Sharing
//
// GPU backends accept a render.DeviceHandle so frames land on the
// host's GPU device:
//
//	renderer, err := backend.Default(host.DeviceHandle())
//
// A nil handle makes GPU backends open their own device; CPU backends
// ignore it either way.
//
// # Available Backends
//
// - "software": CPU evaluation over a worker pool (always available)
// - "wgpu": GPU compute via gogpu/wgpu (import backend/wgpu)
package backend
