package backend

import (
	"sync"

	"github.com/gogpu/rollgrid/render"
)

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	// WGPU > Software (GPU compute when present, CPU as fallback).
	backendPriority = []string{BackendWGPU, BackendSoftware}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns a list of registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// New creates a renderer from the backend with the given name. A nil
// handle is valid: GPU backends then open their own device.
// Returns ErrBackendNotAvailable if no such backend is registered.
func New(name string, handle render.DeviceHandle) (render.Renderer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := backends[name]
	if !ok {
		return nil, ErrBackendNotAvailable
	}
	return factory(handle)
}

// Default creates a renderer from the best available backend based on
// priority. Priority order: wgpu > software.
// Returns ErrBackendNotAvailable if no backend is registered.
func Default(handle render.DeviceHandle) (render.Renderer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			return factory(handle)
		}
	}

	// Fallback: first available
	for _, factory := range backends {
		return factory(handle)
	}

	return nil, ErrBackendNotAvailable
}

// MustDefault returns a renderer from the default backend or panics.
func MustDefault(handle render.DeviceHandle) render.Renderer {
	r, err := Default(handle)
	if err != nil {
		panic("backend: no backend available")
	}
	return r
}
