// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the integration layer between rollgrid and
// GPU frameworks.
//
// This package defines the abstractions a host application uses to put
// timeline frames on screen: device access, render targets, and frame
// renderers. The core evaluation lives in the rollgrid root package;
// render adapts it to the surfaces hosts actually own.
//
// # Key Principle
//
// rollgrid RECEIVES a GPU device from the host application, it does NOT
// create its own. The host (a gogpu.App, a game loop, a plugin shell)
// implements DeviceHandle and passes it in, so frame textures share the
// device and queue the rest of the application already manages.
//
// # Core Interfaces
//
//   - DeviceHandle: GPU device access provided by the host application
//   - RenderTarget: where frame output goes (Pixmap, Texture, Surface)
//   - Renderer: evaluates frame parameters onto a target
//   - LayeredTarget: z-ordered overlays on top of the background frame
//
// # Renderer Implementations
//
//   - SoftwareRenderer: CPU evaluation using the rollgrid root package
//   - backend/wgpu.Renderer: compute-shader evaluation via gogpu/wgpu
//
// # Usage
//
// Software rendering into a CPU target:
//
//	renderer := render.NewSoftwareRenderer()
//	defer renderer.Close()
//
//	target := render.NewPixmapTarget(1280, 720)
//	params := rollgrid.FrameParams{
//		View:  rollgrid.DefaultView(),
//		Tempo: rollgrid.TempoParams{BPM: 128, Elapsed: 2.5},
//	}
//	if err := renderer.Render(target, params); err != nil {
//		log.Fatal(err)
//	}
//	img := target.Image()
//
// Overlay compositing keeps the playhead off the background layer, so a
// host can stack its own note or selection overlays between the two:
//
//	target := render.NewLayeredPixmapTarget(1280, 720)
//	notes, _ := target.CreateLayer(10)
//	// ... draw notes into the notes layer ...
//	renderer.Render(target, params) // playhead lands above z=10
//
// # Thread Safety
//
// Renderers are not safe for concurrent use. Drive each renderer from a
// single goroutine, or serialize access externally. Frame evaluation
// itself fans out over the internal worker pool regardless.
package render
