// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package raster3d provides a CPU software 3D rasterizer: model, world,
// view and clip space transforms, perspective-correct texture sampling, a
// z-buffered rasterizer, and an event-driven frame driver that turns a
// stream of commands (add an object, move the camera, resize, rotate) into
// presented frames.
//
// raster3d dependencies are:
//   - github.com/hcline/raster3d/math/lin for the column-vector matrix math.
//   - github.com/hcline/raster3d/device for the platform presentation adapter.
//   - github.com/hcline/raster3d/load, used by cmd/raster3d rather than by
//     this package, for mesh and image asset loading.
package raster3d

import (
	"github.com/hcline/raster3d/device"
	"github.com/hcline/raster3d/math/lin"
)

// Engine is where everything starts. It owns the scene, the command queue,
// and the adapter-registered producers (timer, resize, key holds, frame
// loop), and runs the single-logical-thread frame driver described by the
// engine's concurrency model: the Scene is touched only during drain, the
// color/depth buffers only during render, both only from the frame loop's
// own goroutine.
type Engine struct {
	app     *application
	adapter device.Adapter
	guards  []*device.Guard
}

// New creates an engine using cfg's screen size and camera projection,
// bound to the given platform adapter. The adapter is expected to already
// be sized to cfg.Width, cfg.Height.
func New(cfg EngineConfig, adapter device.Adapter) *Engine {
	return &Engine{
		app:     newApplication(cfg),
		adapter: adapter,
	}
}

// Scene exposes the engine's scene for setup prior to Action, such as
// adding the initial meshes and moving the camera into position.
func (e *Engine) Scene() *Scene { return e.app.scene }

// Enqueue pushes a command onto the engine's queue. Safe to call from any
// goroutine, including the producers the engine itself registers.
func (e *Engine) Enqueue(cmd Command) { e.app.enqueue(cmd) }

// Action registers the default command bindings and runs the frame loop
// until an End command is processed or the adapter's frame loop Guard is
// stopped externally. Action blocks until the loop ends.
func (e *Engine) Action(cfg EngineConfig) {
	done := make(chan struct{})

	e.guards = append(e.guards, e.adapter.RegisterResize(func(w, h int) {
		e.Enqueue(Resize(w, h))
	}))

	e.guards = append(e.guards, e.adapter.RegisterTimer(cfg.RotateIntervalMS, func() {
		e.Enqueue(RotateObject(0, lin.V3{X: cfg.RotateDeltaX, Y: cfg.RotateDeltaY, Z: cfg.RotateDeltaZ}))
	}))

	e.guards = append(e.guards, e.adapter.RegisterKeyHold("ArrowUp", func() {
		e.Enqueue(MoveCamera(lin.V3{X: 0, Y: cfg.MoveDelta, Z: 0}))
	}))
	e.guards = append(e.guards, e.adapter.RegisterKeyHold("ArrowDown", func() {
		e.Enqueue(MoveCamera(lin.V3{X: 0, Y: -cfg.MoveDelta, Z: 0}))
	}))
	e.guards = append(e.guards, e.adapter.RegisterKeyHold("ArrowLeft", func() {
		e.Enqueue(MoveCamera(lin.V3{X: -cfg.MoveDelta, Y: 0, Z: 0}))
	}))
	e.guards = append(e.guards, e.adapter.RegisterKeyHold("ArrowRight", func() {
		e.Enqueue(MoveCamera(lin.V3{X: cfg.MoveDelta, Y: 0, Z: 0}))
	}))

	frameGuard := e.adapter.StartFrameLoop(func() {
		if e.app.drain() {
			select {
			case <-done:
			default:
				close(done)
			}
			return
		}
		e.app.render()
		screen := e.app.scene.Screen
		e.adapter.Present(screen.Width, screen.Height, screen.RGBA())
	})
	e.guards = append(e.guards, frameGuard)

	<-done
	e.Shutdown()
}

// Shutdown stops every producer the engine registered. Each Guard's release
// is idempotent, so calling Shutdown more than once is harmless.
func (e *Engine) Shutdown() {
	for _, g := range e.guards {
		g.Stop()
	}
}
