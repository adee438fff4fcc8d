// Copyright © 2017 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

// app.go holds the command queue every producer feeds and the per-frame
// drain+render phase the engine's main loop runs.
// DESIGN: keep small by delegating everything else to Scene, the transform
// stage and the rasterizer.

// application owns the scene and the single-logical-thread discipline
// described by the frame driver: the Scene is mutated only by drain, the
// color/depth buffers only by render, and both only ever run on the engine's
// own goroutine.
type application struct {
	scene    *Scene
	commands chan Command
}

// newApplication creates the command queue and the initial scene.
func newApplication(cfg EngineConfig) *application {
	return &application{
		scene:    NewScene(cfg.Width, cfg.Height, cfg.Near, cfg.Far, cfg.Fov),
		commands: make(chan Command, 256),
	}
}

// enqueue pushes a command onto the MPSC queue. Safe to call from any
// producer goroutine (a timer, a key-hold watcher, a resize notifier).
func (app *application) enqueue(cmd Command) {
	app.commands <- cmd
}

// drain applies every command currently queued, in the order received, and
// reports whether an End command was among them. The frame driver never
// blocks here: once the queue reads empty, drain returns immediately.
func (app *application) drain() (stop bool) {
	for {
		select {
		case cmd := <-app.commands:
			if cmd.Apply(app.scene) {
				stop = true
			}
		default:
			return stop
		}
	}
}

// render clears the buffers and runs the transform and rasterize stages
// over every mesh in the scene, leaving the result in scene.Screen.
func (app *application) render() {
	app.scene.Screen.ClearBuffer()
	app.scene.Screen.ClearDepth()
	RasterizeScene(app.scene.Screen, NewFrameIterator(app.scene))
}
