// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package device provides minimal platform access to a presentation surface
// and keyboard input for the raster3d engine. Unlike the windowed/GPU device
// layer this package once wrapped, the only adapter implemented here targets
// a terminal: frames are rendered as ANSI-colored ASCII glyphs.
package device

import "sync"

// Guard is a scoped resource returned by every Adapter registration method.
// Releasing it, via Stop, idempotently stops whatever it was guarding: a
// timer, a resize watcher, a key-hold watcher, or the frame loop itself.
type Guard struct {
	mu      sync.Mutex
	stopped bool
	stop    func()
}

// newGuard wraps stop so it only ever runs once, even under concurrent or
// repeated calls to Guard.Stop.
func newGuard(stop func()) *Guard {
	return &Guard{stop: stop}
}

// NewGuard lets an Adapter implementation outside this package build a
// Guard around its own release function.
func NewGuard(stop func()) *Guard {
	return newGuard(stop)
}

// Stop releases the guarded resource. Safe to call more than once.
func (g *Guard) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.stopped {
		return
	}
	g.stopped = true
	if g.stop != nil {
		g.stop()
	}
}

// IsFinished reports whether the guard has been released.
func (g *Guard) IsFinished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stopped
}

// Adapter is implemented per presentation target (terminal, window, remote
// framebuffer). The frame driver depends only on this interface, never on a
// concrete adapter, so new targets can be added without touching the driver.
type Adapter interface {
	// ScreenSize returns the current presentation surface size in pixels.
	ScreenSize() (width, height int)

	// RegisterTimer invokes onTick every intervalMS milliseconds on its own
	// goroutine until the returned Guard is stopped.
	RegisterTimer(intervalMS int, onTick func()) *Guard

	// RegisterResize invokes onResize whenever the surface size changes, and
	// at least once synchronously with the size at registration time.
	RegisterResize(onResize func(width, height int)) *Guard

	// RegisterKeyHold invokes onHold repeatedly while the named key is held.
	// Key names are "ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight".
	RegisterKeyHold(key string, onHold func()) *Guard

	// StartFrameLoop invokes onFrame repeatedly at the adapter's chosen
	// cadence (target ~50Hz, acceptable 30-120Hz) until the Guard is stopped.
	StartFrameLoop(onFrame func()) *Guard

	// Present synchronously displays width x height pixels of packed RGBA8,
	// row-major from the top-left corner, as the next visible frame.
	Present(width, height int, rgba []byte)
}
