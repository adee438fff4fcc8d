// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

import (
	"github.com/hcline/raster3d/math/lin"
)

// commandKind discriminates the variants of Command.
type commandKind int

const (
	// CmdNop does nothing. It is the zero value of Command.
	CmdNop commandKind = iota
	// CmdAddObject appends a mesh to the scene.
	CmdAddObject
	// CmdResize replaces the screen and camera with ones sized to a new viewport.
	CmdResize
	// CmdMoveCamera offsets the camera position.
	CmdMoveCamera
	// CmdRotateObject applies an Euler rotation delta to one mesh.
	CmdRotateObject
	// CmdEnd terminates the frame loop without presenting a frame.
	CmdEnd
)

// Command is the discriminated variant pushed onto the driver's command
// queue by any number of producers. Only the fields relevant to Kind are
// populated by the constructors below.
type Command struct {
	Kind commandKind

	Mesh   *Mesh   // CmdAddObject
	Width  int     // CmdResize
	Height int     // CmdResize
	Delta  lin.V3  // CmdMoveCamera, CmdRotateObject
	Index  int     // CmdRotateObject
}

// AddObject returns a command that appends m to the scene's mesh list.
func AddObject(m *Mesh) Command { return Command{Kind: CmdAddObject, Mesh: m} }

// Resize returns a command that replaces the screen and camera projection
// to match the given viewport size.
func Resize(width, height int) Command { return Command{Kind: CmdResize, Width: width, Height: height} }

// MoveCamera returns a command that adds delta to the camera position.
func MoveCamera(delta lin.V3) Command { return Command{Kind: CmdMoveCamera, Delta: delta} }

// RotateObject returns a command that rotates the mesh at index by delta.
// An out-of-range index is a no-op when the command is applied.
func RotateObject(index int, delta lin.V3) Command {
	return Command{Kind: CmdRotateObject, Index: index, Delta: delta}
}

// End returns the sentinel command that stops the frame loop.
func End() Command { return Command{Kind: CmdEnd} }

// Apply mutates scene according to the command, per the scene's mutation
// discipline: this is only ever called from the driver's drain phase.
// It returns true if the command signals the loop should stop.
func (c Command) Apply(scene *Scene) (stop bool) {
	switch c.Kind {
	case CmdAddObject:
		scene.AddObject(c.Mesh)
	case CmdResize:
		scene.Resize(c.Width, c.Height)
	case CmdMoveCamera:
		delta := c.Delta
		scene.Camera.Move(&delta)
	case CmdRotateObject:
		if c.Index >= 0 && c.Index < len(scene.Objects) {
			delta := c.Delta
			scene.Objects[c.Index].Rotate(&delta)
		}
	case CmdEnd:
		return true
	}
	return false
}
