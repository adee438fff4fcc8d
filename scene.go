// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

// Scene aggregates everything one rendered frame needs: the screen being
// drawn into, the active camera, the named texture store, and the meshes
// present in the world. A Scene is only ever mutated by the frame driver's
// drain phase, never concurrently with transform or rasterize.
type Scene struct {
	Screen   *Screen
	Camera   *Camera
	Textures *Textures
	Objects  []*Mesh
}

// NewScene creates an empty scene sized to width, height with a default
// perspective camera and the seeded texture store.
func NewScene(width, height int, near, far, fov float64) *Scene {
	aspect := float64(width) / float64(height)
	props := NewCameraProperties(fov, aspect, near, far)
	return &Scene{
		Screen:   NewScreen(width, height),
		Camera:   NewCamera(props),
		Textures: NewTextures(),
		Objects:  []*Mesh{},
	}
}

// AddObject appends a mesh to the scene.
func (s *Scene) AddObject(m *Mesh) {
	s.Objects = append(s.Objects, m)
}

// Resize replaces the scene's screen and camera properties with ones sized
// to width, height. Screen resizing is implemented by replacement rather
// than in-place mutation so in-flight rasterization never observes a
// half-resized buffer.
func (s *Scene) Resize(width, height int) {
	near, far, fov := s.Camera.properties.Near, s.Camera.properties.Far, s.Camera.properties.Fov
	aspect := float64(width) / float64(height)
	props := NewCameraProperties(fov, aspect, near, far)
	position, target, up := *s.Camera.position, *s.Camera.target, *s.Camera.up
	cam := NewCamera(props)
	cam.position, cam.target, cam.up = &position, &target, &up
	cam.updateTransform()
	s.Camera = cam
	s.Screen = NewScreen(width, height)
}
