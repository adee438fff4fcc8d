// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

import (
	"github.com/hcline/raster3d/math/lin"
)

// CameraProperties holds the camera's fixed projection parameters and the
// projection matrix they produce. Properties change far less often than
// position, so the projection matrix is cached separately from the view.
type CameraProperties struct {
	Fov, Aspect, Near, Far float64
	projection             *lin.M4
}

// NewCameraProperties builds perspective properties and their projection
// matrix from fov in radians, the viewport aspect ratio, and near/far planes.
func NewCameraProperties(fov, aspect, near, far float64) *CameraProperties {
	return &CameraProperties{
		Fov: fov, Aspect: aspect, Near: near, Far: far,
		projection: lin.Perspective(fov, aspect, near, far),
	}
}

// Camera tracks the location and orientation of a viewpoint as well as an
// associated projection. It caches projection·view so the transform stage
// does not recompute it once per triangle.
type Camera struct {
	position *lin.V3
	target   *lin.V3
	up       *lin.V3

	properties *CameraProperties
	transform  *lin.M4 // projection * view, refreshed on every move or look.
}

// NewCamera creates a camera at (0,0,5) looking at the origin with the
// given projection properties.
func NewCamera(properties *CameraProperties) *Camera {
	c := &Camera{
		position:   &lin.V3{X: 0, Y: 0, Z: 5},
		target:     &lin.V3{X: 0, Y: 0, Z: 0},
		up:         &lin.V3{X: 0, Y: 1, Z: 0},
		properties: properties,
	}
	c.updateTransform()
	return c
}

// Transform returns the cached projection·view matrix.
func (c *Camera) Transform() *lin.M4 { return c.transform }

// Position returns the camera's current world space location.
func (c *Camera) Position() lin.V3 { return *c.position }

// Radius returns the distance from the camera to its look-at target.
func (c *Camera) Radius() float64 {
	d := lin.NewV3().Sub(c.position, c.target)
	return d.Len()
}

// Move offsets the camera's position by v and refreshes the view transform.
func (c *Camera) Move(v *lin.V3) {
	c.position.Add(c.position, v)
	c.updateTransform()
}

// Look retargets the camera to look at the given point.
func (c *Camera) Look(target *lin.V3) {
	c.target.Set(target)
	c.updateTransform()
}

// updateTransform recomputes the cached projection·view matrix from the
// camera's current position, target and up vectors.
func (c *Camera) updateTransform() {
	view := lin.LookAt(c.position, c.target, c.up)
	c.transform = lin.NewM4().Mult(c.properties.projection, view)
}
