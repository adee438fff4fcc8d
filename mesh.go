// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

import (
	"github.com/hcline/raster3d/math/lin"
)

// Vertex is one corner of a triangle: a position in model space and the
// texture coordinate sampled at that corner.
type Vertex struct {
	Position lin.V3
	UV       lin.V2
}

// Indice names the three vertex/uv corners of one triangle by index into a
// Mesh's vertex and uv slices. The vertex and uv index of a corner need not
// match, since a single position can be reused with different texture
// coordinates.
type Indice struct {
	Vertex, UV [3]int
}

// Mesh holds 3D model data in a format that is easily consumed by the
// rasterizer: one shared slice of vertex positions and one of texture
// coordinates, combined per triangle corner by Indices. A mesh is most often
// created by the asset pipeline from disk based files.
type Mesh struct {
	Vertices []lin.V3
	UVs      []lin.V2
	Indices  []Indice
	Texture  string

	scale       lin.V3
	rotation    lin.V3
	translation lin.V3
	model       *lin.M4
}

// NewMesh allocates a mesh with the given geometry using the "none" texture.
func NewMesh(vertices []lin.V3, uvs []lin.V2, indices []Indice) *Mesh {
	return NewTexturedMesh(vertices, uvs, indices, "none")
}

// NewTexturedMesh allocates a mesh with the given geometry and texture name.
func NewTexturedMesh(vertices []lin.V3, uvs []lin.V2, indices []Indice, texture string) *Mesh {
	m := &Mesh{
		Vertices: vertices,
		UVs:      uvs,
		Indices:  indices,
		Texture:  texture,
		scale:    lin.V3{X: 1, Y: 1, Z: 1},
	}
	m.updateModel()
	return m
}

// Scale component-multiplies the mesh's accumulated scale by v.
func (m *Mesh) Scale(v *lin.V3) {
	m.scale.X *= v.X
	m.scale.Y *= v.Y
	m.scale.Z *= v.Z
	m.updateModel()
}

// Rotate adds v, an Euler angle delta in radians per axis, to the mesh's
// accumulated rotation.
func (m *Mesh) Rotate(v *lin.V3) {
	m.rotation.Add(&m.rotation, v)
	m.updateModel()
}

// Translate adds v to the mesh's accumulated translation.
func (m *Mesh) Translate(v *lin.V3) {
	m.translation.Add(&m.translation, v)
	m.updateModel()
}

// Model returns the mesh's cached model matrix, T·R·S applied to local
// vertex positions.
func (m *Mesh) Model() *lin.M4 { return m.model }

// updateModel recomputes the model matrix from the mesh's current
// scale, rotation and translation.
func (m *Mesh) updateModel() {
	t := lin.Translate(&m.translation)
	r := lin.RotateEuler(&m.rotation)
	s := lin.ScaleM(&m.scale)
	m.model = lin.NewM4().Mult(t, lin.NewM4().Mult(r, s))
}
