// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

import (
	"github.com/hcline/raster3d/math/lin"
)

// ScreenVertex is a mesh vertex after the transform stage: its position has
// been projected into screen space and perspective-divided, its uv is
// unchanged.
type ScreenVertex struct {
	Position lin.V3
	UV       lin.V2
}

// Triangle is three screen-space corners ready for rasterization.
type Triangle struct {
	A, B, C ScreenVertex
}

// transformPosition projects a model-space position through m and performs
// the perspective divide, producing its screen-space position.
func transformPosition(m *lin.M4, position lin.V3) lin.V3 {
	h := position.Homogeneous()
	clip := lin.NewV4().MultMv(m, h)
	return lin.V3{X: clip.X / clip.W, Y: clip.Y / clip.W, Z: clip.Z / clip.W}
}

// FrameIterator walks every mesh in a scene and, lazily, every triangle of
// each mesh, applying the viewport·projection·view·model transform to each
// vertex as its mesh comes up. It is not obliged to transform a mesh's
// vertices until that mesh's triangles are about to be pulled.
type FrameIterator struct {
	scene *Scene

	meshIndex int
	vertices  []ScreenVertex
	indices   []Indice
	triIndex  int
	texture   Texture
}

// NewFrameIterator prepares an iterator over every triangle in the scene,
// transformed by the scene's current camera and viewport.
func NewFrameIterator(scene *Scene) *FrameIterator {
	it := &FrameIterator{scene: scene, meshIndex: -1}
	it.advance()
	return it
}

// advance moves to the next mesh with at least one triangle, transforming
// its vertices. Returns false once no meshes remain.
func (it *FrameIterator) advance() bool {
	for {
		it.meshIndex++
		if it.meshIndex >= len(it.scene.Objects) {
			return false
		}
		mesh := it.scene.Objects[it.meshIndex]
		if len(mesh.Indices) == 0 {
			continue
		}
		m := lin.NewM4().Mult(it.scene.Screen.Viewport(), lin.NewM4().Mult(it.scene.Camera.Transform(), mesh.Model()))
		vertices := make([]ScreenVertex, len(mesh.Vertices))
		for i, v := range mesh.Vertices {
			vertices[i] = ScreenVertex{Position: transformPosition(m, v)}
		}
		// uv is filled in per corner at triangle build time since uv
		// indices are independent of vertex indices.
		it.vertices = vertices
		it.indices = mesh.Indices
		it.triIndex = 0
		it.texture = it.scene.Textures.Get(mesh.Texture)
		return true
	}
}

// corner builds the screen-space vertex for one triangle corner, combining
// the position already transformed at vertex index vi with the uv at uv
// index ui.
func (it *FrameIterator) corner(mesh *Mesh, vi, ui int) ScreenVertex {
	sv := it.vertices[vi]
	sv.UV = mesh.UVs[ui]
	return sv
}

// Next returns the next triangle and the texture its mesh is painted with.
// The second return value is false once the scene is exhausted.
func (it *FrameIterator) Next() (Triangle, Texture, bool) {
	for {
		if it.meshIndex >= len(it.scene.Objects) {
			return Triangle{}, Texture{}, false
		}
		if it.triIndex >= len(it.indices) {
			if !it.advance() {
				return Triangle{}, Texture{}, false
			}
			continue
		}
		mesh := it.scene.Objects[it.meshIndex]
		idx := it.indices[it.triIndex]
		it.triIndex++
		tri := Triangle{
			A: it.corner(mesh, idx.Vertex[0], idx.UV[0]),
			B: it.corner(mesh, idx.Vertex[1], idx.UV[1]),
			C: it.corner(mesh, idx.Vertex[2], idx.UV[2]),
		}
		return tri, it.texture, true
	}
}
