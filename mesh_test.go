// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

import (
	"testing"

	"github.com/hcline/raster3d/math/lin"
)

func triangleMesh() *Mesh {
	vertices := []lin.V3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	uvs := []lin.V2{{X: 0, Y: 0}}
	indices := []Indice{{Vertex: [3]int{0, 1, 2}, UV: [3]int{0, 0, 0}}}
	return NewMesh(vertices, uvs, indices)
}

func TestNewMeshUsesNoneTexture(t *testing.T) {
	m := triangleMesh()
	if m.Texture != "none" {
		t.Errorf("expected default texture none, got %s", m.Texture)
	}
}

func TestNewMeshStartsAtIdentity(t *testing.T) {
	m := triangleMesh()
	if !m.Model().Eq(lin.M4I) {
		t.Errorf("expected identity model matrix for an untransformed mesh")
	}
}

func TestMeshTranslateMovesOrigin(t *testing.T) {
	m := triangleMesh()
	m.Translate(&lin.V3{X: 1, Y: 2, Z: 3})
	model := m.Model()
	if model.At(0, 3) != 1 || model.At(1, 3) != 2 || model.At(2, 3) != 3 {
		t.Errorf("expected translation column (1,2,3), got (%v,%v,%v)",
			model.At(0, 3), model.At(1, 3), model.At(2, 3))
	}
}

func TestMeshScaleAccumulatesMultiplicatively(t *testing.T) {
	m := triangleMesh()
	m.Scale(&lin.V3{X: 2, Y: 2, Z: 2})
	m.Scale(&lin.V3{X: 3, Y: 1, Z: 1})
	if m.scale.X != 6 || m.scale.Y != 2 || m.scale.Z != 2 {
		t.Errorf("expected scale to accumulate multiplicatively, got %+v", m.scale)
	}
}

func TestMeshRotateAccumulatesAdditively(t *testing.T) {
	m := triangleMesh()
	a, b := 0.1, 0.2
	m.Rotate(&lin.V3{X: 0, Y: a, Z: 0})
	m.Rotate(&lin.V3{X: 0, Y: b, Z: 0})
	if m.rotation.Y != a+b {
		t.Errorf("expected rotation to accumulate additively, got %v", m.rotation.Y)
	}
}

func TestNewTexturedMeshKeepsTextureName(t *testing.T) {
	m := NewTexturedMesh(nil, nil, nil, "brick")
	if m.Texture != "brick" {
		t.Errorf("expected texture brick, got %s", m.Texture)
	}
}
