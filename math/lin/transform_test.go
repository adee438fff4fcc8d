// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"testing"
)

func TestTranslate(t *testing.T) {
	m := Translate(&V3{1, 2, 3})
	v := NewV4().MultMv(m, &V4{0, 0, 0, 1})
	want := &V4{1, 2, 3, 1}
	if !v.Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestScaleM(t *testing.T) {
	m := ScaleM(&V3{2, 3, 4})
	v := NewV4().MultMv(m, &V4{1, 1, 1, 1})
	want := &V4{2, 3, 4, 1}
	if !v.Eq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestRotateEulerIdentity(t *testing.T) {
	m := RotateEuler(&V3{0, 0, 0})
	if !m.Aeq(M4I) {
		t.Errorf(format, m.Dump(), M4I.Dump())
	}
}

func TestRotateEulerAroundZ(t *testing.T) {
	m := RotateEuler(&V3{0, 0, HalfPi})
	v := NewV4().MultMv(m, &V4{1, 0, 0, 1})
	want := &V4{0, 1, 0, 1}
	if !v.Aeq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestLookAtDownNegativeZ(t *testing.T) {
	m := LookAt(&V3{0, 0, 5}, &V3{0, 0, 0}, &V3{0, 1, 0})
	v := NewV4().MultMv(m, &V4{0, 0, 0, 1})
	want := &V4{0, 0, -5, 1}
	if !v.Aeq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestPerspectiveMapsNearToMinusOne(t *testing.T) {
	near, far := 0.1, 100.0
	m := Perspective(HalfPi, 1, near, far)
	clip := NewV4().MultMv(m, &V4{0, 0, -near, 1})
	ndcZ := clip.Z / clip.W
	if !Aeq(ndcZ, -1) {
		t.Errorf("expected near plane to map to ndc z -1, got %f", ndcZ)
	}
}

func TestViewportCentersOrigin(t *testing.T) {
	m := Viewport(640, 480)
	v := NewV4().MultMv(m, &V4{0, 0, 0, 1})
	want := &V4{320, 240, 0, 1}
	if !v.Aeq(want) {
		t.Errorf(format, v.Dump(), want.Dump())
	}
}

func TestViewportFlipsY(t *testing.T) {
	m := Viewport(640, 480)
	top := NewV4().MultMv(m, &V4{0, 1, 0, 1})
	if top.Y >= 240 {
		t.Errorf("expected ndc +y to map to a smaller screen y, got %f", top.Y)
	}
}
