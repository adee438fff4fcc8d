// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "math"

// Transform builders turn mesh and camera state into the 4x4 matrices the
// rendering pipeline multiplies together: model (translate, rotate, scale),
// view (look-at), projection (perspective) and viewport.

// Translate returns the affine translation matrix for v.
//    [ 1 0 0 vx ]
//    [ 0 1 0 vy ]
//    [ 0 0 1 vz ]
//    [ 0 0 0  1 ]
func Translate(v *V3) *M4 {
	m := NewM4I()
	m.Xw, m.Yw, m.Zw = v.X, v.Y, v.Z
	return m
}

// ScaleM returns the affine scale matrix for v.
//    [ vx 0  0  0 ]
//    [ 0  vy 0  0 ]
//    [ 0  0  vz 0 ]
//    [ 0  0  0  1 ]
func ScaleM(v *V3) *M4 {
	m := NewM4()
	m.Xx, m.Yy, m.Zz, m.Ww = v.X, v.Y, v.Z, 1
	return m
}

// RotateEuler returns the combined rotation matrix Rz*Ry*Rx for Euler
// angles v (radians, applied in x, then y, then z order to a column
// vector).
func RotateEuler(v *V3) *M4 {
	sx, cx := math.Sincos(v.X)
	sy, cy := math.Sincos(v.Y)
	sz, cz := math.Sincos(v.Z)
	m := NewM4I()
	m.Xx, m.Xy, m.Xz = cz*cy, cz*sy*sx-sz*cx, cz*sy*cx+sz*sx
	m.Yx, m.Yy, m.Yz = sz*cy, sz*sy*sx+cz*cx, sz*sy*cx-cz*sx
	m.Zx, m.Zy, m.Zz = -sy, cy*sx, cy*cx
	return m
}

// LookAt returns the right-handed view matrix for a camera at position,
// aimed at target, with the given up hint.
//    f = normalize(target - position)
//    r = normalize(up x f)
//    u = f x r
func LookAt(position, target, up *V3) *M4 {
	f := NewV3().Sub(target, position).Unit()
	r := NewV3().Cross(up, f).Unit()
	u := NewV3().Cross(f, r)

	m := NewM4I()
	m.Xx, m.Xy, m.Xz, m.Xw = r.X, r.Y, r.Z, -r.Dot(position)
	m.Yx, m.Yy, m.Yz, m.Yw = u.X, u.Y, u.Z, -u.Dot(position)
	m.Zx, m.Zy, m.Zz, m.Zw = -f.X, -f.Y, -f.Z, f.Dot(position)
	return m
}

// Perspective returns the standard perspective projection matrix for the
// given field of view (radians), aspect ratio, and near/far clip planes.
func Perspective(fov, aspect, near, far float64) *M4 {
	f := 1 / math.Tan(fov*0.5)
	m := NewM4()
	m.Xx = f / aspect
	m.Yy = f
	m.Zz = (near + far) / (near - far)
	m.Zw = 2 * near * far / (near - far)
	m.Wz = -1
	return m
}

// Viewport returns the matrix mapping NDC x,y in [-1,1] to pixel
// coordinates [0,width]x[0,height], with y flipped so that increasing y
// moves down the screen.
func Viewport(width, height int) *M4 {
	w, h := float64(width), float64(height)
	m := NewM4I()
	m.Xx, m.Xw = w/2, w/2
	m.Yy, m.Yw = -h/2, h/2
	return m
}
