// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Matrix functions deal with 4x4 matrices expected to be used in CPU 3D
// transform calculations: building model, view, projection and viewport
// matrices and multiplying them together and against vectors.
//
// This implementation uses column-vector convention: a point is
// transformed by left-multiplying a column vector, v' = M*v, and an
// affine matrix keeps its translation in the last column:
//    [ Xx Xy Xz Xw ]   Xw, Yw, Zw hold the translation.
//    [ Yx Yy Yz Yw ]
//    [ Zx Zy Zz Zw ]
//    [ Wx Wy Wz Ww ]   usually [0 0 0 1]
// The named fields are addressed [row][col], e.g. m.Yz is row Y, column z.


// M4 is a 4x4 matrix where the matrix elements are individually addressable.
type M4 struct {
	Xx, Xy, Xz, Xw float64 // row X: indices 00, 01, 02, 03
	Yx, Yy, Yz, Yw float64 // row Y: indices 10, 11, 12, 13
	Zx, Zy, Zz, Zw float64 // row Z: indices 20, 21, 22, 23
	Wx, Wy, Wz, Ww float64 // row W: indices 30, 31, 32, 33
}

// M4Z provides a reference zero matrix that can be used
// in calculations. It should never be changed.
var M4Z = &M4{
	0, 0, 0, 0,
	0, 0, 0, 0,
	0, 0, 0, 0,
	0, 0, 0, 0}

// M4I provides a reference identity matrix that can be used
// in calculations. It should never be changed.
var M4I = &M4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1}

// Eq (==) returns true if all the elements in matrix m have the same value
// as the corresponding elements in matrix a.
func (m *M4) Eq(a *M4) bool {
	return true &&
		m.Xx == a.Xx && m.Xy == a.Xy && m.Xz == a.Xz && m.Xw == a.Xw &&
		m.Yx == a.Yx && m.Yy == a.Yy && m.Yz == a.Yz && m.Yw == a.Yw &&
		m.Zx == a.Zx && m.Zy == a.Zy && m.Zz == a.Zz && m.Zw == a.Zw &&
		m.Wx == a.Wx && m.Wy == a.Wy && m.Wz == a.Wz && m.Ww == a.Ww
}

// Aeq (~=) almost equals returns true if all the elements in matrix m have
// essentially the same value as the corresponding elements in matrix a,
// using the tighter MatrixEpsilon tolerance.
func (m *M4) Aeq(a *M4) bool {
	return true &&
		AeqTol(m.Xx, a.Xx, MatrixEpsilon) && AeqTol(m.Xy, a.Xy, MatrixEpsilon) &&
		AeqTol(m.Xz, a.Xz, MatrixEpsilon) && AeqTol(m.Xw, a.Xw, MatrixEpsilon) &&
		AeqTol(m.Yx, a.Yx, MatrixEpsilon) && AeqTol(m.Yy, a.Yy, MatrixEpsilon) &&
		AeqTol(m.Yz, a.Yz, MatrixEpsilon) && AeqTol(m.Yw, a.Yw, MatrixEpsilon) &&
		AeqTol(m.Zx, a.Zx, MatrixEpsilon) && AeqTol(m.Zy, a.Zy, MatrixEpsilon) &&
		AeqTol(m.Zz, a.Zz, MatrixEpsilon) && AeqTol(m.Zw, a.Zw, MatrixEpsilon) &&
		AeqTol(m.Wx, a.Wx, MatrixEpsilon) && AeqTol(m.Wy, a.Wy, MatrixEpsilon) &&
		AeqTol(m.Wz, a.Wz, MatrixEpsilon) && AeqTol(m.Ww, a.Ww, MatrixEpsilon)
}

// Set (=) assigns all the element values from matrix a to the
// corresponding element values in matrix m. The source matrix a is
// unchanged. The updated matrix m is returned.
func (m *M4) Set(a *M4) *M4 {
	m.Xx, m.Xy, m.Xz, m.Xw = a.Xx, a.Xy, a.Xz, a.Xw
	m.Yx, m.Yy, m.Yz, m.Yw = a.Yx, a.Yy, a.Yz, a.Yw
	m.Zx, m.Zy, m.Zz, m.Zw = a.Zx, a.Zy, a.Zz, a.Zw
	m.Wx, m.Wy, m.Wz, m.Ww = a.Wx, a.Wy, a.Wz, a.Ww
	return m
}

// At returns the element at the given row, col (both 0-3).
// Panics if row or col is out of range: an out of range index is a
// programming error, not a runtime condition to recover from.
func (m *M4) At(row, col int) float64 {
	if row < 0 || row > 3 || col < 0 || col > 3 {
		panic("lin: M4.At index out of range")
	}
	switch row*10 + col {
	case 0:
		return m.Xx
	case 1:
		return m.Xy
	case 2:
		return m.Xz
	case 3:
		return m.Xw
	case 10:
		return m.Yx
	case 11:
		return m.Yy
	case 12:
		return m.Yz
	case 13:
		return m.Yw
	case 20:
		return m.Zx
	case 21:
		return m.Zy
	case 22:
		return m.Zz
	case 23:
		return m.Zw
	case 30:
		return m.Wx
	case 31:
		return m.Wy
	case 32:
		return m.Wz
	case 33:
		return m.Ww
	}
	panic("lin: M4.At index out of range")
}

// Transpose updates m to be the reflection of matrix a over its diagonal.
//    [ Xx Xy Xz Xw ]    [ Xx Yx Zx Wx ]
//    [ Yx Yy Yz Yw ] => [ Xy Yy Zy Wy ]
//    [ Zx Zy Zz Zw ]    [ Xz Yz Zz Wz ]
//    [ Wx Wy Wz Ww ]    [ Xw Yw Zw Ww ]
// The input matrix a is not changed. Matrix m may be used as the input
// parameter. The updated matrix m is returned.
func (m *M4) Transpose(a *M4) *M4 {
	t_Xy, t_Xz, t_Yz := a.Xy, a.Xz, a.Yz
	t_Xw, t_Yw, t_Zw := a.Xw, a.Yw, a.Zw
	m.Xx, m.Xy, m.Xz, m.Xw = a.Xx, a.Yx, a.Zx, a.Wx
	m.Yx, m.Yy, m.Yz, m.Yw = t_Xy, a.Yy, a.Zy, a.Wy
	m.Zx, m.Zy, m.Zz, m.Zw = t_Xz, t_Yz, a.Zz, a.Wz
	m.Wx, m.Wy, m.Wz, m.Ww = t_Xw, t_Yw, t_Zw, a.Ww
	return m
}

// Mult updates matrix m to be the multiplication of input matrices l, r.
//    [ lXx lXy lXz lXw ] [ rXx rXy rXz rXw ]    [ mXx mXy mXz mXw ]
//    [ lYx lYy lYz lYw ]x[ rYx rYy rYz rYw ] => [ mYx mYy mYz mYw ]
//    [ lZx lZy lZz lZw ] [ rZx rZy rZz rZw ]    [ mZx mZy mZz mZw ]
//    [ lWx lWy lWz lWw ] [ rWx rWy rWz rWw ]    [ mWx mWy mWz mWw ]
// It is safe to use the calling matrix m as one or both of the parameters.
// The updated matrix m is returned.
func (m *M4) Mult(l, r *M4) *M4 {
	xx := l.Xx*r.Xx + l.Xy*r.Yx + l.Xz*r.Zx + l.Xw*r.Wx
	xy := l.Xx*r.Xy + l.Xy*r.Yy + l.Xz*r.Zy + l.Xw*r.Wy
	xz := l.Xx*r.Xz + l.Xy*r.Yz + l.Xz*r.Zz + l.Xw*r.Wz
	xw := l.Xx*r.Xw + l.Xy*r.Yw + l.Xz*r.Zw + l.Xw*r.Ww
	yx := l.Yx*r.Xx + l.Yy*r.Yx + l.Yz*r.Zx + l.Yw*r.Wx
	yy := l.Yx*r.Xy + l.Yy*r.Yy + l.Yz*r.Zy + l.Yw*r.Wy
	yz := l.Yx*r.Xz + l.Yy*r.Yz + l.Yz*r.Zz + l.Yw*r.Wz
	yw := l.Yx*r.Xw + l.Yy*r.Yw + l.Yz*r.Zw + l.Yw*r.Ww
	zx := l.Zx*r.Xx + l.Zy*r.Yx + l.Zz*r.Zx + l.Zw*r.Wx
	zy := l.Zx*r.Xy + l.Zy*r.Yy + l.Zz*r.Zy + l.Zw*r.Wy
	zz := l.Zx*r.Xz + l.Zy*r.Yz + l.Zz*r.Zz + l.Zw*r.Wz
	zw := l.Zx*r.Xw + l.Zy*r.Yw + l.Zz*r.Zw + l.Zw*r.Ww
	wx := l.Wx*r.Xx + l.Wy*r.Yx + l.Wz*r.Zx + l.Ww*r.Wx
	wy := l.Wx*r.Xy + l.Wy*r.Yy + l.Wz*r.Zy + l.Ww*r.Wy
	wz := l.Wx*r.Xz + l.Wy*r.Yz + l.Wz*r.Zz + l.Ww*r.Wz
	ww := l.Wx*r.Xw + l.Wy*r.Yw + l.Wz*r.Zw + l.Ww*r.Ww
	m.Xx, m.Xy, m.Xz, m.Xw = xx, xy, xz, xw
	m.Yx, m.Yy, m.Yz, m.Yw = yx, yy, yz, yw
	m.Zx, m.Zy, m.Zz, m.Zw = zx, zy, zz, zw
	m.Wx, m.Wy, m.Wz, m.Ww = wx, wy, wz, ww
	return m
}

// methods above do not allocate memory.
// ============================================================================
// convenience functions for allocating matrices. Nothing else should allocate.

// NewM4 creates a new, all zero, 4x4 matrix.
func NewM4() *M4 { return &M4{} }

// NewM4I creates a new 4x4 identity matrix.
//    [ 1 0 0 0 ]    [ Xx Xy Xz Xw ]
//    [ 0 1 0 0 ] => [ Yx Yy Yz Yw ]
//    [ 0 0 1 0 ]    [ Zx Zy Zz Zw ]
//    [ 0 0 0 1 ]    [ Wx Wy Wz Ww ]
func NewM4I() *M4 { return &M4{Xx: 1, Yy: 1, Zz: 1, Ww: 1} }
