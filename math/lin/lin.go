// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package lin provides a linear math library that includes vectors,
// matrices and the transform builders (translate, scale, Euler rotate,
// look-at view, perspective projection, viewport) used to turn mesh and
// camera state into the matrices the rasterizer multiplies together.
//
// Package lin is provided as part of a CPU software 3D rasterizer.
package lin

// Design Notes:
//
// 1) This is a CPU based 3D math library called once per vertex, not once
//    per pixel, so clarity is favoured over the zero-allocation style a
//    GPU feed would need.
//
// 2) Wikipedia states: "In linear algebra, real numbers are called scalars...".
//    The default scalar size is float64 since the underlying go math
//    package uses this size.

import "math"

// Various linear math constants.
const (

	// PI and its commonly needed varients.
	PI     float64 = math.Pi
	PIx2   float64 = PI * 2
	HalfPi float64 = PIx2 * 0.25
	DegRad float64 = PIx2 / 360.0 // X degrees * DEG_RAD = Y radians
	RadDeg float64 = 360.0 / PIx2 // Y radians * RAD_DEG = X degrees

	// Epsilon is used to distinguish when a float is close enough to a number.
	Epsilon float64 = 0.000001

	// MatrixEpsilon is the tighter tolerance matrix equality checks use.
	MatrixEpsilon float64 = 1e-12

	// ZFloor replaces a homogeneous z of exactly 0 so perspective divide
	// never sees a zero w. See V3.Homogeneous.
	ZFloor float64 = 1e-4
)

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * DegRad }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad * RadDeg }

// AeqZ (~=) almost-equals returns true if the difference between x and zero
// is so small that it doesn't matter.
func AeqZ(x float64) bool { return math.Abs(x) < Epsilon }

// Aeq (~=) almost-equals returns true if the difference between a and b is
// so small that it doesn't matter.
func Aeq(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// AeqTol is almost-equals using an explicit tolerance, used where a
// tighter or looser bound than Epsilon is needed (matrix comparisons).
func AeqTol(a, b, tol float64) bool { return math.Abs(a-b) < tol }

// Lerp returns the linear interpolation of a to b by the given ratio.
func Lerp(a, b, ratio float64) float64 { return (b-a)*ratio + a }

// Clamp returns a scalar value (one of: s, lb, ub) guaranteed to be within
// the range given by lower bound lb and upper bound ub.
func Clamp(s, lb, ub float64) float64 {
	switch {
	case s < lb:
		return lb
	case s > ub:
		return ub
	}
	return s
}

// Round return rounded version of x with prec precision.
// Special cases are:
//	  Round(±0) = ±0
//	  Round(±Inf) = ±Inf
//	  Round(NaN) = NaN
func Round(val float64, prec int) float64 {
	if val == 0 || math.IsInf(val, 0) || math.IsNaN(val) {
		return val
	}
	var rounder float64
	pow := math.Pow(10, float64(prec))
	intermed := val * pow
	if intermed < 0.0 {
		intermed -= 0.5
	} else {
		intermed += 0.5
	}
	rounder = float64(int64(intermed))
	return rounder / float64(pow)
}
