// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

import (
	"math"

	"github.com/hcline/raster3d/math/lin"
)

// insideEpsilon is the tolerance used by the edge-function inside test; a
// point whose barycentric determinant is slightly negative due to floating
// point error is still treated as inside.
const insideEpsilon = 1e-10

// machineEpsilon bounds the signed area of a triangle below which it is
// considered degenerate and discarded.
const machineEpsilon = 2.220446049250313e-16

// det returns the signed area of the triangle (a, b, c) using their x, y
// coordinates only.
func det(a, b, c lin.V3) float64 {
	return a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y)
}

// RasterizeTriangle walks the integer pixels inside triangle t's screen
// space bounding box and writes each one that survives the barycentric
// inside test into screen, perspective-correctly interpolating depth and
// uv and sampling texture for its color. Degenerate triangles (zero signed
// area) are discarded. No backface culling is performed.
func RasterizeTriangle(screen *Screen, texture Texture, t Triangle) {
	a, b, c := t.A.Position, t.B.Position, t.C.Position
	detABC := det(a, b, c)
	if math.Abs(detABC) < machineEpsilon {
		return
	}

	left := int(math.Floor(min3(a.X, b.X, c.X)))
	right := int(math.Ceil(max3(a.X, b.X, c.X)))
	top := int(math.Floor(min3(a.Y, b.Y, c.Y)))
	bottom := int(math.Ceil(max3(a.Y, b.Y, c.Y)))

	zA, zB, zC := 1/a.Z, 1/b.Z, 1/c.Z
	texW, texH := texture.Width(), texture.Height()

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			p := lin.V3{X: float64(x), Y: float64(y), Z: 0}
			detABP := det(a, b, p)
			detBCP := det(b, c, p)
			detCAP := det(c, a, p)

			alpha := detBCP / detABC
			beta := detCAP / detABC
			gamma := detABP / detABC
			if alpha < -insideEpsilon || beta < -insideEpsilon || gamma < -insideEpsilon {
				continue
			}

			invZ := alpha*zA + beta*zB + gamma*zC
			z := 1 / invZ

			uOverZ := alpha*(t.A.UV.X*zA) + beta*(t.B.UV.X*zB) + gamma*(t.C.UV.X*zC)
			vOverZ := alpha*(t.A.UV.Y*zA) + beta*(t.B.UV.Y*zB) + gamma*(t.C.UV.Y*zC)
			u := uOverZ / invZ
			v := vOverZ / invZ

			tx := int(math.Round(lin.Clamp(u, 0, 1) * float64(texW-1)))
			ty := int(math.Round(lin.Clamp(v, 0, 1) * float64(texH-1)))
			tx = clampInt(tx, 0, texW-1)
			ty = clampInt(ty, 0, texH-1)

			screen.PutPixel(x, y, float32(z), texture.At(tx, ty))
		}
	}
}

// RasterizeScene drains every triangle from it, rasterizing each into screen.
func RasterizeScene(screen *Screen, it *FrameIterator) {
	for {
		tri, texture, ok := it.Next()
		if !ok {
			return
		}
		RasterizeTriangle(screen, texture, tri)
	}
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
