// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

import (
	"testing"

	"github.com/hcline/raster3d/math/lin"
)

func sv(x, y, z, u, v float64) ScreenVertex {
	return ScreenVertex{Position: lin.V3{X: x, Y: y, Z: z}, UV: lin.V2{X: u, Y: v}}
}

func TestRasterizeTriangleFillsCoveredPixel(t *testing.T) {
	screen := NewScreen(10, 10)
	tri := Triangle{
		A: sv(2, 2, 1, 0, 0),
		B: sv(8, 2, 1, 1, 0),
		C: sv(2, 8, 1, 0, 1),
	}
	red := Pixel{255, 0, 0, 255}
	RasterizeTriangle(screen, SolidTexture(red), tri)

	if got := screen.Buffer()[3+3*10]; got != red {
		t.Errorf("expected an interior pixel to be filled, got %+v", got)
	}
	if got := screen.Buffer()[9+9*10]; got != White {
		t.Errorf("expected a pixel outside the triangle to remain white, got %+v", got)
	}
}

func TestRasterizeTriangleDegenerateIsNoop(t *testing.T) {
	screen := NewScreen(4, 4)
	tri := Triangle{A: sv(0, 0, 1, 0, 0), B: sv(2, 0, 1, 0, 0), C: sv(0, 0, 1, 0, 0)}
	RasterizeTriangle(screen, SolidTexture(Pixel{1, 2, 3, 4}), tri)
	for _, p := range screen.Buffer() {
		if p != White {
			t.Fatalf("expected degenerate triangle to leave the screen untouched")
		}
	}
}

func TestRasterizeTriangleNearerWinsRegardlessOfOrder(t *testing.T) {
	far := Triangle{A: sv(0, 0, 10, 0, 0), B: sv(10, 0, 10, 0, 0), C: sv(0, 10, 10, 0, 0)}
	near := Triangle{A: sv(0, 0, 1, 0, 0), B: sv(10, 0, 1, 0, 0), C: sv(0, 10, 1, 0, 0)}

	screenFarFirst := NewScreen(10, 10)
	RasterizeTriangle(screenFarFirst, SolidTexture(Pixel{1, 0, 0, 255}), far)
	RasterizeTriangle(screenFarFirst, SolidTexture(Pixel{0, 1, 0, 255}), near)

	screenNearFirst := NewScreen(10, 10)
	RasterizeTriangle(screenNearFirst, SolidTexture(Pixel{0, 1, 0, 255}), near)
	RasterizeTriangle(screenNearFirst, SolidTexture(Pixel{1, 0, 0, 255}), far)

	if screenFarFirst.Buffer()[3+3*10] != screenNearFirst.Buffer()[3+3*10] {
		t.Errorf("expected the nearer triangle to win regardless of draw order")
	}
	if got := screenFarFirst.Buffer()[3+3*10]; got != (Pixel{0, 1, 0, 255}) {
		t.Errorf("expected the nearer (green) triangle to be visible, got %+v", got)
	}
}

func TestRasterizeTriangleSamplesNearestCorner(t *testing.T) {
	img := NewImage(2, 2)
	img.Data[0] = Pixel{255, 0, 0, 255}   // (0,0)
	img.Data[1] = Pixel{0, 255, 0, 255}   // (1,0)
	img.Data[2] = Pixel{0, 0, 255, 255}   // (0,1)
	img.Data[3] = Pixel{255, 255, 0, 255} // (1,1)

	screen := NewScreen(20, 20)
	tri := Triangle{
		A: sv(1, 1, 1, 0, 0),
		B: sv(18, 1, 1, 1, 0),
		C: sv(1, 18, 1, 0, 1),
	}
	RasterizeTriangle(screen, ImageTexture(img), tri)

	// the pixel right next to corner A should sample close to uv (0,0).
	if got := screen.Buffer()[2+2*20]; got != (Pixel{255, 0, 0, 255}) {
		t.Errorf("expected a pixel near corner A to sample uv (0,0), got %+v", got)
	}
}
