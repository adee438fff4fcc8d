// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

import (
	"math"

	"github.com/hcline/raster3d/math/lin"
)

// Screen is the color and depth buffer pair the rasterizer writes into and
// the platform adapter presents. A Screen's size is fixed once created;
// resizing replaces the Screen rather than reallocating its buffers in place.
type Screen struct {
	Width, Height int

	buffer []Pixel
	depth  []float32

	viewport *lin.M4
}

// NewScreen allocates a screen of the given size, its color buffer filled
// white and its depth buffer filled to the farthest possible value.
func NewScreen(width, height int) *Screen {
	size := width * height
	s := &Screen{
		Width:    width,
		Height:   height,
		buffer:   make([]Pixel, size),
		depth:    make([]float32, size),
		viewport: lin.Viewport(width, height),
	}
	s.ClearBuffer()
	s.ClearDepth()
	return s
}

// Viewport returns the screen's cached viewport matrix.
func (s *Screen) Viewport() *lin.M4 { return s.viewport }

// Buffer returns the screen's current color buffer, row-major from the
// top-left corner.
func (s *Screen) Buffer() []Pixel { return s.buffer }

// ClearBuffer resets every pixel in the color buffer to white.
func (s *Screen) ClearBuffer() {
	for i := range s.buffer {
		s.buffer[i] = White
	}
}

// ClearDepth resets the depth buffer so every pixel is eligible to be
// written again.
func (s *Screen) ClearDepth() {
	for i := range s.depth {
		s.depth[i] = float32(math.Inf(1))
	}
}

// PutPixel writes pixel at (x, y) with depth z if it passes the depth test:
// x and y must be in bounds, z must be finite, and z must be strictly less
// than the depth already recorded at that pixel. Equal depths keep the
// earlier write.
func (s *Screen) PutPixel(x, y int, z float32, pixel Pixel) {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return
	}
	if !isFinite32(z) {
		return
	}
	index := x + y*s.Width
	if z < s.depth[index] {
		s.buffer[index] = pixel
		s.depth[index] = z
	}
}

// RGBA packs the color buffer into row-major RGBA8 bytes for presentation.
func (s *Screen) RGBA() []byte {
	out := make([]byte, len(s.buffer)*4)
	for i, p := range s.buffer {
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = p.R, p.G, p.B, p.A
	}
	return out
}

func isFinite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
