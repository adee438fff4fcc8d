// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

import (
	"math"
	"testing"
)

func TestNewScreenStartsClear(t *testing.T) {
	s := NewScreen(4, 4)
	for _, p := range s.Buffer() {
		if p != White {
			t.Fatalf("expected cleared screen to be white, got %+v", p)
		}
	}
}

func TestPutPixelRespectsDepthTest(t *testing.T) {
	s := NewScreen(4, 4)
	near := Pixel{1, 0, 0, 255}
	far := Pixel{0, 1, 0, 255}

	s.PutPixel(1, 1, 0.5, near)
	s.PutPixel(1, 1, 0.9, far) // farther, should not overwrite
	if got := s.Buffer()[1+1*4]; got != near {
		t.Errorf("farther write should not have overwritten nearer pixel, got %+v", got)
	}

	s.PutPixel(1, 1, 0.1, far) // nearer, should overwrite
	if got := s.Buffer()[1+1*4]; got != far {
		t.Errorf("nearer write should have overwritten, got %+v", got)
	}
}

func TestPutPixelIgnoresOutOfBounds(t *testing.T) {
	s := NewScreen(2, 2)
	s.PutPixel(-1, 0, 0, Pixel{1, 1, 1, 1})
	s.PutPixel(0, -1, 0, Pixel{1, 1, 1, 1})
	s.PutPixel(2, 0, 0, Pixel{1, 1, 1, 1})
	s.PutPixel(0, 2, 0, Pixel{1, 1, 1, 1})
	for _, p := range s.Buffer() {
		if p != White {
			t.Errorf("out of bounds write should have been ignored")
		}
	}
}

func TestPutPixelIgnoresNonFiniteDepth(t *testing.T) {
	s := NewScreen(2, 2)
	s.PutPixel(0, 0, float32(math.Inf(1)), Pixel{1, 1, 1, 1})
	if got := s.Buffer()[0]; got != White {
		t.Errorf("non-finite depth write should have been ignored, got %+v", got)
	}
}

func TestRGBAPacksRowMajor(t *testing.T) {
	s := NewScreen(2, 1)
	s.PutPixel(1, 0, 0, Pixel{9, 8, 7, 6})
	rgba := s.RGBA()
	if len(rgba) != 2*1*4 {
		t.Fatalf("expected 8 bytes, got %d", len(rgba))
	}
	if rgba[4] != 9 || rgba[5] != 8 || rgba[6] != 7 || rgba[7] != 6 {
		t.Errorf("expected second pixel to be (9,8,7,6), got %v", rgba[4:8])
	}
}

func TestClearDepthAllowsRewriteAfterNearWrite(t *testing.T) {
	s := NewScreen(1, 1)
	s.PutPixel(0, 0, 0.1, Pixel{1, 0, 0, 255})
	s.ClearDepth()
	s.PutPixel(0, 0, 0.9, Pixel{0, 1, 0, 255})
	if got := s.Buffer()[0]; got != (Pixel{0, 1, 0, 255}) {
		t.Errorf("expected cleared depth buffer to allow a farther write, got %+v", got)
	}
}
