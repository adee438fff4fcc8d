// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"path"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

func init() {
	image.RegisterFormat("png", "\x89PNG\r\n\x1a\n", png.Decode, png.DecodeConfig)
	image.RegisterFormat("bmp", "BM", bmp.Decode, bmp.DecodeConfig)
	image.RegisterFormat("webp", "RIFF", nativewebp.Decode, nativewebp.DecodeConfig)
}

// ImageData is the decoded RGBA8 pixel data of a texture image, row-major
// from the top-left corner.
type ImageData struct {
	Width, Height int
	Pixels        []byte // RGBA8, len == Width*Height*4
}

// DecodeImage decodes r as PNG, BMP, WebP or TGA. A name with a .tga
// extension is decoded as TGA, which has no reliable magic header of its
// own; any other name is detected by the standard magic-byte sniffing.
func DecodeImage(r io.Reader, name string) (*ImageData, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("load: read image: %w", err)
	}

	var img image.Image
	if strings.EqualFold(path.Ext(name), ".tga") {
		img, err = tga.Decode(bytes.NewReader(data))
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("load: decode image %s: %w", name, err)
	}
	return toImageData(img), nil
}

// toImageData flattens any image.Image into top-to-bottom row-major RGBA8.
func toImageData(img image.Image) *ImageData {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := &ImageData{Width: w, Height: h, Pixels: make([]byte, w*h*4)}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			out.Pixels[i], out.Pixels[i+1], out.Pixels[i+2], out.Pixels[i+3] =
				byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8)
			i += 4
		}
	}
	return out
}
