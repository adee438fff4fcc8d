// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package raster3d

// Pixel is a 32 bit RGBA color sample, the unit the rasterizer writes into a
// screen's color buffer and the unit a texture samples back out.
type Pixel struct {
	R, G, B, A uint8
}

// White is the default pixel used for untextured geometry and as the fill
// value for a cleared color buffer.
var White = Pixel{255, 255, 255, 255}

// Brightness returns the average of the red, green and blue channels,
// the value the terminal renderer maps to an ASCII glyph.
func (p Pixel) Brightness() float64 {
	return (float64(p.R) + float64(p.G) + float64(p.B)) / 3
}

// Image is a decoded, row-major block of pixels backing an image texture.
type Image struct {
	Width, Height int
	Data          []Pixel
}

// NewImage allocates an image of the given size with all pixels set to white.
func NewImage(width, height int) *Image {
	data := make([]Pixel, width*height)
	for i := range data {
		data[i] = White
	}
	return &Image{Width: width, Height: height, Data: data}
}

// At returns the pixel at the given column, row. Panics if x or y falls
// outside the image bounds.
func (img *Image) At(x, y int) Pixel {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		panic("raster3d: Image.At index out of range")
	}
	return img.Data[x+y*img.Width]
}

// kind discriminates the variants of Texture.
type kind int

const (
	kindNone kind = iota
	kindSolid
	kindImage
)

// Texture is a tagged union over the ways a triangle's surface can be
// colored: untextured, a single flat color, or a sampled image.
type Texture struct {
	kind  kind
	solid Pixel
	image *Image
}

// NoneTexture returns the texture variant that always samples white.
func NoneTexture() Texture { return Texture{kind: kindNone} }

// SolidTexture returns a texture that samples the same color everywhere.
func SolidTexture(p Pixel) Texture { return Texture{kind: kindSolid, solid: p} }

// ImageTexture returns a texture that samples an image by its texel coordinates.
func ImageTexture(img *Image) Texture { return Texture{kind: kindImage, image: img} }

// Width returns the sampling width of the texture. None and Solid textures
// report a width of one.
func (t Texture) Width() int {
	if t.kind == kindImage {
		return t.image.Width
	}
	return 1
}

// Height returns the sampling height of the texture.
func (t Texture) Height() int {
	if t.kind == kindImage {
		return t.image.Height
	}
	return 1
}

// At samples the texture at the given texel coordinates.
func (t Texture) At(x, y int) Pixel {
	switch t.kind {
	case kindSolid:
		return t.solid
	case kindImage:
		return t.image.At(x, y)
	default:
		return White
	}
}

// Textures is the scene's named texture store. Meshes reference textures by
// name; a missing name resolves to the none texture.
type Textures struct {
	named map[string]Texture
}

// NewTextures creates a texture store seeded with the "none" and "solid_red"
// textures that every scene can rely on without loading anything from disk.
func NewTextures() *Textures {
	t := &Textures{named: map[string]Texture{}}
	t.Add("none", NoneTexture())
	t.Add("solid_red", SolidTexture(Pixel{255, 0, 0, 255}))
	return t
}

// Add registers or replaces a named texture.
func (t *Textures) Add(name string, texture Texture) {
	t.named[name] = texture
}

// Get returns the named texture, falling back to the none texture when the
// name is not registered.
func (t *Textures) Get(name string) Texture {
	if texture, ok := t.named[name]; ok {
		return texture
	}
	return NoneTexture()
}
