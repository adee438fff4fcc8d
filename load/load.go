// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package load fetches disk-based mesh and image assets for raster3d
// scenes: Wavefront OBJ meshes and PNG/BMP/WebP/TGA textures, each reduced
// to the narrow in-memory shape the engine needs rather than anything GPU
// specific.
package load

import (
	"fmt"
	"os"
	"path"
)

// assetDir maps a file extension to the directory Mesh and Image look for
// it in, overridable with SetAssetDir.
var assetDir = map[string]string{
	".obj":  "models",
	".png":  "images",
	".bmp":  "images",
	".webp": "images",
	".tga":  "images",
}

// SetAssetDir overrides the default directory searched for files with the
// given extension, e.g. SetAssetDir(".obj", "testdata").
func SetAssetDir(ext, dir string) { assetDir[ext] = dir }

func resolve(name string) string {
	if dir, ok := assetDir[path.Ext(name)]; ok {
		return path.Join(dir, name)
	}
	return name
}

// Mesh reads and parses name, resolved against the directory registered
// for its extension, as a Wavefront OBJ file.
func Mesh(name string) (*ObjMesh, error) {
	f, err := os.Open(resolve(name))
	if err != nil {
		return nil, fmt.Errorf("load: open %s: %w", name, err)
	}
	defer f.Close()
	return Obj(f)
}

// Image reads and decodes name, resolved against the directory registered
// for its extension, as a PNG, BMP, WebP or TGA image.
func Image(name string) (*ImageData, error) {
	f, err := os.Open(resolve(name))
	if err != nil {
		return nil, fmt.Errorf("load: open %s: %w", name, err)
	}
	defer f.Close()
	return DecodeImage(f, name)
}
