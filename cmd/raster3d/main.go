// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Command raster3d runs the software rasterizer in a terminal, loading a
// Wavefront OBJ model and its texture and spinning it in front of the
// camera. Arrow keys move the camera; q quits.
//
//	raster3d [model.obj] [texture.png]
//
// Both arguments are optional; with none given a built-in cube is shown
// with a solid texture.
package main

import (
	"flag"
	"log"

	"github.com/hcline/raster3d"
	"github.com/hcline/raster3d/device"
	"github.com/hcline/raster3d/load"
	"github.com/hcline/raster3d/math/lin"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML engine configuration file")
	flag.Parse()

	cfg := raster3d.DefaultConfig()
	if *configPath != "" {
		loaded, err := raster3d.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("raster3d: load config: %s", err)
		}
		cfg = loaded
	}

	adapter, err := device.NewTerminal(cfg.Width, cfg.Height)
	if err != nil {
		log.Fatalf("raster3d: terminal adapter: %s", err)
	}
	defer adapter.Close()

	engine := raster3d.New(cfg, adapter)
	scene := engine.Scene()

	scene.AddObject(buildSubject(scene, flag.Args()))

	engine.Action(cfg)
}

// buildSubject loads a mesh and its texture from the command line
// arguments, falling back to a built-in cube with a solid texture when none
// are given.
func buildSubject(scene *raster3d.Scene, args []string) *raster3d.Mesh {
	if len(args) == 0 {
		return cube()
	}

	objMesh, err := load.Mesh(args[0])
	if err != nil {
		log.Fatalf("raster3d: load mesh %s: %s", args[0], err)
	}
	textureName := objMesh.Texture
	if textureName == "" {
		textureName = "solid_red"
	}
	if len(args) > 1 {
		img, err := load.Image(args[1])
		if err != nil {
			log.Fatalf("raster3d: load texture %s: %s", args[1], err)
		}
		textureName = args[1]
		scene.Textures.Add(textureName, raster3d.ImageTexture(toImage(img)))
	}
	return toMesh(objMesh, textureName)
}

func toImage(img *load.ImageData) *raster3d.Image {
	out := raster3d.NewImage(img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			i := (x + y*img.Width) * 4
			out.Data[x+y*img.Width] = raster3d.Pixel{
				R: img.Pixels[i], G: img.Pixels[i+1], B: img.Pixels[i+2], A: img.Pixels[i+3],
			}
		}
	}
	return out
}

func toMesh(obj *load.ObjMesh, texture string) *raster3d.Mesh {
	vertices := make([]lin.V3, len(obj.Vertices))
	for i, v := range obj.Vertices {
		vertices[i] = lin.V3{X: v.X, Y: v.Y, Z: v.Z}
	}
	uvs := make([]lin.V2, len(obj.UVs))
	for i, uv := range obj.UVs {
		uvs[i] = lin.V2{X: uv.U, Y: uv.V}
	}
	if len(uvs) == 0 {
		uvs = []lin.V2{{X: 0, Y: 0}}
	}
	indices := make([]raster3d.Indice, len(obj.Indices))
	for i, ind := range obj.Indices {
		indices[i] = raster3d.Indice{Vertex: ind.Vertex, UV: ind.UV}
	}
	return raster3d.NewTexturedMesh(vertices, uvs, indices, texture)
}

// cube returns the unit cube shown when no model is given on the command line.
func cube() *raster3d.Mesh {
	vertices := []lin.V3{
		{X: -0.5, Y: -0.5, Z: -0.5}, {X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5}, {X: -0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: 0.5}, {X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5}, {X: -0.5, Y: 0.5, Z: 0.5},
	}
	uvs := []lin.V2{{X: 0, Y: 0}}
	quad := func(a, b, c, d int) []raster3d.Indice {
		return []raster3d.Indice{
			{Vertex: [3]int{a, b, c}, UV: [3]int{0, 0, 0}},
			{Vertex: [3]int{a, c, d}, UV: [3]int{0, 0, 0}},
		}
	}
	var indices []raster3d.Indice
	indices = append(indices, quad(0, 1, 2, 3)...) // back
	indices = append(indices, quad(5, 4, 7, 6)...) // front
	indices = append(indices, quad(4, 0, 3, 7)...) // left
	indices = append(indices, quad(1, 5, 6, 2)...) // right
	indices = append(indices, quad(3, 2, 6, 7)...) // top
	indices = append(indices, quad(4, 5, 1, 0)...) // bottom
	return raster3d.NewTexturedMesh(vertices, uvs, indices, "solid_red")
}
