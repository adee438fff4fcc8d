// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package load

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// V3 and V2 are the plain coordinate triples and pairs this package hands
// back; the caller is responsible for turning them into its own vector
// type, avoiding a dependency from load back onto the engine package.
type V3 struct{ X, Y, Z float64 }
type V2 struct{ U, V float64 }

// Indice is one triangle's three corners, each a (vertex, uv) index pair
// into an ObjMesh's Vertices and UVs slices.
type Indice struct {
	Vertex [3]int
	UV     [3]int
}

// ObjMesh is the parsed contents of a Wavefront OBJ file: the subset this
// loader supports is vertex positions, texture coordinates, triangle faces
// and a single active material name.
type ObjMesh struct {
	Vertices []V3
	UVs      []V2
	Indices  []Indice
	Texture  string
}

// Obj parses r as a Wavefront OBJ file containing `v`, `vt` and `f` records
// plus `usemtl`. Normals, smoothing groups, multiple named objects and
// polygon faces with more than three corners are not supported; faces must
// be triangles. A face corner is `v`, `v/vt` or `v/vt/vn`; a missing or
// empty uv field defaults to index 0. All indices are 1-based in the file
// and converted to 0-based here.
func Obj(r io.Reader) (*ObjMesh, error) {
	mesh := &ObjMesh{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("load: bad vertex %q", line)
			}
			x, y, z, err := parseV3(fields[1], fields[2], fields[3])
			if err != nil {
				return nil, fmt.Errorf("load: bad vertex %q: %w", line, err)
			}
			mesh.Vertices = append(mesh.Vertices, V3{x, y, z})
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("load: bad texture coordinate %q", line)
			}
			u, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("load: bad texture coordinate %q: %w", line, err)
			}
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("load: bad texture coordinate %q: %w", line, err)
			}
			mesh.UVs = append(mesh.UVs, V2{u, v})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("load: bad face %q", line)
			}
			var indice Indice
			for i := 0; i < 3; i++ {
				v, uv, err := parseFaceVertex(fields[i+1])
				if err != nil {
					return nil, err
				}
				indice.Vertex[i], indice.UV[i] = v, uv
			}
			mesh.Indices = append(mesh.Indices, indice)
		case "usemtl":
			if len(fields) >= 2 {
				mesh.Texture = fields[1]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("load: read obj: %w", err)
	}
	if len(mesh.Vertices) == 0 || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("load: obj file has no usable mesh data")
	}
	return mesh, nil
}

func parseV3(sx, sy, sz string) (x, y, z float64, err error) {
	if x, err = strconv.ParseFloat(sx, 64); err != nil {
		return
	}
	if y, err = strconv.ParseFloat(sy, 64); err != nil {
		return
	}
	z, err = strconv.ParseFloat(sz, 64)
	return
}

// parseFaceVertex parses one "v", "v/vt" or "v/vt/vn" face corner token.
func parseFaceVertex(token string) (vertex, uv int, err error) {
	parts := strings.Split(token, "/")
	v, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("load: bad face index %q: %w", token, err)
	}
	vertex = v - 1
	if len(parts) >= 2 && parts[1] != "" {
		t, terr := strconv.Atoi(parts[1])
		if terr != nil {
			return 0, 0, fmt.Errorf("load: bad face index %q: %w", token, terr)
		}
		uv = t - 1
	}
	return vertex, uv, nil
}
