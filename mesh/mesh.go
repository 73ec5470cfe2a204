// Package mesh loads Wavefront OBJ/MTL files into triangle primitives,
// the tracer's mesh-ingestion external collaborator (spec.md §6).
package mesh

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"path-tracer/hit"
	"path-tracer/materials"
	pmath "path-tracer/math"
	"path-tracer/primitives"
	"path-tracer/textures"
)

// Mesh is the flattened triangles of a single "o"/"g" group in the source
// OBJ. A "usemtl" inside a group changes the material of the faces after
// it, so one Mesh's triangles can carry different materials.
type Mesh struct {
	Name      string
	Triangles []*primitives.Triangle
}

// objVertex is a raw "v/vt/vn" face reference, resolved against the
// positions/normals/uvs tables accumulated while scanning.
type objVertex struct {
	position pmath.Vec3
	uv       primitives.UV
}

// LoadOBJ parses path and, for every triangle face, looks up its
// material by name in the MTL files referenced via "mtllib" (falling
// back to defaultMaterial when a face has no usemtl in scope, or a
// referenced material name is missing). Faces with more than three
// vertices are fan-triangulated.
func LoadOBJ(path string, defaultMaterial hit.Material) ([]*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj file: %w", err)
	}
	defer f.Close()

	materialsByName := make(map[string]hit.Material)

	var positions []pmath.Vec3
	var normals []pmath.Vec3
	var uvs []pmath.Vec2

	var meshes []*Mesh
	currentMesh := &Mesh{Name: "default"}
	currentMaterial := defaultMaterial

	flush := func() {
		if len(currentMesh.Triangles) > 0 {
			meshes = append(meshes, currentMesh)
		}
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "v":
			if len(parts) >= 4 {
				positions = append(positions, parseVec3(parts[1:4]))
			}
		case "vn":
			if len(parts) >= 4 {
				normals = append(normals, parseVec3(parts[1:4]))
			}
		case "vt":
			if len(parts) >= 3 {
				x, _ := strconv.ParseFloat(parts[1], 32)
				y, _ := strconv.ParseFloat(parts[2], 32)
				uvs = append(uvs, pmath.NewVec2(float32(x), float32(y)))
			}

		case "f":
			verts := make([]objVertex, 0, len(parts)-1)
			for _, spec := range parts[1:] {
				verts = append(verts, parseFaceVertex(spec, positions, uvs))
			}
			for i := 2; i < len(verts); i++ {
				a, b, c := verts[0], verts[i-1], verts[i]
				tri := primitives.NewTriangle(
					a.position,
					b.position.Sub(a.position),
					c.position.Sub(a.position),
					[3]primitives.UV{a.uv, b.uv, c.uv},
					currentMaterial,
				)
				currentMesh.Triangles = append(currentMesh.Triangles, tri)
			}

		case "o", "g":
			flush()
			name := "unnamed"
			if len(parts) > 1 {
				name = parts[1]
			}
			currentMesh = &Mesh{Name: name}

		case "usemtl":
			if len(parts) > 1 {
				if m, ok := materialsByName[parts[1]]; ok {
					currentMaterial = m
				} else {
					currentMaterial = defaultMaterial
				}
			}

		case "mtllib":
			if len(parts) > 1 {
				mtlPath := filepath.Join(filepath.Dir(path), parts[1])
				parsed, err := LoadMTL(mtlPath)
				if err != nil {
					return nil, fmt.Errorf("load mtllib %s: %w", parts[1], err)
				}
				for k, v := range parsed {
					materialsByName[k] = v
				}
			}
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan obj file: %w", err)
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("no triangles found in %s", path)
	}
	return meshes, nil
}

// LoadMTL parses a Wavefront .mtl file into named Lambertian materials.
// A material with a "map_Kd" entry gets an image-textured Lambertian
// (relative to the MTL's own directory); otherwise it gets a solid
// color from "Kd" (defaulting to light gray (0.8, 0.8, 0.8) when absent).
func LoadMTL(path string) (map[string]hit.Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mtl file: %w", err)
	}
	defer f.Close()

	result := make(map[string]hit.Material)

	type pending struct {
		name      string
		diffuse   pmath.Vec3
		mapKd     string
	}
	var current *pending
	flush := func() error {
		if current == nil {
			return nil
		}
		if current.mapKd != "" {
			img, err := textures.LoadImage(filepath.Join(filepath.Dir(path), current.mapKd))
			if err != nil {
				return fmt.Errorf("load map_Kd for material %s: %w", current.name, err)
			}
			result[current.name] = materials.NewLambertian(img, pmath.NewVec3(1, 1, 1))
			return nil
		}
		result[current.name] = materials.NewLambertian(textures.NewSolid(current.diffuse), pmath.NewVec3(1, 1, 1))
		return nil
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "newmtl":
			if err := flush(); err != nil {
				return nil, err
			}
			name := "unnamed"
			if len(parts) > 1 {
				name = parts[1]
			}
			current = &pending{name: name, diffuse: pmath.NewVec3(0.8, 0.8, 0.8)}
		case "Kd":
			if current != nil && len(parts) >= 4 {
				current.diffuse = parseVec3(parts[1:4])
			}
		case "map_Kd":
			if current != nil && len(parts) > 1 {
				current.mapKd = parts[len(parts)-1]
			}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return result, scanner.Err()
}

func parseVec3(fields []string) pmath.Vec3 {
	x, _ := strconv.ParseFloat(fields[0], 32)
	y, _ := strconv.ParseFloat(fields[1], 32)
	z, _ := strconv.ParseFloat(fields[2], 32)
	return pmath.NewVec3(float32(x), float32(y), float32(z))
}

// parseFaceVertex resolves a "v", "v/vt", or "v/vt/vn" face reference.
// Normals are parsed for compatibility but unused: Triangle derives its
// own flat face normal from the winding order.
func parseFaceVertex(spec string, positions []pmath.Vec3, uvs []pmath.Vec2) objVertex {
	var ov objVertex
	parts := strings.Split(spec, "/")

	if len(parts) >= 1 && parts[0] != "" {
		if idx := resolveIndex(parts[0], len(positions)); idx >= 0 {
			ov.position = positions[idx]
		}
	}
	if len(parts) >= 2 && parts[1] != "" {
		if idx := resolveIndex(parts[1], len(uvs)); idx >= 0 {
			ov.uv = uvs[idx]
		}
	}
	return ov
}

// resolveIndex converts a 1-based (or negative, relative-to-end) OBJ
// index into a 0-based slice index, or -1 if out of range.
func resolveIndex(s string, count int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	if n < 0 {
		n = count + n + 1
	}
	if n < 1 || n > count {
		return -1
	}
	return n - 1
}
