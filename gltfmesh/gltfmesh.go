// Package gltfmesh loads triangle meshes out of glTF/GLB documents, an
// alternate mesh source to package mesh (spec.md §6 external
// collaborators). Only static geometry and base-color material factors
// are read; glTF's PBR metallic-roughness, animation, and skinning are
// out of scope for an offline path tracer.
package gltfmesh

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"path-tracer/hit"
	"path-tracer/materials"
	pmath "path-tracer/math"
	"path-tracer/primitives"
	"path-tracer/textures"
)

// Mesh mirrors package mesh's grouping: one slice of triangles per
// glTF mesh primitive, already resolved to world space.
type Mesh struct {
	Name      string
	Triangles []*primitives.Triangle
}

// Load opens a .gltf or .glb document at path and flattens the mesh
// primitives of every node that references a mesh into world-space
// triangles; the document's scene lists are not consulted, so nodes of
// every scene are loaded. defaultMaterial is used for primitives with no
// glTF material and for materials without a PBR metallic-roughness block.
func Load(path string, defaultMaterial hit.Material) ([]*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf file: %w", err)
	}
	matCache := make([]hit.Material, len(doc.Materials))
	for i, gm := range doc.Materials {
		matCache[i] = resolveMaterial(gm, defaultMaterial)
	}

	meshes := make([]*Mesh, 0, len(doc.Meshes))
	transforms := nodeWorldTransforms(doc)

	for nodeIdx, gn := range doc.Nodes {
		if gn.Mesh == nil {
			continue
		}
		world := transforms[nodeIdx]

		gm := doc.Meshes[*gn.Mesh]
		for primIdx, prim := range gm.Primitives {
			m, err := loadPrimitive(doc, gm.Name, primIdx, prim, world, matCache, defaultMaterial)
			if err != nil {
				return nil, fmt.Errorf("mesh %q primitive %d: %w", gm.Name, primIdx, err)
			}
			meshes = append(meshes, m)
		}
	}

	if len(meshes) == 0 {
		return nil, fmt.Errorf("no triangle primitives found in %s", path)
	}
	return meshes, nil
}

func loadPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive, world pmath.Mat4, matCache []hit.Material, defaultMaterial hit.Material) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("read positions: %w", err)
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	worldPositions := make([]pmath.Vec3, len(positions))
	worldUVs := make([]primitives.UV, len(positions))
	for i, p := range positions {
		worldPositions[i] = world.MulVec3(pmath.NewVec3(p[0], p[1], p[2]))
		if i < len(uvs) {
			worldUVs[i] = pmath.NewVec2(uvs[i][0], uvs[i][1])
		}
	}

	material := defaultMaterial
	if prim.Material != nil && *prim.Material < len(matCache) && matCache[*prim.Material] != nil {
		material = matCache[*prim.Material]
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(worldPositions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	triangles := make([]*primitives.Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		ia, ib, ic := indices[i], indices[i+1], indices[i+2]
		a := worldPositions[ia]
		tri := primitives.NewTriangle(
			a,
			worldPositions[ib].Sub(a),
			worldPositions[ic].Sub(a),
			[3]primitives.UV{worldUVs[ia], worldUVs[ib], worldUVs[ic]},
			material,
		)
		triangles = append(triangles, tri)
	}

	return &Mesh{Name: name, Triangles: triangles}, nil
}

// resolveMaterial approximates a glTF PBR material as a Lambertian colored
// by its base-color factor (white when the factor is unset); a material
// without a PBR block gets defaultMaterial. Base-color textures are not
// read. Metallic/roughness/emissive are out of scope.
func resolveMaterial(gm *gltf.Material, defaultMaterial hit.Material) hit.Material {
	pbr := gm.PBRMetallicRoughness
	if pbr == nil {
		return defaultMaterial
	}

	// Base-color textures aren't resolved here (doing so needs the
	// doc's Images/BufferViews plumbed through); callers that need a
	// textured mesh should prefer package mesh's OBJ+MTL path, which
	// resolves map_Kd directly from disk.
	cf := pbr.BaseColorFactorOrDefault()
	color := pmath.NewVec3(float32(cf[0]), float32(cf[1]), float32(cf[2]))
	return materials.NewLambertian(textures.NewSolid(color), pmath.Vec3One)
}

// nodeWorldTransforms composes each node's local TRS with its
// ancestors', producing one world matrix per node index.
func nodeWorldTransforms(doc *gltf.Document) []pmath.Mat4 {
	world := make([]pmath.Mat4, len(doc.Nodes))
	computed := make([]bool, len(doc.Nodes))

	children := make([][]int, len(doc.Nodes))
	hasParent := make([]bool, len(doc.Nodes))
	for i, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if int(c) < len(doc.Nodes) {
				children[i] = append(children[i], int(c))
				hasParent[c] = true
			}
		}
	}

	var visit func(idx int, parent pmath.Mat4)
	visit = func(idx int, parent pmath.Mat4) {
		if computed[idx] {
			return
		}
		local := localTransform(doc.Nodes[idx])
		w := parent.Mul(local)
		world[idx] = w
		computed[idx] = true
		for _, c := range children[idx] {
			visit(c, w)
		}
	}

	for i := range doc.Nodes {
		if !hasParent[i] {
			visit(i, pmath.Mat4Identity())
		}
	}
	// Any node unreachable from a root (malformed hierarchy) still gets
	// an identity-rooted transform rather than being dropped.
	for i := range doc.Nodes {
		if !computed[i] {
			visit(i, pmath.Mat4Identity())
		}
	}

	return world
}

func localTransform(gn *gltf.Node) pmath.Mat4 {
	t := gn.TranslationOrDefault()
	s := gn.ScaleOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]

	translation := pmath.Mat4Translation(pmath.NewVec3(float32(t[0]), float32(t[1]), float32(t[2])))
	scale := pmath.Mat4Scale(pmath.NewVec3(float32(s[0]), float32(s[1]), float32(s[2])))
	rotation := quatToMat4(float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3]))

	return translation.Mul(rotation).Mul(scale)
}

// quatToMat4 converts a unit quaternion (x, y, z, w) into a rotation
// matrix. glTF nodes store rotation this way rather than as Euler
// angles, so it can't reuse math.Mat4Rotation.
func quatToMat4(x, y, z, w float32) pmath.Mat4 {
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	m := pmath.Mat4Identity()
	m[0][0] = 1 - 2*(yy+zz)
	m[0][1] = 2 * (xy + wz)
	m[0][2] = 2 * (xz - wy)

	m[1][0] = 2 * (xy - wz)
	m[1][1] = 1 - 2*(xx+zz)
	m[1][2] = 2 * (yz + wx)

	m[2][0] = 2 * (xz + wy)
	m[2][1] = 2 * (yz - wx)
	m[2][2] = 1 - 2*(xx+yy)

	return m
}
