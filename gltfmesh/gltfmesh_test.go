package gltfmesh

import (
	"testing"

	"github.com/qmuntal/gltf"

	"path-tracer/materials"
	pmath "path-tracer/math"
)

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load("/no/such/model.gltf", materials.DefaultMaterial()); err == nil {
		t.Error("expected an error for a missing glTF file")
	}
}

func TestQuatToMat4Identity(t *testing.T) {
	m := quatToMat4(0, 0, 0, 1)
	identity := pmath.Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if diff := m[i][j] - identity[i][j]; diff > 1e-6 || diff < -1e-6 {
				t.Fatalf("identity quaternion produced non-identity matrix at [%d][%d]: %v", i, j, m[i][j])
			}
		}
	}
}

func TestQuatToMat4RotatesAxisVector(t *testing.T) {
	// 180 degree rotation about Y: quaternion (0, 1, 0, 0)
	m := quatToMat4(0, 1, 0, 0)
	rotated := m.MulVec3Direction(pmath.NewVec3(1, 0, 0))
	if got := rotated.X; got > -0.99 {
		t.Errorf("expected +X to rotate to -X under a 180deg Y rotation, got %v", rotated)
	}
}

func TestResolveMaterialFallsBackToDefaultWithoutPBR(t *testing.T) {
	def := materials.DefaultMaterial()
	got := resolveMaterial(&gltf.Material{Name: "bare"}, def)
	if got != def {
		t.Error("expected a material with no PBRMetallicRoughness block to fall back to the default")
	}
}

func TestResolveMaterialWithPBRReturnsLambertian(t *testing.T) {
	def := materials.DefaultMaterial()
	gm := &gltf.Material{PBRMetallicRoughness: &gltf.PBRMetallicRoughness{}}
	if _, ok := resolveMaterial(gm, def).(*materials.Lambertian); !ok {
		t.Fatalf("expected a Lambertian for a material with a PBR block, got %T", resolveMaterial(gm, def))
	}
}
