package camera

import (
	gomath "math"
	"testing"

	"path-tracer/hit"
	"path-tracer/materials"
	pmath "path-tracer/math"
	"path-tracer/primitives"
	"path-tracer/rng"
)

func testConfig() Config {
	return Config{
		ImageWidth:          16,
		ImageHeight:         16,
		VFovDegrees:         40,
		LookFrom:            pmath.NewVec3(0, 0, -3),
		LookAt:              pmath.Vec3Zero,
		ViewUp:              pmath.Vec3Up,
		DefocusAngleDegrees: 0,
		FocusDistance:       10,
		SamplesPerPixel:     16,
		MaxDepth:            10,
		Background:          pmath.NewVec3(0.7, 0.8, 1.0),
	}
}

func TestRadianceEmptySceneReturnsBackground(t *testing.T) {
	cam := New(testConfig())
	world := primitives.NewHittableList()
	src := rng.New(0xC0FFEE, 0)

	ray := cam.GetRay(8, 8, src)
	color := Radiance(ray, 10, world, cam.Config().Background, src)
	if color != cam.Config().Background {
		t.Errorf("expected background color for empty scene, got %v", color)
	}
}

func TestRadianceDepthZeroReturnsZero(t *testing.T) {
	world := primitives.NewHittableList()
	world.Add(primitives.NewSphere(pmath.NewVec3(0, 0, 5), 100, materials.RedMaterial()))
	src := rng.New(1, 0)

	ray := pmath.NewRay(pmath.Vec3Zero, pmath.NewVec3(0, 0, 1))
	color := Radiance(ray, 0, world, pmath.NewVec3(1, 1, 1), src)
	if color != pmath.Vec3Zero {
		t.Errorf("expected zero contribution at depth 0, got %v", color)
	}
}

func TestRadianceRedSphereIsDarkerThanBackground(t *testing.T) {
	cfg := testConfig()
	cam := New(cfg)

	world := primitives.NewHittableList()
	world.Add(primitives.NewSphere(pmath.Vec3Zero, 0.5, materials.RedMaterial()))

	src := rng.New(0xC0FFEE, 0)
	var accum pmath.Vec3
	for s := 0; s < cfg.SamplesPerPixel; s++ {
		ray := cam.GetRay(8, 8, src)
		accum = accum.Add(Radiance(ray, cfg.MaxDepth, world, cfg.Background, src))
	}
	color := accum.Div(float32(cfg.SamplesPerPixel))

	if color.X >= cfg.Background.X {
		t.Errorf("expected central pixel red channel darker than background, got %v vs %v", color.X, cfg.Background.X)
	}
}

func TestGetRayDefocusUsesDisk(t *testing.T) {
	cfg := testConfig()
	cfg.DefocusAngleDegrees = 10
	cam := New(cfg)
	src := rng.New(2, 0)

	ray := cam.GetRay(0, 0, src)
	if ray.Origin == cam.center {
		t.Error("expected defocus-enabled camera to sample a ray origin off the lens center at least once")
	}
}

func TestRadianceNestedDielectricsNeverProducesNaN(t *testing.T) {
	cfg := testConfig()
	cfg.LookFrom = pmath.NewVec3(0, 0, -4)
	cam := New(cfg)

	light := materials.EmissiveMaterial(10, 10, 10, 1.0)
	box := primitives.NewQuad(pmath.NewVec3(-5, -5, 5), pmath.NewVec3(10, 0, 0), pmath.NewVec3(0, 10, 0), defaultQuadUVsForTest(), light)

	outer := materials.NewDielectric(1.5)
	inner := materials.NewDielectric(1.5)

	world := primitives.NewHittableList()
	world.Add(box)
	world.Add(primitives.NewSphere(pmath.Vec3Zero, 1.0, outer))
	world.Add(primitives.NewSphere(pmath.Vec3Zero, 0.9, inner))

	src := rng.New(7, 0)
	for x := 0; x < cfg.ImageWidth; x++ {
		for y := 0; y < cfg.ImageHeight; y++ {
			ray := cam.GetRay(x, y, src)
			color := Radiance(ray, cfg.MaxDepth, world, cfg.Background, src)
			if gomath.IsNaN(float64(color.X)) || gomath.IsNaN(float64(color.Y)) || gomath.IsNaN(float64(color.Z)) {
				t.Fatalf("pixel (%d,%d) produced NaN radiance: %v", x, y, color)
			}
		}
	}
}

func defaultQuadUVsForTest() [4]primitives.UV {
	return [4]primitives.UV{
		pmath.NewVec2(0, 0),
		pmath.NewVec2(1, 0),
		pmath.NewVec2(1, 1),
		pmath.NewVec2(0, 1),
	}
}

var _ hit.Hittable = (*primitives.HittableList)(nil)
