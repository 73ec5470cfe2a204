package primitives

import (
	"testing"

	"path-tracer/hit"
	"path-tracer/materials"
	pmath "path-tracer/math"
	"path-tracer/rng"
	"path-tracer/textures"
)

func TestSphereIntersectionSymmetry(t *testing.T) {
	mat := materials.RedMaterial()
	s := NewSphere(pmath.Vec3Zero, 1.0, mat)
	ray := pmath.NewRay(pmath.NewVec3(-5, 0, 0), pmath.Vec3Right)
	src := rng.New(1, 0)

	rec, ok := s.Hit(ray, pmath.NewInterval(0, 1e9), src)
	if !ok {
		t.Fatal("expected ray through sphere center to hit")
	}
	if rec.T <= 0 || rec.T >= 5 {
		t.Errorf("expected near root in (0,5), got %v", rec.T)
	}
	if rec.Normal.Dot(ray.Direction) > 0 {
		t.Errorf("expected outward-facing normal opposing ray direction, got normal %v", rec.Normal)
	}
}

func TestQuadNormalFacesRay(t *testing.T) {
	mat := materials.RedMaterial()
	q := NewQuad(pmath.NewVec3(-1, 0, -1), pmath.NewVec3(2, 0, 0), pmath.NewVec3(0, 0, 2),
		[4]UV{pmath.NewVec2(0, 0), pmath.NewVec2(1, 0), pmath.NewVec2(0, 1), pmath.NewVec2(1, 1)}, mat)

	src := rng.New(2, 0)

	// From above: normal must oppose the downward ray.
	above := pmath.NewRay(pmath.NewVec3(0, 5, 0), pmath.NewVec3(0, -1, 0))
	rec, ok := q.Hit(above, pmath.NewInterval(0.001, 1e9), src)
	if !ok {
		t.Fatal("expected ray from above to hit quad")
	}
	if rec.Normal.Dot(above.Direction) > 0 {
		t.Errorf("normal must face the incoming ray from above, got %v", rec.Normal)
	}

	// From below: normal must still oppose the (upward) ray direction.
	below := pmath.NewRay(pmath.NewVec3(0, -5, 0), pmath.NewVec3(0, 1, 0))
	rec, ok = q.Hit(below, pmath.NewInterval(0.001, 1e9), src)
	if !ok {
		t.Fatal("expected ray from below to hit quad")
	}
	if rec.Normal.Dot(below.Direction) > 0 {
		t.Errorf("normal must face the incoming ray from below, got %v", rec.Normal)
	}
}

func TestTriangleBarycentricUV(t *testing.T) {
	mat := materials.RedMaterial()
	tri := NewTriangle(
		pmath.NewVec3(0, 0, 0), pmath.NewVec3(1, 0, 0), pmath.NewVec3(0, 1, 0),
		[3]UV{pmath.NewVec2(0, 0), pmath.NewVec2(1, 0), pmath.NewVec2(0, 1)}, mat)

	ray := pmath.NewRay(pmath.NewVec3(0.1, 0.1, -5), pmath.NewVec3(0, 0, 1))
	src := rng.New(3, 0)

	rec, ok := tri.Hit(ray, pmath.NewInterval(0.001, 1e9), src)
	if !ok {
		t.Fatal("expected ray to hit triangle interior")
	}
	if rec.U < 0 || rec.U > 1 || rec.V < 0 || rec.V > 1 {
		t.Errorf("expected UV within [0,1], got (%v,%v)", rec.U, rec.V)
	}
}

func TestHittableListReturnsClosestHit(t *testing.T) {
	mat := materials.RedMaterial()
	near := NewSphere(pmath.NewVec3(0, 0, -2), 0.5, mat)
	far := NewSphere(pmath.NewVec3(0, 0, -10), 0.5, mat)

	list := NewHittableList()
	list.Add(far)
	list.Add(near)

	ray := pmath.NewRay(pmath.Vec3Zero, pmath.NewVec3(0, 0, -1))
	src := rng.New(4, 0)

	rec, ok := list.Hit(ray, pmath.NewInterval(0.001, 1e9), src)
	if !ok {
		t.Fatal("expected a hit")
	}
	if rec.T > 3 {
		t.Errorf("expected the nearer sphere's hit, got t=%v", rec.T)
	}
}

func buildRandomSpheres(n int) []hit.Hittable {
	mat := materials.RedMaterial()
	src := rng.New(123, 0)
	objects := make([]hit.Hittable, n)
	for i := range objects {
		center := pmath.NewVec3(src.Range(-50, 50), src.Range(-50, 50), src.Range(-50, 50))
		objects[i] = NewSphere(center, 0.5, mat)
	}
	return objects
}

func TestBVHAgreesWithHittableList(t *testing.T) {
	objects := buildRandomSpheres(200)

	list := NewHittableList()
	for _, o := range objects {
		list.Add(o)
	}

	bvhObjects := make([]hit.Hittable, len(objects))
	copy(bvhObjects, objects)
	bvh := BuildBVH(bvhObjects)

	src := rng.New(999, 0)
	mismatches := 0
	const trials = 500
	for i := 0; i < trials; i++ {
		origin := pmath.NewVec3(src.Range(-60, 60), src.Range(-60, 60), src.Range(-60, 60))
		dir := src.UnitVec3()
		ray := pmath.NewRay(origin, dir)

		listRec, listHit := list.Hit(ray, pmath.NewInterval(0.001, 1e9), src)
		bvhRec, bvhHit := bvh.Hit(ray, pmath.NewInterval(0.001, 1e9), src)

		if listHit != bvhHit {
			mismatches++
			continue
		}
		if listHit && abs32(listRec.T-bvhRec.T) > 1e-2 {
			mismatches++
		}
	}

	if float64(mismatches)/trials > 0.01 {
		t.Errorf("BVH/list mismatch rate too high: %d/%d", mismatches, trials)
	}
}

func TestTransformIdentityRoundTrip(t *testing.T) {
	mat := materials.RedMaterial()
	sphere := NewSphere(pmath.NewVec3(0, 0, -3), 0.5, mat)
	wrapped := NewTransform(sphere, pmath.Mat4Identity())

	ray := pmath.NewRay(pmath.Vec3Zero, pmath.NewVec3(0, 0, -1))
	src := rng.New(5, 0)

	plainRec, plainOk := sphere.Hit(ray, pmath.NewInterval(0.001, 1e9), src)
	wrappedRec, wrappedOk := wrapped.Hit(ray, pmath.NewInterval(0.001, 1e9), src)

	if plainOk != wrappedOk {
		t.Fatalf("expected matching hit results, got %v vs %v", plainOk, wrappedOk)
	}
	if abs32(plainRec.T-wrappedRec.T) > 1e-4 {
		t.Errorf("expected identical t, got %v vs %v", plainRec.T, wrappedRec.T)
	}
}

func TestConstantMediumMissOutsideBounds(t *testing.T) {
	mat := materials.RedMaterial()
	boundary := NewSphere(pmath.Vec3Zero, 1.0, mat)
	phase := materials.NewIsotropic(textures.NewSolid(pmath.Vec3One))
	medium := NewConstantMedium(boundary, 0.5, phase)

	ray := pmath.NewRay(pmath.NewVec3(10, 10, 10), pmath.NewVec3(0, 0, 1))
	src := rng.New(6, 0)

	_, ok := medium.Hit(ray, pmath.NewInterval(0.001, 1e9), src)
	if ok {
		t.Error("expected a ray that misses the boundary to miss the medium")
	}
}

func TestConstantMediumHitFrontFace(t *testing.T) {
	mat := materials.RedMaterial()
	boundary := NewSphere(pmath.Vec3Zero, 1.0, mat)
	phase := materials.NewIsotropic(textures.NewSolid(pmath.Vec3One))
	medium := NewConstantMedium(boundary, 5.0, phase)

	ray := pmath.NewRay(pmath.NewVec3(-5, 0, 0), pmath.Vec3Right)
	src := rng.New(7, 0)

	rec, ok := medium.Hit(ray, pmath.NewInterval(0.001, 1e9), src)
	if ok && !rec.FrontFace {
		t.Error("expected medium hit record to report front_face = true")
	}
}
