package primitives

import (
	gomath "math"

	"path-tracer/hit"
	pmath "path-tracer/math"
	"path-tracer/rng"
)

// ConstantMedium models a homogeneous participating medium (smoke, fog)
// bounded by a convex Hittable. Known subtlety: the two-crossing algorithm
// below assumes the boundary is crossed exactly twice; for concave
// geometry the "exit" found may not be the true exit.
type ConstantMedium struct {
	Boundary      hit.Hittable
	PhaseFunction hit.Material
	negInvDensity float32
}

func NewConstantMedium(boundary hit.Hittable, density float32, phaseFunction hit.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phaseFunction,
		negInvDensity: -1.0 / density,
	}
}

func (c *ConstantMedium) Hit(ray pmath.Ray, tRange pmath.Interval, src *rng.Source) (hit.Record, bool) {
	rec1, ok := c.Boundary.Hit(ray, pmath.IntervalEverything, src)
	if !ok {
		return hit.Record{}, false
	}

	rec2, ok := c.Boundary.Hit(ray, pmath.NewInterval(rec1.T, float32(gomath.Inf(1))), src)
	if !ok {
		return hit.Record{}, false
	}

	if rec1.T < tRange.Min {
		rec1.T = tRange.Min
	}
	if rec2.T > tRange.Max {
		rec2.T = tRange.Max
	}
	if rec1.T >= rec2.T {
		return hit.Record{}, false
	}

	rayLength := ray.Direction.Length()
	pathLength := (rec2.T - rec1.T) * rayLength
	hitDistance := c.negInvDensity * float32(gomath.Log(float64(src.Float32())))

	if hitDistance > pathLength {
		return hit.Record{}, false
	}

	var rec hit.Record
	rec.T = rec1.T + hitDistance/rayLength
	rec.Point = ray.At(rec.T)
	rec.Normal = pmath.Vec3One // arbitrary: isotropic scatter ignores it
	rec.FrontFace = true
	rec.Material = c.PhaseFunction
	return rec, true
}

func (c *ConstantMedium) BoundingBox() pmath.AABB {
	return c.Boundary.BoundingBox()
}
