package primitives

import (
	gomath "math"

	"path-tracer/hit"
	pmath "path-tracer/math"
	"path-tracer/rng"
)

const (
	posInf = gomath.MaxFloat32
	negInf = -gomath.MaxFloat32
)

// Transform wraps a child Hittable with an affine 4x4, precomputing the
// forward, inverse, and inverse-transpose matrices.
type Transform struct {
	Object hit.Hittable

	forward  pmath.Mat4
	inverse  pmath.Mat4
	inverseT pmath.Mat4
	bbox     pmath.AABB
}

// NewTransform wraps object with the given affine matrix, re-deriving its
// bounding box by mapping all 8 corners of the child's bbox through the
// forward matrix and re-enclosing.
func NewTransform(object hit.Hittable, m pmath.Mat4) *Transform {
	inv := m.Inverse()
	invT := inv.Transpose()

	childBox := object.BoundingBox()
	min := pmath.NewVec3(float32(posInf), float32(posInf), float32(posInf))
	max := pmath.NewVec3(float32(negInf), float32(negInf), float32(negInf))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := pmath.NewVec3(
					axisCorner(childBox.X, i), axisCorner(childBox.Y, j), axisCorner(childBox.Z, k),
				)
				transformed := m.MulVec3(corner)
				min = componentMin(min, transformed)
				max = componentMax(max, transformed)
			}
		}
	}

	return &Transform{
		Object:   object,
		forward:  m,
		inverse:  inv,
		inverseT: invT,
		bbox:     pmath.AABBFromCorners(min, max),
	}
}

func axisCorner(axis pmath.Interval, side int) float32 {
	if side == 1 {
		return axis.Max
	}
	return axis.Min
}

func componentMin(a, b pmath.Vec3) pmath.Vec3 {
	return pmath.NewVec3(minFloat32(a.X, b.X), minFloat32(a.Y, b.Y), minFloat32(a.Z, b.Z))
}

func componentMax(a, b pmath.Vec3) pmath.Vec3 {
	return pmath.NewVec3(maxFloat32(a.X, b.X), maxFloat32(a.Y, b.Y), maxFloat32(a.Z, b.Z))
}

// Hit transforms the ray into the child's local space by the inverse
// matrix, delegates to the child, then maps the result back. The ray
// direction is deliberately not renormalized after the inverse transform
// so that t stays consistent with the scaled direction; under non-uniform
// scale, t is therefore reported in the child's local parameterization.
func (t *Transform) Hit(ray pmath.Ray, tRange pmath.Interval, src *rng.Source) (hit.Record, bool) {
	localRay := pmath.NewRay(
		t.inverse.MulVec3(ray.Origin),
		t.inverse.MulVec3Direction(ray.Direction),
	)

	rec, ok := t.Object.Hit(localRay, tRange, src)
	if !ok {
		return hit.Record{}, false
	}

	rec.Point = t.forward.MulVec3(rec.Point)
	rec.Normal = t.inverseT.MulVec3Direction(rec.Normal).Normalize()
	return rec, true
}

func (t *Transform) BoundingBox() pmath.AABB {
	return t.bbox
}
