// Package primitives implements the tracer's ray-intersectable scene
// graph: leaf shapes (Sphere, Quad, Triangle) and aggregates (HittableList,
// BVH, Transform, ConstantMedium).
package primitives

import (
	gomath "math"

	"path-tracer/hit"
	pmath "path-tracer/math"
	"path-tracer/rng"
)

// Sphere is a ray-intersectable ball of the given radius (clamped to >= 0).
type Sphere struct {
	Center   pmath.Vec3
	Radius   float32
	Material hit.Material
	bbox     pmath.AABB
}

func NewSphere(center pmath.Vec3, radius float32, material hit.Material) *Sphere {
	r := maxFloat32(radius, 0)
	rvec := pmath.NewVec3(r, r, r)
	return &Sphere{
		Center:   center,
		Radius:   r,
		Material: material,
		bbox:     pmath.AABBFromCorners(center.Sub(rvec), center.Add(rvec)),
	}
}

// sphereUV maps a point on the unit sphere to (u, v) via spherical mapping.
func sphereUV(point pmath.Vec3) (u, v float32) {
	theta := float32(gomath.Acos(float64(-point.Y)))
	phi := float32(gomath.Atan2(float64(-point.Z), float64(point.X))) + pi32
	return phi / (2 * pi32), theta / pi32
}

func (s *Sphere) Hit(ray pmath.Ray, tRange pmath.Interval, src *rng.Source) (hit.Record, bool) {
	originCenter := s.Center.Sub(ray.Origin)
	a := ray.Direction.LengthSqr()
	h := ray.Direction.Dot(originCenter)
	c := originCenter.LengthSqr() - s.Radius*s.Radius
	discriminant := h*h - a*c

	if discriminant < 0 {
		return hit.Record{}, false
	}
	sqrtD := float32(gomath.Sqrt(float64(discriminant)))

	root := (h - sqrtD) / a
	if !tRange.Surrounds(root) {
		root = (h + sqrtD) / a
		if !tRange.Surrounds(root) {
			return hit.Record{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Sub(s.Center).Div(s.Radius)

	var rec hit.Record
	rec.T = root
	rec.Point = point
	rec.Material = s.Material
	rec.SetFaceNormal(ray, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	return rec, true
}

func (s *Sphere) BoundingBox() pmath.AABB {
	return s.bbox
}

const pi32 = float32(gomath.Pi)

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
