// Package hit defines the shared contract between primitives and
// materials (HitRecord, Hittable, Material) without importing either
// concrete package, breaking the two-way dependency that a single-crate
// language would tolerate but Go's package graph does not.
package hit

import (
	pmath "path-tracer/math"
	"path-tracer/rng"
)

// Record carries the result of a successful ray-primitive intersection.
type Record struct {
	Point     pmath.Vec3
	Normal    pmath.Vec3 // always faces the incoming ray (outward-facing)
	Material  Material
	T         float32
	U, V      float32
	FrontFace bool
}

// SetFaceNormal orients Normal against the ray direction and records
// whether the hit was on the outward-facing side, given the primitive's
// true outward normal.
func (r *Record) SetFaceNormal(ray pmath.Ray, outwardNormal pmath.Vec3) {
	r.FrontFace = ray.Direction.Dot(outwardNormal) <= 0
	if r.FrontFace {
		r.Normal = outwardNormal
	} else {
		r.Normal = outwardNormal.Negate()
	}
}

// Hittable is any node in the scene graph capable of ray intersection and
// of reporting a conservative bounding box. Implementations are immutable
// after construction and safe to share across goroutines.
type Hittable interface {
	Hit(ray pmath.Ray, tRange pmath.Interval, src *rng.Source) (Record, bool)
	BoundingBox() pmath.AABB
}

// Material is the scatter/emit contract every surface shader implements.
type Material interface {
	// Scatter returns the outgoing ray and its attenuation when the
	// incident ray bounces; ok is false when the material absorbs it.
	Scatter(rayIn pmath.Ray, rec Record, src *rng.Source) (attenuation pmath.Vec3, scattered pmath.Ray, ok bool)
	// Emitted returns the material's self-emission at the given surface
	// coordinates; zero for every material except DiffuseLight.
	Emitted(u, v float32, point pmath.Vec3) pmath.Vec3
}
