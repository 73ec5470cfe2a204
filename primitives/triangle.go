package primitives

import (
	"path-tracer/hit"
	pmath "path-tracer/math"
	"path-tracer/rng"
)

// Triangle is a flat triangle with edges AB, AC from vertex A, intersected
// via Möller–Trumbore.
type Triangle struct {
	A, AB, AC pmath.Vec3
	UVs       [3]UV // a, b, c
	Material  hit.Material

	bbox   pmath.AABB
	normal pmath.Vec3
}

func NewTriangle(a, ab, ac pmath.Vec3, uvs [3]UV, material hit.Material) *Triangle {
	diag1 := pmath.AABBFromCorners(a, a.Add(ab))
	diag2 := pmath.AABBFromCorners(a, a.Add(ac))
	bbox := pmath.MergeAABB(diag1, diag2)
	normal := ab.Cross(ac).Normalize()

	return &Triangle{A: a, AB: ab, AC: ac, UVs: uvs, Material: material, bbox: bbox, normal: normal}
}

func (tri *Triangle) Hit(ray pmath.Ray, tRange pmath.Interval, src *rng.Source) (hit.Record, bool) {
	pvec := ray.Direction.Cross(tri.AC)
	det := tri.AB.Dot(pvec)
	if abs32(det) < 1e-8 {
		return hit.Record{}, false
	}

	tvec := ray.Origin.Sub(tri.A)
	u := tvec.Dot(pvec) / det
	if u < 0 || u > 1 {
		return hit.Record{}, false
	}

	qvec := tvec.Cross(tri.AB)
	v := ray.Direction.Dot(qvec) / det
	if v < 0 || u+v > 1 {
		return hit.Record{}, false
	}

	t := tri.AC.Dot(qvec) / det
	if !tRange.Surrounds(t) {
		return hit.Record{}, false
	}

	hitPoint := ray.At(t)
	uv := tri.UVs[0].Mul(1 - u - v).Add(tri.UVs[1].Mul(u)).Add(tri.UVs[2].Mul(v))

	var rec hit.Record
	rec.T = t
	rec.Point = hitPoint
	rec.Material = tri.Material
	rec.SetFaceNormal(ray, tri.normal)
	rec.U, rec.V = uv.X, uv.Y
	return rec, true
}

func (tri *Triangle) BoundingBox() pmath.AABB {
	return tri.bbox
}
