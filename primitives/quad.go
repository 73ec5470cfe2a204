package primitives

import (
	"path-tracer/hit"
	pmath "path-tracer/math"
	"path-tracer/rng"
)

// UV is a 2-D texture coordinate pair, kept distinct from pmath.Vec2 so
// Quad/Triangle corner-UV arrays read clearly at call sites.
type UV = pmath.Vec2

// Quad is a planar parallelogram spanned by edge vectors U, V from corner Q.
type Quad struct {
	Q, U, V  pmath.Vec3
	UVs      [4]UV // corners in order Q, Q+U, Q+V, Q+U+V
	Material hit.Material

	bbox   pmath.AABB
	normal pmath.Vec3
	d      float32
	w      pmath.Vec3
}

func NewQuad(q, u, v pmath.Vec3, uvs [4]UV, material hit.Material) *Quad {
	diag1 := pmath.AABBFromCorners(q, q.Add(u).Add(v))
	diag2 := pmath.AABBFromCorners(q.Add(u), q.Add(v))
	bbox := pmath.MergeAABB(diag1, diag2)

	n := u.Cross(v)
	normal := n.Normalize()
	d := normal.Dot(q)
	w := n.Div(n.Dot(n))

	return &Quad{Q: q, U: u, V: v, UVs: uvs, Material: material, bbox: bbox, normal: normal, d: d, w: w}
}

var unitInterval = pmath.NewInterval(0, 1)

func isInteriorQuad(a, b float32) bool {
	return unitInterval.Contains(a) && unitInterval.Contains(b)
}

func (q *Quad) Hit(ray pmath.Ray, tRange pmath.Interval, src *rng.Source) (hit.Record, bool) {
	denom := q.normal.Dot(ray.Direction)
	if abs32(denom) < 1e-8 {
		return hit.Record{}, false
	}

	t := (q.d - q.normal.Dot(ray.Origin)) / denom
	if !tRange.Surrounds(t) {
		return hit.Record{}, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Sub(q.Q)
	alpha := q.w.Dot(planar.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planar))

	if !isInteriorQuad(alpha, beta) {
		return hit.Record{}, false
	}

	uv := bilinearUV(q.UVs, alpha, beta)

	var rec hit.Record
	rec.T = t
	rec.Point = hitPoint
	rec.Material = q.Material
	// Quad's normal is precomputed once at construction, unlike Sphere and
	// Triangle which derive it per-hit, so flip it explicitly here (spec.md
	// §3 invariant 1 requires normal · ray.direction <= 0 on every hit).
	rec.FrontFace = denom <= 0
	if rec.FrontFace {
		rec.Normal = q.normal
	} else {
		rec.Normal = q.normal.Negate()
	}
	rec.U, rec.V = uv.X, uv.Y
	return rec, true
}

func bilinearUV(uvs [4]UV, alpha, beta float32) UV {
	return uvs[0].Mul((1 - alpha) * (1 - beta)).
		Add(uvs[1].Mul(alpha * (1 - beta))).
		Add(uvs[2].Mul((1 - alpha) * beta)).
		Add(uvs[3].Mul(alpha * beta))
}

func (q *Quad) BoundingBox() pmath.AABB {
	return q.bbox
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
