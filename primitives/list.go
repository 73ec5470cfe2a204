package primitives

import (
	"path-tracer/hit"
	pmath "path-tracer/math"
	"path-tracer/rng"
)

// HittableList is an ordered collection of children with a cached union
// bounding box.
type HittableList struct {
	Objects []hit.Hittable
	bbox    pmath.AABB
}

func NewHittableList() *HittableList {
	return &HittableList{bbox: pmath.AABBEmpty}
}

// Add appends a child and folds its bounding box into the cached union.
func (l *HittableList) Add(object hit.Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = pmath.MergeAABB(l.bbox, object.BoundingBox())
}

func (l *HittableList) Hit(ray pmath.Ray, tRange pmath.Interval, src *rng.Source) (hit.Record, bool) {
	var closest hit.Record
	hitAnything := false
	closestSoFar := tRange.Max

	for _, object := range l.Objects {
		rec, ok := object.Hit(ray, pmath.NewInterval(tRange.Min, closestSoFar), src)
		if ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

func (l *HittableList) BoundingBox() pmath.AABB {
	return l.bbox
}
