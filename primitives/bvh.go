package primitives

import (
	"sort"

	"path-tracer/hit"
	pmath "path-tracer/math"
	"path-tracer/rng"
)

// BVH is a binary bounding volume hierarchy accelerating ray queries over
// a static set of children.
type BVH struct {
	Left, Right hit.Hittable
	bbox        pmath.AABB
}

// BuildBVH constructs a BVH over objects, which is reordered in place.
// Splits on the union bbox's longest axis; the median element becomes the
// split point after sorting the slice by each child's bbox min on that
// axis (spec.md §4.5).
func BuildBVH(objects []hit.Hittable) *BVH {
	bbox := pmath.AABBEmpty
	for _, object := range objects {
		bbox = pmath.MergeAABB(bbox, object.BoundingBox())
	}

	axis := bbox.LongestAxis()

	var left, right hit.Hittable
	switch len(objects) {
	case 1:
		left, right = objects[0], objects[0]
	case 2:
		left, right = objects[0], objects[1]
	default:
		sort.SliceStable(objects, func(i, j int) bool {
			return objects[i].BoundingBox().Axis(axis).Min < objects[j].BoundingBox().Axis(axis).Min
		})
		mid := len(objects) / 2
		left = BuildBVH(objects[:mid])
		right = BuildBVH(objects[mid:])
	}

	return &BVH{Left: left, Right: right, bbox: bbox}
}

// BuildBVHFromList builds a BVH over the children of list.
func BuildBVHFromList(list *HittableList) *BVH {
	return BuildBVH(list.Objects)
}

func (b *BVH) Hit(ray pmath.Ray, tRange pmath.Interval, src *rng.Source) (hit.Record, bool) {
	if !b.bbox.Hit(ray, tRange) {
		return hit.Record{}, false
	}

	leftRec, hitLeft := b.Left.Hit(ray, tRange, src)
	rightRange := tRange
	if hitLeft {
		rightRange.Max = leftRec.T
	}
	rightRec, hitRight := b.Right.Hit(ray, rightRange, src)

	if hitRight {
		return rightRec, true
	}
	return leftRec, hitLeft
}

func (b *BVH) BoundingBox() pmath.AABB {
	return b.bbox
}
