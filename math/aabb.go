package math

// padEpsilon is the minimum axis width an AABB slab is padded to, preventing
// degenerate zero-thickness boxes on axis-aligned primitives (spec.md §3).
const padEpsilon = 1e-3

// AABB is an axis-aligned bounding box expressed as three per-axis intervals.
type AABB struct {
	X, Y, Z Interval
}

var AABBEmpty = AABB{X: IntervalEmpty, Y: IntervalEmpty, Z: IntervalEmpty}

// NewAABB builds an AABB from three intervals, padding each axis to at
// least padEpsilon width.
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: padAxis(x), Y: padAxis(y), Z: padAxis(z)}
}

func padAxis(i Interval) Interval {
	if i.Size() < padEpsilon {
		return i.Expand(padEpsilon - i.Size())
	}
	return i
}

// AABBFromCorners builds the bounding box containing two opposite corners.
func AABBFromCorners(a, b Vec3) AABB {
	return NewAABB(
		NewInterval(minFloat32(a.X, b.X), maxFloat32(a.X, b.X)),
		NewInterval(minFloat32(a.Y, b.Y), maxFloat32(a.Y, b.Y)),
		NewInterval(minFloat32(a.Z, b.Z), maxFloat32(a.Z, b.Z)),
	)
}

// MergeAABB returns the per-axis enclosing box of a and b.
func MergeAABB(a, b AABB) AABB {
	return AABB{
		X: EnclosingInterval(a.X, b.X),
		Y: EnclosingInterval(a.Y, b.Y),
		Z: EnclosingInterval(a.Z, b.Z),
	}
}

// Axis returns the interval for axis index 0 (X), 1 (Y), or 2 (Z).
func (b AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	case 2:
		return b.Z
	default:
		panic("math: AABB axis index out of bounds")
	}
}

// LongestAxis returns the index of the axis with the largest extent, ties
// broken toward the lower index.
func (b AABB) LongestAxis() int {
	axis := 0
	if b.Y.Size() > b.X.Size() {
		axis = 1
	}
	if b.Z.Size() > b.Axis(axis).Size() {
		axis = 2
	}
	return axis
}

// Hit implements the slab method: it narrows tRange to the overlap of the
// ray's intersection with each axis slab, returning false as soon as the
// candidate interval collapses.
func (b AABB) Hit(ray Ray, tRange Interval) bool {
	axes := [3]Interval{b.X, b.Y, b.Z}
	dir := [3]float32{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	origin := [3]float32{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}

	for axis := 0; axis < 3; axis++ {
		adinv := 1.0 / dir[axis]
		t0 := (axes[axis].Min - origin[axis]) * adinv
		t1 := (axes[axis].Max - origin[axis]) * adinv

		if t0 < t1 {
			if t0 > tRange.Min {
				tRange.Min = t0
			}
			if t1 < tRange.Max {
				tRange.Max = t1
			}
		} else {
			if t1 > tRange.Min {
				tRange.Min = t1
			}
			if t0 < tRange.Max {
				tRange.Max = t0
			}
		}

		if tRange.Max <= tRange.Min {
			return false
		}
	}
	return true
}
