package math

import gomath "math"

// Interval is an ordered [Min, Max] pair of floats used for both scalar
// ranges (a ray's valid t-parameter window) and per-axis AABB slabs.
type Interval struct {
	Min, Max float32
}

var (
	// IntervalEmpty contains no values: Min > Max.
	IntervalEmpty = Interval{Min: float32(gomath.Inf(1)), Max: float32(gomath.Inf(-1))}
	// IntervalEverything contains every value.
	IntervalEverything = Interval{Min: float32(gomath.Inf(-1)), Max: float32(gomath.Inf(1))}
)

func NewInterval(min, max float32) Interval {
	return Interval{Min: min, Max: max}
}

// EnclosingInterval returns the smallest interval containing both a and b.
func EnclosingInterval(a, b Interval) Interval {
	return Interval{Min: minFloat32(a.Min, b.Min), Max: maxFloat32(a.Max, b.Max)}
}

func (i Interval) Size() float32 {
	return i.Max - i.Min
}

// Contains reports whether x lies in the closed interval [Min, Max].
func (i Interval) Contains(x float32) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies in the open interval (Min, Max).
func (i Interval) Surrounds(x float32) bool {
	return i.Min < x && x < i.Max
}

func (i Interval) Clamp(x float32) float32 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand pads the interval symmetrically so its size grows by delta.
func (i Interval) Expand(delta float32) Interval {
	padding := delta * 0.5
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
