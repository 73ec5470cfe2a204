// Package rng provides the per-worker uniform random source used by the
// tracer. Each render worker owns exactly one Source; nothing here is
// shared or synchronized across goroutines (spec.md §5).
package rng

import (
	"math"
	"math/rand/v2"

	pmath "path-tracer/math"
)

func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }
func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }

// Source is a thread-unsafe uniform random generator. Callers must give
// each worker its own Source; never share one across goroutines.
type Source struct {
	r *rand.Rand
}

// New creates a Source seeded deterministically from seed, mixed with a
// worker index so sibling workers started from the same base seed draw
// independent streams.
func New(seed uint64, workerIndex int) *Source {
	mixed := seed ^ (uint64(workerIndex)*0x9E3779B97F4A7C15 + 1)
	return &Source{r: rand.New(rand.NewPCG(mixed, seed))}
}

// Float32 returns a uniform value in [0, 1).
func (s *Source) Float32() float32 {
	return float32(s.r.Float64())
}

// Range returns a uniform value in [min, max).
func (s *Source) Range(min, max float32) float32 {
	return min + (max-min)*s.Float32()
}

// Int returns a uniform integer in [min, max].
func (s *Source) Int(min, max int) int {
	return min + s.r.IntN(max-min+1)
}

// UnitVec3 draws a uniformly distributed point on the unit sphere, grounded
// on the original's random_unit_vec3: sample the azimuth uniformly, the
// z-coordinate uniformly on [-1, 1), and derive x/y from the remaining
// circle of radius sqrt(1 - z^2).
func (s *Source) UnitVec3() pmath.Vec3 {
	theta := s.Range(0, 2*math.Pi)
	z := s.Range(-1, 1)
	r := float32(math.Sqrt(float64(1 - z*z)))
	return pmath.NewVec3(r*cos32(theta), r*sin32(theta), z)
}

// OnHemisphere draws a uniform point on the unit sphere, flipped into the
// hemisphere whose pole is normal.
func (s *Source) OnHemisphere(normal pmath.Vec3) pmath.Vec3 {
	v := s.UnitVec3()
	if v.Dot(normal) > 0 {
		return v
	}
	return v.Negate()
}

// InUnitDisk draws a uniform point from the unit disk, used for thin-lens
// defocus sampling.
func (s *Source) InUnitDisk() pmath.Vec2 {
	theta := s.Range(0, 2*math.Pi)
	r := float32(math.Sqrt(float64(s.Range(0, 1))))
	return pmath.NewVec2(r*cos32(theta), r*sin32(theta))
}

// Exponential draws an exponentially distributed distance with the given
// rate (mean distance 1/rate).
func (s *Source) Exponential(rate float32) float32 {
	u := s.Float32()
	return float32(-math.Log(float64(1-u)) / float64(rate))
}
