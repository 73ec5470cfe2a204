package textures

import (
	"testing"

	pmath "path-tracer/math"
)

func TestSolidValue(t *testing.T) {
	s := NewSolid(pmath.NewVec3(0.2, 0.4, 0.6))
	got := s.Value(0, 0, pmath.Vec3Zero)
	if got != s.Color {
		t.Errorf("Solid.Value: expected %v, got %v", s.Color, got)
	}
}

func TestSpatialCheckerAlternates(t *testing.T) {
	even := NewSolid(pmath.NewVec3(1, 1, 1))
	odd := NewSolid(pmath.NewVec3(0, 0, 0))
	checker := NewSpatialChecker(1.0, even, odd)

	if got := checker.Value(0, 0, pmath.NewVec3(0.5, 0.5, 0.5)); got != even.Color {
		t.Errorf("expected even color at (0.5,0.5,0.5), got %v", got)
	}
	if got := checker.Value(0, 0, pmath.NewVec3(1.5, 0.5, 0.5)); got != odd.Color {
		t.Errorf("expected odd color at (1.5,0.5,0.5), got %v", got)
	}
}

func TestImageValueClampsOutOfBounds(t *testing.T) {
	img := &Image{
		Width:  2,
		Height: 2,
		Pixels: []pmath.Vec3{
			pmath.NewVec3(1, 0, 0), pmath.NewVec3(0, 1, 0),
			pmath.NewVec3(0, 0, 1), pmath.NewVec3(1, 1, 1),
		},
	}

	// u, v both outside [0,1] should clamp rather than panic or wrap.
	got := img.Value(-5, 5, pmath.Vec3Zero)
	if got.X < 0 || got.X > 1 {
		t.Errorf("expected a clamped, valid pixel, got %v", got)
	}
}
