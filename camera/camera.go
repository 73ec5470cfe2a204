// Package camera constructs the pinhole/thin-lens camera basis and
// implements the recursive radiance estimator that the render driver
// invokes once per sample.
package camera

import (
	gomath "math"

	"path-tracer/hit"
	pmath "path-tracer/math"
	"path-tracer/rng"
)

// Config carries every camera construction parameter (spec.md §4.8).
type Config struct {
	ImageWidth, ImageHeight int
	VFovDegrees             float32
	LookFrom, LookAt, ViewUp pmath.Vec3
	DefocusAngleDegrees     float32 // 0 disables the thin-lens model
	FocusDistance           float32
	SamplesPerPixel         int
	MaxDepth                int
	Background              pmath.Vec3
}

// Camera holds the precomputed basis, viewport, and defocus-disk geometry
// derived from a Config. Immutable after construction.
type Camera struct {
	cfg Config

	center             pmath.Vec3
	pixel00Loc         pmath.Vec3
	pixelDeltaU        pmath.Vec3
	pixelDeltaV        pmath.Vec3
	u, v, w            pmath.Vec3
	defocusDiskU       pmath.Vec3
	defocusDiskV       pmath.Vec3
}

func degToRad(deg float32) float32 {
	return deg * float32(gomath.Pi) / 180.0
}

// New derives the full camera basis from cfg.
func New(cfg Config) *Camera {
	aspectRatio := float32(cfg.ImageWidth) / float32(cfg.ImageHeight)
	center := cfg.LookFrom

	theta := degToRad(cfg.VFovDegrees)
	h := float32(gomath.Tan(float64(theta) / 2))
	viewportHeight := 2.0 * h * cfg.FocusDistance
	viewportWidth := viewportHeight * aspectRatio

	w := cfg.LookFrom.Sub(cfg.LookAt).Normalize()
	u := cfg.ViewUp.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Mul(viewportWidth)
	viewportV := v.Negate().Mul(viewportHeight)

	pixelDeltaU := viewportU.Div(float32(cfg.ImageWidth))
	pixelDeltaV := viewportV.Div(float32(cfg.ImageHeight))

	viewportUpperLeft := center.
		Sub(w.Mul(cfg.FocusDistance)).
		Sub(viewportU.Div(2)).
		Sub(viewportV.Div(2))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Mul(0.5))

	defocusRadius := cfg.FocusDistance * float32(gomath.Tan(float64(degToRad(cfg.DefocusAngleDegrees/2))))
	defocusDiskU := u.Mul(defocusRadius)
	defocusDiskV := v.Mul(defocusRadius)

	return &Camera{
		cfg:          cfg,
		center:       center,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: defocusDiskU,
		defocusDiskV: defocusDiskV,
	}
}

func (c *Camera) Config() Config { return c.cfg }

// GetRay constructs a jittered camera ray through pixel (x, y), sampling
// the defocus disk for its origin when DefocusAngleDegrees > 0.
func (c *Camera) GetRay(x, y int, src *rng.Source) pmath.Ray {
	jx := src.Range(-0.5, 0.5)
	jy := src.Range(-0.5, 0.5)

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Mul(float32(x) + jx)).
		Add(c.pixelDeltaV.Mul(float32(y) + jy))

	origin := c.center
	if c.cfg.DefocusAngleDegrees > 0 {
		origin = c.defocusDiskSample(src)
	}

	return pmath.NewRay(origin, pixelSample.Sub(origin))
}

func (c *Camera) defocusDiskSample(src *rng.Source) pmath.Vec3 {
	p := src.InUnitDisk()
	return c.center.Add(c.defocusDiskU.Mul(p.X)).Add(c.defocusDiskV.Mul(p.Y))
}

// Radiance is the recursive path-tracing estimator. depth <= 0 cuts the
// path with zero contribution — this is an unbiased, Russian-roulette-free
// estimator (spec.md §4.8).
func Radiance(ray pmath.Ray, depth int, world hit.Hittable, background pmath.Vec3, src *rng.Source) pmath.Vec3 {
	if depth <= 0 {
		return pmath.Vec3Zero
	}

	rec, ok := world.Hit(ray, pmath.NewInterval(0.001, float32(gomath.Inf(1))), src)
	if !ok {
		return background
	}

	emitted := rec.Material.Emitted(rec.U, rec.V, rec.Point)

	attenuation, scattered, scatters := rec.Material.Scatter(ray, rec, src)
	if !scatters {
		return emitted
	}

	return emitted.Add(attenuation.MulVec(Radiance(scattered, depth-1, world, background, src)))
}
