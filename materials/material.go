// Package materials implements the tracer's scatter/emit contract: five
// material variants dispatched dynamically over a shared Texture.
package materials

import (
	"path-tracer/hit"
	pmath "path-tracer/math"
	"path-tracer/rng"
	"path-tracer/textures"
)

// Lambertian is a diffuse material with a per-channel stochastic
// energy-conserving attenuation controlled by DiffuseP.
type Lambertian struct {
	Texture  textures.Texture
	DiffuseP pmath.Vec3
}

// NewLambertian creates a Lambertian material. diffuseP = (1,1,1) reduces
// the stochastic attenuation to standard textured diffuse.
func NewLambertian(texture textures.Texture, diffuseP pmath.Vec3) *Lambertian {
	return &Lambertian{Texture: texture, DiffuseP: diffuseP}
}

func (m *Lambertian) Scatter(rayIn pmath.Ray, rec hit.Record, src *rng.Source) (pmath.Vec3, pmath.Ray, bool) {
	scatterDirection := rec.Normal.Add(src.UnitVec3())
	if scatterDirection.NearZero() {
		scatterDirection = rec.Normal
	}

	textureValue := m.Texture.Value(rec.U, rec.V, rec.Point)
	r := src.Float32()

	attenuation := pmath.Vec3Zero
	scatteredR := r < m.DiffuseP.X
	scatteredG := r < m.DiffuseP.Y
	scatteredB := r < m.DiffuseP.Z

	if scatteredR {
		attenuation.X = textureValue.X / m.DiffuseP.X
	}
	if scatteredG {
		attenuation.Y = textureValue.Y / m.DiffuseP.Y
	}
	if scatteredB {
		attenuation.Z = textureValue.Z / m.DiffuseP.Z
	}

	return attenuation, pmath.NewRay(rec.Point, scatterDirection), scatteredR || scatteredG || scatteredB
}

func (m *Lambertian) Emitted(u, v float32, point pmath.Vec3) pmath.Vec3 {
	return pmath.Vec3Zero
}

// Metal is a fuzzed mirror reflector. It always scatters, even when the
// perturbed direction dips below the surface — the next trace simply
// terminates on a self-occluding bounce.
type Metal struct {
	Texture textures.Texture
	Fuzz    float32
}

func NewMetal(texture textures.Texture, fuzz float32) *Metal {
	return &Metal{Texture: texture, Fuzz: fuzz}
}

func (m *Metal) Scatter(rayIn pmath.Ray, rec hit.Record, src *rng.Source) (pmath.Vec3, pmath.Ray, bool) {
	reflected := rayIn.Direction.Reflect(rec.Normal).Normalize().Add(src.UnitVec3().Mul(m.Fuzz))
	attenuation := m.Texture.Value(rec.U, rec.V, rec.Point)
	return attenuation, pmath.NewRay(rec.Point, reflected), true
}

func (m *Metal) Emitted(u, v float32, point pmath.Vec3) pmath.Vec3 {
	return pmath.Vec3Zero
}

// Dielectric is a smooth refractive material (glass, water) with
// refraction index Eta, using a stochastic Schlick approximation to choose
// between reflection and refraction.
type Dielectric struct {
	Eta float32
}

func NewDielectric(eta float32) *Dielectric {
	return &Dielectric{Eta: eta}
}

func (m *Dielectric) Scatter(rayIn pmath.Ray, rec hit.Record, src *rng.Source) (pmath.Vec3, pmath.Ray, bool) {
	ri := m.Eta
	if rec.FrontFace {
		ri = 1.0 / m.Eta
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := minFloat32(unitDirection.Negate().Dot(rec.Normal), 1.0)

	direction := unitDirection.Refract(rec.Normal, ri)
	if direction == pmath.Vec3Zero || schlickReflectance(cosTheta, ri) > src.Float32() {
		direction = rayIn.Direction.Reflect(rec.Normal)
	}

	return pmath.Vec3One, pmath.NewRay(rec.Point, direction), true
}

func (m *Dielectric) Emitted(u, v float32, point pmath.Vec3) pmath.Vec3 {
	return pmath.Vec3Zero
}

// schlickReflectance estimates the reflectance fraction at the given
// incidence cosine using Schlick's approximation.
func schlickReflectance(cosine, refractionIndex float32) float32 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 *= r0
	return r0 + (1-r0)*pow5(1-cosine)
}

func pow5(x float32) float32 {
	x2 := x * x
	return x2 * x2 * x
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

// DiffuseLight never scatters; it emits Texture's value scaled by Strength.
type DiffuseLight struct {
	Texture  textures.Texture
	Strength float32
}

func NewDiffuseLight(texture textures.Texture, strength float32) *DiffuseLight {
	return &DiffuseLight{Texture: texture, Strength: strength}
}

func (m *DiffuseLight) Scatter(rayIn pmath.Ray, rec hit.Record, src *rng.Source) (pmath.Vec3, pmath.Ray, bool) {
	return pmath.Vec3Zero, pmath.Ray{}, false
}

func (m *DiffuseLight) Emitted(u, v float32, point pmath.Vec3) pmath.Vec3 {
	return m.Texture.Value(u, v, point).Mul(m.Strength)
}

// Isotropic scatters uniformly over the sphere; it is the phase function
// used inside ConstantMedium.
type Isotropic struct {
	Texture textures.Texture
}

func NewIsotropic(texture textures.Texture) *Isotropic {
	return &Isotropic{Texture: texture}
}

func (m *Isotropic) Scatter(rayIn pmath.Ray, rec hit.Record, src *rng.Source) (pmath.Vec3, pmath.Ray, bool) {
	return m.Texture.Value(rec.U, rec.V, rec.Point), pmath.NewRay(rec.Point, src.UnitVec3()), true
}

func (m *Isotropic) Emitted(u, v float32, point pmath.Vec3) pmath.Vec3 {
	return pmath.Vec3Zero
}

// --- Default Material Library ---
//
// Named constructors mirroring the teacher's "Default Material Library"
// pattern (materials/material.go), useful for scene builders and tests.

// DefaultMaterial is a magenta Lambertian, matching the original's
// DEFAULT_MATERIAL sentinel (a visible placeholder, not a neutral gray).
func DefaultMaterial() *Lambertian {
	return NewLambertian(textures.NewSolid(pmath.NewVec3(1, 0, 1)), pmath.Vec3One)
}

func RedMaterial() *Lambertian {
	return NewLambertian(textures.NewSolid(pmath.NewVec3(0.65, 0.05, 0.05)), pmath.Vec3One)
}

func GreenMaterial() *Lambertian {
	return NewLambertian(textures.NewSolid(pmath.NewVec3(0.12, 0.45, 0.15)), pmath.Vec3One)
}

func BlueMaterial() *Lambertian {
	return NewLambertian(textures.NewSolid(pmath.NewVec3(0.1, 0.2, 0.6)), pmath.Vec3One)
}

func PolishedMetal() *Metal {
	return NewMetal(textures.NewSolid(pmath.NewVec3(0.8, 0.8, 0.8)), 0.0)
}

func GlassMaterial() *Dielectric {
	return NewDielectric(1.5)
}

func EmissiveMaterial(r, g, b, strength float32) *DiffuseLight {
	return NewDiffuseLight(textures.NewSolid(pmath.NewVec3(r, g, b)), strength)
}
