package material

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// HitRecord captures everything the integrator needs about a ray-shape
// intersection: the geometric position/normal/parameter plus enough surface
// info (u, v, material) to evaluate shading there.
type HitRecord struct {
	Point     core.Vec3
	Normal    core.Vec3
	T         float64
	U, V      float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal to always point against the incident ray and
// records whether the hit was on the outward-facing side of the surface.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Pdf is the subset of pdf.Pdf that a ScatterResult needs to carry. Declared
// locally instead of referencing pdf.Pdf so this package describes its own
// contract; pdf.CosinePdf, HittablePdf and MixturePdf all satisfy it
// structurally with no explicit wiring.
type Pdf interface {
	Value(direction core.Vec3, rng *rand.Rand) float64
	Generate(rng *rand.Rand) core.Vec3
}

// ScatterResult is the outcome of scattering a ray off a material: either a
// specular bounce (Pdf == nil, Specular is the reflected/refracted ray,
// fuzzed for a Metal with Fuzz > 0) or a PDF-sampled bounce, where the integrator draws its own direction
// from Pdf (optionally mixed with a light-sampling Pdf) and weights the
// result with Attenuation and the material's own ScatteringPdf.
type ScatterResult struct {
	Specular    core.Ray
	Pdf         Pdf
	Attenuation core.Vec3
}

// IsSpecular reports whether this is a bounce given directly by the material
// (Metal's reflection, fuzzed or not; Dielectric's reflection/refraction)
// rather than one drawn from a Pdf.
func (s ScatterResult) IsSpecular() bool {
	return s.Pdf == nil
}

// Material is the scattering/emission behavior attached to a shape.
type Material interface {
	// Scatter computes how a ray bounces off the surface at hit. ok is false
	// when the material absorbs the ray (e.g. a light, or a Metal bounce
	// that would go below the surface).
	Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterResult, bool)

	// ScatteringPdf is the material's own density of scattering toward
	// scattered, used to weight PDF-sampled (non-specular) bounces against
	// whatever Pdf actually generated the direction.
	ScatteringPdf(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64

	// Emitted returns the radiance this material emits toward rayIn at hit,
	// zero for non-emissive materials.
	Emitted(rayIn core.Ray, hit HitRecord) core.Vec3
}
