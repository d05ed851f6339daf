// Package pdf implements the probability density functions used for
// importance sampling scattered and light-sampled directions during path
// tracing.
package pdf

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Pdf draws directions from some sampling distribution and reports the
// probability density that a given direction would have been drawn.
type Pdf interface {
	// Value returns the solid-angle probability density of direction.
	Value(direction core.Vec3, rng *rand.Rand) float64
	// Generate draws a direction from the distribution.
	Generate(rng *rand.Rand) core.Vec3
}

// Sampleable is implemented by shapes (or collections of shapes) that can be
// treated as a light source for direct-light importance sampling.
type Sampleable interface {
	PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64
	Random(origin core.Vec3, rng *rand.Rand) core.Vec3
}

// CosinePdf draws directions cosine-weighted around an orthonormal basis's W
// axis, matching a Lambertian BRDF's scattering distribution.
type CosinePdf struct {
	Uvw core.Onb
}

// NewCosinePdf builds a CosinePdf oriented around the given surface normal.
func NewCosinePdf(normal core.Vec3) CosinePdf {
	return CosinePdf{Uvw: core.NewOnbFromW(normal)}
}

func (p CosinePdf) Value(direction core.Vec3, rng *rand.Rand) float64 {
	cosine := direction.Normalize().Dot(p.Uvw.W)
	return math.Max(0, cosine/math.Pi)
}

func (p CosinePdf) Generate(rng *rand.Rand) core.Vec3 {
	return p.Uvw.Local(core.RandomCosineDirection(rng))
}

// HittablePdf samples directions toward a shape (typically a light),
// forwarding to the shape's own solid-angle sampling.
type HittablePdf struct {
	Origin   core.Vec3
	Hittable Sampleable
}

// NewHittablePdf builds a HittablePdf that samples hittable as seen from origin.
func NewHittablePdf(origin core.Vec3, hittable Sampleable) HittablePdf {
	return HittablePdf{Origin: origin, Hittable: hittable}
}

func (p HittablePdf) Value(direction core.Vec3, rng *rand.Rand) float64 {
	return p.Hittable.PdfValue(p.Origin, direction, rng)
}

func (p HittablePdf) Generate(rng *rand.Rand) core.Vec3 {
	return p.Hittable.Random(p.Origin, rng)
}

// MixturePdf draws from two pdfs with equal probability, used to combine
// light-sampling with material-sampling for variance reduction.
type MixturePdf struct {
	P0, P1 Pdf
}

// NewMixturePdf builds a 50/50 mixture of p0 and p1.
func NewMixturePdf(p0, p1 Pdf) MixturePdf {
	return MixturePdf{P0: p0, P1: p1}
}

func (p MixturePdf) Value(direction core.Vec3, rng *rand.Rand) float64 {
	return 0.5*p.P0.Value(direction, rng) + 0.5*p.P1.Value(direction, rng)
}

func (p MixturePdf) Generate(rng *rand.Rand) core.Vec3 {
	if rng.Float64() < 0.5 {
		return p.P0.Generate(rng)
	}
	return p.P1.Generate(rng)
}
