// Package integrator implements the recursive path-tracing estimator that
// turns a camera ray into a radiance sample.
package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/pdf"
)

// World is the subset of a scene the integrator needs: something to
// intersect. The lights to importance-sample are passed to RayColor
// separately.
type World interface {
	Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool
}

// rayTMin eliminates self-intersection at the ray's origin.
const rayTMin = 0.001

// Background computes the color a ray sees when it hits nothing, evaluated
// at miss time so it can depend on the ray's direction (a sky gradient) or
// ignore it entirely (a constant, e.g. black for an enclosed box scene).
type Background func(ray core.Ray) core.Vec3

// SolidBackground wraps a constant color as a Background.
func SolidBackground(color core.Vec3) Background {
	return func(core.Ray) core.Vec3 { return color }
}

// RayColor estimates the radiance arriving along ray via recursive direct +
// BSDF mixture-PDF sampling, terminating at depth 0 or at a scattering
// surface with no further bounce.
func RayColor(ray core.Ray, background Background, world World, lights geometry.Sampleable, depth int, rng *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	var hit material.HitRecord
	if !world.Hit(ray, rayTMin, math.MaxFloat64, rng, &hit) {
		return background(ray)
	}

	emitted := hit.Material.Emitted(ray, hit)

	scatter, ok := hit.Material.Scatter(ray, hit, rng)
	if !ok {
		return emitted
	}

	if scatter.IsSpecular() {
		incoming := RayColor(scatter.Specular, background, world, lights, depth-1, rng)
		return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	// With no lights to sample directly, the material's own PDF is used alone.
	var sampler pdf.Pdf = scatter.Pdf
	list, isList := lights.(*geometry.ShapeList)
	if lights != nil && !(isList && (list == nil || len(list.Shapes) == 0)) {
		lightPdf := pdf.NewHittablePdf(hit.Point, lights)
		sampler = pdf.NewMixturePdf(lightPdf, scatter.Pdf)
	}

	direction := sampler.Generate(rng)
	scattered := core.NewRayAt(hit.Point, direction, ray.Time)
	pdfVal := sampler.Value(direction, rng)

	if pdfVal <= 0 {
		return emitted
	}

	scatteringPdf := hit.Material.ScatteringPdf(ray, hit, scattered)
	incoming := RayColor(scattered, background, world, lights, depth-1, rng)

	scale := scatteringPdf / pdfVal
	contribution := scatter.Attenuation.MultiplyVec(incoming).Multiply(scale)

	return emitted.Add(contribution)
}
