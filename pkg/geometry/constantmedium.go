package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

// ConstantMedium wraps a closed Boundary shape in a homogeneous participating
// medium of the given Density, scattering rays that pass through it at a
// point sampled from an exponential free-path distribution. Used for smoke
// and fog volumes.
type ConstantMedium struct {
	Boundary      Shape
	NegInvDensity float64
	PhaseFunction material.Material
}

// NewConstantMedium builds a medium of the given density filling boundary,
// scattering according to the Isotropic phase function with the given color.
func NewConstantMedium(boundary Shape, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

func (c *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	var rec1, rec2 material.HitRecord
	if !c.Boundary.Hit(ray, -math.MaxFloat64, math.MaxFloat64, rng, &rec1) {
		return false
	}
	if !c.Boundary.Hit(ray, rec1.T+0.0001, math.MaxFloat64, rng, &rec2) {
		return false
	}

	if rec1.T < tMin {
		rec1.T = tMin
	}
	if rec2.T > tMax {
		rec2.T = tMax
	}
	if rec1.T >= rec2.T {
		return false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := c.NegInvDensity * math.Log(rng.Float64())

	if hitDistance > distanceInsideBoundary {
		return false
	}

	t := rec1.T + hitDistance/rayLength

	hit.T = t
	hit.Point = ray.At(t)
	hit.Normal = core.NewVec3(1, 0, 0) // arbitrary: isotropic scattering ignores it
	hit.U = 0
	hit.V = 0
	hit.FrontFace = true
	hit.Material = c.PhaseFunction

	return true
}

func (c *ConstantMedium) BoundingBox() core.AABB {
	return c.Boundary.BoundingBox()
}
