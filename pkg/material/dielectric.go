package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Dielectric is a transparent refractive material (glass, water), always
// either reflecting or refracting (Fresnel-weighted) rather than absorbing.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric builds a dielectric material with the given index of refraction.
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	attenuation := core.NewVec3(1, 1, 1)

	var ratio float64
	if hit.FrontFace {
		ratio = 1.0 / d.RefractiveIndex
	} else {
		ratio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := ratio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || core.Reflectance(cosTheta, ratio) > rng.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, ratio)
	}

	return ScatterResult{
		Specular:    core.NewRayAt(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

func (d *Dielectric) ScatteringPdf(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

func (d *Dielectric) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}
