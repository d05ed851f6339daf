package material

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Metal is a specular reflector, optionally fuzzed by perturbing the
// reflected direction within a sphere scaled by Fuzz.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal builds a metal material, clamping fuzz to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(rng).Multiply(m.Fuzz))
	}

	scattered := core.NewRayAt(hit.Point, reflected, rayIn.Time)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Specular:    scattered,
		Attenuation: m.Albedo,
	}, true
}

func (m *Metal) ScatteringPdf(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

func (m *Metal) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}
