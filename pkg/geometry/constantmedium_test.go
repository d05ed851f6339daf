package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

// TestConstantMediumTransmittanceMatchesBeerLambert is S6: a ray crossing a
// medium of density 0.01 over a 100-unit path (mean free path 100, so
// optical depth 1) should pass through unscattered with probability
// exp(-1), matching Beer-Lambert attenuation to within 1% over 10000 trials.
func TestConstantMediumTransmittanceMatchesBeerLambert(t *testing.T) {
	const density = 0.01
	const thickness = 100.0
	const trials = 10000

	boundary := NewAABox(core.NewVec3(-50, -50, -50), core.NewVec3(50, 50, 50), material.NewLambertian(core.Vec3{}), rand.New(rand.NewSource(1)))
	medium := NewConstantMedium(boundary, density, core.Vec3{})

	rng := rand.New(rand.NewSource(7))
	passedThrough := 0
	for i := 0; i < trials; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, -1000), core.NewVec3(0, 0, 1))
		var hit material.HitRecord
		if !medium.Hit(ray, 0, math.MaxFloat64, rng, &hit) {
			passedThrough++
		}
	}

	got := float64(passedThrough) / trials
	want := math.Exp(-density * thickness)

	if math.Abs(got-want) > 0.01*want {
		t.Errorf("transmittance = %v, want ~%v (exp(-d*L))", got, want)
	}
}
