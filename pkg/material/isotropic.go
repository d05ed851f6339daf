package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Isotropic is the phase function of a homogeneous participating medium
// (ConstantMedium): it scatters uniformly in all directions.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic builds a uniform-color isotropic phase function.
func NewIsotropic(color core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(color)}
}

func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{
		Pdf:         uniformSpherePdf{},
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}

func (i *Isotropic) ScatteringPdf(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

func (i *Isotropic) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}

// uniformSpherePdf draws directions uniformly over the full sphere, matching
// Isotropic's constant phase function.
type uniformSpherePdf struct{}

func (uniformSpherePdf) Value(direction core.Vec3, rng *rand.Rand) float64 {
	return 1.0 / (4.0 * math.Pi)
}

func (uniformSpherePdf) Generate(rng *rand.Rand) core.Vec3 {
	return core.RandomInUnitSphere(rng).Normalize()
}
