package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/pdf"
)

// Lambertian is a perfectly diffuse surface: it reflects light equally in
// all directions of the hemisphere above the hit, weighted by a texture.
type Lambertian struct {
	Albedo Texture
}

// NewLambertian wraps a solid color as a Lambertian material.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewLambertianTexture builds a Lambertian material from an arbitrary texture.
func NewLambertianTexture(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{
		Pdf:         pdf.NewCosinePdf(hit.Normal),
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}

func (l *Lambertian) ScatteringPdf(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

func (l *Lambertian) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}
