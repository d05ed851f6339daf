package material

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// DiffuseLight never scatters; it only emits, and only from its front face,
// so a light panel is dark when viewed from behind.
type DiffuseLight struct {
	Emit Texture
}

// NewDiffuseLight builds a one-sided area light of uniform color and intensity.
func NewDiffuseLight(color core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(color)}
}

// NewDiffuseLightTexture builds a one-sided area light from an arbitrary
// emission texture.
func NewDiffuseLightTexture(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func (d *DiffuseLight) ScatteringPdf(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

func (d *DiffuseLight) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emit.Value(hit.U, hit.V, hit.Point)
}
