package material

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Null neither scatters nor emits. It is used as a placeholder material for
// shapes that exist only as geometric light-sampling targets (e.g. a copy of
// a light shape kept in a lights list for HittablePdf) where only the shape's
// geometry matters, never its own shading.
type Null struct{}

func (Null) Scatter(rayIn core.Ray, hit HitRecord, rng *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func (Null) ScatteringPdf(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}

func (Null) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}
