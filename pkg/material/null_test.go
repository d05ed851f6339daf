package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

func TestNullMaterialNeitherScattersNorEmits(t *testing.T) {
	var n Null
	rng := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	if _, ok := n.Scatter(ray, hit, rng); ok {
		t.Error("Null should never scatter")
	}
	if got := n.Emitted(ray, hit); got != (core.Vec3{}) {
		t.Errorf("Emitted = %v, want zero", got)
	}
	if got := n.ScatteringPdf(ray, hit, ray); got != 0 {
		t.Errorf("ScatteringPdf = %v, want 0", got)
	}
}
