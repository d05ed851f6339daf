package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

func TestNewMetalClampsFuzz(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{0.0, 0.0},
		{0.5, 0.5},
		{1.0, 1.0},
		{1.5, 1.0},
		{-0.5, 0.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		if m := NewMetal(albedo, tt.input); m.Fuzz != tt.want {
			t.Errorf("NewMetal(_, %v).Fuzz = %v, want %v", tt.input, m.Fuzz, tt.want)
		}
	}
}

func TestMetalPerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	rng := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Normalize())
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	scatter, ok := metal.Scatter(rayIn, hit, rng)
	if !ok {
		t.Fatal("Metal should scatter")
	}
	if !scatter.IsSpecular() {
		t.Error("Metal scatter should be specular")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	actual := scatter.Specular.Direction.Normalize()
	if actual.Subtract(expected).Length() > 1e-10 {
		t.Errorf("reflection direction = %v, want %v", actual, expected)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation = %v, want %v", scatter.Attenuation, albedo)
	}
}

func TestMetalFuzzVariesDirection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	rng := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	directions := make([]core.Vec3, 10)
	for i := range directions {
		scatter, ok := metal.Scatter(rayIn, hit, rng)
		if !ok {
			t.Fatalf("Metal should scatter on iteration %d", i)
		}
		directions[i] = scatter.Specular.Direction.Normalize()
	}

	allSame := true
	for i := 1; i < len(directions); i++ {
		if directions[i].Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("fuzzy metal should produce varying reflection directions")
	}
}

func TestMetalAbsorbsBelowSurfaceReflections(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	rng := rand.New(rand.NewSource(123))

	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01).Normalize())
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}

	absorbed, scattered := 0, 0
	for i := 0; i < 1000; i++ {
		_, ok := metal.Scatter(rayIn, hit, rng)
		if ok {
			scattered++
		} else {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("expected some grazing-angle high-fuzz bounces to be absorbed")
	}
	if scattered == 0 {
		t.Error("expected some bounces to scatter")
	}
}

func TestMetalScatteringPdfIsZero(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1)}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	scattered := core.NewRay(hit.Point, core.NewVec3(0, 0, 1))

	if got := metal.ScatteringPdf(ray, hit, scattered); got != 0 {
		t.Errorf("ScatteringPdf = %v, want 0", got)
	}
}
