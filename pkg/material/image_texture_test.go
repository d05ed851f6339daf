package material

import (
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

func TestImageTextureSamplesCorners(t *testing.T) {
	// Layout (row 0 = the source image's bottom row after the loader's
	// V-flip, so v=0 reads row 0):
	//   white black
	//   black white
	pixels := []core.Vec3{
		core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1),
	}
	texture := NewImageTexture(2, 2, pixels)

	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)

	if got := texture.Value(0.1, 0.1, core.Vec3{}); !got.Equals(white) {
		t.Errorf("Value(0.1,0.1) = %v, want %v", got, white)
	}
	if got := texture.Value(0.9, 0.1, core.Vec3{}); !got.Equals(black) {
		t.Errorf("Value(0.9,0.1) = %v, want %v", got, black)
	}
	if got := texture.Value(0.1, 0.9, core.Vec3{}); !got.Equals(black) {
		t.Errorf("Value(0.1,0.9) = %v, want %v", got, black)
	}
	if got := texture.Value(0.9, 0.9, core.Vec3{}); !got.Equals(white) {
		t.Errorf("Value(0.9,0.9) = %v, want %v", got, white)
	}
}

func TestImageTextureUWraps(t *testing.T) {
	pixels := []core.Vec3{core.NewVec3(1, 0, 0)}
	texture := NewImageTexture(1, 1, pixels)
	red := core.NewVec3(1, 0, 0)

	for _, u := range []float64{0.5, 1.5, -0.5, 2.3} {
		if got := texture.Value(u, 0.5, core.Vec3{}); !got.Equals(red) {
			t.Errorf("Value(%v, 0.5) = %v, want %v", u, got, red)
		}
	}
}

func TestImageTextureVClamps(t *testing.T) {
	pixels := []core.Vec3{core.NewVec3(1, 0, 0)}
	texture := NewImageTexture(1, 1, pixels)
	red := core.NewVec3(1, 0, 0)

	// v outside [0,1] is clamped, not wrapped, since it indexes rows directly.
	for _, v := range []float64{1.5, -0.5} {
		if got := texture.Value(0.5, v, core.Vec3{}); !got.Equals(red) {
			t.Errorf("Value(0.5, %v) = %v, want %v", v, got, red)
		}
	}
}

func TestImageTextureSamplesGradient(t *testing.T) {
	pixels := make([]core.Vec3, 16)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			val := float64(y*4+x) / 15.0
			pixels[y*4+x] = core.NewVec3(val, val, val)
		}
	}
	texture := NewImageTexture(4, 4, pixels)

	if got, want := texture.Value(0.125, 0.125, core.Vec3{}), core.NewVec3(0, 0, 0); !got.Equals(want) {
		t.Errorf("Value(0.125,0.125) = %v, want %v", got, want)
	}
	if got, want := texture.Value(0.875, 0.875, core.Vec3{}), core.NewVec3(1, 1, 1); !got.Equals(want) {
		t.Errorf("Value(0.875,0.875) = %v, want %v", got, want)
	}
}

func TestSolidColorValue(t *testing.T) {
	color := core.NewVec3(0.7, 0.3, 0.1)
	solid := NewSolidColor(color)

	testCases := []struct {
		u, v  float64
		point core.Vec3
	}{
		{0, 0, core.NewVec3(0, 0, 0)},
		{1, 1, core.NewVec3(5, 3, -2)},
		{0.5, 0.5, core.NewVec3(-1, -1, -1)},
	}

	for _, tc := range testCases {
		if got := solid.Value(tc.u, tc.v, tc.point); !got.Equals(color) {
			t.Errorf("SolidColor at (%v,%v), %v: got %v, want %v", tc.u, tc.v, tc.point, got, color)
		}
	}
}
