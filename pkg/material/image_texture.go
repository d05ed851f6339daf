package material

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// ImageTexture samples color from a decoded bitmap. The pixel buffer is
// expected to already be V-flipped at load time (see pkg/loaders), so Value
// maps v directly onto rows without flipping again.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // row-major: Pixels[y*Width+x]
}

// NewImageTexture wraps a decoded, row-major RGB pixel buffer as a texture.
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	u = u - math.Floor(u)
	v = clamp01(v)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
