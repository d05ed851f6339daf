package loaders

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG or JPEG image and converts it to a row-major Vec3
// array. The image is flipped vertically at load time so material.ImageTexture
// can map v=0 to the bottom row without flipping again per lookup.
func LoadImage(filename string) (*ImageData, error) {
	img, err := imaging.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	img = imaging.FlipV(img)

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}
