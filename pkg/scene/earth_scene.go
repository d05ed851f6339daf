package scene

import (
	"fmt"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/loaders"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/renderer"
)

// EarthScene renders a single sphere wrapped in an equirectangular JPEG
// texture, the textured-sphere scene the original source's later snapshots
// add once image-texture loading lands.
func EarthScene(imagePath string, width, height, samplesPerPixel, maxDepth int) (*Scene, error) {
	image, err := loaders.LoadImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("earth scene: %w", err)
	}

	texture := material.NewImageTexture(image.Width, image.Height, image.Pixels)
	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewLambertianTexture(texture))

	world := geometry.NewShapeList(globe)
	lights := geometry.NewShapeList()

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 12),
		LookAt:      core.NewVec3(0, 0, 0),
		Vup:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: float64(width) / float64(height),
		FocusDist:   12,
	})

	return NewScene(camera, world, lights, skyBackground(), SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	}), nil
}
