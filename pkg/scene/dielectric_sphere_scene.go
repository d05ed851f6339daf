package scene

import (
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/renderer"
)

// DielectricSphereScene is S5: a single unit glass sphere at the origin,
// camera looking straight down -Z with no defocus blur, so every pixel's
// Schlick reflectance is driven purely by the angle of incidence.
func DielectricSphereScene(width, height, samplesPerPixel, maxDepth int) *Scene {
	glass := material.NewDielectric(1.5)
	sphere := geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0, glass)

	world := geometry.NewShapeList(sphere)
	lights := geometry.NewShapeList()

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 4),
		LookAt:      core.NewVec3(0, 0, 0),
		Vup:         core.NewVec3(0, 1, 0),
		VFov:        30,
		AspectRatio: float64(width) / float64(height),
		Aperture:    0,
		FocusDist:   4,
	})

	return NewScene(camera, world, lights, skyBackground(), SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	})
}
