package scene

import (
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/renderer"
)

// TwoSphereScene is S2: a small Lambertian sphere on a large ground sphere,
// lit only by the sky gradient, no direct-light sampling.
func TwoSphereScene(width, height, samplesPerPixel, maxDepth int) *Scene {
	albedo := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, albedo),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, albedo),
	)
	lights := geometry.NewShapeList()

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Vup:         core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 16.0 / 9.0,
		FocusDist:   1.0,
	})

	return NewScene(camera, world, lights, skyBackground(), SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	})
}
