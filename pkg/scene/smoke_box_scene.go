package scene

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/renderer"
)

// SmokeBoxScene is S6: a box filled with a black constant-density medium
// (density 0.01, mean free path 100), lit from outside by the sky gradient
// so the smoke is visible as soft attenuation rather than silhouetted.
func SmokeBoxScene(width, height, samplesPerPixel, maxDepth int, rng *rand.Rand) *Scene {
	shell := material.NewLambertian(core.NewVec3(1, 1, 1))
	boundary := geometry.NewAABox(core.NewVec3(-50, -50, -50), core.NewVec3(50, 50, 50), shell, rng)
	smoke := geometry.NewConstantMedium(boundary, 0.01, core.Vec3{})

	world := geometry.NewShapeList(smoke)
	lights := geometry.NewShapeList()

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 80, -300),
		LookAt:      core.NewVec3(0, 0, 0),
		Vup:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: float64(width) / float64(height),
		FocusDist:   300,
	})

	return NewScene(camera, world, lights, skyBackground(), SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	})
}
