package scene

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/renderer"
)

// RandomSpheres builds n small spheres at random non-overlapping-ish
// positions with a random mix of Lambertian, Metal and Dielectric
// materials. It is used both as S3's BVH-equivalence fixture (compare a
// flat geometry.ShapeList against a geometry.BVH over the same shapes) and
// as a general scattered-spheres scene.
func RandomSpheres(n int, rng *rand.Rand) []geometry.Shape {
	shapes := make([]geometry.Shape, 0, n)
	for i := 0; i < n; i++ {
		center := core.NewVec3(
			rng.Float64()*20-10,
			rng.Float64()*2,
			rng.Float64()*20-10,
		)
		radius := 0.2 + rng.Float64()*0.3

		var mat material.Material
		switch rng.Intn(3) {
		case 0:
			mat = material.NewLambertian(core.NewVec3(rng.Float64(), rng.Float64(), rng.Float64()))
		case 1:
			mat = material.NewMetal(core.NewVec3(0.5+0.5*rng.Float64(), 0.5+0.5*rng.Float64(), 0.5+0.5*rng.Float64()), rng.Float64()*0.5)
		default:
			mat = material.NewDielectric(1.5)
		}

		shapes = append(shapes, geometry.NewSphere(center, radius, mat))
	}
	return shapes
}

// RandomSpheresScene is S3: n random spheres (1..32) over a ground plane,
// rendered through the normal BVH-accelerated world.
func RandomSpheresScene(n, width, height, samplesPerPixel, maxDepth int, rng *rand.Rand) *Scene {
	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	shapes := append([]geometry.Shape{ground}, RandomSpheres(n, rng)...)
	world := geometry.NewShapeList(shapes...)
	lights := geometry.NewShapeList()

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Vup:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: float64(width) / float64(height),
		FocusDist:   10,
	})

	return NewScene(camera, world, lights, skyBackground(), SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	})
}

// RandomMovingSpheres is RandomSpheres with every Lambertian ball replaced by
// a geometry.MovingSphere that bounces straight up by a random amount over
// the camera's [0,1] shutter interval, per spec.md §2 item 6 / §4.1's motion
// blur. Metal and Dielectric balls stay static, matching the classic
// bouncing-spheres variant this scattered-spheres layout is drawn from.
func RandomMovingSpheres(n int, rng *rand.Rand) []geometry.Shape {
	shapes := make([]geometry.Shape, 0, n)
	for i := 0; i < n; i++ {
		center := core.NewVec3(
			rng.Float64()*20-10,
			rng.Float64()*2,
			rng.Float64()*20-10,
		)
		radius := 0.2 + rng.Float64()*0.3

		switch rng.Intn(3) {
		case 0:
			mat := material.NewLambertian(core.NewVec3(rng.Float64(), rng.Float64(), rng.Float64()))
			bounce := core.NewVec3(0, rng.Float64()*0.5, 0)
			shapes = append(shapes, geometry.NewMovingSphere(center, center.Add(bounce), 0, 1, radius, mat))
		case 1:
			mat := material.NewMetal(core.NewVec3(0.5+0.5*rng.Float64(), 0.5+0.5*rng.Float64(), 0.5+0.5*rng.Float64()), rng.Float64()*0.5)
			shapes = append(shapes, geometry.NewSphere(center, radius, mat))
		default:
			mat := material.NewDielectric(1.5)
			shapes = append(shapes, geometry.NewSphere(center, radius, mat))
		}
	}
	return shapes
}

// RandomMovingSpheresScene renders RandomMovingSpheres over a shutter
// interval [0,1], exercising the camera's motion-blur time sampling
// (renderer.CameraConfig.Time0/Time1) that every other scene leaves at 0.
func RandomMovingSpheresScene(n, width, height, samplesPerPixel, maxDepth int, rng *rand.Rand) *Scene {
	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	shapes := append([]geometry.Shape{ground}, RandomMovingSpheres(n, rng)...)
	world := geometry.NewShapeList(shapes...)
	lights := geometry.NewShapeList()

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Vup:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: float64(width) / float64(height),
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return NewScene(camera, world, lights, skyBackground(), SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	})
}
