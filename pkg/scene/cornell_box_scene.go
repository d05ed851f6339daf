package scene

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/integrator"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/renderer"
)

// CornellBoxScene is S4: a closed box with a red left wall, green right
// wall, white floor/ceiling/back wall, a bright rectangular ceiling light,
// and a rotated tall box. The ceiling light is flipped so its emission
// faces into the room, and it is also added to Lights so the integrator
// draws samples toward it directly via MixturePdf instead of relying on
// cosine sampling alone to find it.
func CornellBoxScene(samplesPerPixel, maxDepth int, rng *rand.Rand) *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	lightMat := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	lightPanel := geometry.NewFlipFace(geometry.NewXZRect(213, 343, 227, 332, 554, lightMat))

	tallBox := geometry.NewAABox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white, rng)
	tallBox2 := geometry.NewRotateY(tallBox, 15)
	tallBoxPlaced := geometry.NewTranslate(tallBox2, core.NewVec3(265, 0, 295))

	world := geometry.NewShapeList(
		geometry.NewYZRect(0, 555, 0, 555, 555, red),
		geometry.NewYZRect(0, 555, 0, 555, 0, green),
		lightPanel,
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
		tallBoxPlaced,
	)
	lights := geometry.NewShapeList(lightPanel)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Vup:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1.0,
		FocusDist:   10,
	})

	return NewScene(camera, world, lights, integrator.SolidBackground(core.Vec3{}), SamplingConfig{
		Width:           600,
		Height:          600,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	})
}
