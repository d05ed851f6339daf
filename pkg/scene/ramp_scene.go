package scene

import "github.com/df07/go-progressive-raytracer/pkg/core"

// RampScene is S1: a 256x256 solid-color gradient with no geometry, camera
// or sampling at all — pixel (i, j) is exactly vec3(i/255, j/255, 0.25),
// rendered once per pixel rather than path traced.
func RampScene() *Scene {
	const size = 256

	return &Scene{
		Sampling: SamplingConfig{
			Width:           size,
			Height:          size,
			SamplesPerPixel: 1,
			MaxDepth:        1,
		},
		DirectPixel: func(i, j int) core.Vec3 {
			return core.NewVec3(float64(i)/255.0, float64(j)/255.0, 0.25)
		},
	}
}
