// Package scene assembles the shapes, lights and camera for a render into a
// single read-only graph the renderer and integrator can share across
// worker goroutines.
package scene

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/integrator"
	"github.com/df07/go-progressive-raytracer/pkg/renderer"
)

// SamplingConfig controls the fixed-sample-count render loop: spec.md §4.7
// runs exactly N samples per pixel, so there is no Russian-roulette bounce
// count or adaptive-sampling threshold to configure here.
type SamplingConfig struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
}

// Scene bundles everything the renderer needs: a camera, the full shape
// graph (accelerated by a BVH once Preprocess runs), and the subset of
// shapes used as direct lights for importance sampling.
type Scene struct {
	Camera     *renderer.Camera
	World      *geometry.ShapeList // every shape in the scene
	Lights     *geometry.ShapeList // emissive shapes sampled directly
	Background integrator.Background
	Sampling   SamplingConfig
	BVH        *geometry.BVH

	// DirectPixel, when set, identifies a scene with no geometry to trace
	// (S1's solid ramp background) — see renderer.Driver.DirectPixel.
	DirectPixel func(i, j int) core.Vec3
}

// NewScene builds a scene from a camera, the full shape list and the light
// subset. Call Preprocess before rendering.
func NewScene(camera *renderer.Camera, world, lights *geometry.ShapeList, background integrator.Background, sampling SamplingConfig) *Scene {
	return &Scene{Camera: camera, World: world, Lights: lights, Background: background, Sampling: sampling}
}

// Preprocess builds the BVH over World's shapes. It must run once, after
// scene construction and before any render worker starts. Scenes with no
// geometry (DirectPixel scenes) have nothing to build.
func (s *Scene) Preprocess(rng *rand.Rand) {
	if s.World == nil || len(s.World.Shapes) == 0 {
		return
	}
	s.BVH = geometry.NewBVH(s.World.Shapes, rng)
}

// NewDriver wires the scene into a renderer.Driver ready to Render.
func (s *Scene) NewDriver(logger core.Logger, numWorkers int) *renderer.Driver {
	d := &renderer.Driver{
		Camera:          s.Camera,
		World:           s.BVH,
		Lights:          s.Lights,
		Background:      s.Background,
		Width:           s.Sampling.Width,
		Height:          s.Sampling.Height,
		SamplesPerPixel: s.Sampling.SamplesPerPixel,
		MaxDepth:        s.Sampling.MaxDepth,
		Logger:          logger,
		NumWorkers:      numWorkers,
		DirectPixel:     s.DirectPixel,
	}
	return d
}
