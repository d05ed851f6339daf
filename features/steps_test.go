package features

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/cucumber/godog"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/integrator"
	"github.com/df07/go-progressive-raytracer/pkg/material"
	"github.com/df07/go-progressive-raytracer/pkg/renderer"
	"github.com/df07/go-progressive-raytracer/pkg/scene"
)

// world holds everything a scenario builds up across its steps. A fresh
// instance backs each scenario via InitializeScenario's Before hook.
type world struct {
	scn    *scene.Scene
	width  int
	height int
	ppm    string
	rows   [][]string // one slice of "r g b" triplets per row, parsed from ppm

	sphereCount     int
	flatPPM, bvhPPM string

	medium                           *geometry.ConstantMedium
	transmittance, wantTransmittance float64
}

func (w *world) reset() {
	*w = world{}
}

func (w *world) theSceneNamed(name string) error {
	switch name {
	case "ramp":
		w.scn = scene.RampScene()
	case "cornell":
		w.scn = scene.CornellBoxScene(100, 50, rand.New(rand.NewSource(1)))
	default:
		return fmt.Errorf("unknown scene %q for this step; give dimensions/samples", name)
	}
	w.width, w.height = w.scn.Sampling.Width, w.scn.Sampling.Height
	return nil
}

func (w *world) theSceneAtSized(name string, width, height, samples, depth int) error {
	switch name {
	case "two-sphere":
		w.scn = scene.TwoSphereScene(width, height, samples, depth)
	case "dielectric":
		w.scn = scene.DielectricSphereScene(width, height, samples, depth)
	default:
		return fmt.Errorf("unknown scene %q", name)
	}
	w.width, w.height = width, height
	return nil
}

func (w *world) theSceneWithSamplesAndDepth(name string, samples, depth int) error {
	switch name {
	case "cornell":
		w.scn = scene.CornellBoxScene(samples, depth, rand.New(rand.NewSource(1)))
	default:
		return fmt.Errorf("unknown scene %q", name)
	}
	w.width, w.height = w.scn.Sampling.Width, w.scn.Sampling.Height
	return nil
}

func (w *world) iRenderTheScene() error {
	if w.scn == nil {
		return fmt.Errorf("no scene built yet")
	}
	w.scn.Preprocess(rand.New(rand.NewSource(1)))
	driver := w.scn.NewDriver(renderer.NewStderrLogger(), 1)

	var buf bytes.Buffer
	if err := driver.Render(context.Background(), &buf); err != nil {
		return err
	}
	w.ppm = buf.String()
	w.rows = parsePPMRows(w.ppm, w.width, w.height)
	return nil
}

func parsePPMRows(ppm string, width, height int) [][]string {
	lines := strings.Split(strings.TrimSpace(ppm), "\n")
	if len(lines) < 3 {
		return nil
	}
	triplets := lines[3:]
	rows := make([][]string, height)
	for j := 0; j < height; j++ {
		rows[j] = make([]string, width)
		for i := 0; i < width; i++ {
			idx := j*width + i
			if idx < len(triplets) {
				rows[j][i] = triplets[idx]
			}
		}
	}
	return rows
}

func (w *world) theImageIsByPixels(width, height int) error {
	if w.width != width || w.height != height {
		return fmt.Errorf("image is %dx%d, want %dx%d", w.width, w.height, width, height)
	}
	if !strings.HasPrefix(w.ppm, fmt.Sprintf("P3\n%d %d\n255\n", width, height)) {
		return fmt.Errorf("PPM header does not match %dx%d", width, height)
	}
	return nil
}

func (w *world) pixelIs(i, j int, want string) error {
	got := w.rows[j][i]
	if got != want {
		return fmt.Errorf("pixel (%d,%d) = %q, want %q", i, j, got, want)
	}
	return nil
}

func rowTriplet(row string) (r, g, b int) {
	fmt.Sscanf(row, "%d %d %d", &r, &g, &b)
	return
}

func (w *world) centerPixelIsDarkerThanZenith() error {
	ci, cj := w.width/2, w.height/2
	r, g, b := rowTriplet(w.rows[cj][ci])
	luminance := float64(r+g+b) / 3

	zr, zg, zb := rowTriplet(w.rows[0][w.width/2])
	zenithLuminance := float64(zr+zg+zb) / 3

	if luminance >= zenithLuminance {
		return fmt.Errorf("center pixel luminance %v is not darker than zenith %v", luminance, zenithLuminance)
	}
	return nil
}

func (w *world) nRandomSpheresSeeded(n int) error {
	w.sphereCount = n
	return nil
}

func (w *world) renderFlatAndBVH() error {
	rng := rand.New(rand.NewSource(int64(w.sphereCount)))
	shapes := scene.RandomSpheres(w.sphereCount, rng)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom: core.NewVec3(0, 1, 4), LookAt: core.NewVec3(0, 0.5, 0), Vup: core.NewVec3(0, 1, 0),
		VFov: 60, AspectRatio: 1.0, FocusDist: 1.0,
	})
	background := integrator.SolidBackground(core.NewVec3(0.2, 0.2, 0.3))

	flatDriver := &renderer.Driver{
		Camera: camera, World: geometry.NewShapeList(shapes...), Lights: geometry.NewShapeList(),
		Background: background, Width: 12, Height: 12, SamplesPerPixel: 2, MaxDepth: 4, NumWorkers: 1,
	}
	bvhDriver := &renderer.Driver{
		Camera: camera, World: geometry.NewBVH(shapes, rand.New(rand.NewSource(42))), Lights: geometry.NewShapeList(),
		Background: background, Width: 12, Height: 12, SamplesPerPixel: 2, MaxDepth: 4, NumWorkers: 1,
	}

	var flatBuf, bvhBuf bytes.Buffer
	if err := flatDriver.Render(context.Background(), &flatBuf); err != nil {
		return err
	}
	if err := bvhDriver.Render(context.Background(), &bvhBuf); err != nil {
		return err
	}
	w.flatPPM, w.bvhPPM = flatBuf.String(), bvhBuf.String()
	return nil
}

func (w *world) theTwoRendersAreByteIdentical() error {
	if w.flatPPM != w.bvhPPM {
		return fmt.Errorf("flat-list and BVH renders differ")
	}
	return nil
}

func solidColorOf(mat material.Material) (core.Vec3, bool) {
	lam, ok := mat.(*material.Lambertian)
	if !ok {
		return core.Vec3{}, false
	}
	solid, ok := lam.Albedo.(*material.SolidColor)
	if !ok {
		return core.Vec3{}, false
	}
	return solid.Color, true
}

func dominantChannel(c core.Vec3) string {
	if c.X >= c.Y && c.X >= c.Z {
		return "red"
	}
	if c.Y >= c.X && c.Y >= c.Z {
		return "green"
	}
	return "blue"
}

func (w *world) wallAtXIsColor(x int, colorName string) error {
	for _, shape := range w.scn.World.Shapes {
		rect, ok := shape.(*geometry.YZRect)
		if !ok || int(rect.K) != x {
			continue
		}
		color, ok := solidColorOf(rect.Material)
		if !ok {
			return fmt.Errorf("wall at x=%d has no solid Lambertian color to check", x)
		}
		if dominant := dominantChannel(color); dominant != colorName {
			return fmt.Errorf("wall at x=%d is dominantly %q, want %q", x, dominant, colorName)
		}
		return nil
	}
	return fmt.Errorf("no wall found at x=%d", x)
}

func maxChannel(c core.Vec3) float64 {
	return math.Max(c.X, math.Max(c.Y, c.Z))
}

func (w *world) lightEmitsBrighterThanAnyWall() error {
	var brightestWall, lightBrightness float64
	for _, shape := range w.scn.World.Shapes {
		switch s := shape.(type) {
		case *geometry.YZRect:
			if color, ok := solidColorOf(s.Material); ok {
				brightestWall = math.Max(brightestWall, maxChannel(color))
			}
		case *geometry.XZRect:
			if color, ok := solidColorOf(s.Material); ok {
				brightestWall = math.Max(brightestWall, maxChannel(color))
			}
		case *geometry.FlipFace:
			if rect, ok := s.Shape.(*geometry.XZRect); ok {
				if light, ok := rect.Material.(*material.DiffuseLight); ok {
					if solid, ok := light.Emit.(*material.SolidColor); ok {
						lightBrightness = math.Max(lightBrightness, maxChannel(solid.Color))
					}
				}
			}
		}
	}
	if lightBrightness <= brightestWall {
		return fmt.Errorf("light brightness %v is not brighter than walls %v", lightBrightness, brightestWall)
	}
	return nil
}

func (w *world) pixelNearSilhouetteIsBrighterThanCenter() error {
	ci, cj := w.width/2, w.height/2
	centerR, centerG, centerB := rowTriplet(w.rows[cj][ci])
	centerLum := float64(centerR + centerG + centerB)

	edgeI := w.width/2 + w.width/3
	edgeR, edgeG, edgeB := rowTriplet(w.rows[cj][edgeI])
	edgeLum := float64(edgeR + edgeG + edgeB)

	if edgeLum <= centerLum {
		return fmt.Errorf("silhouette pixel luminance %v is not brighter than center %v", edgeLum, centerLum)
	}
	return nil
}

func (w *world) aConstantMediumOfDensityFillingABox(density float64, thickness float64) error {
	boundary := geometry.NewAABox(
		core.NewVec3(-thickness/2, -thickness/2, -thickness/2),
		core.NewVec3(thickness/2, thickness/2, thickness/2),
		material.NewLambertian(core.Vec3{}),
		rand.New(rand.NewSource(1)),
	)
	w.medium = geometry.NewConstantMedium(boundary, density, core.Vec3{})
	w.wantTransmittance = math.Exp(-density * thickness)
	return nil
}

func (w *world) iFireRaysStraightThroughTheBox(n int) error {
	rng := rand.New(rand.NewSource(7))
	passed := 0
	for i := 0; i < n; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, -1000), core.NewVec3(0, 0, 1))
		var hit material.HitRecord
		if !w.medium.Hit(ray, 0, math.MaxFloat64, rng, &hit) {
			passed++
		}
	}
	w.transmittance = float64(passed) / float64(n)
	return nil
}

func (w *world) theMeasuredTransmittanceMatchesWithinPercent() error {
	tolerance := 0.01 * w.wantTransmittance
	if math.Abs(w.transmittance-w.wantTransmittance) > tolerance {
		return fmt.Errorf("transmittance = %v, want ~%v", w.transmittance, w.wantTransmittance)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	w := &world{}
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		w.reset()
		return c, nil
	})

	ctx.Step(`^the "([^"]*)" scene$`, w.theSceneNamed)
	ctx.Step(`^the "([^"]*)" scene at (\d+) by (\d+) with (\d+) samples and max depth (\d+)$`, w.theSceneAtSized)
	ctx.Step(`^the "([^"]*)" scene with (\d+) samples and max depth (\d+)$`, w.theSceneWithSamplesAndDepth)
	ctx.Step(`^I render the scene$`, w.iRenderTheScene)
	ctx.Step(`^the image is (\d+) by (\d+) pixels$`, w.theImageIsByPixels)
	ctx.Step(`^pixel \((\d+), (\d+)\) is "([^"]*)"$`, w.pixelIs)
	ctx.Step(`^the center pixel is darker than the sky gradient's zenith color$`, w.centerPixelIsDarkerThanZenith)

	ctx.Step(`^(\d+) random spheres seeded for reproducibility$`, w.nRandomSpheresSeeded)
	ctx.Step(`^I render them once as a flat shape list and once through a BVH$`, w.renderFlatAndBVH)
	ctx.Step(`^the two renders are byte-identical$`, w.theTwoRendersAreByteIdentical)

	ctx.Step(`^the wall at x=(\d+) is (red) and the wall at x=(\d+) is (green)$`, func(x1 int, c1 string, x2 int, c2 string) error {
		if err := w.wallAtXIsColor(x1, c1); err != nil {
			return err
		}
		return w.wallAtXIsColor(x2, c2)
	})
	ctx.Step(`^the light panel emits brighter than any wall's albedo$`, w.lightEmitsBrighterThanAnyWall)

	ctx.Step(`^a pixel near the sphere's silhouette is brighter than the center pixel$`, w.pixelNearSilhouetteIsBrighterThanCenter)

	ctx.Step(`^a constant medium of density ([\d.]+) filling a box (\d+) units thick$`, func(density float64, thickness int) error {
		return w.aConstantMediumOfDensityFillingABox(density, float64(thickness))
	})
	ctx.Step(`^I fire (\d+) rays straight through the box$`, w.iFireRaysStraightThroughTheBox)
	ctx.Step(`^the measured transmittance matches exp\(-density \* length\) within 1%$`, w.theMeasuredTransmittanceMatchesWithinPercent)
}
