package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/df07/go-progressive-raytracer/pkg/config"
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/renderer"
	"github.com/df07/go-progressive-raytracer/pkg/scene"
)

// Options holds the fully-resolved render configuration after merging an
// optional YAML file with command-line flags, which always win.
type Options struct {
	SceneName       string
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	RandomSpheres   int
	EarthTexture    string
	Output          string
	ConfigPath      string
	CameraOverride  *config.Camera
}

func main() {
	opts, explicitFlags := parseFlags()

	if opts.ConfigPath != "" {
		if err := applyConfigFile(&opts, explicitFlags); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	sceneObj, err := buildScene(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building scene: %v\n", err)
		os.Exit(1)
	}
	if opts.CameraOverride != nil {
		sceneObj.Camera = cameraFromConfig(opts.CameraOverride, float64(opts.Width)/float64(opts.Height))
	}

	out, err := openOutput(opts.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	sceneObj.Preprocess(rand.New(rand.NewSource(1)))
	driver := sceneObj.NewDriver(renderer.NewStderrLogger(), opts.Workers)

	if err := driver.Render(context.Background(), out); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses the command line and also returns the set of flag names
// the user actually passed, distinguishing "explicitly set" from "left at
// its default" — several flags default to a non-zero value, so a config
// file's value can't simply be skipped whenever the Option field is
// non-zero.
func parseFlags() (Options, map[string]bool) {
	var opts Options
	flag.StringVar(&opts.SceneName, "scene", "two-sphere", "scene to render: ramp, two-sphere, random-spheres, random-spheres-motion, cornell, dielectric, smoke, earth")
	flag.IntVar(&opts.Width, "width", 400, "image width in pixels")
	flag.IntVar(&opts.Height, "height", 225, "image height in pixels")
	flag.IntVar(&opts.SamplesPerPixel, "samples", 100, "samples per pixel")
	flag.IntVar(&opts.MaxDepth, "depth", 50, "maximum ray recursion depth")
	flag.IntVar(&opts.Workers, "workers", 0, "number of parallel workers (0 = auto-detect CPU count)")
	flag.IntVar(&opts.RandomSpheres, "random-spheres", 11, "sphere count for the random-spheres scene")
	flag.StringVar(&opts.EarthTexture, "earth-texture", "", "path to the JPEG texture for the earth scene")
	flag.StringVar(&opts.Output, "o", "", "output PPM file path (default stdout)")
	flag.StringVar(&opts.ConfigPath, "config", "", "optional YAML render-configuration file")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	return opts, explicit
}

// applyConfigFile fills in any Option whose flag was not explicitly passed
// on the command line, so CLI flags always win over the config file.
func applyConfigFile(opts *Options, explicit map[string]bool) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if !explicit["scene"] && cfg.Scene != "" {
		opts.SceneName = cfg.Scene
	}
	if !explicit["width"] && cfg.Width > 0 {
		opts.Width = cfg.Width
	}
	if !explicit["height"] && cfg.Height > 0 {
		opts.Height = cfg.Height
	}
	if !explicit["samples"] && cfg.SamplesPerPixel > 0 {
		opts.SamplesPerPixel = cfg.SamplesPerPixel
	}
	if !explicit["depth"] && cfg.MaxDepth > 0 {
		opts.MaxDepth = cfg.MaxDepth
	}
	if !explicit["workers"] && cfg.Workers > 0 {
		opts.Workers = cfg.Workers
	}
	if !explicit["random-spheres"] && cfg.RandomSpheres > 0 {
		opts.RandomSpheres = cfg.RandomSpheres
	}
	if !explicit["earth-texture"] && cfg.EarthTexture != "" {
		opts.EarthTexture = cfg.EarthTexture
	}
	if cfg.Camera != nil {
		opts.CameraOverride = cfg.Camera
	}
	return nil
}

// cameraFromConfig builds a camera from a YAML-decoded camera pose,
// overriding whatever a scene builder set by default. aspectRatio comes
// from the resolved image dimensions rather than the config file, since the
// two must agree for the image not to look stretched.
func cameraFromConfig(cam *config.Camera, aspectRatio float64) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(cam.LookFrom[0], cam.LookFrom[1], cam.LookFrom[2]),
		LookAt:      core.NewVec3(cam.LookAt[0], cam.LookAt[1], cam.LookAt[2]),
		Vup:         core.NewVec3(cam.Vup[0], cam.Vup[1], cam.Vup[2]),
		VFov:        cam.VFov,
		AspectRatio: aspectRatio,
		Aperture:    cam.Aperture,
		FocusDist:   cam.Focus,
		Time0:       cam.Time0,
		Time1:       cam.Time1,
	})
}

func buildScene(opts Options) (*scene.Scene, error) {
	switch opts.SceneName {
	case "ramp":
		return scene.RampScene(), nil
	case "two-sphere":
		return scene.TwoSphereScene(opts.Width, opts.Height, opts.SamplesPerPixel, opts.MaxDepth), nil
	case "random-spheres":
		rng := rand.New(rand.NewSource(1))
		return scene.RandomSpheresScene(opts.RandomSpheres, opts.Width, opts.Height, opts.SamplesPerPixel, opts.MaxDepth, rng), nil
	case "random-spheres-motion":
		rng := rand.New(rand.NewSource(1))
		return scene.RandomMovingSpheresScene(opts.RandomSpheres, opts.Width, opts.Height, opts.SamplesPerPixel, opts.MaxDepth, rng), nil
	case "cornell":
		rng := rand.New(rand.NewSource(1))
		return scene.CornellBoxScene(opts.SamplesPerPixel, opts.MaxDepth, rng), nil
	case "dielectric":
		return scene.DielectricSphereScene(opts.Width, opts.Height, opts.SamplesPerPixel, opts.MaxDepth), nil
	case "smoke":
		rng := rand.New(rand.NewSource(1))
		return scene.SmokeBoxScene(opts.Width, opts.Height, opts.SamplesPerPixel, opts.MaxDepth, rng), nil
	case "earth":
		if opts.EarthTexture == "" {
			return nil, fmt.Errorf("scene %q requires -earth-texture", opts.SceneName)
		}
		return scene.EarthScene(opts.EarthTexture, opts.Width, opts.Height, opts.SamplesPerPixel, opts.MaxDepth)
	default:
		return nil, fmt.Errorf("unknown scene: %s", opts.SceneName)
	}
}

func openOutput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}
