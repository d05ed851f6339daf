// Package config decodes an optional YAML render-configuration file so a
// full scene/render setup can be checked into version control instead of
// passed as a long list of flags. CLI flags always take precedence over
// values loaded here.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Camera mirrors renderer.CameraConfig in YAML-friendly form.
type Camera struct {
	LookFrom [3]float64 `yaml:"look_from"`
	LookAt   [3]float64 `yaml:"look_at"`
	Vup      [3]float64 `yaml:"vup"`
	VFov     float64    `yaml:"vfov"`
	Aperture float64    `yaml:"aperture"`
	Focus    float64    `yaml:"focus_dist"`
	Time0    float64    `yaml:"time0"`
	Time1    float64    `yaml:"time1"`
}

// Config is the on-disk shape of a render configuration file.
type Config struct {
	Scene           string  `yaml:"scene"`
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	SamplesPerPixel int     `yaml:"samples_per_pixel"`
	MaxDepth        int     `yaml:"max_depth"`
	Workers         int     `yaml:"workers"`
	EarthTexture    string  `yaml:"earth_texture"`
	RandomSpheres   int     `yaml:"random_spheres"`
	Camera          *Camera `yaml:"camera"`
}

// Load reads and decodes a YAML render configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}
