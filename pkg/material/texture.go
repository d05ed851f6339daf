package material

import (
	"math"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Texture provides a spatially-varying color, sampled by UV coordinates
// (image-mapped textures) and/or world-space point (procedural textures).
type Texture interface {
	Value(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor is a texture with the same value everywhere.
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a uniform-color texture.
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two child textures on a 3D grid, sign of
// the product of sines of the scaled coordinates picking even vs. odd.
type CheckerTexture struct {
	Scale      float64
	Odd, Even  Texture
}

// NewCheckerTexture builds a 3D checker pattern with the given cell scale.
func NewCheckerTexture(scale float64, even, odd Texture) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Odd: odd, Even: even}
}

func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*point.X) * math.Sin(c.Scale*point.Y) * math.Sin(c.Scale*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}

// NoiseTexture colors by turbulent Perlin noise, giving a marbled look.
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture builds a noise texture backed by the given Perlin field.
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale}
}

func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	marble := 1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, 7))
	return core.NewVec3(0.5, 0.5, 0.5).Multiply(marble)
}
