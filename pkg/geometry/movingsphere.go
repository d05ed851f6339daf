package geometry

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

// MovingSphere is a sphere whose center linearly interpolates between
// Center0 at Time0 and Center1 at Time1, sampled at the ray's own time for
// motion blur.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

// Center returns the sphere's center at the given ray time.
func (s *MovingSphere) Center(time float64) core.Vec3 {
	t := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(t))
}

func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	return hitSphere(s.Center(ray.Time), s.Radius, s.Material, ray, tMin, tMax, hit)
}

// BoundingBox encloses the sphere's positions across the whole shutter
// interval [Time0, Time1], not just its endpoints at a single instant.
func (s *MovingSphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(s.Center(s.Time0).Subtract(r), s.Center(s.Time0).Add(r))
	box1 := core.NewAABB(s.Center(s.Time1).Subtract(r), s.Center(s.Time1).Add(r))
	return box0.Union(box1)
}
