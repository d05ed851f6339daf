package geometry

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

// AABox is an axis-aligned box built from six AARect faces packed into a
// BVH. Arbitrary orientation is achieved by wrapping an AABox in RotateY,
// not by rotating the box itself.
type AABox struct {
	Min, Max core.Vec3
	sides    *BVH
}

// NewAABox builds an axis-aligned box spanning [p0, p1].
func NewAABox(p0, p1 core.Vec3, mat material.Material, rng *rand.Rand) *AABox {
	faces := []Shape{
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat),
	}

	return &AABox{Min: p0, Max: p1, sides: NewBVH(faces, rng)}
}

func (b *AABox) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	return b.sides.Hit(ray, tMin, tMax, rng, hit)
}

func (b *AABox) BoundingBox() core.AABB {
	return core.NewAABB(b.Min, b.Max)
}
