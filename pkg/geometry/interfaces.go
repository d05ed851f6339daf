package geometry

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

// Shape is the hittable protocol every primitive and composite (BVH node,
// transform wrapper, shape list) implements.
type Shape interface {
	// Hit looks for the nearest intersection with t in (tMin, tMax),
	// filling hit and returning true if one is found. rng is consumed only
	// by ConstantMedium's stochastic free-path sampling.
	Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool

	// BoundingBox returns a conservative enclosing box for the shape over
	// its full motion-blur time interval.
	BoundingBox() core.AABB
}
