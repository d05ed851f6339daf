package geometry

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

// ShapeList is a flat collection of shapes, used both as the top-level world
// container and as a light list for direct-light importance sampling (each
// member is picked with equal weight 1/N).
type ShapeList struct {
	Shapes []Shape
}

func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

func (l *ShapeList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
}

func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	hitAnything := false
	closest := tMax

	for _, shape := range l.Shapes {
		if shape.Hit(ray, tMin, closest, rng, hit) {
			hitAnything = true
			closest = hit.T
		}
	}

	return hitAnything
}

func (l *ShapeList) BoundingBox() core.AABB {
	if len(l.Shapes) == 0 {
		return core.AABB{}
	}

	box := l.Shapes[0].BoundingBox()
	for _, shape := range l.Shapes[1:] {
		box = box.Union(shape.BoundingBox())
	}
	return box
}

// Sampleable is implemented by shapes used as direct lights: XZRect and
// Sphere compute a solid-angle PDF and draw a direction toward themselves.
type Sampleable interface {
	Shape
	PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64
	Random(origin core.Vec3, rng *rand.Rand) core.Vec3
}

// PdfValue averages the member densities, matching the 1/N mixture weight
// used by Random.
func (l *ShapeList) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	if len(l.Shapes) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Shapes))
	sum := 0.0
	for _, shape := range l.Shapes {
		if sampleable, ok := shape.(Sampleable); ok {
			sum += weight * sampleable.PdfValue(origin, direction, rng)
		}
	}
	return sum
}

// Random picks a uniformly random member and samples a direction toward it.
func (l *ShapeList) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	shape := l.Shapes[rng.Intn(len(l.Shapes))]
	if sampleable, ok := shape.(Sampleable); ok {
		return sampleable.Random(origin, rng)
	}
	return core.NewVec3(1, 0, 0)
}
