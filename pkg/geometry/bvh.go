package geometry

import (
	"math/rand"
	"sort"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

// BVH is a bounding volume hierarchy built by recursively splitting a shape
// list on a randomly chosen axis. Every internal node holds exactly two
// children; a node wrapping a single shape is a leaf.
type BVH struct {
	box   core.AABB
	left  Shape
	right Shape // nil for a leaf node
}

// NewBVH builds a BVH over shapes, which must be non-empty.
func NewBVH(shapes []Shape, rng *rand.Rand) *BVH {
	return buildBVH(append([]Shape(nil), shapes...), rng)
}

// buildBVH recursively splits shapes on a randomly chosen axis: 1 shape is a
// leaf, 2 shapes become the two children of a node directly, and 3 or more
// are sorted by bounding-box minimum along the chosen axis and split in half.
func buildBVH(shapes []Shape, rng *rand.Rand) *BVH {
	switch len(shapes) {
	case 0:
		panic("geometry: BVH requires at least one shape")

	case 1:
		return &BVH{box: shapes[0].BoundingBox(), left: shapes[0]}

	case 2:
		leftBox := shapes[0].BoundingBox()
		rightBox := shapes[1].BoundingBox()
		return &BVH{box: leftBox.Union(rightBox), left: shapes[0], right: shapes[1]}

	default:
		axis := rng.Intn(3)
		sort.Slice(shapes, func(i, j int) bool {
			return axisMin(shapes[i].BoundingBox(), axis) < axisMin(shapes[j].BoundingBox(), axis)
		})

		mid := len(shapes) / 2
		left := buildBVH(shapes[:mid], rng)
		right := buildBVH(shapes[mid:], rng)

		return &BVH{box: left.box.Union(right.box), left: left, right: right}
	}
}

func axisMin(box core.AABB, axis int) float64 {
	switch axis {
	case 0:
		return box.Min.X
	case 1:
		return box.Min.Y
	default:
		return box.Min.Z
	}
}

// Hit implements Shape: test the enclosing box first, then recurse into
// whichever child(ren) the ray's box test didn't already rule out.
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	if !b.box.Hit(ray, tMin, tMax) {
		return false
	}

	if b.right == nil {
		return b.left.Hit(ray, tMin, tMax, rng, hit)
	}

	hitLeft := b.left.Hit(ray, tMin, tMax, rng, hit)
	rightMax := tMax
	if hitLeft {
		rightMax = hit.T
	}

	var rightHit material.HitRecord
	if b.right.Hit(ray, tMin, rightMax, rng, &rightHit) {
		*hit = rightHit
		return true
	}

	return hitLeft
}

func (b *BVH) BoundingBox() core.AABB {
	return b.box
}
