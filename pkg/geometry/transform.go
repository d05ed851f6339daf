package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

// Translate offsets a shape by a fixed vector, implemented by moving the
// incoming ray into the shape's local space rather than moving geometry.
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	moved := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)
	if !t.Shape.Hit(moved, tMin, tMax, rng, hit) {
		return false
	}
	hit.Point = hit.Point.Add(t.Offset)
	hit.SetFaceNormal(moved, hit.Normal)
	return true
}

func (t *Translate) BoundingBox() core.AABB {
	box := t.Shape.BoundingBox()
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset))
}

// RotateY rotates a shape about the Y axis by an angle in radians, precomputing the
// rotated bounding box at construction time.
type RotateY struct {
	Shape              Shape
	SinTheta, CosTheta float64
	box                core.AABB
}

// NewRotateY rotates shape by angle radians about the Y axis.
func NewRotateY(shape Shape, angle float64) *RotateY {
	sinTheta := math.Sin(angle)
	cosTheta := math.Cos(angle)

	bbox := shape.BoundingBox()
	min := core.NewVec3(math.MaxFloat64, math.MaxFloat64, math.MaxFloat64)
	max := core.NewVec3(-math.MaxFloat64, -math.MaxFloat64, -math.MaxFloat64)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*bbox.Max.X + float64(1-i)*bbox.Min.X
				y := float64(j)*bbox.Max.Y + float64(1-j)*bbox.Min.Y
				z := float64(k)*bbox.Max.Z + float64(1-k)*bbox.Min.Z

				newX := cosTheta*x + sinTheta*z
				newZ := -sinTheta*x + cosTheta*z

				min = core.NewVec3(math.Min(min.X, newX), math.Min(min.Y, y), math.Min(min.Z, newZ))
				max = core.NewVec3(math.Max(max.X, newX), math.Max(max.Y, y), math.Max(max.Z, newZ))
			}
		}
	}

	return &RotateY{Shape: shape, SinTheta: sinTheta, CosTheta: cosTheta, box: core.NewAABB(min, max)}
}

func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	origin := core.NewVec3(
		r.CosTheta*ray.Origin.X-r.SinTheta*ray.Origin.Z,
		ray.Origin.Y,
		r.SinTheta*ray.Origin.X+r.CosTheta*ray.Origin.Z,
	)
	direction := core.NewVec3(
		r.CosTheta*ray.Direction.X-r.SinTheta*ray.Direction.Z,
		ray.Direction.Y,
		r.SinTheta*ray.Direction.X+r.CosTheta*ray.Direction.Z,
	)
	rotated := core.NewRayAt(origin, direction, ray.Time)

	if !r.Shape.Hit(rotated, tMin, tMax, rng, hit) {
		return false
	}

	p := core.NewVec3(
		r.CosTheta*hit.Point.X+r.SinTheta*hit.Point.Z,
		hit.Point.Y,
		-r.SinTheta*hit.Point.X+r.CosTheta*hit.Point.Z,
	)
	normal := core.NewVec3(
		r.CosTheta*hit.Normal.X+r.SinTheta*hit.Normal.Z,
		hit.Normal.Y,
		-r.SinTheta*hit.Normal.X+r.CosTheta*hit.Normal.Z,
	)

	hit.Point = p
	hit.SetFaceNormal(rotated, normal)

	return true
}

func (r *RotateY) BoundingBox() core.AABB {
	return r.box
}

// FlipFace inverts the front/back sense of a shape's hit, used to make a
// rectangle's emitted light face inward on a box wall.
type FlipFace struct {
	Shape Shape
}

func NewFlipFace(shape Shape) *FlipFace {
	return &FlipFace{Shape: shape}
}

func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	if !f.Shape.Hit(ray, tMin, tMax, rng, hit) {
		return false
	}
	hit.FrontFace = !hit.FrontFace
	return true
}

func (f *FlipFace) BoundingBox() core.AABB {
	return f.Shape.BoundingBox()
}

// PdfValue forwards to the wrapped shape when it is itself Sampleable (e.g.
// an XZRect light panel flipped to face into a room), so wrapping in
// FlipFace doesn't disable direct-light importance sampling.
func (f *FlipFace) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	if sampleable, ok := f.Shape.(Sampleable); ok {
		return sampleable.PdfValue(origin, direction, rng)
	}
	return 0
}

// Random forwards to the wrapped shape when it is Sampleable.
func (f *FlipFace) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	if sampleable, ok := f.Shape.(Sampleable); ok {
		return sampleable.Random(origin, rng)
	}
	return core.NewVec3(1, 0, 0)
}
