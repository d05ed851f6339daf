package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

const aaRectThickness = 1e-4

// XYRect is a rectangle in the plane z = k, spanning [x0,x1] x [y0,y1].
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          material.Material
}

func NewXYRect(x0, x1, y0, y1, k float64, mat material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return false
	}

	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return false
	}

	hit.T = t
	hit.Point = ray.At(t)
	hit.U = (x - r.X0) / (r.X1 - r.X0)
	hit.V = (y - r.Y0) / (r.Y1 - r.Y0)
	hit.Material = r.Material
	hit.SetFaceNormal(ray, core.NewVec3(0, 0, 1))
	return true
}

func (r *XYRect) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-aaRectThickness),
		core.NewVec3(r.X1, r.Y1, r.K+aaRectThickness),
	)
}

// XZRect is a rectangle in the plane y = k, spanning [x0,x1] x [z0,z1]. This
// is the variant used as an area light in the reference scenes, so it alone
// carries direct-light importance sampling.
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          material.Material
}

func NewXZRect(x0, x1, z0, z1, k float64, mat material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return false
	}

	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return false
	}

	hit.T = t
	hit.Point = ray.At(t)
	hit.U = (x - r.X0) / (r.X1 - r.X0)
	hit.V = (z - r.Z0) / (r.Z1 - r.Z0)
	hit.Material = r.Material
	hit.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
	return true
}

func (r *XZRect) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-aaRectThickness, r.Z0),
		core.NewVec3(r.X1, r.K+aaRectThickness, r.Z1),
	)
}

func (r *XZRect) area() float64 {
	return (r.X1 - r.X0) * (r.Z1 - r.Z0)
}

// PdfValue is the direct-light importance-sampling density: a uniform point
// on the rectangle induces a solid-angle density of distance^2/(cosine*area).
func (r *XZRect) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	var hit material.HitRecord
	ray := core.NewRay(origin, direction)
	if !r.Hit(ray, 0.001, math.MaxFloat64, rng, &hit) {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(hit.Normal)) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * r.area())
}

// Random draws a uniform point on the rectangle and returns the direction
// from origin to it.
func (r *XZRect) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	randomPoint := core.NewVec3(
		r.X0+rng.Float64()*(r.X1-r.X0),
		r.K,
		r.Z0+rng.Float64()*(r.Z1-r.Z0),
	)
	return randomPoint.Subtract(origin)
}

// YZRect is a rectangle in the plane x = k, spanning [y0,y1] x [z0,z1].
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          material.Material
}

func NewYZRect(y0, y1, z0, z1, k float64, mat material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return false
	}

	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return false
	}

	hit.T = t
	hit.Point = ray.At(t)
	hit.U = (y - r.Y0) / (r.Y1 - r.Y0)
	hit.V = (z - r.Z0) / (r.Z1 - r.Z0)
	hit.Material = r.Material
	hit.SetFaceNormal(ray, core.NewVec3(1, 0, 0))
	return true
}

func (r *YZRect) BoundingBox() core.AABB {
	return core.NewAABB(
		core.NewVec3(r.K-aaRectThickness, r.Y0, r.Z0),
		core.NewVec3(r.K+aaRectThickness, r.Y1, r.Z1),
	)
}
