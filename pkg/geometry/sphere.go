package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/material"
)

// Sphere is a stationary sphere primitive.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere builds a sphere shape.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, rng *rand.Rand, hit *material.HitRecord) bool {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax, hit)
}

// hitSphere is shared by Sphere and MovingSphere (which just resolves a
// time-dependent center before delegating here).
func hitSphere(center core.Vec3, radius float64, mat material.Material, ray core.Ray, tMin, tMax float64, hit *material.HitRecord) bool {
	oc := ray.Origin.Subtract(center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / radius)
	uv := core.SphereUV(outwardNormal)

	hit.T = root
	hit.Point = point
	hit.Material = mat
	hit.U = uv.X
	hit.V = uv.Y
	hit.SetFaceNormal(ray, outwardNormal)

	return true
}

func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// PdfValue returns the solid-angle probability density of sampling direction
// from origin via Random — uniform sampling over the cone subtending the
// sphere, used for direct-light importance sampling.
func (s *Sphere) PdfValue(origin, direction core.Vec3, rng *rand.Rand) float64 {
	var hit material.HitRecord
	ray := core.NewRay(origin, direction)
	if !s.Hit(ray, 0.001, math.MaxFloat64, rng, &hit) {
		return 0
	}

	distanceSquared := s.Center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distanceSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)

	return 1 / solidAngle
}

// Random draws a direction from origin uniformly over the solid angle
// subtended by the sphere.
func (s *Sphere) Random(origin core.Vec3, rng *rand.Rand) core.Vec3 {
	direction := s.Center.Subtract(origin)
	distanceSquared := direction.LengthSquared()
	uvw := core.NewOnbFromW(direction)
	return uvw.Local(core.RandomToSphere(s.Radius, distanceSquared, rng))
}
