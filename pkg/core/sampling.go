package core

import (
	"math"
	"math/rand"
)

// RandomInUnitSphere returns a vector uniformly distributed inside the unit
// ball, via rejection sampling.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := NewVec3(
			rng.Float64()*2-1,
			rng.Float64()*2-1,
			rng.Float64()*2-1,
		)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInUnitDisk returns a point uniformly distributed inside the unit
// disk in the XY plane (Z always 0), via rejection sampling. Used for
// defocus-blur lens sampling.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomCosineDirection draws a direction in local (z-up) coordinates from a
// cosine-weighted distribution over the hemisphere. Apply Onb.Local to place
// it around an arbitrary normal.
func RandomCosineDirection(rng *rand.Rand) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()

	phi := 2 * math.Pi * r1
	sqrtR2 := math.Sqrt(r2)

	x := math.Cos(phi) * sqrtR2
	y := math.Sin(phi) * sqrtR2
	z := math.Sqrt(1 - r2)

	return NewVec3(x, y, z)
}

// RandomToSphere draws a direction, in the local frame of an Onb built
// around the direction to a sphere's center, that lies within the cone
// subtending a sphere of the given radius at the given squared distance.
// Used for solid-angle light sampling of Sphere.
func RandomToSphere(radius, distanceSquared float64, rng *rand.Rand) Vec3 {
	r1 := rng.Float64()
	r2 := rng.Float64()

	cosThetaMax := math.Sqrt(1 - radius*radius/distanceSquared)
	z := 1 + r2*(cosThetaMax-1)

	phi := 2 * math.Pi * r1
	sqrtTerm := math.Sqrt(1 - z*z)
	x := math.Cos(phi) * sqrtTerm
	y := math.Sin(phi) * sqrtTerm

	return NewVec3(x, y, z)
}

// NearZero reports whether all components of the vector are close to zero,
// used to catch degenerate Lambertian scatter directions before they
// propagate NaNs.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Reflect returns v reflected about the normal n (n assumed unit length).
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends unit vector uv across a surface with normal n using Snell's
// law, given the ratio of refractive indices (incident over transmitted).
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance computes the Schlick approximation to the Fresnel reflectance
// for a dielectric interface.
func Reflectance(cosine, refractiveIndexRatio float64) float64 {
	r0 := (1 - refractiveIndexRatio) / (1 + refractiveIndexRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// SphereUV computes the (u,v) texture coordinates of a point p on the unit
// sphere (p given as the outward unit normal). theta is the polar angle
// from the south pole (acos(-p.y) is 0 at the bottom, pi at the top), phi
// the azimuthal angle around the equator.
func SphereUV(p Vec3) Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
