// Package renderer drives the parallel render sweep: the camera that turns
// screen coordinates into rays, and the worker pool that fills the image.
package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Camera generates rays for rendering, with defocus blur (a finite aperture)
// and motion blur (rays cast at a random time in [Time0, Time1]).
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// CameraConfig collects a camera's construction parameters.
type CameraConfig struct {
	LookFrom, LookAt, Vup core.Vec3
	VFov, AspectRatio     float64 // VFov in degrees
	Aperture, FocusDist   float64
	Time0, Time1          float64
}

// NewCamera builds a camera looking from LookFrom toward LookAt.
func NewCamera(cfg CameraConfig) *Camera {
	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Vup.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Multiply(viewportWidth * cfg.FocusDist)
	vertical := v.Multiply(viewportHeight * cfg.FocusDist)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(cfg.FocusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
		time0:           cfg.Time0,
		time1:           cfg.Time1,
	}
}

// GetRay generates a ray through screen coordinates (s, t), where 0<=s,t<=1
// are fractional offsets across the viewport. The ray origin is jittered
// within the lens disk for defocus blur, and its time is uniform in
// [Time0, Time1] for motion blur.
func (c *Camera) GetRay(s, t float64, rng *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(rng).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.time0
	if c.time1 > c.time0 {
		time = c.time0 + rng.Float64()*(c.time1-c.time0)
	}

	return core.NewRayAt(origin, direction, time)
}
