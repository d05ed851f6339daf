package scene

import (
	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/integrator"
)

// skyBackground is the standard lerp(white, (0.5,0.7,1), t) sky gradient
// used by the outdoor sphere scenes, where t is derived from how much the
// ray points up.
func skyBackground() integrator.Background {
	white := core.NewVec3(1, 1, 1)
	blue := core.NewVec3(0.5, 0.7, 1.0)

	return func(ray core.Ray) core.Vec3 {
		unit := ray.Direction.Normalize()
		t := 0.5 * (unit.Y + 1.0)
		return white.Multiply(1 - t).Add(blue.Multiply(t))
	}
}
