package renderer

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/geometry"
	"github.com/df07/go-progressive-raytracer/pkg/integrator"
)

// Driver owns everything needed to run spec.md §4.7's parallel render sweep:
// a camera, an intersectable world, a light list for direct sampling, and
// the fixed sample-count/depth configuration. World is any Hit-able graph —
// a BVH in the common case, or a flat geometry.ShapeList when comparing
// BVH-accelerated and brute-force traversal for bitwise equivalence.
type Driver struct {
	Camera          *Camera
	World           integrator.World
	Lights          geometry.Sampleable
	Background      integrator.Background
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Logger          core.Logger // defaults to a no-op logger if nil
	NumWorkers      int         // defaults to runtime.NumCPU() if 0

	// DirectPixel, if set, bypasses the camera/path-tracer entirely and
	// computes each pixel directly from its (i, j) coordinates. This is the
	// S1 ramp-background scenario, which has no geometry, camera or RNG to
	// sample — just a one-shot per-pixel gradient.
	DirectPixel func(i, j int) core.Vec3
}

// Render runs the full parallel sweep and writes a PPM "P3" image to w. ctx
// is threaded through per Go convention for the surrounding CLI; the
// per-pixel loop itself never polls it, since a render, once started, runs
// to completion (spec.md §5 requires no mid-render reclaim).
// Each row is claimed from a shared atomic cursor and computed entirely by
// one goroutine, so no locking is needed on the output buffer.
func (d *Driver) Render(ctx context.Context, w io.Writer) error {
	logger := d.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	numWorkers := d.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	pixels := make([][]core.Vec3, d.Height)
	for j := range pixels {
		pixels[j] = make([]core.Vec3, d.Width)
	}

	var nextRow int64 = -1
	rowsRemaining := int64(d.Height)

	var wg sync.WaitGroup
	for worker := 0; worker < numWorkers; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				j := atomic.AddInt64(&nextRow, 1)
				if j >= int64(d.Height) {
					return
				}
				d.renderRow(int(j), pixels[j])
				remaining := atomic.AddInt64(&rowsRemaining, -1)
				logger.Printf("\rScanlines remaining: %d ", remaining)
			}
		}()
	}
	wg.Wait()
	logger.Printf("\nDone\n")

	// DirectPixel scenes compute a final display color directly, not a
	// linear radiance sample, so they skip the gamma curve every other
	// scene's path-traced output goes through.
	toByte := gammaByte
	if d.DirectPixel != nil {
		toByte = rawByte
	}

	return writePPM(w, d.Width, d.Height, pixels, toByte)
}

// renderRow fills one row of the output with d.SamplesPerPixel accumulated
// samples per pixel, using an RNG seeded deterministically from the pixel's
// flat index so results don't depend on goroutine scheduling.
func (d *Driver) renderRow(j int, row []core.Vec3) {
	if d.DirectPixel != nil {
		for i := 0; i < d.Width; i++ {
			row[i] = sanitizeNaN(d.DirectPixel(i, j))
		}
		return
	}

	for i := 0; i < d.Width; i++ {
		rng := rand.New(rand.NewSource(int64(j*d.Width + i)))

		var sum core.Vec3
		for n := 0; n < d.SamplesPerPixel; n++ {
			s := (float64(i) + rng.Float64()) / float64(d.Width-1)
			// Row j=0 is the first row written to the PPM (the top of the
			// image), but the camera's viewport has t≈1 at the top and t≈0
			// at the bottom, so the row index must be flipped here.
			t := (float64(d.Height-1-j) + rng.Float64()) / float64(d.Height-1)

			ray := d.Camera.GetRay(s, t, rng)
			sum = sum.Add(integrator.RayColor(ray, d.Background, d.World, d.Lights, d.MaxDepth, rng))
		}

		color := sum.Multiply(1.0 / float64(d.SamplesPerPixel))
		row[i] = sanitizeNaN(color)
	}
}

func sanitizeNaN(c core.Vec3) core.Vec3 {
	if math.IsNaN(c.X) {
		c.X = 0
	}
	if math.IsNaN(c.Y) {
		c.Y = 0
	}
	if math.IsNaN(c.Z) {
		c.Z = 0
	}
	return c
}

// writePPM writes pixels (row-major, top row first) as a PPM "P3" image,
// converting each linear channel to a byte with toByte.
func writePPM(w io.Writer, width, height int, pixels [][]core.Vec3, toByte func(float64) int) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			c := pixels[j][i]
			r := toByte(c.X)
			g := toByte(c.Y)
			b := toByte(c.Z)
			if _, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}

	return nil
}

// gammaByte applies the gamma-2 correction spec.md §8 item 10 requires for
// path-traced linear radiance: clamp(sqrt(c), 0, 0.999)*256 truncated.
func gammaByte(c float64) int {
	gamma := math.Sqrt(math.Max(0, c))
	clamped := math.Min(0.999, math.Max(0, gamma))
	return int(clamped * 256)
}

// rawByte truncates an already-final display value (0..1) to a byte without
// any gamma curve, for scenes like the S1 ramp that write display colors
// directly rather than sampling linear radiance.
func rawByte(c float64) int {
	clamped := math.Min(1, math.Max(0, c))
	return int(clamped * 255)
}

type noopLogger struct{}

func (noopLogger) Printf(format string, args ...interface{}) {}
