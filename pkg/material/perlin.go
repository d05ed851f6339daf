package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is lattice-gradient noise: a random unit vector at each integer
// lattice point, Hermite-smoothed trilinear interpolation of the dot
// products between the sampled point's fractional offset and the 8
// surrounding lattice gradients, plus a permutation-table hash to pick which
// gradient belongs to which lattice cell.
type Perlin struct {
	ranvec [perlinPointCount]core.Vec3
	permX  [perlinPointCount]int
	permY  [perlinPointCount]int
	permZ  [perlinPointCount]int
}

// NewPerlin builds a fresh noise field from the given random source.
func NewPerlin(rng *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.ranvec {
		p.ranvec[i] = core.NewVec3(
			rng.Float64()*2-1,
			rng.Float64()*2-1,
			rng.Float64()*2-1,
		).Normalize()
	}
	p.permX = generatePerm(rng)
	p.permY = generatePerm(rng)
	p.permZ = generatePerm(rng)
	return p
}

func generatePerm(rng *rand.Rand) [perlinPointCount]int {
	var perm [perlinPointCount]int
	for i := range perm {
		perm[i] = i
	}
	rng.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// Noise samples the gradient field at p, in roughly [-1, 1].
func (pn *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&(perlinPointCount-1)] ^
					pn.permY[(j+dj)&(perlinPointCount-1)] ^
					pn.permZ[(k+dk)&(perlinPointCount-1)]
				c[di][dj][dk] = pn.ranvec[idx]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weightV := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weightV)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise at doubling frequency and halving
// amplitude, giving a more natural marbled/billowed look than raw noise.
func (pn *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * pn.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}
