package core

import (
	"math"
	"math/rand"
)

// NoiseField is a deterministic 2-D gradient noise over a skewed simplex
// lattice. Sampling the same point always yields the same value, and the
// field is continuous across integer lattice lines, which is what keeps
// chunk boundaries seamless. Output range is approximately [-1, 1].
type NoiseField struct {
	perm [512]uint8
}

// NewNoiseField builds a noise field whose permutation table is derived
// deterministically from the seed.
func NewNoiseField(seed int64) *NoiseField {
	n := &NoiseField{}
	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	for i := 0; i < 512; i++ {
		n.perm[i] = p[i&255]
	}
	return n
}

// Skew factors for the 2-D triangular lattice.
const (
	skew2   = 0.3660254037844386  // (sqrt(3)-1)/2
	unskew2 = 0.21132486540518713 // (3-sqrt(3))/6
)

var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// Sample evaluates the noise at a 2-D point.
func (n *NoiseField) Sample(x, y float64) float64 {
	// Skew the input to find the containing simplex cell.
	s := (x + y) * skew2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * unskew2
	x0 := x - i + t
	y0 := y - j + t

	// Which triangle of the cell: lower (x first) or upper (y first).
	var i1, j1 float64
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - i1 + unskew2
	y1 := y0 - j1 + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	ii := int(i) & 255
	jj := int(j) & 255
	g0 := grad2[n.perm[ii+int(n.perm[jj])]&7]
	g1 := grad2[n.perm[ii+int(i1)+int(n.perm[jj+int(j1)])]&7]
	g2 := grad2[n.perm[ii+1+int(n.perm[jj+1])]&7]

	return 70.0 * (corner(x0, y0, g0) + corner(x1, y1, g1) + corner(x2, y2, g2))
}

// corner is the falloff-weighted gradient contribution of one simplex corner.
func corner(x, y float64, g [2]float64) float64 {
	t := 0.5 - x*x - y*y
	if t <= 0 {
		return 0
	}
	t *= t
	return t * t * (g[0]*x + g[1]*y)
}

// FractalSample stacks octaves of the base field. Persistence scales the
// amplitude and lacunarity the frequency between octaves; the result is
// normalized back to roughly [-1, 1].
func (n *NoiseField) FractalSample(x, y float64, octaves int, persistence, lacunarity float64) float64 {
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	norm := 0.0
	for o := 0; o < octaves; o++ {
		sum += n.Sample(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}
