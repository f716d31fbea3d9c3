package noise

import (
	"math"

	"hazgrid/internal/core"
)

const permSize = 256

// Field is a seeded 2D gradient noise source. The permutation table holds
// 0..255 in shuffled order followed by a copy of itself so corner lookups
// never wrap.
type Field struct {
	perm [2 * permSize]int
}

// NewField shuffles a fresh permutation table with rng.
func NewField(rng *core.RNG) *Field {
	f := &Field{}
	p := make([]int, permSize)
	for i := range p {
		p[i] = i
	}
	rng.Shuffle(permSize, func(i, j int) { p[i], p[j] = p[j], p[i] })
	for i := range f.perm {
		f.perm[i] = p[i&(permSize-1)]
	}
	return f
}

// NewSeededField returns the field for a fixed seed.
func NewSeededField(seed int64) *Field {
	return NewField(core.NewRNG(seed))
}

// Eval returns the noise value at (x, y), practically within [-1, 1].
// Integer lattice points always evaluate to zero.
func (f *Field) Eval(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & (permSize - 1)
	yi := int(fy) & (permSize - 1)

	xf := x - fx
	yf := y - fy
	u := fade(xf)
	v := fade(yf)

	p := &f.perm
	aa := p[p[xi]+yi]
	ab := p[p[xi]+yi+1]
	ba := p[p[xi+1]+yi]
	bb := p[p[xi+1]+yi+1]

	x1 := lerp(u, grad(aa, xf, yf), grad(ba, xf-1, yf))
	x2 := lerp(u, grad(ab, xf, yf-1), grad(bb, xf-1, yf-1))
	return lerp(v, x1, x2)
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad picks one of four diagonal gradients from the two low hash bits.
func grad(hash int, x, y float64) float64 {
	h := hash & 3
	u, v := x, y
	if h >= 2 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
