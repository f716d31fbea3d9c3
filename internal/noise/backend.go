package noise

import (
	"errors"
	"fmt"
	"sort"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"hazgrid/internal/core"
)

var (
	// ErrInvalidParameter flags octave settings that would produce a
	// degenerate or divergent series.
	ErrInvalidParameter = errors.New("invalid noise parameter")
	// ErrUnknownBackend is returned by New for unregistered backend names.
	ErrUnknownBackend = errors.New("unknown noise backend")
)

// DefaultBackend names the built-in gradient field.
const DefaultBackend = "gradient"

// Sampler is a deterministic 2D scalar noise source.
type Sampler interface {
	Eval(x, y float64) float64
}

// Factory builds a Sampler, drawing any seed material from rng.
type Factory func(rng *core.RNG) Sampler

var backends = map[string]Factory{}

// Register adds a backend under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	backends[name] = f
}

// Backends lists the registered backend names in sorted order.
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs the named backend.
func New(name string, rng *core.RNG) (Sampler, error) {
	if name == "" {
		name = DefaultBackend
	}
	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, name)
	}
	return f(rng), nil
}

type simplexSampler struct {
	n opensimplex.Noise
}

func (s simplexSampler) Eval(x, y float64) float64 { return s.n.Eval2(x, y) }

type perlinSampler struct {
	p *perlin.Perlin
}

func (s perlinSampler) Eval(x, y float64) float64 { return s.p.Noise2D(x, y) }

func init() {
	Register(DefaultBackend, func(rng *core.RNG) Sampler { return NewField(rng) })
	Register("opensimplex", func(rng *core.RNG) Sampler {
		return simplexSampler{n: opensimplex.New(rng.Int64())}
	})
	// One octave only; composition happens in Octaves.
	Register("perlin", func(rng *core.RNG) Sampler {
		return perlinSampler{p: perlin.NewPerlin(2, 2, 1, rng.Int64())}
	})
}
