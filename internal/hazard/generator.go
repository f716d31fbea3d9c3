package hazard

import (
	"hazgrid/internal/core"
	"hazgrid/internal/noise"
)

// Stream indices passed to core.DeriveSeed. Indices below len(DefaultScales())
// seed the samplers in scale order.
const jitterStream = 3

// Generator owns the samplers and jitter RNG for one hazard grid.
type Generator struct {
	cfg     Config
	blender *Blender
	synth   *Synthesizer
}

// NewGenerator validates cfg and builds every stream it needs. A nil seed
// gives each sampler and the jitter RNG independent entropy.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scales := DefaultScales()
	samplers := make([]noise.Sampler, len(scales))
	for i := range scales {
		s, err := noise.New(cfg.Backend, streamRNG(cfg.Seed, uint32(i)))
		if err != nil {
			return nil, err
		}
		samplers[i] = s
	}
	blender, err := NewBlender(samplers, scales)
	if err != nil {
		return nil, err
	}
	synth, err := NewSynthesizer(streamRNG(cfg.Seed, jitterStream), cfg.Trend)
	if err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, blender: blender, synth: synth}, nil
}

// Config returns the configuration the generator was built from.
func (g *Generator) Config() Config { return g.cfg }

// Blender exposes the hazard potential field.
func (g *Generator) Blender() *Blender { return g.blender }

// Walk generates the grid. A second call continues the jitter stream and so
// does not repeat the first result.
func (g *Generator) Walk() ([]Record, error) {
	return Walk(g.cfg, g.blender, g.synth)
}

func streamRNG(seed *int64, stream uint32) *core.RNG {
	if seed == nil {
		return core.NewEntropyRNG()
	}
	return core.NewRNG(core.DeriveSeed(*seed, stream))
}
