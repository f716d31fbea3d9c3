package hazard

import "hazgrid/internal/core"

// Period is one forecast horizon's intensity and variance.
type Period struct {
	Intensity float64
	Variance  float64
}

// Synthesizer turns a blended value into three escalating periods. It owns
// its RNG; draws happen in a fixed order per call so a seeded run replays
// exactly when cells are visited in the same order.
type Synthesizer struct {
	rng   *core.RNG
	trend Trend
}

// NewSynthesizer validates trend and binds it to rng.
func NewSynthesizer(rng *core.RNG, trend Trend) (*Synthesizer, error) {
	if err := trend.Validate(); err != nil {
		return nil, err
	}
	return &Synthesizer{rng: rng, trend: trend}, nil
}

// Synthesize draws jitter, both growth factors, then the three variance
// spreads.
func (s *Synthesizer) Synthesize(blended, base float64) [3]Period {
	t := s.trend
	p1 := base * blended * s.draw(t.Jitter)
	p2 := p1 * s.draw(t.Growth2)
	p3 := p2 * s.draw(t.Growth3)
	return [3]Period{
		{Intensity: p1, Variance: p1 * s.draw(t.Spread)},
		{Intensity: p2, Variance: p2 * s.draw(t.Spread)},
		{Intensity: p3, Variance: p3 * s.draw(t.Spread3)},
	}
}

func (s *Synthesizer) draw(r Range) float64 {
	return s.rng.Uniform(r.Lo, r.Hi)
}
