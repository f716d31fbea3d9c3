package hazard

import (
	"errors"
	"testing"

	"hazgrid/internal/core"
)

func TestSynthesizeTrendMonotonic(t *testing.T) {
	s, err := NewSynthesizer(core.NewRNG(42), DefaultTrend())
	if err != nil {
		t.Fatal(err)
	}
	rng := core.NewRNG(2)
	for i := 0; i < 5000; i++ {
		blended := rng.Uniform(0, 1)
		base := rng.Uniform(0, 30)
		p := s.Synthesize(blended, base)
		if !(p[0].Intensity <= p[1].Intensity && p[1].Intensity <= p[2].Intensity) {
			t.Fatalf("trend not monotonic: %+v", p)
		}
	}
}

func TestSynthesizeRanges(t *testing.T) {
	s, _ := NewSynthesizer(core.NewRNG(3), DefaultTrend())
	for i := 0; i < 2000; i++ {
		p := s.Synthesize(0.5, 3.0)
		if p[0].Intensity < 1.35-1e-12 || p[0].Intensity > 1.65+1e-12 {
			t.Fatalf("period 1 intensity %v outside jitter bounds", p[0].Intensity)
		}
		if r := p[1].Intensity / p[0].Intensity; r < 1.15-1e-9 || r > 1.25+1e-9 {
			t.Fatalf("period 2 growth %v outside [1.15,1.25]", r)
		}
		if r := p[2].Intensity / p[1].Intensity; r < 1.2-1e-9 || r > 1.35+1e-9 {
			t.Fatalf("period 3 growth %v outside [1.2,1.35]", r)
		}
		for j := 0; j < 2; j++ {
			if r := p[j].Variance / p[j].Intensity; r < 0.15-1e-9 || r > 0.25+1e-9 {
				t.Fatalf("period %d spread %v outside [0.15,0.25]", j+1, r)
			}
		}
		if r := p[2].Variance / p[2].Intensity; r < 0.2-1e-9 || r > 0.3+1e-9 {
			t.Fatalf("period 3 spread %v outside [0.2,0.3]", r)
		}
	}
}

func TestSynthesizeReplaysWithSameStream(t *testing.T) {
	a, _ := NewSynthesizer(core.NewRNG(9), DefaultTrend())
	b, _ := NewSynthesizer(core.NewRNG(9), DefaultTrend())
	for i := 0; i < 100; i++ {
		if a.Synthesize(0.4, 25) != b.Synthesize(0.4, 25) {
			t.Fatalf("draw %d diverged", i)
		}
	}
}

func TestSynthesizeZeroBase(t *testing.T) {
	s, _ := NewSynthesizer(core.NewRNG(1), DefaultTrend())
	p := s.Synthesize(0.7, 0)
	for i, period := range p {
		if period.Intensity != 0 || period.Variance != 0 {
			t.Fatalf("period %d should be zero, got %+v", i+1, period)
		}
	}
}

func TestNewSynthesizerRejectsShrinkingGrowth(t *testing.T) {
	trend := DefaultTrend()
	trend.Growth2 = Range{0.9, 1.1}
	if _, err := NewSynthesizer(core.NewRNG(1), trend); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	trend = DefaultTrend()
	trend.Spread3 = Range{0.3, 0.2}
	if _, err := NewSynthesizer(core.NewRNG(1), trend); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter for inverted range, got %v", err)
	}
}
