package hazard

import (
	"errors"
	"math"
	"testing"

	"hazgrid/internal/core"
	"hazgrid/internal/noise"
)

func seededSamplers(seed int64) []noise.Sampler {
	out := make([]noise.Sampler, 3)
	for i := range out {
		out[i] = noise.NewField(core.NewRNG(core.DeriveSeed(seed, uint32(i))))
	}
	return out
}

func TestBlendRange(t *testing.T) {
	b, err := NewBlender(seededSamplers(42), DefaultScales())
	if err != nil {
		t.Fatal(err)
	}
	rng := core.NewRNG(1)
	for i := 0; i < 20000; i++ {
		lat := rng.Uniform(-90, 90)
		lon := rng.Uniform(-180, 180)
		if v := b.Blend(lat, lon); v < 0 || v > 1 {
			t.Fatalf("Blend(%v,%v) = %v outside [0,1]", lat, lon, v)
		}
	}
}

func TestBlendDeterministic(t *testing.T) {
	a, _ := NewBlender(seededSamplers(7), DefaultScales())
	b, _ := NewBlender(seededSamplers(7), DefaultScales())
	for i := 0; i < 100; i++ {
		lat, lon := 35+float64(i)*0.3, -10+float64(i)*0.5
		if a.Blend(lat, lon) != b.Blend(lat, lon) {
			t.Fatalf("blend differs at (%v,%v)", lat, lon)
		}
	}
}

func TestDefaultScales(t *testing.T) {
	scales := DefaultScales()
	if len(scales) != 3 {
		t.Fatalf("expected 3 scales, got %d", len(scales))
	}
	var sum float64
	for _, sc := range scales {
		sum += sc.Weight
		if err := sc.Octaves.Validate(); err != nil {
			t.Fatalf("scale %s: %v", sc.Name, err)
		}
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("weights sum to %v", sum)
	}
	if scales[0].Frequency != 0.05 || scales[1].Frequency != 0.15 || scales[2].Frequency != 0.5 {
		t.Fatalf("unexpected frequencies %+v", scales)
	}
}

type fixedSampler float64

func (f fixedSampler) Eval(float64, float64) float64 { return float64(f) }

func TestBlendRescalesAndClamps(t *testing.T) {
	samplers := []noise.Sampler{fixedSampler(0.5), fixedSampler(0.5), fixedSampler(0.5)}
	b, err := NewBlender(samplers, DefaultScales())
	if err != nil {
		t.Fatal(err)
	}
	if v := b.Blend(10, 10); math.Abs(v-0.75) > 1e-12 {
		t.Fatalf("expected 0.75, got %v", v)
	}
	loud := []noise.Sampler{fixedSampler(3), fixedSampler(3), fixedSampler(3)}
	b, _ = NewBlender(loud, DefaultScales())
	if v := b.Blend(0, 0); v != 1 {
		t.Fatalf("expected clamp to 1, got %v", v)
	}
}

func TestNewBlenderRejects(t *testing.T) {
	if _, err := NewBlender(seededSamplers(1)[:2], DefaultScales()); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("mismatched samplers: %v", err)
	}
	scales := DefaultScales()
	scales[2].Weight = 0.2
	if _, err := NewBlender(seededSamplers(1), scales); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("weights not summing to 1: %v", err)
	}
	scales = DefaultScales()
	scales[0].Octaves.Count = 0
	if _, err := NewBlender(seededSamplers(1), scales); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("zero octaves: %v", err)
	}
	scales = DefaultScales()
	scales[1].Frequency = 0
	if _, err := NewBlender(seededSamplers(1), scales); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("zero frequency: %v", err)
	}
}
