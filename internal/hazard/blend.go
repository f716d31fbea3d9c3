package hazard

import (
	"fmt"
	"math"

	"hazgrid/internal/noise"
)

// Scale is one spatial regime of the hazard potential field.
type Scale struct {
	Name      string
	Frequency float64
	Weight    float64
	Octaves   noise.Octaves
}

// DefaultScales returns the continental, regional and local regimes.
// Weights sum to exactly 1.
func DefaultScales() []Scale {
	return []Scale{
		{Name: "continental", Frequency: 0.05, Weight: 0.6, Octaves: noise.Octaves{Count: 3, Persistence: 0.6, Lacunarity: 2.0}},
		{Name: "regional", Frequency: 0.15, Weight: 0.3, Octaves: noise.Octaves{Count: 3, Persistence: 0.5, Lacunarity: 2.0}},
		{Name: "local", Frequency: 0.5, Weight: 0.1, Octaves: noise.Octaves{Count: 2, Persistence: 0.4, Lacunarity: 2.0}},
	}
}

// Blender combines one sampler per scale into a [0, 1] hazard potential.
type Blender struct {
	samplers []noise.Sampler
	scales   []Scale
}

// NewBlender pairs samplers with scales by position.
func NewBlender(samplers []noise.Sampler, scales []Scale) (*Blender, error) {
	if len(scales) == 0 || len(samplers) != len(scales) {
		return nil, fmt.Errorf("%w: %d samplers for %d scales", ErrInvalidParameter, len(samplers), len(scales))
	}
	var total float64
	for i, sc := range scales {
		if samplers[i] == nil {
			return nil, fmt.Errorf("%w: scale %q has no sampler", ErrInvalidParameter, sc.Name)
		}
		if err := sc.Octaves.Validate(); err != nil {
			return nil, fmt.Errorf("%w: scale %q: %v", ErrInvalidParameter, sc.Name, err)
		}
		if !finite(sc.Frequency) || sc.Frequency <= 0 {
			return nil, fmt.Errorf("%w: scale %q frequency %v", ErrInvalidParameter, sc.Name, sc.Frequency)
		}
		if !finite(sc.Weight) || sc.Weight < 0 {
			return nil, fmt.Errorf("%w: scale %q weight %v", ErrInvalidParameter, sc.Name, sc.Weight)
		}
		total += sc.Weight
	}
	if math.Abs(total-1) > 1e-9 {
		return nil, fmt.Errorf("%w: scale weights sum to %v, expected 1", ErrInvalidParameter, total)
	}
	return &Blender{
		samplers: append([]noise.Sampler(nil), samplers...),
		scales:   append([]Scale(nil), scales...),
	}, nil
}

// Blend returns the hazard potential at (lat, lon) in [0, 1]. Longitude maps
// to noise x and latitude to noise y.
func (b *Blender) Blend(lat, lon float64) float64 {
	var combined float64
	for i, sc := range b.scales {
		x := lon * sc.Frequency
		y := lat * sc.Frequency
		combined += sc.Octaves.Sample(b.samplers[i], x, y) * sc.Weight
	}
	v := (combined + 1) / 2
	// Third-party backends are not strictly bounded.
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
