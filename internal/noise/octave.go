package noise

import (
	"fmt"
	"math"
)

// Octaves parameterizes a fractal (fBm) composition of a Sampler.
type Octaves struct {
	Count       int
	Persistence float64
	Lacunarity  float64
}

// Validate reports whether the series is well formed: at least one octave,
// persistence in (0, 1] and lacunarity above 1.
func (o Octaves) Validate() error {
	if o.Count < 1 {
		return fmt.Errorf("%w: octave count %d must be positive", ErrInvalidParameter, o.Count)
	}
	if math.IsNaN(o.Persistence) || o.Persistence <= 0 || o.Persistence > 1 {
		return fmt.Errorf("%w: persistence %v outside (0, 1]", ErrInvalidParameter, o.Persistence)
	}
	if math.IsNaN(o.Lacunarity) || math.IsInf(o.Lacunarity, 0) || o.Lacunarity <= 1 {
		return fmt.Errorf("%w: lacunarity %v must be greater than 1", ErrInvalidParameter, o.Lacunarity)
	}
	return nil
}

// Compose validates o and returns the normalized octave sum of s at (x, y).
func Compose(s Sampler, x, y float64, o Octaves) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	return o.Sample(s, x, y), nil
}

// Sample is Compose without validation, for callers that validated once up
// front. The result is divided by the amplitude sum so it stays within the
// sampler's own range.
func (o Octaves) Sample(s Sampler, x, y float64) float64 {
	var total, maxAmp float64
	amplitude := 1.0
	frequency := 1.0
	for i := 0; i < o.Count; i++ {
		total += s.Eval(x*frequency, y*frequency) * amplitude
		maxAmp += amplitude
		amplitude *= o.Persistence
		frequency *= o.Lacunarity
	}
	return total / maxAmp
}
