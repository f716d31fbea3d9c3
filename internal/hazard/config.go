package hazard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"hazgrid/internal/noise"
)

var (
	// ErrInvalidParameter flags numeric configuration that cannot produce a grid.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidRegion flags a bounding box with min > max on either axis.
	ErrInvalidRegion = errors.New("invalid region")
)

// Bounds is a latitude/longitude bounding box in degrees.
type Bounds struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

// Range is a closed interval used for uniform draws.
type Range struct {
	Lo, Hi float64
}

// Trend holds the draw ranges used when turning a blended value into the
// three period intensities. The defaults are empirical.
type Trend struct {
	Jitter  Range
	Growth2 Range
	Growth3 Range
	Spread  Range
	Spread3 Range
}

// Config describes one hazard grid.
type Config struct {
	Name          string
	HazardType    string
	Unit          string
	Region        string
	Bounds        Bounds
	Spacing       float64
	BaseIntensity float64
	// Seed makes the run reproducible; nil draws fresh entropy per stream.
	Seed    *int64
	Backend string
	Output  string
	Trend   Trend
}

// MinSpacing is the smallest grid step that survives two-decimal rounding.
const MinSpacing = 0.01

// Europe is the bounding box used by the bundled presets.
var Europe = Bounds{LatMin: 35.0, LatMax: 71.0, LonMin: -10.0, LonMax: 40.0}

// DefaultTrend returns the standard escalation and variance ranges.
func DefaultTrend() Trend {
	return Trend{
		Jitter:  Range{0.9, 1.1},
		Growth2: Range{1.15, 1.25},
		Growth3: Range{1.2, 1.35},
		Spread:  Range{0.15, 0.25},
		Spread3: Range{0.2, 0.3},
	}
}

// DefaultConfig returns the Europe flood configuration.
func DefaultConfig() Config {
	return Config{
		Name:          "flood",
		HazardType:    "flood",
		Unit:          "meters",
		Region:        "EUR",
		Bounds:        Europe,
		Spacing:       0.09,
		BaseIntensity: 3.0,
		Seed:          SeedOf(42),
		Backend:       noise.DefaultBackend,
		Output:        "europe_flood_hazard.csv",
		Trend:         DefaultTrend(),
	}
}

// SeedOf returns a pointer suitable for Config.Seed.
func SeedOf(v int64) *int64 { return &v }

// FromMap populates the default config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of base from a string map. Unparsable values are
// ignored. A seed of "none" or "random" clears the seed.
func ApplyMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	setString := func(key string, dst *string) {
		if v, ok := cfg[key]; ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	setFloat := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				*dst = parsed
			}
		}
	}

	setString("name", &c.Name)
	setString("hazard_type", &c.HazardType)
	setString("unit", &c.Unit)
	setString("region", &c.Region)
	setString("backend", &c.Backend)
	setString("output", &c.Output)

	setFloat("lat_min", &c.Bounds.LatMin)
	setFloat("lat_max", &c.Bounds.LatMax)
	setFloat("lon_min", &c.Bounds.LonMin)
	setFloat("lon_max", &c.Bounds.LonMax)
	setFloat("spacing", &c.Spacing)
	setFloat("base_intensity", &c.BaseIntensity)

	if v, ok := cfg["seed"]; ok {
		v = strings.TrimSpace(v)
		switch strings.ToLower(v) {
		case "none", "random":
			c.Seed = nil
		default:
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				c.Seed = SeedOf(parsed)
			}
		}
	}

	setFloat("jitter_min", &c.Trend.Jitter.Lo)
	setFloat("jitter_max", &c.Trend.Jitter.Hi)
	setFloat("growth2_min", &c.Trend.Growth2.Lo)
	setFloat("growth2_max", &c.Trend.Growth2.Hi)
	setFloat("growth3_min", &c.Trend.Growth3.Lo)
	setFloat("growth3_max", &c.Trend.Growth3.Hi)
	setFloat("spread_min", &c.Trend.Spread.Lo)
	setFloat("spread_max", &c.Trend.Spread.Hi)
	setFloat("spread3_min", &c.Trend.Spread3.Lo)
	setFloat("spread3_max", &c.Trend.Spread3.Hi)
	return c
}

// Validate checks the config eagerly so a walk never starts on bad input.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HazardType) == "" {
		return fmt.Errorf("%w: hazard type is empty", ErrInvalidParameter)
	}
	if strings.TrimSpace(c.Region) == "" {
		return fmt.Errorf("%w: region prefix is empty", ErrInvalidParameter)
	}
	b := c.Bounds
	for _, v := range []float64{b.LatMin, b.LatMax, b.LonMin, b.LonMax} {
		if !finite(v) {
			return fmt.Errorf("%w: bound %v is not finite", ErrInvalidRegion, v)
		}
	}
	if b.LatMin > b.LatMax {
		return fmt.Errorf("%w: latitude min %v > max %v", ErrInvalidRegion, b.LatMin, b.LatMax)
	}
	if b.LonMin > b.LonMax {
		return fmt.Errorf("%w: longitude min %v > max %v", ErrInvalidRegion, b.LonMin, b.LonMax)
	}
	if !finite(c.Spacing) || c.Spacing <= 0 {
		return fmt.Errorf("%w: spacing %v must be positive", ErrInvalidParameter, c.Spacing)
	}
	// Coordinates are rounded to 0.01 after every step.
	if c.Spacing < MinSpacing {
		return fmt.Errorf("%w: spacing %v below coordinate resolution %v", ErrInvalidParameter, c.Spacing, MinSpacing)
	}
	if !finite(c.BaseIntensity) || c.BaseIntensity < 0 {
		return fmt.Errorf("%w: base intensity %v must be non-negative", ErrInvalidParameter, c.BaseIntensity)
	}
	return c.Trend.Validate()
}

// Validate checks that every range is ordered and that growth factors never
// shrink an intensity.
func (t Trend) Validate() error {
	checks := []struct {
		name  string
		r     Range
		floor float64
	}{
		{"jitter", t.Jitter, 0},
		{"growth2", t.Growth2, 1},
		{"growth3", t.Growth3, 1},
		{"spread", t.Spread, 0},
		{"spread3", t.Spread3, 0},
	}
	for _, ch := range checks {
		if !finite(ch.r.Lo) || !finite(ch.r.Hi) || ch.r.Lo > ch.r.Hi {
			return fmt.Errorf("%w: %s range [%v, %v]", ErrInvalidParameter, ch.name, ch.r.Lo, ch.r.Hi)
		}
		if ch.r.Lo < ch.floor {
			return fmt.Errorf("%w: %s minimum %v below %v", ErrInvalidParameter, ch.name, ch.r.Lo, ch.floor)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
