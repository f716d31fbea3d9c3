package hazard

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Record is one output row.
type Record struct {
	LocationID string
	Latitude   float64
	Longitude  float64
	Periods    [3]Period
	HazardType string
	Unit       string
}

// Walk visits every cell of cfg.Bounds in latitude-major order, stepping by
// cfg.Spacing and rounding each coordinate to two decimals after every step.
// When the spacing does not divide the span the last row or column may stop
// short of the max boundary.
func Walk(cfg Config, b *Blender, s *Synthesizer) ([]Record, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if b == nil || s == nil {
		return nil, fmt.Errorf("%w: walk needs a blender and a synthesizer", ErrInvalidParameter)
	}

	lats := steps(cfg.Bounds.LatMin, cfg.Bounds.LatMax, cfg.Spacing)
	lons := steps(cfg.Bounds.LonMin, cfg.Bounds.LonMax, cfg.Spacing)
	prefix := cfg.Region + "_" + hazardPrefix(cfg.HazardType) + "_"

	records := make([]Record, 0, len(lats)*len(lons))
	id := 1
	for _, lat := range lats {
		for _, lon := range lons {
			blended := b.Blend(lat, lon)
			periods := s.Synthesize(blended, cfg.BaseIntensity)
			for i := range periods {
				periods[i].Intensity = round(periods[i].Intensity, 3)
				periods[i].Variance = round(periods[i].Variance, 3)
			}
			records = append(records, Record{
				LocationID: fmt.Sprintf("%s%06d", prefix, id),
				Latitude:   round(lat, 2),
				Longitude:  round(lon, 2),
				Periods:    periods,
				HazardType: cfg.HazardType,
				Unit:       cfg.Unit,
			})
			id++
		}
	}
	return records, nil
}

// Dims returns the number of latitude rows and longitude columns Walk visits.
func Dims(bounds Bounds, spacing float64) (rows, cols int) {
	if !(spacing > 0) {
		return 0, 0
	}
	return len(steps(bounds.LatMin, bounds.LatMax, spacing)), len(steps(bounds.LonMin, bounds.LonMax, spacing))
}

func steps(lo, hi, spacing float64) []float64 {
	var out []float64
	for v := lo; v <= hi; {
		out = append(out, v)
		next := round(v+spacing, 2)
		if next <= v {
			break
		}
		v = next
	}
	return out
}

// hazardPrefix is the uppercase hazard type cut to four runes.
func hazardPrefix(hazardType string) string {
	upper := strings.ToUpper(hazardType)
	if utf8.RuneCountInString(upper) <= 4 {
		return upper
	}
	return string([]rune(upper)[:4])
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
