package hazard

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Bounds = Bounds{LatMin: 35.0, LatMax: 35.18, LonMin: -10.0, LonMax: -9.82}
	cfg.Spacing = 0.09
	cfg.BaseIntensity = 3.0
	cfg.Seed = SeedOf(42)
	return cfg
}

func generate(t *testing.T, cfg Config) []Record {
	t.Helper()
	g, err := NewGenerator(cfg)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	records, err := g.Walk()
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	return records
}

func TestWalkEndToEndExample(t *testing.T) {
	records := generate(t, smallConfig())
	if len(records) != 9 {
		t.Fatalf("expected 9 records, got %d", len(records))
	}
	first := records[0]
	if first.LocationID != "EUR_FLOO_000001" {
		t.Fatalf("first id = %q", first.LocationID)
	}
	if first.Latitude != 35.0 || first.Longitude != -10.0 {
		t.Fatalf("first cell at (%v,%v)", first.Latitude, first.Longitude)
	}
	p := first.Periods
	if !(p[0].Intensity < p[1].Intensity && p[1].Intensity < p[2].Intensity) {
		t.Fatalf("first record trend not increasing: %+v", p)
	}
	for _, rec := range records {
		for i, period := range rec.Periods {
			if period.Intensity <= 0 {
				t.Fatalf("%s period %d intensity %v not positive", rec.LocationID, i+1, period.Intensity)
			}
		}
		if rec.HazardType != "flood" || rec.Unit != "meters" {
			t.Fatalf("%s labels = %q/%q", rec.LocationID, rec.HazardType, rec.Unit)
		}
	}
	wantLats := []float64{35.0, 35.0, 35.0, 35.09, 35.09, 35.09, 35.18, 35.18, 35.18}
	wantLons := []float64{-10.0, -9.91, -9.82}
	for i, rec := range records {
		if rec.Latitude != wantLats[i] || rec.Longitude != wantLons[i%3] {
			t.Fatalf("record %d at (%v,%v)", i, rec.Latitude, rec.Longitude)
		}
	}
}

func TestWalkRoundsOutputs(t *testing.T) {
	for _, rec := range generate(t, smallConfig()) {
		for _, period := range rec.Periods {
			for _, v := range []float64{period.Intensity, period.Variance} {
				if math.Abs(v*1000-math.Round(v*1000)) > 1e-6 {
					t.Fatalf("%s value %v not rounded to 3 decimals", rec.LocationID, v)
				}
			}
		}
	}
}

func TestWalkDeterministicForSeed(t *testing.T) {
	a := generate(t, smallConfig())
	b := generate(t, smallConfig())
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("record %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
	other := smallConfig()
	other.Seed = SeedOf(43)
	c := generate(t, other)
	same := true
	for i := range a {
		if a[i].Periods != c[i].Periods {
			same = false
		}
	}
	if same {
		t.Fatal("seed 43 reproduced seed 42")
	}
}

func TestWalkUnseededStillValid(t *testing.T) {
	cfg := smallConfig()
	cfg.Seed = nil
	records := generate(t, cfg)
	if len(records) != 9 {
		t.Fatalf("expected 9 records, got %d", len(records))
	}
}

func TestWalkIdentifiersIncrease(t *testing.T) {
	cfg := smallConfig()
	cfg.Bounds = Bounds{LatMin: 40, LatMax: 42, LonMin: 0, LonMax: 3}
	cfg.Spacing = 0.25
	records := generate(t, cfg)
	seen := make(map[string]bool, len(records))
	prev := 0
	for _, rec := range records {
		if seen[rec.LocationID] {
			t.Fatalf("duplicate id %s", rec.LocationID)
		}
		seen[rec.LocationID] = true
		parts := strings.Split(rec.LocationID, "_")
		if len(parts) != 3 || parts[0] != "EUR" || parts[1] != "FLOO" || len(parts[2]) != 6 {
			t.Fatalf("malformed id %s", rec.LocationID)
		}
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			t.Fatal(err)
		}
		if n != prev+1 {
			t.Fatalf("id %s does not follow %d", rec.LocationID, prev)
		}
		prev = n
	}
}

func TestWalkEuropeCardinality(t *testing.T) {
	rows, cols := Dims(Europe, 0.09)
	if rows != 401 || cols != 556 {
		t.Fatalf("Dims = %dx%d, expected 401x556", rows, cols)
	}
	if testing.Short() {
		t.Skip("full Europe walk skipped in short mode")
	}
	records := generate(t, DefaultConfig())
	if len(records) != rows*cols {
		t.Fatalf("expected %d records, got %d", rows*cols, len(records))
	}
	last := records[len(records)-1]
	if last.Latitude != 71.0 || last.Longitude != 39.95 {
		t.Fatalf("last cell at (%v,%v)", last.Latitude, last.Longitude)
	}
	if last.LocationID != "EUR_FLOO_222956" {
		t.Fatalf("last id = %s", last.LocationID)
	}
}

func TestDimsUnevenSpacing(t *testing.T) {
	rows, cols := Dims(Bounds{LatMin: 0, LatMax: 1, LonMin: 0, LonMax: 0}, 0.3)
	if rows != 4 || cols != 1 {
		t.Fatalf("Dims = %dx%d, expected 4x1", rows, cols)
	}
	if r, c := Dims(Europe, 0); r != 0 || c != 0 {
		t.Fatalf("zero spacing should yield no cells, got %dx%d", r, c)
	}
}

func TestWalkRejectsBadInput(t *testing.T) {
	cfg := smallConfig()
	cfg.Bounds.LatMin, cfg.Bounds.LatMax = 36, 35
	if _, err := NewGenerator(cfg); !errors.Is(err, ErrInvalidRegion) {
		t.Fatalf("inverted latitude: %v", err)
	}
	cfg = smallConfig()
	cfg.Bounds.LonMin = 0
	cfg.Bounds.LonMax = -1
	if _, err := NewGenerator(cfg); !errors.Is(err, ErrInvalidRegion) {
		t.Fatalf("inverted longitude: %v", err)
	}
	for _, spacing := range []float64{0, -0.09, 0.001, math.NaN()} {
		cfg = smallConfig()
		cfg.Spacing = spacing
		if _, err := NewGenerator(cfg); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("spacing %v: %v", spacing, err)
		}
	}
	g, err := NewGenerator(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Walk(smallConfig(), g.Blender(), nil); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("missing synthesizer: %v", err)
	}
}

func TestHazardPrefix(t *testing.T) {
	cases := map[string]string{
		"flood":    "FLOO",
		"wind":     "WIND",
		"heat":     "HEAT",
		"ice":      "ICE",
		"wildfire": "WILD",
	}
	for in, want := range cases {
		if got := hazardPrefix(in); got != want {
			t.Fatalf("hazardPrefix(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestWindPresetIdentifiers(t *testing.T) {
	cfg, ok := Preset("wind")
	if !ok {
		t.Fatal("wind preset missing")
	}
	cfg.Bounds = smallConfig().Bounds
	records := generate(t, cfg)
	if records[0].LocationID != "EUR_WIND_000001" || records[0].Unit != "m/s" {
		t.Fatalf("unexpected first record %+v", records[0])
	}
}
