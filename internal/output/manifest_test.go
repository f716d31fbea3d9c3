package output

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"hazgrid/internal/hazard"
)

func TestManifestRoundTrip(t *testing.T) {
	cfg := hazard.DefaultConfig()
	cfg.Bounds = hazard.Bounds{LatMin: 35.0, LatMax: 35.18, LonMin: -10.0, LonMax: -9.82}
	records := sampleRecords()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	m := NewManifest(cfg, records, now)
	if _, err := uuid.Parse(m.RunID); err != nil {
		t.Fatalf("run id %q is not a uuid: %v", m.RunID, err)
	}
	if m.Rows != 3 || m.Cols != 3 || m.Records != 2 {
		t.Fatalf("dims = %dx%d records %d", m.Rows, m.Cols, m.Records)
	}
	if m.Parameters["spacing"] != "0.09" || m.Parameters["seed"] != "42" {
		t.Fatalf("parameters = %v", m.Parameters)
	}

	dir := t.TempDir()
	path, err := WriteManifest(dir, ManifestName(cfg.Output), m)
	if err != nil {
		t.Fatal(err)
	}
	got, err := ReadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.RunID != m.RunID || !got.CreatedAt.Equal(now) || got.Summary != m.Summary {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, m)
	}
	if got.Seed == nil || *got.Seed != 42 {
		t.Fatalf("seed = %v", got.Seed)
	}
}

func TestManifestName(t *testing.T) {
	if got := ManifestName("europe_wind_hazard.csv"); got != "europe_wind_hazard.manifest.json" {
		t.Fatalf("ManifestName = %q", got)
	}
	if a, b := NewManifest(hazard.DefaultConfig(), nil, time.Now()), NewManifest(hazard.DefaultConfig(), nil, time.Now()); a.RunID == b.RunID {
		t.Fatal("run ids must be unique")
	}
}
