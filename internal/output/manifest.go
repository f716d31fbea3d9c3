package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"hazgrid/internal/hazard"
)

// Manifest describes one generation run and sits next to its CSV.
type Manifest struct {
	RunID      string            `json:"run_id"`
	CreatedAt  time.Time         `json:"created_at"`
	Preset     string            `json:"preset"`
	Output     string            `json:"output"`
	Rows       int               `json:"rows"`
	Cols       int               `json:"cols"`
	Records    int               `json:"records"`
	Seed       *int64            `json:"seed"`
	Backend    string            `json:"backend"`
	Parameters map[string]string `json:"parameters"`
	Summary    hazard.Summary    `json:"summary"`
}

// NewManifest stamps a fresh run ID for cfg and its generated records.
func NewManifest(cfg hazard.Config, records []hazard.Record, now time.Time) Manifest {
	rows, cols := hazard.Dims(cfg.Bounds, cfg.Spacing)
	params := make(map[string]string)
	for _, g := range cfg.Parameters().Groups {
		for _, p := range g.Params {
			params[p.Key] = p.Value
		}
	}
	return Manifest{
		RunID:      uuid.New().String(),
		CreatedAt:  now.UTC(),
		Preset:     cfg.Name,
		Output:     cfg.Output,
		Rows:       rows,
		Cols:       cols,
		Records:    len(records),
		Seed:       cfg.Seed,
		Backend:    cfg.Backend,
		Parameters: params,
		Summary:    hazard.Summarize(records),
	}
}

// ManifestName derives the manifest file name from a CSV name.
func ManifestName(csvName string) string {
	return strings.TrimSuffix(csvName, filepath.Ext(csvName)) + ".manifest.json"
}

// WriteManifest writes m as indented JSON to dir/name.
func WriteManifest(dir, name string, m Manifest) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	err = json.Unmarshal(data, &m)
	return m, err
}
