package app

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"

	"hazgrid/internal/hazard"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map converts the list into overrides; later entries win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = parts[1]
	}
	return out
}

// ResolveConfig starts from the named preset, applies an optional
// .env-style parameter file and then the command-line overrides, and
// validates the result.
func ResolveConfig(preset, paramsFile string, overrides KVList) (hazard.Config, error) {
	cfg, ok := hazard.Preset(preset)
	if !ok {
		return hazard.Config{}, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(hazard.PresetNames(), ", "))
	}
	if paramsFile != "" {
		values, err := godotenv.Read(paramsFile)
		if err != nil {
			return hazard.Config{}, fmt.Errorf("read params %s: %w", paramsFile, err)
		}
		cfg = hazard.ApplyMap(cfg, lowerKeys(values))
	}
	cfg = hazard.ApplyMap(cfg, overrides.Map())
	if err := cfg.Validate(); err != nil {
		return hazard.Config{}, fmt.Errorf("preset %s: %w", preset, err)
	}
	return cfg, nil
}

// .env files conventionally use upper-case keys.
func lowerKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(k)] = v
	}
	return out
}
