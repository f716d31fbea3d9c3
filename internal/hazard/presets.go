package hazard

import "sort"

var presets = map[string]Config{}

// RegisterPreset adds a named configuration.
func RegisterPreset(name string, cfg Config) {
	if name == "" {
		return
	}
	cfg.Name = name
	presets[name] = cfg
}

// Preset returns a copy of the named configuration.
func Preset(name string) (Config, bool) {
	cfg, ok := presets[name]
	if ok && cfg.Seed != nil {
		cfg.Seed = SeedOf(*cfg.Seed)
	}
	return cfg, ok
}

// PresetNames lists the registered presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterPreset("flood", DefaultConfig())

	wind := DefaultConfig()
	wind.HazardType = "wind"
	wind.Unit = "m/s"
	wind.BaseIntensity = 25.0
	wind.Seed = SeedOf(123)
	wind.Output = "europe_wind_hazard.csv"
	RegisterPreset("wind", wind)
}
