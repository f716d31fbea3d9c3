package app

import "flag"

// Config represents the command-line parameters for the preview window.
type Config struct {
	Preset     string
	Scale      int
	Rate       int
	HUDWidth   int
	ParamsFile string
	Overrides  KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "flood", Scale: 2, Rate: 120, HUDWidth: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "hazard preset to preview")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Rate, "rate", c.Rate, "rows revealed per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.StringVar(&c.ParamsFile, "params", c.ParamsFile, "optional .env-style parameter file")
	fs.Var(&c.Overrides, "set", "parameter override in key=value form (repeatable)")
}
