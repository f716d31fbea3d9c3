package hazard

import (
	"strconv"

	"hazgrid/internal/core"
)

// Parameters exposes the config as grouped key/value pairs.
func (c Config) Parameters() core.ParameterSnapshot {
	seed := "none"
	if c.Seed != nil {
		seed = strconv.FormatInt(*c.Seed, 10)
	}
	t := c.Trend
	groups := []core.ParameterGroup{
		{
			Name: "Hazard",
			Params: []core.Parameter{
				stringParam("name", "Preset", c.Name),
				stringParam("hazard_type", "Hazard type", c.HazardType),
				stringParam("unit", "Unit", c.Unit),
				floatParam("base_intensity", "Base intensity", c.BaseIntensity),
				stringParam("output", "Output file", c.Output),
			},
		},
		{
			Name: "Region",
			Params: []core.Parameter{
				stringParam("region", "Region prefix", c.Region),
				floatParam("lat_min", "Latitude min", c.Bounds.LatMin),
				floatParam("lat_max", "Latitude max", c.Bounds.LatMax),
				floatParam("lon_min", "Longitude min", c.Bounds.LonMin),
				floatParam("lon_max", "Longitude max", c.Bounds.LonMax),
				floatParam("spacing", "Grid spacing", c.Spacing),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				stringParam("backend", "Backend", c.Backend),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: seed},
			},
		},
		{
			Name: "Trend",
			Params: []core.Parameter{
				floatParam("jitter_min", "Jitter min", t.Jitter.Lo),
				floatParam("jitter_max", "Jitter max", t.Jitter.Hi),
				floatParam("growth2_min", "Period 2 growth min", t.Growth2.Lo),
				floatParam("growth2_max", "Period 2 growth max", t.Growth2.Hi),
				floatParam("growth3_min", "Period 3 growth min", t.Growth3.Lo),
				floatParam("growth3_max", "Period 3 growth max", t.Growth3.Hi),
				floatParam("spread_min", "Variance spread min", t.Spread.Lo),
				floatParam("spread_max", "Variance spread max", t.Spread.Hi),
				floatParam("spread3_min", "Period 3 spread min", t.Spread3.Lo),
				floatParam("spread3_max", "Period 3 spread max", t.Spread3.Hi),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
