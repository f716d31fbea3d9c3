package ui

import (
	"fmt"
	"strconv"

	"hazgrid/internal/core"
)

// Lines flattens a snapshot into panel rows. Group names become headers
// and long values are truncated to fit maxChars.
func Lines(snap core.ParameterSnapshot, maxChars int) []string {
	var out []string
	for i, g := range snap.Groups {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, fmt.Sprintf("[%s]", g.Name))
		for _, p := range g.Params {
			out = append(out, clip(fmt.Sprintf("%s: %s", p.Label, formatValue(p)), maxChars))
		}
	}
	return out
}

func formatValue(p core.Parameter) string {
	if p.Type != core.ParamTypeFloat {
		return p.Value
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return p.Value
	}
	return strconv.FormatFloat(v, 'g', 5, 64)
}

func clip(s string, maxChars int) string {
	if maxChars <= 0 || len(s) <= maxChars {
		return s
	}
	if maxChars <= 3 {
		return s[:maxChars]
	}
	return s[:maxChars-3] + "..."
}
