//go:build !ebiten

package ui

import (
	"image/color"

	"hazgrid/internal/core"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.ParameterSnapshot, []color.RGBA, float64, float64, string, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(string, string) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
