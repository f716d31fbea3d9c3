package app

import (
	"fmt"
	"image/color"

	"hazgrid/internal/core"
	"hazgrid/internal/hazard"
	"hazgrid/internal/render"
)

// PeriodLayer is one period's intensity raster.
type PeriodLayer struct {
	name    string
	grid    *core.ByteGrid
	palette []color.RGBA
}

// Name returns the layer label.
func (l *PeriodLayer) Name() string { return l.name }

// Size reports the raster dimensions.
func (l *PeriodLayer) Size() core.Size { return core.Size{W: l.grid.W, H: l.grid.H} }

// Cells exposes the quantized intensities.
func (l *PeriodLayer) Cells() []uint8 { return l.grid.Cells() }

// Palette returns the heat palette.
func (l *PeriodLayer) Palette() []color.RGBA { return l.palette }

// BuildLayers rasterizes the three periods on a shared intensity scale so
// colours are comparable between them.
func BuildLayers(cfg hazard.Config, records []hazard.Record) []core.Layer {
	rows, cols := hazard.Dims(cfg.Bounds, cfg.Spacing)
	hi := hazard.Summarize(records).MaxIntensity()
	palette := render.HeatPalette(256)
	layers := make([]core.Layer, 0, 3)
	for p := 0; p < 3; p++ {
		layers = append(layers, &PeriodLayer{
			name:    fmt.Sprintf("%s period %d", cfg.HazardType, p+1),
			grid:    hazard.Raster(records, rows, cols, p, hi),
			palette: palette,
		})
	}
	return layers
}
