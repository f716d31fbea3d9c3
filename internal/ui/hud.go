//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"hazgrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the raster view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
	title      string
	status     string
	palette    []color.RGBA
	lo, hi     float64
	unit       string
}

// NewHUD constructs a HUD for the given snapshot and panel width. The legend
// spans [lo, hi] in unit.
func NewHUD(snap core.ParameterSnapshot, palette []color.RGBA, lo, hi float64, unit string, width int) *HUD {
	if width <= 0 {
		return nil
	}
	maxChars := (width - 2*panelPadding) / glyphWidth
	return &HUD{
		width:   width,
		lines:   Lines(snap, maxChars),
		palette: palette,
		lo:      lo,
		hi:      hi,
		unit:    unit,
	}
}

// Update sets the header and status rows.
func (h *HUD) Update(title, status string) {
	if h == nil {
		return
	}
	h.title = title
	h.status = status
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight
	text.Draw(h.panel, h.status, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	y += lineHeight
	h.drawLegend(y)
	y += legendHeight + 2*lineHeight

	for _, line := range h.lines {
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}
	text.Draw(h.panel, "1/2/3 period  R replay  Q quit", face, panelPadding, height-panelPadding, color.RGBA{R: 120, G: 120, B: 130, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLegend(top int) {
	if len(h.palette) == 0 {
		return
	}
	barWidth := h.width - 2*panelPadding
	for x := 0; x < barWidth; x++ {
		idx := x * (len(h.palette) - 1) / max(barWidth-1, 1)
		c := h.palette[idx]
		for y := 0; y < legendHeight; y++ {
			h.panel.Set(panelPadding+x, top+y, c)
		}
	}
	face := basicfont.Face7x13
	labelY := top + legendHeight + lineHeight
	text.Draw(h.panel, fmt.Sprintf("%.2f", h.lo), face, panelPadding, labelY, color.White)
	hi := fmt.Sprintf("%.2f %s", h.hi, h.unit)
	bounds := text.BoundString(face, hi)
	text.Draw(h.panel, hi, face, h.width-panelPadding-bounds.Dx(), labelY, color.White)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 6
	legendHeight   = 12
	glyphWidth     = 7
)
