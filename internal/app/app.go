//go:build ebiten

package app

import (
	"fmt"
	"image"
	"image/color"

	"hazgrid/internal/core"
	"hazgrid/internal/render"
	"hazgrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a set of period layers to the ebiten.Game interface.
type Game struct {
	layers  []core.Layer
	active  int
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	reveal  *Reveal

	scale    int
	hudWidth int
}

// New constructs a Game previewing the given layers.
func New(layers []core.Layer, hud *ui.HUD, scale, rate, hudWidth int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := layers[0].Size()
	return &Game{
		layers:   layers,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      hud,
		pacer:    core.NewFixedStep(rate),
		reveal:   NewReveal(size.H),
		scale:    scale,
		hudWidth: max(hudWidth, 0),
	}
}

// Update handles input and advances the row reveal.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if i < len(g.layers) && inpututil.IsKeyJustPressed(key) {
			g.active = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reveal.Restart()
		g.pacer.Reset()
	}
	g.reveal.Advance(g.pacer.Due())

	status := "complete"
	if !g.reveal.Done() {
		status = fmt.Sprintf("row %d/%d", g.reveal.Shown(), g.layers[g.active].Size().H)
	}
	g.hud.Update(g.layers[g.active].Name(), status)
	return nil
}

// Draw renders the active layer and masks rows that are not yet revealed.
func (g *Game) Draw(screen *ebiten.Image) {
	layer := g.layers[g.active]
	g.painter.Blit(screen, layer.Cells(), layer.Palette(), g.scale)

	size := layer.Size()
	top := g.reveal.Shown() * g.scale
	bottom := size.H * g.scale
	if top < bottom {
		mask := image.Rect(0, top, size.W*g.scale, bottom)
		screen.SubImage(mask).(*ebiten.Image).Fill(color.Black)
	}
	g.hud.Draw(screen, size.W*g.scale, bottom)
}

// Layout reports the raster size plus the parameter panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.layers[0].Size()
	return size.W*g.scale + g.hudWidth, size.H * g.scale
}
