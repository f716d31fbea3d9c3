//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"hazgrid/internal/app"
	"hazgrid/internal/hazard"
	"hazgrid/internal/render"
	"hazgrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	hcfg, err := app.ResolveConfig(cfg.Preset, cfg.ParamsFile, cfg.Overrides)
	if err != nil {
		logger.Error("invalid configuration", "preset", cfg.Preset, "err", err)
		os.Exit(1)
	}
	gen, err := hazard.NewGenerator(hcfg)
	if err != nil {
		logger.Error("generator", "err", err)
		os.Exit(1)
	}
	records, err := gen.Walk()
	if err != nil {
		logger.Error("walk", "err", err)
		os.Exit(1)
	}

	layers := app.BuildLayers(hcfg, records)
	hud := ui.NewHUD(hcfg.Parameters(), render.HeatPalette(256), 0, hazard.Summarize(records).MaxIntensity(), hcfg.Unit, cfg.HUDWidth)
	game := app.New(layers, hud, cfg.Scale, cfg.Rate, cfg.HUDWidth)
	size := layers[0].Size()

	ebiten.SetWindowTitle("hazgrid - " + hcfg.Name)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer", "err", err)
		os.Exit(1)
	}
}
