package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"hazgrid/internal/app"
)

func main() {
	_ = godotenv.Load(".env")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	preset := flag.String("preset", "flood", "hazard preset to sweep")
	seeds := flag.Int("seeds", 8, "number of seeds to run")
	firstSeed := flag.Int64("first-seed", 1, "first seed of the sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	spacing := flag.Float64("spacing", 0.5, "grid spacing override in degrees (0 keeps the preset's)")
	paramsFile := flag.String("params", "", "optional .env-style parameter file")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	if *spacing > 0 {
		overrides = append(overrides, "spacing="+strconv.FormatFloat(*spacing, 'f', -1, 64))
	}
	cfg, err := app.ResolveConfig(*preset, *paramsFile, overrides)
	if err != nil {
		logger.Error("invalid configuration", "preset", *preset, "err", err)
		os.Exit(1)
	}

	list := make([]int64, *seeds)
	for i := range list {
		list[i] = *firstSeed + int64(i)
	}

	logger.Info("sweeping", "preset", cfg.Name, "seeds", len(list), "workers", *workers, "spacing", cfg.Spacing)
	start := time.Now()
	results := app.SweepSeeds(cfg, list, *workers)

	fmt.Print(app.FormatTable(results, cfg.Unit))

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	worst, best, ok := app.Extremes(results)
	if ok {
		fmt.Printf("\nBest mean:  seed %d (%.3f %s)\n", best.Seed, best.Mean(), cfg.Unit)
		fmt.Printf("Worst mean: seed %d (%.3f %s)\n", worst.Seed, worst.Mean(), cfg.Unit)
	}
	logger.Info("done", "elapsed", time.Since(start).Round(time.Millisecond), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}
