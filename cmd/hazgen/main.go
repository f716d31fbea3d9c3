package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"hazgrid/internal/app"
	"hazgrid/internal/hazard"
	"hazgrid/internal/output"
)

func main() {
	_ = godotenv.Load(".env")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	defaultOut := os.Getenv("HAZGRID_OUT_DIR")
	if defaultOut == "" {
		defaultOut = "data/examples"
	}

	preset := flag.String("preset", "all", "hazard preset to generate (flood, wind or all)")
	outDir := flag.String("out", defaultOut, "output directory")
	paramsFile := flag.String("params", "", "optional .env-style parameter file")
	backend := flag.String("backend", "", "noise backend override")
	manifest := flag.Bool("manifest", true, "write a JSON manifest next to each CSV")
	describe := flag.Bool("describe", false, "print the resolved parameters and exit")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	if *backend != "" {
		overrides = append(overrides, "backend="+*backend)
	}

	names := []string{*preset}
	if *preset == "all" {
		names = hazard.PresetNames()
	}

	for _, name := range names {
		cfg, err := app.ResolveConfig(name, *paramsFile, overrides)
		if err != nil {
			logger.Error("invalid configuration", "preset", name, "err", err)
			os.Exit(1)
		}
		if *describe {
			printParameters(cfg)
			continue
		}
		if err := run(logger, cfg, *outDir, *manifest); err != nil {
			logger.Error("generation failed", "preset", name, "err", err)
			os.Exit(1)
		}
	}
}

func run(logger *slog.Logger, cfg hazard.Config, outDir string, withManifest bool) error {
	rows, cols := hazard.Dims(cfg.Bounds, cfg.Spacing)
	logger.Info("generating", "preset", cfg.Name, "hazard", cfg.HazardType, "rows", rows, "cols", cols, "backend", cfg.Backend)

	start := time.Now()
	gen, err := hazard.NewGenerator(cfg)
	if err != nil {
		return err
	}
	records, err := gen.Walk()
	if err != nil {
		return err
	}

	path, err := output.WriteCSVFile(outDir, cfg.Output, records)
	if err != nil {
		return err
	}
	summary := hazard.Summarize(records)
	for i, p := range summary.Periods {
		logger.Info("period",
			"preset", cfg.Name,
			"period", i+1,
			"mean", fmt.Sprintf("%.3f", p.Mean),
			"min", p.Min,
			"max", p.Max,
			"unit", cfg.Unit)
	}
	logger.Info("wrote csv", "path", path, "records", len(records), "elapsed", time.Since(start).Round(time.Millisecond))

	if !withManifest {
		return nil
	}
	m := output.NewManifest(cfg, records, time.Now())
	mpath, err := output.WriteManifest(outDir, output.ManifestName(cfg.Output), m)
	if err != nil {
		return err
	}
	logger.Info("wrote manifest", "path", mpath, "run_id", m.RunID)
	return nil
}

func printParameters(cfg hazard.Config) {
	fmt.Printf("# %s\n", cfg.Name)
	for _, g := range cfg.Parameters().Groups {
		fmt.Printf("[%s]\n", g.Name)
		for _, p := range g.Params {
			fmt.Printf("  %-16s %s\n", p.Key, p.Value)
		}
	}
}
