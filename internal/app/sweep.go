package app

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"

	"hazgrid/internal/hazard"
)

// SeedResult is the summary of one generated grid.
type SeedResult struct {
	Seed    int64
	Summary hazard.Summary
	Err     error
}

// Mean returns the mean intensity across the three periods.
func (r SeedResult) Mean() float64 {
	var total float64
	for _, p := range r.Summary.Periods {
		total += p.Mean
	}
	return total / float64(len(r.Summary.Periods))
}

// SweepSeeds generates cfg once per seed on a pool of workers. Each run owns
// its generator so results match a sequential run seed by seed. Results are
// returned in seed order.
func SweepSeeds(cfg hazard.Config, seeds []int64, workers int) []SeedResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan int64)
	results := make(chan SeedResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(cfg, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	all := make([]SeedResult, 0, len(seeds))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all
}

func runSeed(base hazard.Config, seed int64) SeedResult {
	cfg := base
	cfg.Seed = hazard.SeedOf(seed)
	gen, err := hazard.NewGenerator(cfg)
	if err != nil {
		return SeedResult{Seed: seed, Err: err}
	}
	records, err := gen.Walk()
	if err != nil {
		return SeedResult{Seed: seed, Err: err}
	}
	return SeedResult{Seed: seed, Summary: hazard.Summarize(records)}
}

// Extremes returns the successful results with the lowest and highest mean.
func Extremes(results []SeedResult) (worst, best SeedResult, ok bool) {
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if !ok {
			worst, best, ok = r, r, true
			continue
		}
		if r.Mean() < worst.Mean() {
			worst = r
		}
		if r.Mean() > best.Mean() {
			best = r
		}
	}
	return worst, best, ok
}

// FormatTable renders results as a column-aligned text table.
func FormatTable(results []SeedResult, unit string) string {
	header := []string{"seed", "cells", "p1 mean", "p2 mean", "p3 mean", "p3 p95", "max (" + unit + ")"}
	rows := [][]string{header}
	for _, r := range results {
		if r.Err != nil {
			rows = append(rows, []string{fmt.Sprint(r.Seed), "error: " + r.Err.Error()})
			continue
		}
		p := r.Summary.Periods
		rows = append(rows, []string{
			fmt.Sprint(r.Seed),
			fmt.Sprint(r.Summary.Count),
			fmt.Sprintf("%.3f", p[0].Mean),
			fmt.Sprintf("%.3f", p[1].Mean),
			fmt.Sprintf("%.3f", p[2].Mean),
			fmt.Sprintf("%.3f", p[2].P95),
			fmt.Sprintf("%.3f", r.Summary.MaxIntensity()),
		})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && i < len(row)-1 {
				widths[i] = max(widths[i], runewidth.StringWidth(cell))
			}
		}
	}

	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	return b.String()
}
