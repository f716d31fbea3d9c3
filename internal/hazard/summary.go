package hazard

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PeriodStats summarizes the intensities of one period.
type PeriodStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	P95    float64 `json:"p95"`
}

// Summary holds per-period intensity statistics for a grid.
type Summary struct {
	Count   int            `json:"count"`
	Periods [3]PeriodStats `json:"periods"`
}

// Summarize computes intensity statistics over records.
func Summarize(records []Record) Summary {
	sum := Summary{Count: len(records)}
	if len(records) == 0 {
		return sum
	}
	values := make([]float64, len(records))
	for p := range sum.Periods {
		for i, rec := range records {
			values[i] = rec.Periods[p].Intensity
		}
		sort.Float64s(values)
		ps := PeriodStats{
			Mean:   stat.Mean(values, nil),
			Min:    floats.Min(values),
			Max:    floats.Max(values),
			Median: stat.Quantile(0.5, stat.Empirical, values, nil),
			P95:    stat.Quantile(0.95, stat.Empirical, values, nil),
		}
		if len(values) > 1 {
			ps.StdDev = stat.StdDev(values, nil)
		}
		sum.Periods[p] = ps
	}
	return sum
}

// MaxIntensity returns the largest intensity across all periods.
func (s Summary) MaxIntensity() float64 {
	var hi float64
	for _, p := range s.Periods {
		if p.Max > hi {
			hi = p.Max
		}
	}
	return hi
}
