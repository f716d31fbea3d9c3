package hazard

import "hazgrid/internal/core"

// Raster quantizes one period's intensities into a rows x cols grid with
// north at the top. Records must be in Walk order; hi sets the intensity that
// maps to 255.
func Raster(records []Record, rows, cols, period int, hi float64) *core.ByteGrid {
	g := core.NewByteGrid(cols, rows)
	if period < 0 || period >= 3 {
		return g
	}
	values := make([]float64, g.W*g.H)
	for i, rec := range records {
		if i >= rows*cols {
			break
		}
		r, c := i/cols, i%cols
		values[g.Index(c, rows-1-r)] = rec.Periods[period].Intensity
	}
	g.Quantize(values, 0, hi)
	return g
}
