package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Quantize maps values in [lo, hi] onto 0..255 in row-major order. Values
// outside the range are clamped; extra values beyond the grid are ignored.
func (g *ByteGrid) Quantize(values []float64, lo, hi float64) {
	span := hi - lo
	for i := range g.data {
		if i >= len(values) {
			g.data[i] = 0
			continue
		}
		if span <= 0 {
			g.data[i] = 0
			continue
		}
		n := (values[i] - lo) / span
		if n < 0 {
			n = 0
		}
		if n > 1 {
			n = 1
		}
		g.data[i] = uint8(n*255 + 0.5)
	}
}
