package core

import "testing"

func TestQuantizeClampsAndScales(t *testing.T) {
	g := NewByteGrid(4, 1)
	g.Quantize([]float64{-1, 0, 5, 20}, 0, 10)
	want := []uint8{0, 0, 128, 255}
	for i, v := range g.Cells() {
		if v != want[i] {
			t.Fatalf("cell %d = %d, expected %d", i, v, want[i])
		}
	}
}

func TestQuantizeShortInput(t *testing.T) {
	g := NewByteGrid(2, 2)
	g.Cells()[3] = 9
	g.Quantize([]float64{10}, 0, 10)
	if g.Cells()[0] != 255 || g.Cells()[3] != 0 {
		t.Fatalf("unexpected cells %v", g.Cells())
	}
}

func TestNewByteGridMinimumSize(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}
