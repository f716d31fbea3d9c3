package render

import "image/color"

// heatStops run from calm (deep blue) through yellow to severe (dark red).
var heatStops = []color.NRGBA{
	{R: 20, G: 40, B: 110, A: 255},
	{R: 40, G: 130, B: 190, A: 255},
	{R: 120, G: 200, B: 120, A: 255},
	{R: 250, G: 220, B: 80, A: 255},
	{R: 235, G: 110, B: 40, A: 255},
	{R: 150, G: 20, B: 30, A: 255},
}

// HeatPalette returns n colors interpolated across the heat stops so that a
// quantized intensity can index it directly.
func HeatPalette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	palette := make([]color.RGBA, n)
	if n == 1 {
		palette[0] = toRGBA(heatStops[0])
		return palette
	}
	segments := float64(len(heatStops) - 1)
	for i := range palette {
		pos := float64(i) / float64(n-1) * segments
		lo := int(pos)
		if lo >= len(heatStops)-1 {
			lo = len(heatStops) - 2
		}
		palette[i] = toRGBA(blendColors(heatStops[lo], heatStops[lo+1], pos-float64(lo)))
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
