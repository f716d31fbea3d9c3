package core

import "image/color"

// Size describes the dimensions of a raster.
type Size struct {
	W int
	H int
}

// Layer is a named raster that can be painted by the preview window.
type Layer interface {
	Name() string
	Size() Size
	Cells() []uint8
	Palette() []color.RGBA
}
