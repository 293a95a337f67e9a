package gptgif

import (
	"image/color"

	"github.com/gptenv/gptgif/glyph"
)

// Variant selects the palette and shading policy used for every frame of a
// run.
type Variant int

const (
	// Gradient shades each glyph pixel as a function of its frame number
	// and position within its cell, over a 256 color palette. This is the
	// reference variant.
	Gradient Variant = iota
	// Monochrome draws white glyphs on black using a two color palette.
	Monochrome
)

func (v Variant) palette() color.Palette {
	if v == Monochrome {
		return glyph.MonochromePalette()
	}
	return glyph.GradientPalette()
}

func (v Variant) shading() glyph.Shading {
	if v == Monochrome {
		return glyph.Constant
	}
	return glyph.Gradient
}
