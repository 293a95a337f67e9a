package glyph

import "image/color"

// MonochromePalette returns the two color palette used with the Constant
// shading policy; index 0 is black, index 1 is white.
func MonochromePalette() color.Palette {
	return color.Palette{
		color.RGBA{0x00, 0x00, 0x00, 0xff},
		color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
}

// GradientPalette returns the 256 color palette used with the Gradient
// shading policy. Index 0 is the solid black background; indices 1-255
// sweep from warm through cool tones.
func GradientPalette() color.Palette {
	p := make(color.Palette, 256)
	p[0] = color.RGBA{0x00, 0x00, 0x00, 0xff}
	for i := 1; i < 256; i++ {
		var r, g uint8
		if i < 128 {
			r = uint8(i * 2)
			g = uint8(255 - i*2)
		} else {
			r = 255
			g = uint8((i - 128) * 2)
		}
		p[i] = color.RGBA{r, g, uint8(255 - i), 0xff}
	}
	return p
}
