package glyph

import (
	"image"
	"image/color"
	"strings"
)

// Shading maps a set glyph bit to a palette index. frame is the frame
// number and dy, dx are the bit's offset within its own cell. Index 0 is
// reserved for the background and must never be returned.
type Shading func(frame, dy, dx int) uint8

// Constant paints every foreground pixel with palette index 1. It pairs
// with the two color Monochrome palette.
func Constant(frame, dy, dx int) uint8 {
	return 1
}

const (
	gradientBase  = 32
	gradientRange = 223
)

// Gradient cycles through the gradient palette as a function of the frame
// number and the bit's offset within its cell, which scrolls the colors
// across successive frames. Values stay within [32, 254], avoiding the
// background index.
func Gradient(frame, dy, dx int) uint8 {
	return uint8(gradientBase + (frame+dy+dx)%gradientRange)
}

// Rasterize draws up to FrameChars hexadecimal characters from data onto a
// fresh frame, filling cells left to right, top to bottom. Characters
// outside the hex alphabet are skipped. Every foreground pixel is painted
// with the index chosen by shade.
func Rasterize(data []byte, frame int, shade Shading, p color.Palette) *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, CanvasWidth, CanvasHeight), p)
	for i, c := range data {
		drawChar(m, i%cellX*cellWidth, i/cellX*cellHeight, c, frame, shade)
	}
	return m
}

func drawChar(m *image.Paletted, x, y int, c byte, frame int, shade Shading) {
	i := strings.IndexByte(alphabet, c)
	if i < 0 {
		return
	}
	for dy := 0; dy < cellHeight; dy++ {
		for dx := 0; dx < cellWidth; dx++ {
			if font[i][dy]&(1<<uint(7-dx)) != 0 {
				m.SetColorIndex(x+dx, y+dy, shade(frame, dy, dx))
			}
		}
	}
}
