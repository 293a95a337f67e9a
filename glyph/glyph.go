/*
Package glyph rasterizes hexadecimal characters onto fixed-size paletted
frames.

The canvas is defined as 640 by 480 pixels exactly which is split into 8 by
8 pixel cells, one cell per hexadecimal character, filled row by row from
the top-left corner. A frame therefore holds up to 4800 characters. Palette
index 0 is always the background; the palette index written for each set
glyph bit is decided by a Shading policy.
*/
package glyph

const (
	cellWidth  = 8
	cellHeight = cellWidth
	cellX      = CanvasWidth / cellWidth
	cellY      = CanvasHeight / cellHeight

	// CanvasWidth and CanvasHeight are the fixed frame dimensions in
	// pixels. Both are multiples of the cell dimensions.
	CanvasWidth  = 640
	CanvasHeight = 480

	// FrameChars is the number of characters a single frame can hold.
	FrameChars = cellX * cellY
)
