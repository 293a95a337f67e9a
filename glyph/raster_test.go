package glyph

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRasterizePlacement(t *testing.T) {
	m := Rasterize([]byte("ab"), 0, Constant, MonochromePalette())

	require.Equal(t, CanvasWidth, m.Bounds().Dx())
	require.Equal(t, CanvasHeight, m.Bounds().Dy())

	for y := 0; y < CanvasHeight; y++ {
		for x := 0; x < CanvasWidth; x++ {
			var want uint8
			switch {
			case y < cellHeight && x < cellWidth:
				if font[0xa][y]&(1<<uint(7-x)) != 0 {
					want = 1
				}
			case y < cellHeight && x < 2*cellWidth:
				if font[0xb][y]&(1<<uint(7-(x-cellWidth))) != 0 {
					want = 1
				}
			}
			require.Equal(t, want, m.ColorIndexAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestRasterizeRowWrap(t *testing.T) {
	// Character 80 must land on the first cell of the second row.
	data := bytes.Repeat([]byte("f"), cellX+1)
	m := Rasterize(data, 0, Constant, MonochromePalette())

	require.EqualValues(t, 1, m.ColorIndexAt(3, cellHeight+1))
	require.EqualValues(t, 0, m.ColorIndexAt(cellWidth+3, cellHeight+1))
}

func TestRasterizeSkipsUnknownCharacters(t *testing.T) {
	m := Rasterize([]byte("zG "), 0, Constant, MonochromePalette())

	for y := 0; y < CanvasHeight; y++ {
		for x := 0; x < CanvasWidth; x++ {
			require.EqualValues(t, 0, m.ColorIndexAt(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	data := []byte("0123456789abcdef")
	m1 := Rasterize(data, 7, Gradient, GradientPalette())
	m2 := Rasterize(data, 7, Gradient, GradientPalette())

	require.Equal(t, m1.Pix, m2.Pix)
}

func TestConstantShading(t *testing.T) {
	for frame := 0; frame < 5; frame++ {
		for dy := 0; dy < cellHeight; dy++ {
			for dx := 0; dx < cellWidth; dx++ {
				require.EqualValues(t, 1, Constant(frame, dy, dx))
			}
		}
	}
}

func TestGradientShadingBounds(t *testing.T) {
	for _, frame := range []int{0, 1, 222, 223, 1000, 1 << 20} {
		for dy := 0; dy < cellHeight; dy++ {
			for dx := 0; dx < cellWidth; dx++ {
				v := Gradient(frame, dy, dx)
				require.GreaterOrEqual(t, v, uint8(32), "frame %d offset (%d, %d)", frame, dy, dx)
				require.LessOrEqual(t, v, uint8(254), "frame %d offset (%d, %d)", frame, dy, dx)
			}
		}
	}
}

func TestGradientShadingScrolls(t *testing.T) {
	require.EqualValues(t, 32, Gradient(0, 0, 0))
	require.EqualValues(t, 33, Gradient(1, 0, 0))
	require.EqualValues(t, 32, Gradient(223, 0, 0))
	require.Equal(t, Gradient(5, 2, 3), Gradient(5, 3, 2))
}
