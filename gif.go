package gptgif

import (
	"bufio"
	"image"
	"image/color"
	"image/gif"
	"io"

	"github.com/gptenv/gptgif/glyph"
)

// frameDelay is the display duration hint written for every frame, in
// centiseconds.
const frameDelay = 30

// container collects rasterized frames and writes them out as an animated
// GIF with a single global palette and background index 0.
type container struct {
	palette color.Palette
	anim    gif.GIF
}

func newContainer(p color.Palette) *container {
	return &container{
		palette: p,
		anim: gif.GIF{
			Config: image.Config{
				ColorModel: p,
				Width:      glyph.CanvasWidth,
				Height:     glyph.CanvasHeight,
			},
		},
	}
}

func (c *container) addFrame(m *image.Paletted) {
	c.anim.Image = append(c.anim.Image, m)
	c.anim.Delay = append(c.anim.Delay, frameDelay)
}

func (c *container) writeTo(w io.Writer) error {
	if len(c.anim.Image) == 0 {
		return writeEmpty(w, c.anim.Config)
	}
	return gif.EncodeAll(w, &c.anim)
}

// writeEmpty emits a bare GIF89a container: header, logical screen
// descriptor, global color table, trailer. image/gif refuses to encode an
// animation with no frames but a frameless container is still well formed.
func writeEmpty(w io.Writer, cfg image.Config) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("GIF89a")
	bw.WriteByte(byte(cfg.Width))
	bw.WriteByte(byte(cfg.Width >> 8))
	bw.WriteByte(byte(cfg.Height))
	bw.WriteByte(byte(cfg.Height >> 8))

	p := cfg.ColorModel.(color.Palette)
	bw.WriteByte(0xf0 | byte(paddedSize(len(p)))) // global color table, 8 bits per primary
	bw.WriteByte(0x00)                            // background color index
	bw.WriteByte(0x00)                            // default pixel aspect ratio

	n := 2 << uint(paddedSize(len(p)))
	for i := 0; i < n; i++ {
		if i < len(p) {
			r, g, b, _ := p[i].RGBA()
			bw.WriteByte(byte(r >> 8))
			bw.WriteByte(byte(g >> 8))
			bw.WriteByte(byte(b >> 8))
		} else {
			bw.Write([]byte{0x00, 0x00, 0x00})
		}
	}

	bw.WriteByte(0x3b) // trailer

	return bw.Flush()
}

// paddedSize returns the logical screen descriptor size field for a color
// table of n entries: the smallest s such that 2^(s+1) >= n.
func paddedSize(n int) int {
	for s := 0; s < 7; s++ {
		if 2<<uint(s) >= n {
			return s
		}
	}
	return 7
}
