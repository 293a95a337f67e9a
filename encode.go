package gptgif

import (
	"io"
	"os"

	"github.com/gptenv/gptgif/glyph"
)

// partitioner walks the hex character buffer one frame-sized chunk at a
// time. It is forward-only and consumed exactly once; the position of each
// chunk in the sequence is its frame number.
type partitioner struct {
	buf    []byte
	offset int
}

func (p *partitioner) next() ([]byte, bool) {
	if p.offset >= len(p.buf) {
		return nil, false
	}
	end := p.offset + glyph.FrameChars
	if end > len(p.buf) {
		end = len(p.buf)
	}
	chunk := p.buf[p.offset:end]
	p.offset = end
	return chunk, true
}

// EncodeFiles reads the input files in order and writes the animated GIF to
// w. Inputs that cannot be opened are skipped; with no readable input bytes
// at all the container is still written, with zero frames.
func (e *Encoder) EncodeFiles(w io.Writer, inputs ...string) error {
	buf := e.serialize(inputs)

	c := newContainer(e.variant.palette())
	shade := e.variant.shading()

	p := partitioner{buf: buf}
	for frame := 0; ; frame++ {
		chunk, ok := p.next()
		if !ok {
			break
		}
		c.addFrame(glyph.Rasterize(chunk, frame, shade, c.palette))
	}

	e.logger.Printf("encoded %d bytes into %d frame(s)\n", len(buf)/2, len(c.anim.Image))

	return c.writeTo(w)
}

// EncodeFile is like EncodeFiles but writes to the file at output, which is
// overwritten if it already exists.
func (e *Encoder) EncodeFile(output string, inputs ...string) error {
	f, err := os.Create(output)
	if err != nil {
		return err
	}

	if err := e.EncodeFiles(f, inputs...); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
