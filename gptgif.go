/*
Package gptgif encodes arbitrary binary files as animated GIF containers
whose frames render the input's bytes as rows of hexadecimal glyphs.

Each input byte becomes two lowercase hex digits which are stamped onto a
640 by 480 canvas as 8 by 8 pixel bitmap glyphs, 80 columns by 60 rows per
frame. The resulting file is simultaneously an ordinary animated GIF and a
lossless, raster-decodable representation of the input; decoding is left to
external tooling.
*/
package gptgif

import "log"

type Encoder struct {
	variant Variant
	logger  *log.Logger
}

func New(variant Variant, logger *log.Logger) *Encoder {
	return &Encoder{
		variant: variant,
		logger:  logger,
	}
}
