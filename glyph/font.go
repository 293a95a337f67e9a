package glyph

const alphabet = "0123456789abcdef"

// DOS-style hex font with a 1px spacing margin inside each 8x8 cell. Bit 7
// of each row is the leftmost pixel.
var font = [16][8]byte{
	{0x00, 0x3C, 0x66, 0x6E, 0x76, 0x66, 0x3C, 0x00}, // 0
	{0x00, 0x18, 0x38, 0x18, 0x18, 0x18, 0x3C, 0x00}, // 1
	{0x00, 0x3C, 0x66, 0x0C, 0x18, 0x30, 0x7E, 0x00}, // 2
	{0x00, 0x3C, 0x66, 0x1C, 0x06, 0x66, 0x3C, 0x00}, // 3
	{0x00, 0x0C, 0x1C, 0x2C, 0x4C, 0x7E, 0x0C, 0x00}, // 4
	{0x00, 0x7E, 0x60, 0x7C, 0x06, 0x66, 0x3C, 0x00}, // 5
	{0x00, 0x3C, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0x00}, // 6
	{0x00, 0x7E, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x00}, // 7
	{0x00, 0x3C, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0x00}, // 8
	{0x00, 0x3C, 0x66, 0x66, 0x3E, 0x06, 0x3C, 0x00}, // 9
	{0x00, 0x3C, 0x06, 0x3E, 0x66, 0x66, 0x3E, 0x00}, // a
	{0x00, 0x60, 0x60, 0x7C, 0x66, 0x66, 0x7C, 0x00}, // b
	{0x00, 0x3C, 0x60, 0x60, 0x60, 0x60, 0x3C, 0x00}, // c
	{0x00, 0x06, 0x06, 0x3E, 0x66, 0x66, 0x3E, 0x00}, // d
	{0x00, 0x3C, 0x66, 0x7E, 0x60, 0x60, 0x3C, 0x00}, // e
	{0x00, 0x1C, 0x30, 0x30, 0x7C, 0x30, 0x30, 0x00}, // f
}
