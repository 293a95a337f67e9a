package gptgif

import (
	"encoding/hex"
	"os"
)

const initialHexCapacity = 1024

// serialize reads every input file in argument order and appends each byte
// as two lowercase hexadecimal digits, high nibble first. Files that cannot
// be opened are skipped; the run carries on with whatever remains.
func (e *Encoder) serialize(paths []string) []byte {
	buf := make([]byte, 0, initialHexCapacity)
	var chunk [32 * 1024]byte
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			e.logger.Printf("skipping %q: %v\n", path, err)
			continue
		}
		for {
			n, err := f.Read(chunk[:])
			if n > 0 {
				buf = appendHex(buf, chunk[:n])
			}
			if err != nil {
				break
			}
		}
		f.Close()
	}
	return buf
}

func appendHex(dst, src []byte) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, hex.EncodedLen(len(src)))...)
	hex.Encode(dst[n:], src)
	return dst
}
