package decompress

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

type Brotli struct{}

func (b Brotli) Decompress(dst, src []byte) (int, error) {
	return io.ReadFull(brotli.NewReader(bytes.NewReader(src)), dst)
}
