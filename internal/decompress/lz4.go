package decompress

import (
	"errors"

	"github.com/pierrec/lz4/v4"
)

type Lz4 struct{}

func (l Lz4) Decompress(dst, src []byte) (int, error) {
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return n, err
	}
	if n != len(dst) {
		return n, errors.New("lz4 block decompressed size mismatch")
	}
	return n, nil
}
