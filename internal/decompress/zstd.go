package decompress

import (
	"errors"

	"github.com/klauspost/compress/zstd"
)

type Zstd struct {
	dec *zstd.Decoder
}

func (z *Zstd) Decompress(dst, src []byte) (int, error) {
	if z.dec == nil {
		z.dec, _ = zstd.NewReader(nil)
	}
	out, err := z.dec.DecodeAll(src, dst[:0])
	if err != nil {
		return 0, err
	}
	if len(out) > len(dst) {
		return 0, errors.New("zstd block larger than expected")
	}
	return copy(dst, out), nil
}
