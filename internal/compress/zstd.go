package compress

import "github.com/klauspost/compress/zstd"

type Zstd struct {
	enc *zstd.Encoder
}

func (z *Zstd) Compress(src []byte) ([]byte, error) {
	if z.enc == nil {
		z.enc, _ = zstd.NewWriter(nil)
	}
	return z.enc.EncodeAll(src, nil), nil
}
