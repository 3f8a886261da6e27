package compress

import "github.com/pierrec/lz4/v4"

type Lz4 struct {
	c lz4.Compressor
}

func (l *Lz4) Compress(src []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(src)))
	n, err := l.c.CompressBlock(src, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// incompressible, hand back the input so the caller falls back to raw
		return src, nil
	}
	return dst[:n], nil
}
