package compress

import (
	"bytes"
	"sync"

	"github.com/klauspost/compress/zlib"
)

type Zlib struct {
	pool sync.Pool
}

func NewZlib() *Zlib {
	return &Zlib{}
}

func (z *Zlib) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	wtr := z.pool.Get()
	if wtr == nil {
		wtr = zlib.NewWriter(&buf)
	} else {
		wtr.(*zlib.Writer).Reset(&buf)
	}
	defer z.pool.Put(wtr)
	if _, err := wtr.(*zlib.Writer).Write(src); err != nil {
		return nil, err
	}
	if err := wtr.(*zlib.Writer).Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
