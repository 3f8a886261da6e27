package decompress

import (
	"bytes"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"
)

type Zlib struct {
	pool sync.Pool
}

func NewZlib() *Zlib {
	return &Zlib{}
}

func (z *Zlib) Decompress(dst, src []byte) (int, error) {
	rdr := z.pool.Get()
	defer z.pool.Put(rdr)
	var err error
	if rdr == nil {
		rdr, err = zlib.NewReader(bytes.NewReader(src))
	} else {
		err = rdr.(zlib.Resetter).Reset(bytes.NewReader(src), nil)
	}
	if err != nil {
		return 0, err
	}
	return io.ReadFull(rdr.(io.ReadCloser), dst)
}
