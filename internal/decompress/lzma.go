package decompress

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

type Lzma struct{}

func (l Lzma) Decompress(dst, src []byte) (int, error) {
	rdr, err := lzma.NewReader(bytes.NewReader(src))
	if err != nil {
		return 0, err
	}
	return io.ReadFull(rdr, dst)
}
