package decompress

import (
	"bytes"
	"io"

	"github.com/ulikunitz/xz"
)

type Xz struct{}

func (x Xz) Decompress(dst, src []byte) (int, error) {
	rdr, err := xz.NewReader(bytes.NewReader(src))
	if err != nil {
		return 0, err
	}
	return io.ReadFull(rdr, dst)
}
