//go:build !no_gpl

package decompress

import (
	"bytes"

	"github.com/rasky/go-lzo"
)

type Lzo struct{}

func (l Lzo) Decompress(dst, src []byte) (int, error) {
	out, err := lzo.Decompress1X(bytes.NewReader(src), len(src), len(dst))
	if err != nil {
		return 0, err
	}
	return copy(dst, out), nil
}
