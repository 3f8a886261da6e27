package decompress

import (
	"errors"

	"github.com/golang/snappy"
)

type Snappy struct{}

func (s Snappy) Decompress(dst, src []byte) (int, error) {
	out, err := snappy.Decode(dst, src)
	if err != nil {
		return 0, err
	}
	if len(out) > len(dst) {
		return 0, errors.New("snappy block larger than expected")
	}
	return copy(dst, out), nil
}
