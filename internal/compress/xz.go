package compress

import (
	"bytes"

	"github.com/ulikunitz/xz"
)

type Xz struct{}

func (x Xz) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	wtr, err := xz.NewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err = wtr.Write(src); err != nil {
		return nil, err
	}
	if err = wtr.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
