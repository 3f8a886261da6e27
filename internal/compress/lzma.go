package compress

import (
	"bytes"

	"github.com/ulikunitz/xz/lzma"
)

type Lzma struct{}

func (l Lzma) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	wtr, err := lzma.NewWriter(&buf)
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
