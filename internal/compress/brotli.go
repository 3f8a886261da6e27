package compress

import (
	"bytes"

	"github.com/andybalholm/brotli"
)

type Brotli struct{}

func (b Brotli) Compress(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	wtr := brotli.NewWriter(&buf)
	if _, err := wtr.Write(src); err != nil {
		return nil, err
	}
	if err := wtr.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
