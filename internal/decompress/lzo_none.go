//go:build no_gpl

package decompress

import "errors"

type Lzo struct{}

func (l Lzo) Decompress(_, _ []byte) (int, error) {
	return 0, errors.New("lzo is disabled in this build with no_gpl")
}
