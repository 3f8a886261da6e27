package decompress

import "errors"

// The codec ids a chunk header can carry
const (
	ZlibCodec = uint8(iota + 1)
	LzmaCodec
	LzoCodec
	XzCodec
	Lz4Codec
	ZstdCodec
	BrotliCodec
	SnappyCodec
)

var ErrUnknownCodec = errors.New("unknown codec id. possible corrupted stream")

// Decompressor inflates one compressed block into dst. dst is sliced to the
// exact decoded length from the chunk header; the returned count must match.
type Decompressor interface {
	Decompress(dst, src []byte) (int, error)
}

func GetDecompressor(codec uint8) (Decompressor, error) {
	switch codec {
	case ZlibCodec:
		return NewZlib(), nil
	case LzmaCodec:
		return Lzma{}, nil
	case LzoCodec:
		return Lzo{}, nil
	case XzCodec:
		return Xz{}, nil
	case Lz4Codec:
		return Lz4{}, nil
	case ZstdCodec:
		return &Zstd{}, nil
	case BrotliCodec:
		return Brotli{}, nil
	case SnappyCodec:
		return Snappy{}, nil
	default:
		return nil, ErrUnknownCodec
	}
}
