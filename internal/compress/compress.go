package compress

import (
	"errors"

	"github.com/BruceZu/chunkstream/internal/decompress"
)

// Compressor deflates one block. The returned slice may be larger than src
// for incompressible input; the caller decides whether to keep it.
type Compressor interface {
	Compress(src []byte) ([]byte, error)
}

func GetCompressor(codec uint8) (Compressor, error) {
	switch codec {
	case decompress.ZlibCodec:
		return NewZlib(), nil
	case decompress.LzmaCodec:
		return Lzma{}, nil
	case decompress.LzoCodec:
		return nil, errors.New("lzo compression is not supported, only decompression")
	case decompress.XzCodec:
		return Xz{}, nil
	case decompress.Lz4Codec:
		return &Lz4{}, nil
	case decompress.ZstdCodec:
		return &Zstd{}, nil
	case decompress.BrotliCodec:
		return Brotli{}, nil
	case decompress.SnappyCodec:
		return Snappy{}, nil
	default:
		return nil, decompress.ErrUnknownCodec
	}
}
