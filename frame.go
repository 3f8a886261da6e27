// Package chunkstream implements a streaming reader and writer for a chunked
// block-compression container. Data is carried in self-delimited chunks, each
// compressed independently with one of several codecs; the reader presents
// the concatenated decoded bytes as an ordinary byte stream.
package chunkstream

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/BruceZu/chunkstream/internal/decompress"
)

// The codecs a chunk can be compressed with. Decoding dispatches on the codec
// id in each chunk header, so a single stream may mix codecs.
const (
	ZlibCodec   = decompress.ZlibCodec
	LzmaCodec   = decompress.LzmaCodec
	LzoCodec    = decompress.LzoCodec
	XzCodec     = decompress.XzCodec
	Lz4Codec    = decompress.Lz4Codec
	ZstdCodec   = decompress.ZstdCodec
	BrotliCodec = decompress.BrotliCodec
	SnappyCodec = decompress.SnappyCodec
)

// MaxChunkLen is the maximum decoded length of a single chunk.
const MaxChunkLen = 0xffff

const (
	magic0 = 'c'
	magic1 = 'Z'

	chunkCompressed = 0
	chunkRaw        = 1

	maxHeaderLen = 8
)

var codecNames = map[uint8]string{
	ZlibCodec:   "zlib",
	LzmaCodec:   "lzma",
	LzoCodec:    "lzo",
	XzCodec:     "xz",
	Lz4Codec:    "lz4",
	ZstdCodec:   "zstd",
	BrotliCodec: "brotli",
	SnappyCodec: "snappy",
}

// CodecName returns the canonical name for a codec id, or "unknown".
func CodecName(codec uint8) string {
	if name, ok := codecNames[codec]; ok {
		return name
	}
	return "unknown"
}

// ParseCodec is the inverse of CodecName.
func ParseCodec(name string) (uint8, error) {
	for codec, n := range codecNames {
		if n == name {
			return codec, nil
		}
	}
	return 0, fmt.Errorf("chunkstream: no codec named %q", name)
}

// ChunkDecoder reads one self-delimited chunk from src and decodes it.
// staging receives the compressed payload, dst the decoded bytes; both are
// caller-owned scratch buffers of at least MaxChunkLen bytes. Returns the
// decoded length, which may legitimately be zero, or io.EOF at a clean end
// of stream.
type ChunkDecoder interface {
	DecodeChunk(src io.Reader, staging, dst []byte) (int, error)
}

// FrameDecoder is the ChunkDecoder for the chunkstream container format.
// Codec instances are created on first use and reused across chunks.
type FrameDecoder struct {
	codecs map[uint8]decompress.Decompressor
}

func NewFrameDecoder() *FrameDecoder {
	return &FrameDecoder{
		codecs: make(map[uint8]decompress.Decompressor),
	}
}

func (f *FrameDecoder) decompressor(codec uint8) (decompress.Decompressor, error) {
	if d, ok := f.codecs[codec]; ok {
		return d, nil
	}
	d, err := decompress.GetDecompressor(codec)
	if err != nil {
		return nil, fmt.Errorf("chunkstream: %w", err)
	}
	f.codecs[codec] = d
	return d, nil
}

func (f *FrameDecoder) DecodeChunk(src io.Reader, staging, dst []byte) (int, error) {
	var hdr [maxHeaderLen]byte
	if _, err := io.ReadFull(src, hdr[:2]); err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("chunkstream: reading chunk magic: %w", err)
	}
	if hdr[0] != magic0 || hdr[1] != magic1 {
		return 0, ErrCorrupt
	}
	if _, err := io.ReadFull(src, hdr[2:6]); err != nil {
		return 0, fmt.Errorf("chunkstream: reading chunk header: %w", noEOF(err))
	}
	codec := hdr[2]
	storedLen := int(binary.BigEndian.Uint16(hdr[4:6]))
	switch hdr[3] {
	case chunkRaw:
		if storedLen > len(dst) {
			return 0, ErrChunkTooLarge
		}
		if _, err := io.ReadFull(src, dst[:storedLen]); err != nil {
			return 0, fmt.Errorf("chunkstream: reading raw chunk: %w", noEOF(err))
		}
		return storedLen, nil
	case chunkCompressed:
		if _, err := io.ReadFull(src, hdr[6:8]); err != nil {
			return 0, fmt.Errorf("chunkstream: reading chunk header: %w", noEOF(err))
		}
		decodedLen := int(binary.BigEndian.Uint16(hdr[6:8]))
		if storedLen > len(staging) || decodedLen > len(dst) {
			return 0, ErrChunkTooLarge
		}
		if _, err := io.ReadFull(src, staging[:storedLen]); err != nil {
			return 0, fmt.Errorf("chunkstream: reading chunk payload: %w", noEOF(err))
		}
		d, err := f.decompressor(codec)
		if err != nil {
			return 0, err
		}
		n, err := d.Decompress(dst[:decodedLen], staging[:storedLen])
		if err != nil {
			return 0, fmt.Errorf("chunkstream: decoding %s chunk: %w", CodecName(codec), err)
		}
		if n != decodedLen {
			return 0, ErrCorrupt
		}
		return decodedLen, nil
	default:
		return 0, ErrCorrupt
	}
}

// ChunkInfo describes one chunk's header.
type ChunkInfo struct {
	Codec      uint8
	Raw        bool
	StoredLen  int
	DecodedLen int
}

// InspectChunk reads one chunk header from src and discards its payload,
// returning the header fields. io.EOF marks a clean end of stream.
func InspectChunk(src io.Reader) (ChunkInfo, error) {
	var info ChunkInfo
	var hdr [maxHeaderLen]byte
	if _, err := io.ReadFull(src, hdr[:2]); err != nil {
		if err == io.EOF {
			return info, io.EOF
		}
		return info, fmt.Errorf("chunkstream: reading chunk magic: %w", err)
	}
	if hdr[0] != magic0 || hdr[1] != magic1 {
		return info, ErrCorrupt
	}
	if _, err := io.ReadFull(src, hdr[2:6]); err != nil {
		return info, fmt.Errorf("chunkstream: reading chunk header: %w", noEOF(err))
	}
	info.Codec = hdr[2]
	info.StoredLen = int(binary.BigEndian.Uint16(hdr[4:6]))
	switch hdr[3] {
	case chunkRaw:
		info.Raw = true
		info.DecodedLen = info.StoredLen
	case chunkCompressed:
		if _, err := io.ReadFull(src, hdr[6:8]); err != nil {
			return info, fmt.Errorf("chunkstream: reading chunk header: %w", noEOF(err))
		}
		info.DecodedLen = int(binary.BigEndian.Uint16(hdr[6:8]))
	default:
		return info, ErrCorrupt
	}
	if _, err := io.CopyN(io.Discard, src, int64(info.StoredLen)); err != nil {
		return info, fmt.Errorf("chunkstream: skipping chunk payload: %w", noEOF(err))
	}
	return info, nil
}

// A chunk header cut short mid-way is corruption, not a clean end of stream.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func appendChunkHeader(dst []byte, codec, typ uint8, storedLen, decodedLen int) []byte {
	dst = append(dst, magic0, magic1, codec, typ)
	dst = binary.BigEndian.AppendUint16(dst, uint16(storedLen))
	if typ == chunkCompressed {
		dst = binary.BigEndian.AppendUint16(dst, uint16(decodedLen))
	}
	return dst
}
