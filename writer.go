package chunkstream

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/BruceZu/chunkstream/internal/compress"
)

// Writer compresses data into the chunkstream container format. Writes are
// staged into a scratch buffer and emitted as one chunk per MaxChunkLen bytes
// (or per Flush). Chunks that do not shrink under compression are stored raw.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	w     io.Writer
	comp  compress.Compressor
	codec uint8

	buf    []byte
	n      int
	hdr    []byte
	closed bool
}

// NewWriter returns a Writer emitting chunks compressed with the given codec.
func NewWriter(w io.Writer, codec uint8) (*Writer, error) {
	comp, err := compress.GetCompressor(codec)
	if err != nil {
		return nil, fmt.Errorf("chunkstream: %w", err)
	}
	return &Writer{
		w:     w,
		comp:  comp,
		codec: codec,
		buf:   defaultPool.Decoded(),
		hdr:   make([]byte, 0, maxHeaderLen),
	}, nil
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, fs.ErrClosed
	}
	total := 0
	for len(p) > 0 {
		n := copy(w.buf[w.n:], p)
		w.n += n
		total += n
		p = p[n:]
		if w.n == len(w.buf) {
			if err := w.Flush(); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// Flush emits the staged bytes as a single chunk. A no-op when nothing is
// staged, so flushing never produces empty chunks.
func (w *Writer) Flush() error {
	if w.closed {
		return fs.ErrClosed
	}
	if w.n == 0 {
		return nil
	}
	data := w.buf[:w.n]
	compressed, err := w.comp.Compress(data)
	if err != nil {
		return fmt.Errorf("chunkstream: compressing %s chunk: %w", CodecName(w.codec), err)
	}
	typ := uint8(chunkCompressed)
	payload := compressed
	if len(compressed) >= len(data) {
		typ = chunkRaw
		payload = data
	}
	w.hdr = appendChunkHeader(w.hdr[:0], w.codec, typ, len(payload), len(data))
	if _, err = w.w.Write(w.hdr); err != nil {
		return err
	}
	if _, err = w.w.Write(payload); err != nil {
		return err
	}
	w.n = 0
	return nil
}

// Close flushes any staged bytes, releases the scratch buffer and closes the
// underlying writer if it is an io.Closer. Idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	err := w.Flush()
	w.closed = true
	if buf := w.buf; buf != nil {
		w.buf = nil
		defaultPool.PutDecoded(buf)
	}
	if c, ok := w.w.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
