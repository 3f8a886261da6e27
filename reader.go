package chunkstream

import (
	"io"
	"io/fs"

	"github.com/BruceZu/chunkstream/internal/bufpool"
)

var defaultPool = bufpool.New(MaxChunkLen, MaxChunkLen)

// Reader decompresses a chunked stream produced by Writer (or any conforming
// encoder). It buffers one decoded chunk at a time and serves reads from it,
// decoding the next chunk only when the buffer is exhausted.
//
// A Reader is not safe for concurrent use. After a decode or source error the
// stream is effectively terminal; only Close remains useful.
type Reader struct {
	src  io.Reader
	dec  ChunkDecoder
	pool *bufpool.Pool

	staging []byte
	decoded []byte
	bufPos  int
	bufLen  int

	fullReads bool
	closed    bool
}

// ReaderOption configures a Reader at construction.
type ReaderOption func(*Reader)

// WithFullReads makes Read keep decoding chunks until it has filled the
// destination or hit end of stream, instead of returning after the first copy.
func WithFullReads(b bool) ReaderOption {
	return func(r *Reader) { r.fullReads = b }
}

// WithDecoder replaces the default frame decoder.
func WithDecoder(dec ChunkDecoder) ReaderOption {
	return func(r *Reader) { r.dec = dec }
}

// WithPool replaces the package-level scratch buffer pool.
func WithPool(pool *bufpool.Pool) ReaderOption {
	return func(r *Reader) { r.pool = pool }
}

// NewReader returns a Reader decompressing from src. Both scratch buffers are
// taken from the pool and held until Close.
func NewReader(src io.Reader, opts ...ReaderOption) *Reader {
	r := &Reader{
		src:  src,
		pool: defaultPool,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.dec == nil {
		r.dec = NewFrameDecoder()
	}
	r.staging = r.pool.Staging()
	r.decoded = r.pool.Decoded()
	return r
}

// SetFullReads toggles full-read mode. Safe to call between reads at any time.
func (r *Reader) SetFullReads(b bool) {
	r.fullReads = b
}

// Underlying returns the compressed source. Never nil, though the source may
// itself be closed once the Reader is.
func (r *Reader) Underlying() io.Reader {
	return r.src
}

// Available reports the decoded bytes that can be read without touching the
// underlying source, or -1 if the Reader is closed. Never triggers I/O.
func (r *Reader) Available() int {
	if r.closed {
		return -1
	}
	if left := r.bufLen - r.bufPos; left > 0 {
		return left
	}
	return 0
}

// ready ensures at least one unread decoded byte is buffered. Returns false
// at end of stream or after close. Zero-length chunks are decoded through
// without surfacing to the caller.
func (r *Reader) ready() (bool, error) {
	if r.bufPos < r.bufLen {
		return true, nil
	}
	if r.closed {
		return false, nil
	}
	for {
		n, err := r.dec.DecodeChunk(r.src, r.staging, r.decoded)
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if n > 0 {
			r.bufPos, r.bufLen = 0, n
			return true, nil
		}
	}
}

// ReadByte returns the next decoded byte, or io.EOF.
func (r *Reader) ReadByte() (byte, error) {
	ok, err := r.ready()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, io.EOF
	}
	b := r.decoded[r.bufPos]
	r.bufPos++
	return b, nil
}

// Read fills p with decoded bytes. In the default mode it returns as soon as
// any bytes have been copied, even if more could be had by decoding another
// chunk; in full-read mode it returns short only at end of stream. Returns
// (0, io.EOF) once the stream is exhausted or the Reader closed.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	ok, err := r.ready()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, io.EOF
	}
	n := copy(p, r.decoded[r.bufPos:r.bufLen])
	r.bufPos += n
	if n == len(p) || !r.fullReads {
		return n, nil
	}
	total := n
	for total < len(p) {
		if ok, err = r.ready(); err != nil {
			return total, err
		} else if !ok {
			break
		}
		n = copy(p[total:], r.decoded[r.bufPos:r.bufLen])
		r.bufPos += n
		total += n
	}
	return total, nil
}

// Skip discards up to n decoded bytes and reports how many were discarded.
// At most one new chunk is decoded per call, so the result may be well short
// of n; callers wanting more skip again. Returns fs.ErrClosed after Close and
// io.EOF when the stream has no bytes left to skip.
func (r *Reader) Skip(n int64) (int64, error) {
	if r.closed {
		return 0, fs.ErrClosed
	}
	if n <= 0 {
		return 0, nil
	}
	if r.bufPos >= r.bufLen {
		ok, err := r.ready()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, io.EOF
		}
	}
	left := r.bufLen - r.bufPos
	if int64(left) > n {
		left = int(n)
	}
	r.bufPos += left
	return int64(left), nil
}

// Close releases both scratch buffers back to the pool and closes the
// underlying source if it is an io.Closer. Idempotent; buffers are released
// exactly once.
func (r *Reader) Close() error {
	r.bufPos, r.bufLen = 0, 0
	if buf := r.staging; buf != nil {
		r.staging = nil
		r.pool.PutStaging(buf)
	}
	if buf := r.decoded; buf != nil {
		r.decoded = nil
		r.pool.PutDecoded(buf)
	}
	if r.closed {
		return nil
	}
	r.closed = true
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
