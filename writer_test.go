package chunkstream

import (
	"bytes"
	"io/fs"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterRawFallback(t *testing.T) {
	data := make([]byte, 1000)
	rand.New(rand.NewSource(42)).Read(data)

	var buf bytes.Buffer
	w, err := NewWriter(&buf, SnappyCodec)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	info, err := InspectChunk(&buf)
	require.NoError(t, err)
	assert.True(t, info.Raw, "incompressible data should be stored raw")
	assert.Equal(t, 1000, info.StoredLen)
	assert.Equal(t, 1000, info.DecodedLen)
}

func TestWriterChunkBoundaries(t *testing.T) {
	data := bytes.Repeat([]byte{'a'}, 150000)

	var buf bytes.Buffer
	w, err := NewWriter(&buf, ZstdCodec)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	var lens []int
	for {
		info, err := InspectChunk(&buf)
		if err != nil {
			break
		}
		assert.False(t, info.Raw)
		lens = append(lens, info.DecodedLen)
	}
	assert.Equal(t, []int{MaxChunkLen, MaxChunkLen, 150000 - 2*MaxChunkLen}, lens)
}

func TestWriterFlush(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, Lz4Codec)
	require.NoError(t, err)

	require.NoError(t, w.Flush())
	assert.Equal(t, 0, buf.Len(), "flushing an empty writer emits nothing")

	_, err = w.Write([]byte("abc"))
	require.NoError(t, err)
	require.NoError(t, w.Flush())
	first := buf.Len()
	assert.NotEqual(t, 0, first)

	_, err = w.Write([]byte("def"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := NewReader(&buf)
	defer r.Close()
	got := make([]byte, 6)
	n, err := r.Read(got)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "flush boundary becomes a chunk boundary")
	assert.Equal(t, []byte("abc"), got[:n])
}

func TestWriterAfterClose(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, ZstdCodec)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("x"))
	assert.ErrorIs(t, err, fs.ErrClosed)
	assert.ErrorIs(t, w.Flush(), fs.ErrClosed)
}

func TestWriterLzoUnsupported(t *testing.T) {
	_, err := NewWriter(&bytes.Buffer{}, LzoCodec)
	assert.Error(t, err)
}
