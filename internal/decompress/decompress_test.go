package decompress

import (
	"bytes"
	"testing"

	"github.com/pierrec/lz4/v4"
)

func TestGetDecompressor(t *testing.T) {
	for codec := ZlibCodec; codec <= SnappyCodec; codec++ {
		if _, err := GetDecompressor(codec); err != nil {
			t.Errorf("codec %d: %v", codec, err)
		}
	}
	if _, err := GetDecompressor(0); err == nil {
		t.Error("codec 0 should be rejected")
	}
	if _, err := GetDecompressor(0xee); err == nil {
		t.Error("codec 0xee should be rejected")
	}
}

func TestLz4SizeMismatch(t *testing.T) {
	plain := bytes.Repeat([]byte("abcd"), 64)
	dst := make([]byte, lz4.CompressBlockBound(len(plain)))
	var c lz4.Compressor
	n, err := c.CompressBlock(plain, dst)
	if err != nil || n == 0 {
		t.Fatalf("compressing test block: n=%d err=%v", n, err)
	}

	out := make([]byte, len(plain))
	got, err := Lz4{}.Decompress(out, dst[:n])
	if err != nil {
		t.Fatal(err)
	}
	if got != len(plain) || !bytes.Equal(out, plain) {
		t.Fatalf("decoded %d bytes, want %d", got, len(plain))
	}

	// a destination shorter than the real decoded size must error, not truncate
	if _, err = (Lz4{}).Decompress(make([]byte, len(plain)-1), dst[:n]); err == nil {
		t.Error("expected an error for a short destination")
	}
}
