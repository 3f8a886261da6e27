package bufpool

import "testing"

func TestPoolSizes(t *testing.T) {
	p := New(128, 256)
	s := p.Staging()
	if len(s) != 128 {
		t.Fatalf("staging buffer is %d bytes, want 128", len(s))
	}
	d := p.Decoded()
	if len(d) != 256 {
		t.Fatalf("decoded buffer is %d bytes, want 256", len(d))
	}
	p.PutStaging(s)
	p.PutDecoded(d)

	if got := p.Staging(); len(got) != 128 {
		t.Fatalf("recycled staging buffer is %d bytes, want 128", len(got))
	}
	if got := p.Decoded(); len(got) != 256 {
		t.Fatalf("recycled decoded buffer is %d bytes, want 256", len(got))
	}
}
