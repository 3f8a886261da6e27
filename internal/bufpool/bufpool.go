package bufpool

import "sync"

// Pool hands out fixed-capacity scratch buffers for chunk staging and decoded
// output. Buffers are exclusively owned between Get and Put; the pool itself
// is safe for use by multiple sessions.
type Pool struct {
	staging sync.Pool
	decoded sync.Pool
}

func New(stagingLen, decodedLen int) *Pool {
	return &Pool{
		staging: sync.Pool{
			New: func() any {
				b := make([]byte, stagingLen)
				return &b
			},
		},
		decoded: sync.Pool{
			New: func() any {
				b := make([]byte, decodedLen)
				return &b
			},
		},
	}
}

func (p *Pool) Staging() []byte {
	return *p.staging.Get().(*[]byte)
}

func (p *Pool) PutStaging(b []byte) {
	p.staging.Put(&b)
}

func (p *Pool) Decoded() []byte {
	return *p.decoded.Get().(*[]byte)
}

func (p *Pool) PutDecoded(b []byte) {
	p.decoded.Put(&b)
}
