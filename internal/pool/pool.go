// Package pool holds sync.Pool backed free lists for buffers that the
// parser and serializer churn through.
package pool

import "sync"

const defaultByteSliceCapacity = 64

// ByteSlicePool hands out zero length byte slices.
type ByteSlicePool struct {
	pool sync.Pool
}

var byteSlicePool = &ByteSlicePool{
	pool: sync.Pool{
		New: func() any {
			b := make([]byte, 0, defaultByteSliceCapacity)
			return &b
		},
	},
}

// ByteSlice returns the shared byte slice pool.
func ByteSlice() *ByteSlicePool {
	return byteSlicePool
}

func (p *ByteSlicePool) Get() []byte {
	return (*(p.pool.Get().(*[]byte)))[:0]
}

// GetCapacity returns a slice with room for at least n bytes.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	b := p.Get()
	if cap(b) < n {
		p.Put(b)
		return make([]byte, 0, n)
	}
	return b
}

func (p *ByteSlicePool) Put(b []byte) {
	if cap(b) == 0 {
		return
	}
	b = b[:0]
	p.pool.Put(&b)
}
