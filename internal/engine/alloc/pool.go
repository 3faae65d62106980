package alloc

import (
	"math/bits"
	"sync"
)

const (
	minClassShift = 6  // 64 bytes
	maxClassShift = 16 // 64 KiB
	numClasses    = maxClassShift - minClassShift + 1
)

// Pool recycles buffers through per-size-class sync.Pools. Capacities are
// powers of two between 64 bytes and 64 KiB; larger requests fall through
// to the heap and are not pooled. Pool is safe for concurrent use.
type Pool struct {
	classes [numClasses]sync.Pool
}

// DefaultPool is a shared buffer pool.
var DefaultPool = NewPool()

// NewPool creates an empty pool.
func NewPool() *Pool {
	p := &Pool{}
	for i := range p.classes {
		size := 1 << (minClassShift + i)
		p.classes[i].New = func() any {
			b := make([]byte, 0, size)
			return &b
		}
	}
	return p
}

// classFor returns the size class index for a request of n bytes, or -1
// when n is too large to pool.
func classFor(n int) int {
	if n <= 1<<minClassShift {
		return 0
	}
	shift := bits.Len(uint(n - 1))
	if shift > maxClassShift {
		return -1
	}
	return shift - minClassShift
}

// Alloc retrieves a buffer from the pool with len 0 and cap >= n.
func (p *Pool) Alloc(n int) []byte {
	c := classFor(n)
	if c < 0 {
		return make([]byte, 0, n)
	}
	b := p.classes[c].Get().(*[]byte)
	return (*b)[:0]
}

// Grow moves buf into a larger class when it lacks room for n bytes. The
// old buffer is returned to the pool.
func (p *Pool) Grow(buf []byte, n int) []byte {
	if n <= cap(buf)-len(buf) {
		return buf
	}
	out := p.Alloc(growCap(len(buf), cap(buf), n))
	out = append(out, buf...)
	p.Free(buf)
	return out
}

// Free returns buf to its size class. Buffers whose capacity is not exactly
// a class size did not come from the pool and are dropped.
func (p *Pool) Free(buf []byte) {
	c := cap(buf)
	if c < 1<<minClassShift || c > 1<<maxClassShift || c&(c-1) != 0 {
		return
	}
	buf = buf[:0]
	p.classes[classFor(c)].Put(&buf)
}
