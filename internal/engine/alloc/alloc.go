// Package alloc provides the byte allocators a String draws its storage from.
//
// An Allocator hands out empty byte slices with a guaranteed capacity, grows
// them while preserving content, and takes them back when their owner is
// released. Strings only rely on that contract, so the strategy can be
// swapped without touching string code.
package alloc

// Allocator supplies and reclaims byte buffers.
type Allocator interface {
	// Alloc returns a slice with len 0 and cap >= n.
	Alloc(n int) []byte

	// Grow returns a slice holding the content of buf with room for at
	// least n more bytes. buf must not be used after Grow returns a
	// different backing array.
	Grow(buf []byte, n int) []byte

	// Free returns buf to the allocator. buf must not be used afterwards.
	Free(buf []byte)
}

// Default is the allocator used when none is configured.
var Default Allocator = Plain{}

// Plain allocates from the Go heap and grows by doubling. Free is a no-op.
type Plain struct{}

// Alloc returns a new slice with capacity n.
func (Plain) Alloc(n int) []byte {
	if n < 0 {
		n = 0
	}
	return make([]byte, 0, n)
}

// Grow returns buf, or a copy with at least twice the capacity when buf has
// fewer than n free bytes.
func (Plain) Grow(buf []byte, n int) []byte {
	if n <= cap(buf)-len(buf) {
		return buf
	}
	out := make([]byte, len(buf), growCap(len(buf), cap(buf), n))
	copy(out, buf)
	return out
}

// Free does nothing; the garbage collector reclaims the buffer.
func (Plain) Free([]byte) {}

// growCap returns the capacity for a buffer holding size bytes that needs n
// more, doubling the current capacity when that suffices.
func growCap(size, capacity, n int) int {
	need := size + n
	if doubled := capacity * 2; doubled >= need {
		return doubled
	}
	return need
}

// AlignUp rounds n up to a multiple of align. align must be positive.
func AlignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	if align&(align-1) == 0 {
		return (n + align - 1) &^ (align - 1)
	}
	return (n + align - 1) / align * align
}

// AlignDown rounds n down to a multiple of align. align must be positive.
func AlignDown(n, align int) int {
	if align <= 1 {
		return n
	}
	return n - n%align
}
