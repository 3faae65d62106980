package alloc

// DefaultPageSize is the page size Paged uses when PageSize is not positive.
const DefaultPageSize = 4096

// Paged allocates capacities rounded up to whole pages, which keeps the
// number of distinct buffer sizes small for long-lived strings.
type Paged struct {
	PageSize int
}

func (p Paged) pageSize() int {
	if p.PageSize <= 0 {
		return DefaultPageSize
	}
	return p.PageSize
}

// Alloc returns a slice whose capacity is n rounded up to the page size.
// Alloc(0) returns an empty slice without reserving a page.
func (p Paged) Alloc(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	return make([]byte, 0, AlignUp(n, p.pageSize()))
}

// Grow reallocates to a page-aligned capacity when buf lacks room for n bytes.
func (p Paged) Grow(buf []byte, n int) []byte {
	if n <= cap(buf)-len(buf) {
		return buf
	}
	out := make([]byte, len(buf), AlignUp(growCap(len(buf), cap(buf), n), p.pageSize()))
	copy(out, buf)
	return out
}

// Free does nothing; the garbage collector reclaims the buffer.
func (Paged) Free([]byte) {}
