package u8string

import (
	"bytes"
	"slices"

	"github.com/dshills/u8text/internal/engine/codec"
)

// Stream is a single-pass reader over a NUL-terminated source that is either
// UTF-8 bytes or UTF-32 code points. A zero value ends the input in both
// forms; input past it is never read. A Stream does not own its source.
//
// Copies of a Stream share its position. The zero Stream is empty.
type Stream struct {
	src source
}

// source is implemented by byteSource and runeSource only.
type source interface {
	peek() rune
	next() rune
	empty() bool
	count() int
}

// NewByteStream returns a stream decoding p up to its first NUL byte.
// Malformed sequences read as U+FFFD.
func NewByteStream(p []byte) Stream {
	if i := bytes.IndexByte(p, 0); i >= 0 {
		p = p[:i]
	}
	return Stream{src: &byteSource{p: p, n: codec.LengthUnsafe(p)}}
}

// NewStringStream is NewByteStream for a Go string.
func NewStringStream(s string) Stream {
	return NewByteStream([]byte(s))
}

// NewRuneStream returns a stream over rs up to its first zero.
func NewRuneStream(rs []rune) Stream {
	if i := slices.Index(rs, 0); i >= 0 {
		rs = rs[:i]
	}
	return Stream{src: &runeSource{p: rs}}
}

// Peek returns the current code point without consuming it, or 0 at the end.
func (st Stream) Peek() rune {
	if st.src == nil {
		return 0
	}
	return st.src.peek()
}

// Next consumes and returns the current code point, or returns 0 at the end.
func (st Stream) Next() rune {
	if st.src == nil {
		return 0
	}
	return st.src.next()
}

// Empty reports whether the input is exhausted.
func (st Stream) Empty() bool {
	return st.src == nil || st.src.empty()
}

// Len returns the number of code points the stream held when created.
func (st Stream) Len() int {
	if st.src == nil {
		return 0
	}
	return st.src.count()
}

type byteSource struct {
	p   []byte
	pos int
	n   int
}

func (b *byteSource) peek() rune {
	if b.pos >= len(b.p) {
		return 0
	}
	r, _ := codec.DecodeAt(b.p, b.pos)
	return r
}

func (b *byteSource) next() rune {
	if b.pos >= len(b.p) {
		return 0
	}
	r, size := codec.DecodeAt(b.p, b.pos)
	b.pos += size
	return r
}

func (b *byteSource) empty() bool { return b.pos >= len(b.p) }
func (b *byteSource) count() int  { return b.n }

type runeSource struct {
	p   []rune
	pos int
}

func (s *runeSource) peek() rune {
	if s.pos >= len(s.p) {
		return 0
	}
	return sanitizeRune(s.p[s.pos])
}

func (s *runeSource) next() rune {
	if s.pos >= len(s.p) {
		return 0
	}
	r := sanitizeRune(s.p[s.pos])
	s.pos++
	return r
}

func (s *runeSource) empty() bool { return s.pos >= len(s.p) }
func (s *runeSource) count() int  { return len(s.p) }

func sanitizeRune(r rune) rune {
	if !codec.ValidRune(r) {
		return codec.RuneError
	}
	return r
}
