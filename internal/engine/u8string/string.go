package u8string

import (
	"bytes"

	"github.com/dshills/u8text/internal/engine/alloc"
	"github.com/dshills/u8text/internal/engine/codec"
	"github.com/dshills/u8text/internal/engine/transcode"
)

// String is an owned, growable UTF-8 buffer.
//
// The buffer is well-formed UTF-8 after every operation, given that bytes
// passed to FromBytes, FromString, AppendBytes and AppendString are
// well-formed. All other constructors re-encode their input and substitute
// U+FFFD for anything malformed.
//
// A String is used through a pointer and must not be copied after first use.
// It is not safe for concurrent mutation.
type String struct {
	buf     []byte
	gen     uint64
	alloc   alloc.Allocator
	wide    transcode.WideCodec
	decoder *codec.Decoder
	reserve int
}

func newString(opts []Option) *String {
	s := &String{alloc: alloc.Default}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// fill replaces the content of a freshly constructed string with a copy of p.
func (s *String) fill(p []byte) *String {
	if len(p) == 0 && s.reserve == 0 {
		return s
	}
	s.buf = s.allocator().Alloc(max(len(p), s.reserve))
	s.buf = append(s.buf, p...)
	return s
}

// derive creates a string with the same options as s holding a copy of p.
func (s *String) derive(p []byte) *String {
	d := &String{alloc: s.alloc, wide: s.wide, decoder: s.decoder}
	return d.fill(p)
}

func (s *String) allocator() alloc.Allocator {
	if s.alloc == nil {
		s.alloc = alloc.Default
	}
	return s.alloc
}

// New creates an empty string.
func New(opts ...Option) *String {
	return newString(opts).fill(nil)
}

// FromBytes creates a string holding a copy of b. The caller guarantees b
// is well-formed UTF-8; debug checks verify it.
func FromBytes(b []byte, opts ...Option) *String {
	checkWellFormed("FromBytes", b)
	return newString(opts).fill(b)
}

// FromString creates a string holding the bytes of lit. The caller
// guarantees lit is well-formed UTF-8; debug checks verify it.
func FromString(lit string, opts ...Option) *String {
	checkWellFormed("FromString", lit)
	s := newString(opts)
	s.buf = s.allocator().Alloc(max(len(lit), s.reserve))
	s.buf = append(s.buf, lit...)
	return s
}

// FromRunes creates a string from code points. Non-scalar values become
// U+FFFD.
func FromRunes(rs []rune, opts ...Option) *String {
	return newString(opts).fill(transcode.RunesToUTF8(rs))
}

// Repeat creates a string of n copies of r.
func Repeat(n int, r rune, opts ...Option) *String {
	return newString(opts).fill(codec.Repeat(n, r))
}

// Sanitize creates a string from arbitrary bytes, replacing each malformed
// sequence with U+FFFD.
func Sanitize[T codec.Text](p T, opts ...Option) *String {
	return newString(opts).fill(codec.Sanitize(p))
}

// Decode admits raw bytes through the string's Decoder (see WithDecoder).
// The default decoder substitutes U+FFFD; a strict decoder rejects
// malformed input with a *codec.MalformedError.
func Decode(b []byte, opts ...Option) (*String, error) {
	s := newString(opts)
	d := s.decoder
	if d == nil {
		d = codec.NewDecoder()
	}
	clean, err := d.Sanitize(b)
	if err != nil {
		return nil, err
	}
	return s.fill(clean), nil
}

// Len returns the length in bytes.
func (s *String) Len() int {
	return len(s.buf)
}

// RuneCount returns the number of code points. It scans the buffer.
func (s *String) RuneCount() int {
	return codec.Length(s.buf)
}

// IsEmpty reports whether the string has no bytes.
func (s *String) IsEmpty() bool {
	return len(s.buf) == 0
}

// Clone returns an independent copy of s.
func (s *String) Clone() *String {
	return s.derive(s.buf)
}

// Append appends the content of other. other may be s itself.
func (s *String) Append(other *String) {
	n := len(other.buf)
	if n == 0 {
		return
	}
	s.grow(n)
	src := other.buf
	if other == s {
		src = s.buf[:n]
	}
	s.buf = append(s.buf, src...)
	s.mutated()
}

// AppendString appends lit, which the caller guarantees is well-formed.
func (s *String) AppendString(lit string) {
	checkWellFormed("AppendString", lit)
	s.grow(len(lit))
	s.buf = append(s.buf, lit...)
	s.mutated()
}

// AppendBytes appends b, which the caller guarantees is well-formed.
func (s *String) AppendBytes(b []byte) {
	checkWellFormed("AppendBytes", b)
	s.grow(len(b))
	s.buf = append(s.buf, b...)
	s.mutated()
}

// AppendRune appends the encoding of r. Non-scalar values append U+FFFD.
func (s *String) AppendRune(r rune) {
	s.grow(codec.UTFMax)
	s.buf = codec.AppendRune(s.buf, r)
	s.mutated()
}

// Clear empties the string and keeps its buffer for reuse.
func (s *String) Clear() {
	s.buf = s.buf[:0]
	s.mutated()
}

// Release returns the buffer to the allocator and leaves s empty. s remains
// usable.
func (s *String) Release() {
	if s.buf != nil {
		s.allocator().Free(s.buf)
	}
	s.buf = nil
	s.mutated()
}

func (s *String) grow(n int) {
	if s.buf == nil {
		s.buf = s.allocator().Alloc(max(n, s.reserve))
		return
	}
	s.buf = s.allocator().Grow(s.buf, n)
}

// mutated invalidates outstanding cursors.
func (s *String) mutated() {
	s.gen++
}

// String returns the content as a Go string.
func (s *String) String() string {
	return string(s.buf)
}

// Bytes returns a copy of the content.
func (s *String) Bytes() []byte {
	return bytes.Clone(s.buf)
}

// Data returns the underlying buffer without copying. The slice must not be
// modified and is only valid until the next mutation.
func (s *String) Data() []byte {
	return s.buf
}

// CString returns a NUL-terminated copy of the content.
func (s *String) CString() []byte {
	out := make([]byte, len(s.buf)+1)
	copy(out, s.buf)
	return out
}

// Concat returns a new string holding a followed by b. The result uses the
// options of a.
func Concat(a, b *String) *String {
	out := a.derive(nil)
	out.buf = out.allocator().Alloc(len(a.buf) + len(b.buf))
	out.buf = append(out.buf, a.buf...)
	out.buf = append(out.buf, b.buf...)
	return out
}

// Compare compares a and b byte-wise and returns -1, 0 or +1. For
// well-formed UTF-8 this is code point order.
func Compare(a, b *String) int {
	return bytes.Compare(a.buf, b.buf)
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b *String) bool {
	return bytes.Equal(a.buf, b.buf)
}

// Less reports whether a sorts before b.
func Less(a, b *String) bool {
	return Compare(a, b) < 0
}

func checkWellFormed[T codec.Text](op string, p T) {
	if !DebugChecks() {
		return
	}
	if err := codec.Validate(p); err != nil {
		violation(op, "%v", err)
	}
}
