package u8string

import (
	"iter"

	"github.com/dshills/u8text/internal/engine/codec"
)

// Cursor is a forward-only position on a code point boundary of a String.
//
// A cursor is bound to the state of its string when it was created. Any
// mutation of the string invalidates it; using an invalidated cursor, moving
// past the end or mixing cursors of different strings are contract
// violations. With debug checks enabled they panic with a *ContractError.
// Without them the cursor stays memory safe: reads past the end return
// RuneError and moves past the end are ignored.
type Cursor struct {
	owner *String
	data  []byte
	pos   int
	gen   uint64
}

func (s *String) cursor(pos int) Cursor {
	return Cursor{owner: s, data: s.buf, pos: pos, gen: s.gen}
}

// Begin returns a cursor at the first code point.
func (s *String) Begin() Cursor {
	return s.cursor(0)
}

// End returns the past-the-end cursor.
func (s *String) End() Cursor {
	return s.cursor(len(s.buf))
}

// CursorAt returns a cursor at byte offset off, which must lie on a code
// point boundary in [0, Len()]. Without debug checks an offending offset is
// clamped and moved back to the start of its sequence.
func (s *String) CursorAt(off int) Cursor {
	if DebugChecks() {
		if off < 0 || off > len(s.buf) {
			violation("CursorAt", "offset %d outside [0, %d]", off, len(s.buf))
		}
		if off < len(s.buf) && codec.Boundary(s.buf, off) != off {
			violation("CursorAt", "offset %d is inside a code point", off)
		}
	}
	off = min(max(off, 0), len(s.buf))
	return s.cursor(codec.Boundary(s.buf, off))
}

// Valid reports whether the cursor can be dereferenced.
func (c Cursor) Valid() bool {
	return c.pos < len(c.data)
}

// Offset returns the byte offset of the cursor.
func (c Cursor) Offset() int {
	return c.pos
}

// Remaining returns the number of bytes between the cursor and the end.
func (c Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Rune decodes the code point at the cursor without moving it.
func (c Cursor) Rune() rune {
	if DebugChecks() {
		c.checkLive("Rune")
		if c.pos >= len(c.data) {
			violation("Rune", "dereference of end cursor")
		}
	}
	r, _ := codec.DecodeAt(c.data, c.pos)
	return r
}

// Next moves the cursor to the following code point. It returns false,
// without moving, when the cursor is already at the end.
func (c *Cursor) Next() bool {
	if DebugChecks() {
		c.checkLive("Next")
		if c.pos >= len(c.data) {
			violation("Next", "increment past end")
		}
	}
	if c.pos >= len(c.data) {
		return false
	}
	c.pos = codec.Next(c.data, c.pos)
	return true
}

// Plus returns a copy of the cursor moved forward n code points.
func (c Cursor) Plus(n int) Cursor {
	if DebugChecks() {
		c.checkLive("Plus")
		if n < 0 {
			violation("Plus", "negative step %d", n)
		}
		if codec.Length(c.data[c.pos:]) < n {
			violation("Plus", "step %d runs past end", n)
		}
	}
	c.pos = codec.Advance(c.data, c.pos, n)
	return c
}

// Equal reports whether both cursors are at the same position. Cursors of
// different strings, or of different states of one string, do not compare.
func (c Cursor) Equal(o Cursor) bool {
	if DebugChecks() {
		c.checkComparable("Equal", o)
	}
	return c.owner == o.owner && c.pos == o.pos
}

// Before reports whether c is strictly before o.
func (c Cursor) Before(o Cursor) bool {
	if DebugChecks() {
		c.checkComparable("Before", o)
	}
	return c.pos < o.pos
}

func (c Cursor) checkLive(op string) {
	if c.owner != nil && c.owner.gen != c.gen {
		violation(op, "cursor used after its string was modified")
	}
}

func (c Cursor) checkComparable(op string, o Cursor) {
	if c.owner != o.owner {
		violation(op, "cursors belong to different strings")
	}
	if c.gen != o.gen {
		violation(op, "cursors belong to different states of the string")
	}
}

// checkOwned panics under debug checks unless c is a live cursor of s.
func (s *String) checkOwned(op string, c Cursor) {
	if c.owner != s {
		violation(op, "cursor belongs to a different string")
	}
	c.checkLive(op)
}

// clamp returns the cursor offset bounded to the current buffer.
func (s *String) clamp(c Cursor) int {
	return min(max(c.pos, 0), len(s.buf))
}

// At returns the i-th code point. It scans from the start.
func (s *String) At(i int) rune {
	off := codec.Advance(s.buf, 0, i)
	if i < 0 || off >= len(s.buf) {
		if DebugChecks() {
			violation("At", "index %d out of range", i)
		}
		return codec.RuneError
	}
	r, _ := codec.DecodeAt(s.buf, off)
	return r
}

// All returns an iterator over byte offsets and code points, in the manner
// of ranging over a Go string.
func (s *String) All() iter.Seq2[int, rune] {
	data := s.buf
	return func(yield func(int, rune) bool) {
		for i := 0; i < len(data); {
			r, size := codec.DecodeAt(data, i)
			if !yield(i, r) {
				return
			}
			i += size
		}
	}
}

// Runes returns an iterator over the code points.
func (s *String) Runes() iter.Seq[rune] {
	data := s.buf
	return func(yield func(rune) bool) {
		for i := 0; i < len(data); {
			r, size := codec.DecodeAt(data, i)
			if !yield(r) {
				return
			}
			i += size
		}
	}
}
