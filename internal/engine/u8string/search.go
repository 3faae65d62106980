package u8string

import (
	"bytes"

	"github.com/dshills/u8text/internal/engine/codec"
)

// Searches compare bytes, not code points. Because no well-formed UTF-8
// sequence occurs inside another at a different offset, a well-formed
// pattern only matches on code point boundaries. Patterns must therefore be
// well-formed; debug checks verify it.

// FindByte returns a cursor at the first occurrence of the ASCII byte b at or
// after from, or End.
func (s *String) FindByte(b byte, from Cursor) Cursor {
	if DebugChecks() {
		s.checkOwned("FindByte", from)
		if b >= codec.RuneSelf {
			violation("FindByte", "byte 0x%02X is not ASCII", b)
		}
	}
	start := s.clamp(from)
	if i := bytes.IndexByte(s.buf[start:], b); i >= 0 {
		return s.cursor(start + i)
	}
	return s.End()
}

// FindRune returns a cursor at the first occurrence of r at or after from,
// or End.
func (s *String) FindRune(r rune, from Cursor) Cursor {
	var enc [codec.UTFMax]byte
	n := codec.Encode(enc[:], r)
	return s.find("FindRune", enc[:n], from)
}

// Find returns a cursor at the first occurrence of sub at or after from, or
// End. An empty sub matches at from.
func (s *String) Find(sub *String, from Cursor) Cursor {
	return s.find("Find", sub.buf, from)
}

// FindString is Find for a Go string pattern.
func (s *String) FindString(sub string, from Cursor) Cursor {
	return s.find("FindString", []byte(sub), from)
}

func (s *String) find(op string, pattern []byte, from Cursor) Cursor {
	if DebugChecks() {
		s.checkOwned(op, from)
		if err := codec.Validate(pattern); err != nil {
			violation(op, "pattern: %v", err)
		}
	}
	start := s.clamp(from)
	if i := bytes.Index(s.buf[start:], pattern); i >= 0 {
		return s.cursor(start + i)
	}
	return s.End()
}

// Contains reports whether sub occurs in s.
func (s *String) Contains(sub string) bool {
	return bytes.Contains(s.buf, []byte(sub))
}

// HasPrefix reports whether s begins with prefix.
func (s *String) HasPrefix(prefix string) bool {
	return bytes.HasPrefix(s.buf, []byte(prefix))
}

// HasSuffix reports whether s ends with suffix.
func (s *String) HasSuffix(suffix string) bool {
	return bytes.HasSuffix(s.buf, []byte(suffix))
}
