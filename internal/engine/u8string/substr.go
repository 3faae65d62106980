package u8string

import "github.com/dshills/u8text/internal/engine/codec"

// Substr returns a new string holding the bytes between first and last.
// Both cursors must belong to s in its current state, with first not after
// last.
func (s *String) Substr(first, last Cursor) *String {
	if DebugChecks() {
		s.checkOwned("Substr", first)
		s.checkOwned("Substr", last)
		if first.pos > last.pos {
			violation("Substr", "first offset %d after last offset %d", first.pos, last.pos)
		}
	}
	lo, hi := s.clamp(first), s.clamp(last)
	if lo > hi {
		lo, hi = hi, lo
	}
	return s.derive(s.buf[lo:hi])
}

// SubstrN returns up to n code points starting at first.
func (s *String) SubstrN(first Cursor, n int) *String {
	if DebugChecks() {
		s.checkOwned("SubstrN", first)
	}
	lo := s.clamp(first)
	return s.derive(s.buf[lo:codec.Advance(s.buf, lo, n)])
}

// SubstrFrom returns the bytes from first to the end of s.
func (s *String) SubstrFrom(first Cursor) *String {
	if DebugChecks() {
		s.checkOwned("SubstrFrom", first)
	}
	return s.derive(s.buf[s.clamp(first):])
}
