// Package u8string provides String, an owned UTF-8 buffer with code point
// iteration, substrings, byte-level search and conversions to UTF-16,
// UTF-32, wide characters and wire encodings.
//
// # Cursors
//
// Positions in a String are Cursors: byte offsets on code point boundaries
// that move forward one code point at a time.
//
//	s := u8string.FromString("héllo")
//	for c := s.Begin(); c.Valid(); c.Next() {
//		fmt.Println(c.Offset(), string(c.Rune()))
//	}
//
// A cursor belongs to one state of one string. Appending to or clearing the
// string invalidates every cursor obtained before. Misuse is a programming
// error that is checked only when debug checks are on, either by building
// with the u8debug tag or by calling SetDebugChecks(true).
//
// # Malformed input
//
// Constructors that re-encode (FromUTF16, FromRunes, Sanitize and so on)
// substitute U+FFFD for malformed input and never fail. FromBytes and
// FromString copy their input verbatim and require it to be well-formed.
// Decode admits raw bytes through a codec.Decoder, which can be strict.
//
// # Streams
//
// Stream reads a NUL-terminated UTF-8 or UTF-32 source one code point at a
// time without building a String.
package u8string
