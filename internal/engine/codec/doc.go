// Package codec provides the UTF-8 primitives the text engine is built on.
//
// Every function is stateless and works on either a string or a byte slice.
// Positions are byte offsets into the input rather than pointer pairs, and a
// function never reads past len(p).
//
// Malformed input is never an error here. Decoding an invalid, truncated or
// overlong sequence yields RuneError (U+FFFD) and consumes exactly one byte, so
// every loop built on Decode or Next makes progress and terminates:
//
//	p := []byte{0xC0, 0x80, 'A'}
//	for i := 0; i < len(p); {
//		r, size := codec.DecodeAt(p, i) // U+FFFD, U+FFFD, 'A'
//		i += size
//	}
//
// Callers that need to reject malformed text use Valid or Validate up front,
// or a Decoder configured with ModeStrict.
package codec
