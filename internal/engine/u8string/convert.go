package u8string

import "github.com/dshills/u8text/internal/engine/transcode"

// FromUTF16 creates a string from UTF-16 code units. Unpaired surrogates
// become U+FFFD.
func FromUTF16(u []uint16, opts ...Option) *String {
	return newString(opts).fill(transcode.UTF16ToUTF8(u))
}

// FromUTF32 creates a string from UTF-32 code units. Surrogates and values
// above U+10FFFF become U+FFFD.
func FromUTF32(u []uint32, opts ...Option) *String {
	return newString(opts).fill(transcode.UTF32ToUTF8(u))
}

// FromWide creates a string from wide characters of the configured width
// (see WithWideWidth).
func FromWide(w []transcode.WideChar, opts ...Option) *String {
	s := newString(opts)
	return s.fill(s.wide.ToUTF8(w))
}

// FromEncoded decodes b from a wire encoding. Malformed input becomes
// U+FFFD; the error is non-nil only for an unsupported encoding.
func FromEncoded(enc transcode.Encoding, b []byte, opts ...Option) (*String, error) {
	out, err := transcode.Decode(enc, b)
	if err != nil {
		return nil, err
	}
	return newString(opts).fill(out), nil
}

// UTF16 returns the content as UTF-16 code units.
func (s *String) UTF16() []uint16 {
	return transcode.UTF8ToUTF16(s.buf)
}

// UTF32 returns the content as UTF-32 code units.
func (s *String) UTF32() []uint32 {
	return transcode.UTF8ToUTF32(s.buf)
}

// Wide returns the content as wide characters of the configured width.
func (s *String) Wide() []transcode.WideChar {
	return s.wide.FromUTF8(s.buf)
}

// Encode serialises the content in a wire encoding.
func (s *String) Encode(enc transcode.Encoding) ([]byte, error) {
	return transcode.Encode(enc, s.buf)
}
