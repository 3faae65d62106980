package transcode

import "github.com/dshills/u8text/internal/engine/codec"

// UTF8ToUTF32 re-encodes p as UTF-32 code units, one per code point.
// Malformed bytes become U+FFFD.
func UTF8ToUTF32[T codec.Text](p T) []uint32 {
	out := make([]uint32, 0, codec.Length(p))
	for i := 0; i < len(p); {
		r, size := codec.DecodeAt(p, i)
		out = append(out, uint32(r))
		i += size
	}
	return out
}

// UTF32ToUTF8 re-encodes UTF-32 code units as UTF-8. Surrogates and values
// above U+10FFFF encode as U+FFFD.
func UTF32ToUTF8(u []uint32) []byte {
	out := make([]byte, 0, len(u))
	for _, c := range u {
		if c > codec.MaxRune {
			out = codec.AppendRune(out, codec.RuneError)
			continue
		}
		out = codec.AppendRune(out, rune(c))
	}
	return out
}

// RunesToUTF8 is UTF32ToUTF8 for a rune slice.
func RunesToUTF8(rs []rune) []byte {
	out := make([]byte, 0, len(rs))
	for _, r := range rs {
		out = codec.AppendRune(out, r)
	}
	return out
}
