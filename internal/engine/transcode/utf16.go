package transcode

import "github.com/dshills/u8text/internal/engine/codec"

const (
	surr1    = 0xD800
	surr2    = 0xDC00
	surr3    = 0xE000
	surrSelf = 0x10000
)

// UTF8ToUTF16 re-encodes p as UTF-16 code units. Code points above U+FFFF
// become surrogate pairs. Malformed bytes become U+FFFD.
func UTF8ToUTF16[T codec.Text](p T) []uint16 {
	sum := codec.Summarize(p)
	out := make([]uint16, 0, sum.UTF16Units)
	if sum.Has(codec.FlagASCII) {
		for i := 0; i < len(p); i++ {
			out = append(out, uint16(p[i]))
		}
		return out
	}
	for i := 0; i < len(p); {
		r, size := codec.DecodeAt(p, i)
		out = AppendUTF16(out, r)
		i += size
	}
	return out
}

// UTF16ToUTF8 re-encodes UTF-16 code units as UTF-8. An unpaired surrogate
// decodes to U+FFFD.
func UTF16ToUTF8(u []uint16) []byte {
	out := make([]byte, 0, len(u))
	for i := 0; i < len(u); i++ {
		c := rune(u[i])
		switch {
		case c < surr1 || c >= surr3:
		case c < surr2 && i+1 < len(u) && u[i+1] >= surr2 && u[i+1] < surr3:
			c = DecodeSurrogates(c, rune(u[i+1]))
			i++
		default:
			c = codec.RuneError
		}
		out = codec.AppendRune(out, c)
	}
	return out
}

// AppendUTF16 appends the UTF-16 encoding of r to dst. Non-scalar values
// append U+FFFD.
func AppendUTF16(dst []uint16, r rune) []uint16 {
	switch {
	case 0 <= r && r < surr1, surr3 <= r && r < surrSelf:
		return append(dst, uint16(r))
	case surrSelf <= r && r <= codec.MaxRune:
		hi, lo := EncodeSurrogates(r)
		return append(dst, uint16(hi), uint16(lo))
	}
	return append(dst, codec.RuneError)
}

// EncodeSurrogates splits a supplementary code point into its high and low
// surrogates. Values outside U+10000..U+10FFFF return (U+FFFD, U+FFFD).
func EncodeSurrogates(r rune) (hi, lo rune) {
	if r < surrSelf || r > codec.MaxRune {
		return codec.RuneError, codec.RuneError
	}
	r -= surrSelf
	return surr1 + (r>>10)&0x3FF, surr2 + r&0x3FF
}

// DecodeSurrogates joins a surrogate pair. A pair that is not high followed
// by low returns U+FFFD.
func DecodeSurrogates(hi, lo rune) rune {
	if surr1 <= hi && hi < surr2 && surr2 <= lo && lo < surr3 {
		return (hi-surr1)<<10 | (lo - surr2) + surrSelf
	}
	return codec.RuneError
}

// IsSurrogate reports whether r is a UTF-16 surrogate code unit.
func IsSurrogate(r rune) bool {
	return surr1 <= r && r < surr3
}
