package codec

// Text is the set of inputs the codec functions accept.
type Text interface {
	~string | ~[]byte
}

const (
	// RuneError is the replacement code point produced for malformed input.
	RuneError = '\uFFFD'

	// MaxRune is the largest Unicode scalar value.
	MaxRune = '\U0010FFFF'

	// UTFMax is the maximum number of bytes of a UTF-8 sequence.
	UTFMax = 4
)

// Code points in the surrogate range are not valid for UTF-8.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

const (
	tx = 0b10000000
	t2 = 0b11000000
	t3 = 0b11100000
	t4 = 0b11110000

	maskx = 0b00111111
	mask2 = 0b00011111
	mask3 = 0b00001111
	mask4 = 0b00000111

	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1

	// The default lowest and highest continuation byte.
	locb = 0b10000000
	hicb = 0b10111111

	// The first nibble is an index into acceptRanges, or F for the one-byte
	// cases. The second nibble is the sequence length.
	xx = 0xF1 // invalid: size 1
	as = 0xF0 // ASCII: size 1
	s1 = 0x02 // accept 0, size 2
	s2 = 0x13 // accept 1, size 3
	s3 = 0x03 // accept 0, size 3
	s4 = 0x23 // accept 2, size 3
	s5 = 0x34 // accept 3, size 4
	s6 = 0x04 // accept 0, size 4
	s7 = 0x44 // accept 4, size 4
)

// first classifies every possible lead byte.
var first = [256]uint8{
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x00-0x0F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x10-0x1F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x20-0x2F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x30-0x3F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x40-0x4F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x50-0x5F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x60-0x6F
	as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, as, // 0x70-0x7F
	//   1   2   3   4   5   6   7   8   9   A   B   C   D   E   F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x80-0x8F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0x90-0x9F
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xA0-0xAF
	xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xB0-0xBF
	xx, xx, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xC0-0xCF
	s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, s1, // 0xD0-0xDF
	s2, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s3, s4, s3, s3, // 0xE0-0xEF
	s5, s6, s6, s6, s7, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, xx, // 0xF0-0xFF
}

// acceptRange gives the range of valid values for the second byte of a
// sequence. Narrowed ranges reject overlong forms, surrogates and values
// above MaxRune.
type acceptRange struct {
	lo uint8
	hi uint8
}

// acceptRanges has size 16 to avoid bounds checks in the code that uses it.
var acceptRanges = [16]acceptRange{
	0: {locb, hicb},
	1: {0xA0, hicb},
	2: {locb, 0x9F},
	3: {0x90, hicb},
	4: {locb, 0x8F},
}

// Decode decodes the sequence at the start of p and returns the code point
// and the number of bytes consumed.
//
// A malformed or truncated sequence returns (RuneError, 1). An empty input
// returns (RuneError, 0).
func Decode[T Text](p T) (rune, int) {
	return DecodeAt(p, 0)
}

// DecodeAt decodes the sequence starting at byte offset i. Continuation bytes
// are only read while they lie before len(p).
func DecodeAt[T Text](p T, i int) (rune, int) {
	n := len(p) - i
	if i < 0 || n < 1 {
		return RuneError, 0
	}
	p0 := p[i]
	x := first[p0]
	if x >= as {
		if x == xx {
			return RuneError, 1
		}
		return rune(p0), 1
	}
	sz := int(x & 7)
	if n < sz {
		return RuneError, 1
	}
	accept := acceptRanges[x>>4]
	b1 := p[i+1]
	if b1 < accept.lo || accept.hi < b1 {
		return RuneError, 1
	}
	if sz == 2 {
		return rune(p0&mask2)<<6 | rune(b1&maskx), 2
	}
	b2 := p[i+2]
	if b2 < locb || hicb < b2 {
		return RuneError, 1
	}
	if sz == 3 {
		return rune(p0&mask3)<<12 | rune(b1&maskx)<<6 | rune(b2&maskx), 3
	}
	b3 := p[i+3]
	if b3 < locb || hicb < b3 {
		return RuneError, 1
	}
	return rune(p0&mask4)<<18 | rune(b1&maskx)<<12 | rune(b2&maskx)<<6 | rune(b3&maskx), 4
}

// CharLenUnsafe reports the length of the sequence introduced by lead, judged
// from the lead byte alone. Continuation and invalid lead bytes report 1.
//
// Nothing is verified: the caller must know that many bytes are readable and
// must still expect Decode to reject the sequence.
func CharLenUnsafe(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead < 0xC0:
		return 1
	case lead < 0xE0:
		return 2
	case lead < 0xF0:
		return 3
	case lead < 0xF8:
		return 4
	default:
		return 1
	}
}

// IsLead reports whether b can start a sequence, that is, it is not a
// continuation byte.
func IsLead(b byte) bool {
	return b&0xC0 != 0x80
}
