package codec

// Summary holds metrics gathered in a single pass over a UTF-8 input.
type Summary struct {
	// Bytes is the input length in bytes.
	Bytes int

	// Runes is the number of code points, counting each malformed byte as one.
	Runes int

	// UTF16Units is the number of UTF-16 code units a conversion produces.
	UTF16Units int

	// Invalid is the number of malformed sequences.
	Invalid int

	// Flags indicate text properties for fast paths.
	Flags Flags
}

// Flags indicate text properties for fast paths.
type Flags uint8

const (
	// FlagASCII indicates all bytes are ASCII (< 0x80).
	FlagASCII Flags = 1 << iota

	// FlagHasNUL indicates the input contains a NUL byte.
	FlagHasNUL

	// FlagHasInvalid indicates at least one malformed sequence.
	FlagHasInvalid
)

// Has reports whether all bits of f are set.
func (s Summary) Has(f Flags) bool {
	return s.Flags&f == f
}

// Add combines two summaries of adjacent, independently valid spans.
func (s Summary) Add(other Summary) Summary {
	if s.Bytes == 0 {
		return other
	}
	if other.Bytes == 0 {
		return s
	}
	result := Summary{
		Bytes:      s.Bytes + other.Bytes,
		Runes:      s.Runes + other.Runes,
		UTF16Units: s.UTF16Units + other.UTF16Units,
		Invalid:    s.Invalid + other.Invalid,
		Flags:      s.Flags & other.Flags & FlagASCII,
	}
	result.Flags |= (s.Flags | other.Flags) &^ FlagASCII
	return result
}

// Summarize computes the metrics of p.
func Summarize[T Text](p T) Summary {
	sum := Summary{Bytes: len(p), Flags: FlagASCII}
	for i := 0; i < len(p); {
		b := p[i]
		if b < RuneSelf {
			if b == 0 {
				sum.Flags |= FlagHasNUL
			}
			sum.Runes++
			sum.UTF16Units++
			i++
			continue
		}
		sum.Flags &^= FlagASCII
		r, size := DecodeAt(p, i)
		switch {
		case r == RuneError && size == 1:
			sum.Invalid++
			sum.Flags |= FlagHasInvalid
			sum.UTF16Units++
		case r > rune3Max:
			sum.UTF16Units += 2 // Surrogate pair
		default:
			sum.UTF16Units++
		}
		sum.Runes++
		i += size
	}
	return sum
}
