package codec

// Encode writes the UTF-8 sequence for r into dst and returns the number of
// bytes written. The caller guarantees len(dst) >= UTFMax.
//
// Values that are not Unicode scalar values (negative, surrogates, above
// MaxRune) are written as RuneError so the output is always well-formed.
func Encode(dst []byte, r rune) int {
	// Negative values are erroneous. Making it unsigned addresses the problem.
	switch i := uint32(r); {
	case i <= rune1Max:
		dst[0] = byte(r)
		return 1
	case i <= rune2Max:
		_ = dst[1] // eliminate bounds checks
		dst[0] = t2 | byte(r>>6)
		dst[1] = tx | byte(r)&maskx
		return 2
	case i > MaxRune, surrogateMin <= i && i <= surrogateMax:
		r = RuneError
		fallthrough
	case i <= rune3Max:
		_ = dst[2] // eliminate bounds checks
		dst[0] = t3 | byte(r>>12)
		dst[1] = tx | byte(r>>6)&maskx
		dst[2] = tx | byte(r)&maskx
		return 3
	default:
		_ = dst[3] // eliminate bounds checks
		dst[0] = t4 | byte(r>>18)
		dst[1] = tx | byte(r>>12)&maskx
		dst[2] = tx | byte(r>>6)&maskx
		dst[3] = tx | byte(r)&maskx
		return 4
	}
}

// AppendRune appends the UTF-8 encoding of r to dst.
func AppendRune(dst []byte, r rune) []byte {
	if uint32(r) <= rune1Max {
		return append(dst, byte(r))
	}
	var buf [UTFMax]byte
	n := Encode(buf[:], r)
	return append(dst, buf[:n]...)
}

// RuneLen returns the number of bytes Encode writes for r. Non-scalar values
// report the length of RuneError.
func RuneLen(r rune) int {
	switch {
	case r < 0:
		return 3
	case r <= rune1Max:
		return 1
	case r <= rune2Max:
		return 2
	case surrogateMin <= r && r <= surrogateMax:
		return 3
	case r <= rune3Max:
		return 3
	case r <= MaxRune:
		return 4
	}
	return 3
}

// ValidRune reports whether r is a Unicode scalar value.
func ValidRune(r rune) bool {
	switch {
	case 0 <= r && r < surrogateMin:
		return true
	case surrogateMax < r && r <= MaxRune:
		return true
	}
	return false
}

// Repeat returns count copies of the encoding of r. A negative count is
// treated as zero.
func Repeat(count int, r rune) []byte {
	if count <= 0 {
		return []byte{}
	}
	var buf [UTFMax]byte
	n := Encode(buf[:], r)
	out := make([]byte, 0, count*n)
	for range count {
		out = append(out, buf[:n]...)
	}
	return out
}
