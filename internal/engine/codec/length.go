package codec

// Next returns the offset just past the code point starting at byte offset i.
// The result never exceeds len(p), even when the lead byte announces more
// bytes than remain. An offset at or past the end returns len(p).
func Next[T Text](p T, i int) int {
	if i >= len(p) {
		return len(p)
	}
	if i < 0 {
		return 0
	}
	if p[i] < RuneSelf {
		return i + 1
	}
	_, size := DecodeAt(p, i)
	return i + size
}

// RuneSelf is the boundary below which a byte is a complete ASCII sequence.
const RuneSelf = 0x80

// Length counts the code points in p. Malformed bytes count one each.
//
// The count is recomputed on every call and costs O(len(p)).
func Length[T Text](p T) int {
	n := 0
	for i := 0; i < len(p); {
		// Runs of ASCII are the common case.
		if p[i] < RuneSelf {
			i++
		} else {
			_, size := DecodeAt(p, i)
			i += size
		}
		n++
	}
	return n
}

// LengthUnsafe counts the code points before the first NUL byte, or before
// len(p) when p holds no NUL. It serves sources that follow the
// null-terminated convention.
func LengthUnsafe[T Text](p T) int {
	n := 0
	for i := 0; i < len(p) && p[i] != 0; {
		if p[i] < RuneSelf {
			i++
		} else {
			_, size := DecodeAt(p, i)
			i += size
		}
		n++
	}
	return n
}

// Advance applies Next n times starting at byte offset i and returns the
// resulting offset. It stops at len(p) if the input runs out first, so callers
// that need exactly n steps must compare the result against len(p).
func Advance[T Text](p T, i, n int) int {
	for ; n > 0 && i < len(p); n-- {
		i = Next(p, i)
	}
	if i > len(p) {
		return len(p)
	}
	return i
}

// Boundary moves i backwards to the start of the sequence containing it. An
// offset already on a boundary is returned unchanged.
func Boundary[T Text](p T, i int) int {
	if i >= len(p) {
		return len(p)
	}
	start := i
	for start > 0 && i-start < UTFMax-1 && !IsLead(p[start]) {
		start--
	}
	if _, size := DecodeAt(p, start); start+size > i {
		return start
	}
	return i
}
