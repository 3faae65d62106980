package codec

// Valid reports whether p is entirely well-formed UTF-8: no invalid lead
// bytes, no stray or missing continuation bytes, no overlong forms, no
// surrogates and nothing above MaxRune.
func Valid[T Text](p T) bool {
	return firstInvalid(p) < 0
}

// Validate returns nil when p is well-formed, and a *MalformedError naming
// the first offending byte otherwise.
func Validate[T Text](p T) error {
	if i := firstInvalid(p); i >= 0 {
		return &MalformedError{Offset: i, Byte: p[i]}
	}
	return nil
}

// firstInvalid returns the offset of the first malformed sequence, or -1.
func firstInvalid[T Text](p T) int {
	for i := 0; i < len(p); {
		if p[i] < RuneSelf {
			i++
			continue
		}
		r, size := DecodeAt(p, i)
		if r == RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Sanitize returns a copy of p in which every malformed sequence is replaced
// by the encoding of RuneError. Well-formed input is copied unchanged.
func Sanitize[T Text](p T) []byte {
	out := make([]byte, 0, len(p))
	for i := 0; i < len(p); {
		if p[i] < RuneSelf {
			out = append(out, p[i])
			i++
			continue
		}
		r, size := DecodeAt(p, i)
		if r == RuneError && size == 1 {
			out = AppendRune(out, RuneError)
		} else {
			for k := range size {
				out = append(out, p[i+k])
			}
		}
		i += size
	}
	return out
}
