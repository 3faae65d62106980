package u8string

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/u8text/internal/engine/codec"
)

// Summary returns the codec summary of the content.
func (s *String) Summary() codec.Summary {
	return codec.Summarize(s.buf)
}

// IsASCII reports whether every byte is below 0x80.
func (s *String) IsASCII() bool {
	for _, b := range s.buf {
		if b >= codec.RuneSelf {
			return false
		}
	}
	return true
}

// DisplayWidth returns the number of terminal cells the content occupies,
// measured per grapheme cluster. Wide East Asian characters, emoji and flag
// sequences count two cells; combining marks, variation selectors and
// control characters count none.
func (s *String) DisplayWidth() int {
	if s.IsASCII() {
		n := 0
		for _, b := range s.buf {
			if b >= 0x20 && b != 0x7F {
				n++
			}
		}
		return n
	}
	return uniseg.StringWidth(string(s.buf))
}

// RuneWidth returns the number of terminal cells r occupies on its own,
// outside any grapheme cluster.
func RuneWidth(r rune) int {
	return runewidth.RuneWidth(r)
}
