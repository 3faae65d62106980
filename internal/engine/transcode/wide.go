package transcode

import (
	"fmt"

	"github.com/dshills/u8text/internal/engine/codec"
)

// WideChar is one unit of the platform wide character representation.
// Only the low WideBits bits are significant.
type WideChar = uint32

// WideWidth is the bit width of a wide character unit.
type WideWidth uint8

const (
	// Wide16 stores UTF-16 code units, one or two per code point.
	Wide16 WideWidth = 16

	// Wide32 stores UTF-32 code units, one per code point.
	Wide32 WideWidth = 32
)

// String returns the width as "wide16" or "wide32".
func (w WideWidth) String() string {
	switch w {
	case Wide16:
		return "wide16"
	case Wide32:
		return "wide32"
	default:
		return fmt.Sprintf("WideWidth(%d)", uint8(w))
	}
}

// WideCodec converts between UTF-8 and wide characters of a fixed width.
// The zero value uses the platform width.
type WideCodec struct {
	width WideWidth
}

// NewWideCodec returns a codec for the given width. Zero selects WideBits.
func NewWideCodec(w WideWidth) (WideCodec, error) {
	switch w {
	case 0:
		return WideCodec{width: WideBits}, nil
	case Wide16, Wide32:
		return WideCodec{width: w}, nil
	default:
		return WideCodec{}, fmt.Errorf("%w: wide width %d", ErrUnsupported, w)
	}
}

// Width returns the unit width of the codec.
func (c WideCodec) Width() WideWidth {
	if c.width == 0 {
		return WideBits
	}
	return c.width
}

// FromUTF8 re-encodes p as wide characters.
func (c WideCodec) FromUTF8(p []byte) []WideChar {
	return toWide(p, c.Width())
}

// ToUTF8 re-encodes wide characters as UTF-8.
func (c WideCodec) ToUTF8(w []WideChar) []byte {
	return fromWide(w, c.Width())
}

// UTF8ToWide re-encodes p as platform wide characters.
func UTF8ToWide[T codec.Text](p T) []WideChar {
	return toWide(p, WideBits)
}

// WideToUTF8 re-encodes platform wide characters as UTF-8.
func WideToUTF8(w []WideChar) []byte {
	return fromWide(w, WideBits)
}

func toWide[T codec.Text](p T, width WideWidth) []WideChar {
	if width == Wide32 {
		return UTF8ToUTF32(p)
	}
	units := UTF8ToUTF16(p)
	out := make([]WideChar, len(units))
	for i, u := range units {
		out[i] = WideChar(u)
	}
	return out
}

func fromWide(w []WideChar, width WideWidth) []byte {
	if width == Wide32 {
		return UTF32ToUTF8(w)
	}
	units := make([]uint16, len(w))
	for i, c := range w {
		if c > 0xFFFF {
			c = codec.RuneError
		}
		units[i] = uint16(c)
	}
	return UTF16ToUTF8(units)
}
