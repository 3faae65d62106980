package u8string

import (
	"github.com/dshills/u8text/internal/engine/alloc"
	"github.com/dshills/u8text/internal/engine/codec"
	"github.com/dshills/u8text/internal/engine/transcode"
)

// Option configures a String during construction.
type Option func(*String)

// WithAllocator sets the allocator the string draws its buffer from.
// Derived strings (substrings, concatenations) inherit it.
func WithAllocator(a alloc.Allocator) Option {
	return func(s *String) {
		if a != nil {
			s.alloc = a
		}
	}
}

// WithCapacity reserves room for n bytes up front.
func WithCapacity(n int) Option {
	return func(s *String) {
		if n > s.reserve {
			s.reserve = n
		}
	}
}

// WithWideWidth sets the unit width used by FromWide and Wide. Zero and
// unsupported widths keep the platform width.
func WithWideWidth(w transcode.WideWidth) Option {
	return func(s *String) {
		if c, err := transcode.NewWideCodec(w); err == nil {
			s.wide = c
		}
	}
}

// WithDecoder sets the decoder Decode uses to admit raw bytes.
func WithDecoder(d *codec.Decoder) Option {
	return func(s *String) {
		if d != nil {
			s.decoder = d
		}
	}
}
