package codec

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func FuzzDecode(f *testing.F) {
	f.Add([]byte("hello"))
	f.Add([]byte("a€😀"))
	f.Add([]byte{0xC0, 0x80})
	f.Add([]byte{0xED, 0xA0, 0x80})
	f.Add([]byte{0xF4, 0x90, 0x80, 0x80})
	f.Add([]byte{0xF0, 0x9F, 0x98})

	f.Fuzz(func(t *testing.T, p []byte) {
		for i := 0; i < len(p); {
			r, size := DecodeAt(p, i)
			wantR, wantSize := utf8.DecodeRune(p[i:])
			if r != wantR || size != wantSize {
				t.Fatalf("DecodeAt(%x, %d) = (%U, %d), want (%U, %d)", p, i, r, size, wantR, wantSize)
			}
			if next := Next(p, i); next != i+size {
				t.Fatalf("Next(%x, %d) = %d, want %d", p, i, next, i+size)
			}
			i += size
		}

		if got, want := Length(p), utf8.RuneCount(p); got != want {
			t.Fatalf("Length(%x) = %d, want %d", p, got, want)
		}
		if Length(p) != Length(string(p)) {
			t.Fatalf("Length differs between []byte and string for %x", p)
		}
	})
}

func FuzzValid(f *testing.F) {
	f.Add([]byte("plain"))
	f.Add([]byte("\xFF"))
	f.Add([]byte("ok\xE2\x82"))

	f.Fuzz(func(t *testing.T, p []byte) {
		valid := Valid(p)
		if valid != utf8.Valid(p) {
			t.Fatalf("Valid(%x) = %v, want %v", p, valid, !valid)
		}
		if err := Validate(p); (err == nil) != valid {
			t.Fatalf("Validate(%x) = %v, Valid = %v", p, err, valid)
		}

		clean := Sanitize(p)
		if !utf8.Valid(clean) {
			t.Fatalf("Sanitize(%x) produced invalid output %x", p, clean)
		}
		if valid && !bytes.Equal(clean, p) {
			t.Fatalf("Sanitize changed valid input %x to %x", p, clean)
		}
		if Length(clean) != Length(p) {
			t.Fatalf("Sanitize(%x) changed the code point count", p)
		}

		sum := Summarize(p)
		if sum.Runes != Length(p) || sum.Bytes != len(p) {
			t.Fatalf("Summarize(%x) = %+v", p, sum)
		}
		if sum.Has(FlagHasInvalid) == valid {
			t.Fatalf("Summarize(%x) invalid flag disagrees with Valid", p)
		}
	})
}
