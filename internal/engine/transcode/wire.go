package transcode

import (
	"fmt"
	"io"
	"strings"

	gdencoding "github.com/gdamore/encoding"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"

	"github.com/dshills/u8text/internal/engine/codec"
)

// Encoding identifies a byte-serialised text encoding.
type Encoding uint8

const (
	UTF8     Encoding = iota // UTF-8, sanitised on the way through
	UTF16LE                  // UTF-16 little endian, no BOM
	UTF16BE                  // UTF-16 big endian, no BOM
	UTF16BOM                 // UTF-16 with BOM; decode sniffs, encode writes big endian
	UTF32LE                  // UTF-32 little endian, no BOM
	UTF32BE                  // UTF-32 big endian, no BOM
	Latin1                   // ISO 8859-1
	ASCII                    // US-ASCII
	EBCDIC                   // EBCDIC code page 037
)

var encodingNames = [...]string{
	UTF8:     "utf-8",
	UTF16LE:  "utf-16le",
	UTF16BE:  "utf-16be",
	UTF16BOM: "utf-16",
	UTF32LE:  "utf-32le",
	UTF32BE:  "utf-32be",
	Latin1:   "iso-8859-1",
	ASCII:    "us-ascii",
	EBCDIC:   "ebcdic",
}

var encodingAliases = map[string]Encoding{
	"utf8":      UTF8,
	"utf16le":   UTF16LE,
	"utf16be":   UTF16BE,
	"utf16":     UTF16BOM,
	"utf32le":   UTF32LE,
	"utf32be":   UTF32BE,
	"latin1":    Latin1,
	"latin-1":   Latin1,
	"iso8859-1": Latin1,
	"ascii":     ASCII,
	"cp037":     EBCDIC,
}

// String returns the canonical name of e.
func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// ParseEncoding resolves an encoding name. Matching ignores case and
// surrounding space, and treats '_' as '-'.
func ParseEncoding(name string) (Encoding, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range encodingNames {
		if n == key {
			return Encoding(i), nil
		}
	}
	if e, ok := encodingAliases[key]; ok {
		return e, nil
	}
	return UTF8, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
}

// textEncoding returns the x/text implementation of e.
func (e Encoding) textEncoding() (encoding.Encoding, error) {
	switch e {
	case UTF8:
		return unicode.UTF8, nil
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case UTF16BOM:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), nil
	case UTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), nil
	case Latin1:
		return gdencoding.ISO8859_1, nil
	case ASCII:
		return gdencoding.ASCII, nil
	case EBCDIC:
		return gdencoding.EBCDIC, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, e)
	}
}

// Encode serialises the UTF-8 text p in encoding e. Malformed input is
// sanitised first. Characters e cannot represent are replaced by the
// encoding's substitute byte.
func Encode[T codec.Text](e Encoding, p T) ([]byte, error) {
	if e == UTF8 {
		return codec.Sanitize(p), nil
	}
	src := []byte(p)
	if !codec.Valid(src) {
		src = codec.Sanitize(src)
	}
	te, err := e.textEncoding()
	if err != nil {
		return nil, err
	}
	out, _, err := transform.Bytes(encoding.ReplaceUnsupported(te.NewEncoder()), src)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e, err)
	}
	return out, nil
}

// Decode converts b from encoding e to UTF-8. Malformed input decodes to
// U+FFFD, so the result is always well-formed.
func Decode(e Encoding, b []byte) ([]byte, error) {
	if e == UTF8 {
		return codec.Sanitize(b), nil
	}
	te, err := e.textEncoding()
	if err != nil {
		return nil, err
	}
	out, _, err := transform.Bytes(te.NewDecoder(), b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", e, err)
	}
	return out, nil
}

// NewReader returns a reader that decodes r from encoding e into UTF-8.
func NewReader(e Encoding, r io.Reader) (io.Reader, error) {
	te, err := e.textEncoding()
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, te.NewDecoder()), nil
}

// NewWriter returns a writer that encodes UTF-8 written to it into e before
// passing it to w. Close flushes any buffered partial sequence.
func NewWriter(e Encoding, w io.Writer) (io.WriteCloser, error) {
	te, err := e.textEncoding()
	if err != nil {
		return nil, err
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(te.NewEncoder())), nil
}
