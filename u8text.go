package u8text

import (
	"io"

	"github.com/dshills/u8text/internal/config"
	"github.com/dshills/u8text/internal/engine"
	"github.com/dshills/u8text/internal/engine/codec"
	"github.com/dshills/u8text/internal/engine/textutil"
	"github.com/dshills/u8text/internal/engine/transcode"
	"github.com/dshills/u8text/internal/engine/u8string"
)

type (
	String         = engine.String
	Cursor         = engine.Cursor
	Stream         = engine.Stream
	Option         = engine.StringOption
	Mode           = engine.Mode
	Summary        = engine.Summary
	Encoding       = engine.Encoding
	WideChar       = engine.WideChar
	WideWidth      = engine.WideWidth
	Allocator      = engine.Allocator
	MalformedError = engine.MalformedError
	ContractError  = engine.ContractError
	Engine         = engine.Engine
	EngineOption   = engine.Option
	Config         = config.Config
	LoadOption     = config.LoadOption
)

const (
	ModeReplace = engine.ModeReplace
	ModeStrict  = engine.ModeStrict

	RuneError = engine.RuneError
	MaxRune   = engine.MaxRune

	UTF8     = engine.UTF8
	UTF16LE  = engine.UTF16LE
	UTF16BE  = engine.UTF16BE
	UTF16BOM = engine.UTF16BOM
	UTF32LE  = engine.UTF32LE
	UTF32BE  = engine.UTF32BE
	Latin1   = engine.Latin1
	ASCII    = engine.ASCII
	EBCDIC   = engine.EBCDIC

	Wide16   = engine.Wide16
	Wide32   = engine.Wide32
	WideBits = engine.WideBits
)

// Errors.
var (
	ErrMalformed       = codec.ErrMalformed
	ErrContract        = u8string.ErrContract
	ErrUnknownEncoding = transcode.ErrUnknownEncoding
	ErrUnsupported     = transcode.ErrUnsupported
	ErrInvalidConfig   = engine.ErrInvalidConfig
)

// String options.
var (
	WithAllocator = u8string.WithAllocator
	WithCapacity  = u8string.WithCapacity
	WithWideWidth = u8string.WithWideWidth
	WithDecoder   = u8string.WithDecoder
)

// Engine options.
var (
	WithConfig           = engine.WithConfig
	WithLogger           = engine.WithLogger
	WithDecodeMode       = engine.WithDecodeMode
	WithEngineAllocator  = engine.WithAllocator
	WithEngineWideWidth  = engine.WithWideWidth
	WithConfigFile       = config.WithFile
	WithConfigReader     = config.WithReader
	WithConfigFileSystem = config.WithFileSystem
)

// Text helpers. They operate on Go strings; use String.String and
// FromString to move between the two. Match takes a glob pattern with '*'
// and '?' where a leading '!' negates. The case helpers map ASCII letters
// only.
var (
	ASCIILower    = textutil.ASCIILower
	ASCIIUpper    = textutil.ASCIIUpper
	Match         = textutil.Match
	Hex           = textutil.Hex
	Tokenize      = textutil.Tokenize
	ReplaceOne    = textutil.ReplaceOne
	ReplaceAll    = textutil.ReplaceAll
	Quote         = textutil.Quote
	QuoteIfNeeded = textutil.QuoteIfNeeded
	Substitute    = textutil.Substitute
)

// New returns an empty String.
func New(opts ...Option) *String { return u8string.New(opts...) }

// FromString copies well-formed UTF-8 into a new String.
func FromString(s string, opts ...Option) *String { return u8string.FromString(s, opts...) }

// FromBytes copies b into a new String. b must be well-formed UTF-8; use
// Sanitize for untrusted input.
func FromBytes(b []byte, opts ...Option) *String { return u8string.FromBytes(b, opts...) }

// FromRunes encodes code points, replacing invalid ones with U+FFFD.
func FromRunes(rs []rune, opts ...Option) *String { return u8string.FromRunes(rs, opts...) }

// Repeat returns a String of n copies of r.
func Repeat(n int, r rune, opts ...Option) *String { return u8string.Repeat(n, r, opts...) }

// Sanitize copies arbitrary bytes into a new String, substituting U+FFFD
// for every malformed byte.
func Sanitize(b []byte, opts ...Option) *String { return u8string.Sanitize(b, opts...) }

// Decode admits raw bytes through the String's decoder; see WithDecoder.
func Decode(b []byte, opts ...Option) (*String, error) { return u8string.Decode(b, opts...) }

// FromUTF16 decodes UTF-16 code units; unpaired surrogates become U+FFFD.
func FromUTF16(u []uint16, opts ...Option) *String { return u8string.FromUTF16(u, opts...) }

// FromUTF32 decodes UTF-32 code units.
func FromUTF32(u []uint32, opts ...Option) *String { return u8string.FromUTF32(u, opts...) }

// FromWide decodes wide characters of the String's wide width.
func FromWide(w []WideChar, opts ...Option) *String { return u8string.FromWide(w, opts...) }

// FromEncoded decodes b from a wire encoding.
func FromEncoded(enc Encoding, b []byte, opts ...Option) (*String, error) {
	return u8string.FromEncoded(enc, b, opts...)
}

// Concat returns a new String holding a followed by b.
func Concat(a, b *String) *String { return u8string.Concat(a, b) }

// Compare orders Strings bytewise, which is code point order.
func Compare(a, b *String) int { return u8string.Compare(a, b) }

// Equal reports whether a and b hold the same bytes.
func Equal(a, b *String) bool { return u8string.Equal(a, b) }

// NewByteStream returns a Stream over NUL-terminated UTF-8.
func NewByteStream(p []byte) Stream { return u8string.NewByteStream(p) }

// NewRuneStream returns a Stream over NUL-terminated code points.
func NewRuneStream(rs []rune) Stream { return u8string.NewRuneStream(rs) }

// Valid reports whether b is well-formed UTF-8.
func Valid(b []byte) bool { return codec.Valid(b) }

// RuneCount returns the number of code points in b, counting each malformed
// byte as one.
func RuneCount(b []byte) int { return codec.Length(b) }

// Summarize measures b in a single pass.
func Summarize(b []byte) Summary { return codec.Summarize(b) }

// ParseEncoding resolves an encoding name such as "utf-16le" or "latin1".
func ParseEncoding(name string) (Encoding, error) { return transcode.ParseEncoding(name) }

// NewReader returns a reader that decodes r from enc into UTF-8.
func NewReader(enc Encoding, r io.Reader) (io.Reader, error) { return transcode.NewReader(enc, r) }

// NewWriter returns a writer that encodes UTF-8 into enc on w.
func NewWriter(enc Encoding, w io.Writer) (io.WriteCloser, error) { return transcode.NewWriter(enc, w) }

// SetDebugChecks enables or disables contract checks at run time.
func SetDebugChecks(on bool) { u8string.SetDebugChecks(on) }

// NewEngine creates an Engine.
func NewEngine(opts ...EngineOption) (*Engine, error) { return engine.New(opts...) }

// Load creates an Engine from configuration sources. Environment variables
// prefixed U8TEXT_ override file settings.
func Load(opts ...LoadOption) (*Engine, error) { return engine.Load(opts) }
