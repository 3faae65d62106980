package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dshills/u8text/internal/config"
	"github.com/dshills/u8text/internal/engine/alloc"
	"github.com/dshills/u8text/internal/engine/codec"
	"github.com/dshills/u8text/internal/engine/transcode"
	"github.com/dshills/u8text/internal/engine/u8string"
)

// Re-export commonly used types for convenience.
type (
	// String is an owned UTF-8 buffer.
	String = u8string.String

	// Cursor is a forward-only position in a String.
	Cursor = u8string.Cursor

	// Stream reads a NUL-terminated UTF-8 or UTF-32 source.
	Stream = u8string.Stream

	// StringOption configures a String.
	StringOption = u8string.Option

	// ContractError reports misuse detected by debug checks.
	ContractError = u8string.ContractError

	// Mode selects substitution or strict decoding.
	Mode = codec.Mode

	// Summary holds single-pass text metrics.
	Summary = codec.Summary

	// MalformedError locates the first malformed byte of an input.
	MalformedError = codec.MalformedError

	// Encoding identifies a wire encoding.
	Encoding = transcode.Encoding

	// WideChar is one platform wide character unit.
	WideChar = transcode.WideChar

	// WideWidth is the bit width of a wide character unit.
	WideWidth = transcode.WideWidth

	// Allocator supplies String buffers.
	Allocator = alloc.Allocator
)

// Re-export constants.
const (
	ModeReplace = codec.ModeReplace
	ModeStrict  = codec.ModeStrict

	RuneError = codec.RuneError
	MaxRune   = codec.MaxRune

	UTF8     = transcode.UTF8
	UTF16LE  = transcode.UTF16LE
	UTF16BE  = transcode.UTF16BE
	UTF16BOM = transcode.UTF16BOM
	UTF32LE  = transcode.UTF32LE
	UTF32BE  = transcode.UTF32BE
	Latin1   = transcode.Latin1
	ASCII    = transcode.ASCII
	EBCDIC   = transcode.EBCDIC

	Wide16   = transcode.Wide16
	Wide32   = transcode.Wide32
	WideBits = transcode.WideBits
)

// Engine builds Strings that share one configuration. It is immutable after
// New and safe for concurrent use.
type Engine struct {
	cfg    *config.Config
	logger *zap.Logger

	// Overrides applied on top of cfg.
	alloc alloc.Allocator
	mode  *codec.Mode
	wide  *transcode.WideWidth

	decoder *codec.Decoder
	opts    []u8string.Option
}

// New creates an Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.cfg == nil {
		e.cfg = config.Default()
	}

	if e.logger == nil {
		logger, err := e.cfg.Logger()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		e.logger = logger
	}

	if e.mode != nil {
		e.decoder = codec.NewDecoder(codec.WithMode(*e.mode), codec.WithLogger(e.logger))
	} else {
		d, err := e.cfg.Decoder(e.logger)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		e.decoder = d
	}

	if e.alloc == nil {
		a, err := e.cfg.Allocator()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		e.alloc = a
	}

	var wide transcode.WideWidth
	if e.wide != nil {
		wide = *e.wide
	} else {
		w, err := e.cfg.WideWidth()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		wide = w
	}
	if _, err := transcode.NewWideCodec(wide); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	e.opts = []u8string.Option{
		u8string.WithAllocator(e.alloc),
		u8string.WithWideWidth(wide),
		u8string.WithDecoder(e.decoder),
	}

	e.logger.Debug("engine created",
		zap.Stringer("mode", e.decoder.Mode()),
		zap.Stringer("wide", wide),
		zap.String("alloc", fmt.Sprintf("%T", e.alloc)),
	)
	return e, nil
}

// Load creates an Engine from configuration sources (see config.Load).
func Load(loadOpts []config.LoadOption, opts ...Option) (*Engine, error) {
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return nil, err
	}
	return New(append([]Option{WithConfig(cfg)}, opts...)...)
}

// Config returns the configuration the engine was built from.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Logger returns the engine logger.
func (e *Engine) Logger() *zap.Logger {
	return e.logger
}

// Decoder returns the engine decoder.
func (e *Engine) Decoder() *codec.Decoder {
	return e.decoder
}

// Options returns the String options the engine applies, followed by extra.
func (e *Engine) Options(extra ...StringOption) []StringOption {
	out := make([]StringOption, 0, len(e.opts)+len(extra))
	out = append(out, e.opts...)
	return append(out, extra...)
}

// New creates an empty String.
func (e *Engine) New(opts ...StringOption) *String {
	return u8string.New(e.Options(opts...)...)
}

// Decode admits raw bytes in the engine's decode mode.
func (e *Engine) Decode(b []byte, opts ...StringOption) (*String, error) {
	return u8string.Decode(b, e.Options(opts...)...)
}

// Sanitize creates a String from raw bytes, substituting U+FFFD regardless
// of the decode mode.
func (e *Engine) Sanitize(b []byte, opts ...StringOption) *String {
	return u8string.Sanitize(b, e.Options(opts...)...)
}

// FromString creates a String from well-formed UTF-8.
func (e *Engine) FromString(s string, opts ...StringOption) *String {
	return u8string.FromString(s, e.Options(opts...)...)
}

// FromUTF16 creates a String from UTF-16 code units.
func (e *Engine) FromUTF16(u []uint16, opts ...StringOption) *String {
	return u8string.FromUTF16(u, e.Options(opts...)...)
}

// FromUTF32 creates a String from UTF-32 code units.
func (e *Engine) FromUTF32(u []uint32, opts ...StringOption) *String {
	return u8string.FromUTF32(u, e.Options(opts...)...)
}

// FromWide creates a String from wide characters of the engine width.
func (e *Engine) FromWide(w []WideChar, opts ...StringOption) *String {
	return u8string.FromWide(w, e.Options(opts...)...)
}

// FromEncoded decodes b from a wire encoding.
func (e *Engine) FromEncoded(enc Encoding, b []byte, opts ...StringOption) (*String, error) {
	return u8string.FromEncoded(enc, b, e.Options(opts...)...)
}

// FromBytes creates a String from bytes the caller asserts are well-formed.
func (e *Engine) FromBytes(b []byte, opts ...StringOption) *String {
	return u8string.FromBytes(b, e.Options(opts...)...)
}

// FromRunes creates a String from code points.
func (e *Engine) FromRunes(rs []rune, opts ...StringOption) *String {
	return u8string.FromRunes(rs, e.Options(opts...)...)
}
