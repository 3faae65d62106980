package codec

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Mode selects how a Decoder treats malformed input.
type Mode uint8

const (
	// ModeReplace substitutes RuneError for each malformed byte and carries on.
	// It matches the behaviour of the package-level functions.
	ModeReplace Mode = iota

	// ModeStrict stops at the first malformed sequence and reports it.
	ModeStrict
)

// String returns the name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeReplace:
		return "replace"
	case ModeStrict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses a mode name. The empty string selects ModeReplace.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace", "substitute":
		return ModeReplace, nil
	case "strict":
		return ModeStrict, nil
	default:
		return ModeReplace, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithMode sets the decode mode.
func WithMode(m Mode) DecoderOption {
	return func(d *Decoder) {
		d.mode = m
	}
}

// WithLogger sets the logger used to report substitutions and failures.
func WithLogger(logger *zap.Logger) DecoderOption {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Decoder decodes UTF-8 according to a Mode. A Decoder holds no per-input
// state and is safe for concurrent use.
type Decoder struct {
	mode   Mode
	logger *zap.Logger
}

// NewDecoder creates a Decoder. Without options it substitutes silently.
func NewDecoder(opts ...DecoderOption) *Decoder {
	d := &Decoder{
		mode:   ModeReplace,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Mode returns the decoder's mode.
func (d *Decoder) Mode() Mode {
	return d.mode
}

// Decode decodes the first sequence of p. In ModeStrict a malformed sequence
// returns (RuneError, 1, *MalformedError); in ModeReplace the error is nil.
func (d *Decoder) Decode(p []byte) (rune, int, error) {
	return d.decodeAt(p, 0)
}

// Runes decodes all of p. In ModeStrict the runes decoded before the failure
// are returned alongside the error.
func (d *Decoder) Runes(p []byte) ([]rune, error) {
	out := make([]rune, 0, len(p))
	for i := 0; i < len(p); {
		r, size, err := d.decodeAt(p, i)
		if err != nil {
			return out, err
		}
		out = append(out, r)
		i += size
	}
	return out, nil
}

// Count returns the number of code points in p. In ModeStrict it fails on the
// first malformed sequence.
func (d *Decoder) Count(p []byte) (int, error) {
	if d.mode == ModeReplace {
		return Length(p), nil
	}
	if err := Validate(p); err != nil {
		d.logFailure(err)
		return 0, err
	}
	return Length(p), nil
}

// Sanitize returns p with malformed sequences replaced by RuneError. In
// ModeStrict it returns the first failure instead.
func (d *Decoder) Sanitize(p []byte) ([]byte, error) {
	if err := Validate(p); err != nil {
		if d.mode == ModeStrict {
			d.logFailure(err)
			return nil, err
		}
		d.logger.Debug("sanitizing malformed input", zap.Error(err), zap.Int("bytes", len(p)))
		return Sanitize(p), nil
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

func (d *Decoder) decodeAt(p []byte, i int) (rune, int, error) {
	r, size := DecodeAt(p, i)
	if r != RuneError || size != 1 {
		return r, size, nil
	}
	if d.mode == ModeStrict {
		err := &MalformedError{Offset: i, Byte: p[i]}
		d.logFailure(err)
		return RuneError, 1, err
	}
	if ce := d.logger.Check(zap.DebugLevel, "substituted malformed sequence"); ce != nil {
		ce.Write(zap.Int("offset", i), zap.Uint8("byte", p[i]))
	}
	return RuneError, 1, nil
}

func (d *Decoder) logFailure(err error) {
	d.logger.Debug("rejected malformed input", zap.Error(err), zap.Stringer("mode", d.mode))
}
