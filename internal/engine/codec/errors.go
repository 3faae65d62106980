package codec

import (
	"errors"
	"fmt"
)

// Errors returned by validation and strict decoding.
var (
	// ErrMalformed indicates a byte sequence that is not well-formed UTF-8.
	ErrMalformed = errors.New("malformed UTF-8")

	// ErrInvalidMode indicates an unknown decode mode name.
	ErrInvalidMode = errors.New("invalid decode mode")
)

// MalformedError reports the first malformed sequence found in an input.
type MalformedError struct {
	// Offset is the byte offset of the offending sequence.
	Offset int
	// Byte is the byte found at Offset.
	Byte byte
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed UTF-8 at byte offset %d (0x%02X)", e.Offset, e.Byte)
}

// Unwrap returns ErrMalformed so callers can use errors.Is.
func (e *MalformedError) Unwrap() error {
	return ErrMalformed
}
