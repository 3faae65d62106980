package config

import (
	"errors"
	"fmt"

	"github.com/dshills/u8text/internal/engine/codec"
)

// Errors returned by configuration validation.
var (
	// ErrInvalidMode indicates an unknown decode mode. It is
	// codec.ErrInvalidMode.
	ErrInvalidMode = codec.ErrInvalidMode

	// ErrInvalidStrategy indicates an unknown allocator strategy.
	ErrInvalidStrategy = errors.New("invalid allocator strategy")

	// ErrInvalidWidth indicates a wide width other than 0, 16 or 32.
	ErrInvalidWidth = errors.New("invalid wide width")

	// ErrInvalidLevel indicates an unknown log level.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidPageSize indicates a negative page size.
	ErrInvalidPageSize = errors.New("invalid page size")
)

// ValidationError describes a setting that failed validation.
type ValidationError struct {
	// Path is the dot-separated setting path.
	Path string
	// Value is the rejected value.
	Value any
	// Err describes the failure and wraps one of the sentinels.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s = %v: %v", e.Path, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
