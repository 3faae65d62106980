package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrInvalidConfig indicates the configuration could not be turned into
	// engine components.
	ErrInvalidConfig = errors.New("invalid engine configuration")
)
