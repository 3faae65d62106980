package u8string

import (
	"errors"
	"fmt"
)

// ErrContract is wrapped by every ContractError.
var ErrContract = errors.New("contract violation")

// ContractError describes a misuse of a String or Cursor detected by debug
// checks, such as dereferencing an exhausted cursor or mixing cursors from
// different strings. It is raised with panic, never returned.
type ContractError struct {
	Op     string
	Detail string
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("u8string: %s: %s", e.Op, e.Detail)
}

// Unwrap returns ErrContract.
func (e *ContractError) Unwrap() error {
	return ErrContract
}
