package u8string

import (
	"fmt"
	"sync/atomic"
)

var debugChecks atomic.Bool

// SetDebugChecks turns contract checking on or off at run time. Builds
// tagged u8debug always check.
func SetDebugChecks(on bool) {
	debugChecks.Store(on)
}

// DebugChecks reports whether contract violations panic.
func DebugChecks() bool {
	return debugBuild || debugChecks.Load()
}

func violation(op, format string, args ...any) {
	panic(&ContractError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
