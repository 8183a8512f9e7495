package board

import (
	"errors"
	"fmt"
)

// ConfigError reports a malformed board configuration detected at
// construction time, before any rule runs. These are caller faults
// (bad clue arrays, out-of-range hints, broken fleet), not properties
// of the puzzle itself: an unsatisfiable but well-formed puzzle is not
// a ConfigError.
type ConfigError struct {
	// Code identifies the fault category.
	Code ConfigErrorCode

	// Message is a human-readable description.
	Message string

	// Row and Col locate the fault for positional errors; both are -1
	// for non-positional faults.
	Row, Col int
}

// ConfigErrorCode categorizes construction faults.
type ConfigErrorCode string

const (
	// ErrCodeDimension indicates a non-positive grid dimension.
	ErrCodeDimension ConfigErrorCode = "BAD_DIMENSION"

	// ErrCodeClueLength indicates a clue array whose length does not
	// match the grid.
	ErrCodeClueLength ConfigErrorCode = "BAD_CLUE_LENGTH"

	// ErrCodeClueRange indicates a clue outside [0, line length].
	ErrCodeClueRange ConfigErrorCode = "BAD_CLUE_RANGE"

	// ErrCodeFleet indicates an empty fleet or a non-positive ship length.
	ErrCodeFleet ConfigErrorCode = "BAD_FLEET"

	// ErrCodeHintIndex indicates a hint outside the grid.
	ErrCodeHintIndex ConfigErrorCode = "BAD_HINT_INDEX"

	// ErrCodeHintState indicates a hint with an Unknown state or a
	// shape on a non-ship hint.
	ErrCodeHintState ConfigErrorCode = "BAD_HINT_STATE"

	// ErrCodeTotals indicates mismatched clue/fleet totals. Only
	// reported by VerifyTotals; construction accepts such boards so
	// the engine can surface them as unsatisfiable instead.
	ErrCodeTotals ConfigErrorCode = "BAD_TOTALS"
)

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Row >= 0 || e.Col >= 0 {
		return fmt.Sprintf("%s: %s (row=%d, col=%d)", e.Code, e.Message, e.Row, e.Col)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func configErr(code ConfigErrorCode, format string, args ...any) *ConfigError {
	return &ConfigError{Code: code, Message: fmt.Sprintf(format, args...), Row: -1, Col: -1}
}

func configErrAt(code ConfigErrorCode, row, col int, format string, args ...any) *ConfigError {
	return &ConfigError{Code: code, Message: fmt.Sprintf(format, args...), Row: row, Col: col}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// ErrIllegalWrite is returned by Set for any transition other than
// Unknown → Ship/Sea. Such a write is a programming error in the
// caller, never a property of the puzzle.
var ErrIllegalWrite = errors.New("illegal cell write: resolved cells are immutable")
