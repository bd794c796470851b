// =============================================================================
// People CSV Loader - Validation Errors
// =============================================================================
//
// Every error the loader can raise for bad input is defined here. Errors are
// fatal: the first one aborts the load and is returned to the caller as is.
//
// MATCHING:
//   - errors.Is(err, ErrInvalidDate)            : match by kind
//   - errors.As(err, &fieldErr) / &columnErr    : inspect line, field, value
//
// =============================================================================

package validation

import (
	"errors"
	"fmt"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

var (
	// ErrMalformedColumnCount is returned when a data line has fewer columns
	// than the fixed schema requires.
	ErrMalformedColumnCount = errors.New("malformed column count")

	// ErrInvalidInteger is returned when an integer column cannot be parsed.
	ErrInvalidInteger = errors.New("invalid integer")

	// ErrInvalidDecimal is returned when a decimal column cannot be parsed.
	ErrInvalidDecimal = errors.New("invalid decimal")

	// ErrInvalidDate is returned when a date column does not match dd.MM.yyyy.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidGenderToken is returned for an unrecognized gender token.
	ErrInvalidGenderToken = errors.New("invalid gender token")
)

// =============================================================================
// FIELD ERROR
// =============================================================================

// FieldError reports a single column that failed normalization.
type FieldError struct {
	// Line is the 1-based physical line number in the input file.
	Line int

	// Field is the column label (id, salary, birthDate, gender).
	Field string

	// Value is the raw offending text.
	Value string

	// Hint is appended after the field label, e.g. "(expected dd.MM.yyyy)".
	Hint string

	// Kind is one of the Err* sentinels above.
	Kind error

	// Err is the underlying parse error, if any.
	Err error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	label := e.Field
	if e.Hint != "" {
		label += " " + e.Hint
	}
	return fmt.Sprintf("line %d: bad %s = %q", e.Line, label, e.Value)
}

// Is reports whether target is the kind of this error.
func (e *FieldError) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying parse error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// =============================================================================
// COLUMN COUNT ERROR
// =============================================================================

// ColumnCountError reports a data line with too few columns.
type ColumnCountError struct {
	Line     int
	Expected int
	Actual   int

	// Text is the trimmed line as read from the file.
	Text string
}

// Error implements the error interface.
func (e *ColumnCountError) Error() string {
	return fmt.Sprintf("line %d: expected %d columns, got %d. Line: %s",
		e.Line, e.Expected, e.Actual, e.Text)
}

// Is matches ErrMalformedColumnCount.
func (e *ColumnCountError) Is(target error) bool {
	return target == ErrMalformedColumnCount
}
