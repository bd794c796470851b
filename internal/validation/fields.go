// =============================================================================
// People CSV Loader - Field Normalizers
// =============================================================================
//
// Pure functions converting a raw column value into a typed value. Each one
// trims its input first and fails with a *FieldError that names the line,
// the field label and the raw text.
//
// SUPPORTED FIELD TYPES:
//   - integer : base 10, optional sign, 32-bit range
//   - decimal : "." or "," as decimal separator, finite, no thousands separators
//   - date    : strict dd.MM.yyyy
//   - gender  : see gender.go
//
// =============================================================================

package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ginjaninja78/people-csv-loader/internal/types"
)

var errNotFinite = errors.New("not a finite number")

// ParseInt parses a trimmed base-10 integer.
//
// PARAMETERS:
//   - raw: The column value.
//   - field: The column label used in the error message.
//   - line: The 1-based line number used in the error message.
//
// RETURNS:
//   - The parsed integer.
//   - A *FieldError of kind ErrInvalidInteger on empty or non-integer input.
func ParseInt(raw, field string, line int) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, &FieldError{
			Line:  line,
			Field: field,
			Value: raw,
			Kind:  ErrInvalidInteger,
			Err:   err,
		}
	}
	return int(v), nil
}

// IsInt reports whether raw would be accepted by ParseInt.
func IsInt(raw string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	return err == nil
}

// ParseDecimal parses a trimmed decimal number. Every comma is treated as a
// decimal separator, so "1234,56" and "1234.56" yield the same value.
// Infinities and NaN ("inf", "Infinity", "NaN", ...) are rejected.
func ParseDecimal(raw, field string, line int) (float64, error) {
	v := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")

	f, err := strconv.ParseFloat(v, 64)
	if err == nil && (math.IsInf(f, 0) || math.IsNaN(f)) {
		err = errNotFinite
	}
	if err != nil {
		return 0, &FieldError{
			Line:  line,
			Field: field,
			Value: raw,
			Kind:  ErrInvalidDecimal,
			Err:   err,
		}
	}
	return f, nil
}

// ParseDate parses a trimmed dd.MM.yyyy date.
//
// The layout is fixed: two-digit day, two-digit month and four-digit year
// separated by periods. Out-of-range days ("31.02.2000") are rejected.
func ParseDate(raw, field string, line int) (time.Time, error) {
	t, err := time.Parse(types.BirthDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, &FieldError{
			Line:  line,
			Field: field,
			Value: raw,
			Hint:  "(expected dd.MM.yyyy)",
			Kind:  ErrInvalidDate,
			Err:   err,
		}
	}
	return t, nil
}
