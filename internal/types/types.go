// =============================================================================
// People CSV Loader - Shared Types
// =============================================================================
//
// This package contains the domain types produced by a load and consumed by
// every output module. Types defined here are used by:
//   - csvparser
//   - registry
//   - validation
//   - report, xmlwriter, xlsxwriter
//
// Keeping them in a leaf package avoids import cycles between the loader and
// the writers.
//
// =============================================================================

package types

import (
	"fmt"
	"time"
)

// =============================================================================
// GENDER
// =============================================================================

// Gender is the normalized gender of a person.
// The zero value GenderNone means "absent" and is never produced from text.
type Gender int

const (
	// GenderNone is the absent gender.
	GenderNone Gender = iota

	// GenderMale is produced by tokens such as "m", "male" or "муж".
	GenderMale

	// GenderFemale is produced by tokens such as "f", "female" or "жен".
	GenderFemale
)

// String returns MALE, FEMALE or an empty string for GenderNone.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "MALE"
	case GenderFemale:
		return "FEMALE"
	default:
		return ""
	}
}

// MarshalText lets encoders (YAML, XML attributes) print the enum name.
func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// =============================================================================
// DEPARTMENT
// =============================================================================

// Department is a deduplicated organisational unit.
type Department struct {
	// ID is assigned in first-seen order, starting at 1.
	ID int

	// Name is the display text as first encountered (trimmed).
	Name string
}

// String mirrors the report layout: Department{id=1, name='R&D'}.
func (d Department) String() string {
	return fmt.Sprintf("Department{id=%d, name='%s'}", d.ID, d.Name)
}

// =============================================================================
// PERSON
// =============================================================================

// Person is a single record loaded from the input file.
type Person struct {
	// ID is parsed verbatim from column 0. It is not checked for
	// uniqueness or sign.
	ID int

	// Name is the trimmed value of column 1.
	Name string

	// Gender is the normalized value of column 2.
	Gender Gender

	// DepartmentID references a Department in the load result.
	// Many persons share the same department.
	DepartmentID int

	// Salary is the decimal value of column 5.
	Salary float64

	// BirthDate is the calendar date of column 3 at UTC midnight.
	BirthDate time.Time
}

// BirthDateLayout is the Go layout of the dd.MM.yyyy birth date column.
const BirthDateLayout = "02.01.2006"
