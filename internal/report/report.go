// =============================================================================
// People CSV Loader - Report Module
// =============================================================================
//
// This module turns a load result into human-readable output.
//
// TEXT REPORT LAYOUT:
//   Person{id=1, name='John', gender=MALE, department=Department{id=1, name='Sales'}, salary=1000.5, birthDate=1990-02-01}
//   <blank line>
//   ...
//   Loaded people: 2
//   Unique departments: 1
//
// =============================================================================

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ginjaninja78/people-csv-loader/internal/csvparser"
	"github.com/ginjaninja78/people-csv-loader/internal/types"
)

// =============================================================================
// SUMMARY
// =============================================================================

// Summary holds the counts printed at the end of a report.
type Summary struct {
	// People is the number of loaded records.
	People int `yaml:"people"`

	// UniqueDepartments is the number of distinct departments referenced
	// by the loaded people.
	UniqueDepartments int `yaml:"unique_departments"`
}

// Summarize counts people and the distinct departments they reference.
func Summarize(result *csvparser.LoadResult) Summary {
	seen := make(map[int]struct{}, len(result.Departments))
	for _, p := range result.People {
		seen[p.DepartmentID] = struct{}{}
	}
	return Summary{
		People:            len(result.People),
		UniqueDepartments: len(seen),
	}
}

// =============================================================================
// TEXT REPORT
// =============================================================================

// WriteText prints every person followed by a blank line, then the summary.
//
// PARAMETERS:
//   - w: The destination (usually stdout).
//   - result: A successful load result.
//
// RETURNS:
//   - The first write error, if any.
func WriteText(w io.Writer, result *csvparser.LoadResult) error {
	for _, p := range result.People {
		if _, err := fmt.Fprintf(w, "%s\n\n", FormatPerson(p, result.Department(p))); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	summary := Summarize(result)
	if _, err := fmt.Fprintf(w, "Loaded people: %d\nUnique departments: %d\n",
		summary.People, summary.UniqueDepartments); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// FormatPerson renders one record on a single line.
func FormatPerson(p types.Person, dep types.Department) string {
	var sb strings.Builder
	sb.WriteString("Person{id=")
	sb.WriteString(strconv.Itoa(p.ID))
	sb.WriteString(", name='")
	sb.WriteString(p.Name)
	sb.WriteString("', gender=")
	sb.WriteString(p.Gender.String())
	sb.WriteString(", department=")
	sb.WriteString(dep.String())
	sb.WriteString(", salary=")
	sb.WriteString(FormatSalary(p.Salary))
	sb.WriteString(", birthDate=")
	sb.WriteString(p.BirthDate.Format("2006-01-02"))
	sb.WriteString("}")
	return sb.String()
}

// FormatSalary prints the shortest exact decimal form and always keeps
// one fractional digit: 1000 -> "1000.0", 1000.5 -> "1000.5".
// Exponent notation is never used, so 1e7 prints as "10000000.0" and
// 0.0001 as "0.0001".
func FormatSalary(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
