// =============================================================================
// People CSV Loader - Record Loader
// =============================================================================
//
// This module reads a people file and turns every data line into a typed
// Person record. It drives the tokenizer, the field normalizers and the
// department registry.
//
// INPUT FORMAT:
//   id;name;gender;birthDate;department;salary
//   - one record per physical line, ";" as delimiter
//   - fields may be quoted with "..." and "" is a literal quote
//   - an optional header may appear on the first line
//
// LOADING PROCESS:
//   1. Resolve the input encoding and open the file
//   2. Read physical lines (\n, \r\n or \r), counting every one of them
//   3. Skip blank lines and a header on line 1
//   4. Tokenize, check the column count, normalize each column
//   5. Resolve the department and append the person in file order
//
// ERROR HANDLING:
//   The first bad line aborts the whole load. No partial result is returned.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ginjaninja78/people-csv-loader/internal/registry"
	"github.com/ginjaninja78/people-csv-loader/internal/types"
	"github.com/ginjaninja78/people-csv-loader/internal/validation"
)

// =============================================================================
// COLUMN LAYOUT
// =============================================================================

// Column positions of the fixed schema.
const (
	ColumnID = iota
	ColumnName
	ColumnGender
	ColumnBirthDate
	ColumnDepartment
	ColumnSalary

	// MinColumns is the number of columns every data line must have.
	// Extra columns are ignored.
	MinColumns
)

// MaxLineLength is the longest physical line the loader accepts.
const MaxLineLength = 16 * 1024 * 1024

// =============================================================================
// SETTINGS AND RESULT
// =============================================================================

// Settings controls how the input file is read.
type Settings struct {
	// Encoding is the character encoding of the input file.
	// Empty means UTF-8 (a leading byte-order mark is dropped).
	Encoding string
}

// LoadResult is the outcome of a successful load.
type LoadResult struct {
	// SourceFile is the path of the loaded file, empty for readers.
	SourceFile string

	// People contains the records in file order.
	People []types.Person

	// Departments contains every distinct department in first-seen order.
	// Person.DepartmentID is an index into this slice (ID 1 is element 0).
	Departments []types.Department
}

// Department returns the department a person belongs to.
func (r *LoadResult) Department(p types.Person) types.Department {
	if p.DepartmentID < 1 || p.DepartmentID > len(r.Departments) {
		return types.Department{}
	}
	return r.Departments[p.DepartmentID-1]
}

// FileAccessError reports a failure to open or read the input file.
type FileAccessError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying I/O error (fs.ErrNotExist, ...).
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// =============================================================================
// LOADER
// =============================================================================

// Loader loads people files. A Loader holds no per-load state and can be
// reused; each call gets its own department registry.
type Loader struct {
	settings Settings
	logger   *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(settings Settings, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		settings: settings,
		logger:   logger,
	}
}

// LoadPeopleFromFile loads a UTF-8 people file with default settings.
//
// PARAMETERS:
//   - path: The path to the input file.
//
// RETURNS:
//   - The people in file order and the departments they reference.
//   - The first error encountered; no partial result is returned.
func LoadPeopleFromFile(path string) (*LoadResult, error) {
	return NewLoader(Settings{}, nil).LoadFile(path)
}

// LoadFile opens, fully reads and closes the file at path.
func (l *Loader) LoadFile(path string) (*LoadResult, error) {
	enc, err := lookupEncoding(l.settings.Encoding)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer file.Close()

	return l.load(newDecoder(file, enc), path)
}

// Load reads people from r using the configured encoding.
func (l *Loader) Load(r io.Reader) (*LoadResult, error) {
	enc, err := lookupEncoding(l.settings.Encoding)
	if err != nil {
		return nil, err
	}
	return l.load(newDecoder(r, enc), "")
}

// load runs the line loop.
func (l *Loader) load(r io.Reader, source string) (*LoadResult, error) {
	startTime := time.Now()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	scanner.Split(scanLines)

	reg := registry.New()
	people := make([]types.Person, 0, 64)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		person, ok, err := l.parseLine(line, lineNo, reg)
		if err != nil {
			return nil, err
		}
		if ok {
			people = append(people, person)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileAccessError{Path: sourceName(source), Err: err}
	}

	l.logger.Info("loaded people file",
		zap.String("file", sourceName(source)),
		zap.Int("lines", lineNo),
		zap.Int("people", len(people)),
		zap.Int("departments", reg.Len()),
		zap.Duration("elapsed", time.Since(startTime)),
	)

	return &LoadResult{
		SourceFile:  source,
		People:      people,
		Departments: reg.All(),
	}, nil
}

// scanLines is a bufio.SplitFunc for physical lines. A line ends at "\n",
// "\r\n" or a lone "\r"; the terminator is not part of the token.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// "\r" as the last buffered byte may be the first half of "\r\n".
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// parseLine turns one trimmed line into a person.
//
// RETURNS:
//   - The person and true for a data line.
//   - false for a skipped line (blank or header).
//   - An error for a malformed line.
func (l *Loader) parseLine(line string, lineNo int, reg *registry.Registry) (types.Person, bool, error) {
	if line == "" {
		l.logger.Debug("skipping blank line", zap.Int("line", lineNo))
		return types.Person{}, false, nil
	}

	if lineNo == 1 && LooksLikeHeader(line) {
		l.logger.Debug("skipping header line", zap.Int("line", lineNo), zap.String("text", line))
		return types.Person{}, false, nil
	}

	cols := SplitLine(line, Delimiter)
	if len(cols) < MinColumns {
		return types.Person{}, false, &validation.ColumnCountError{
			Line:     lineNo,
			Expected: MinColumns,
			Actual:   len(cols),
			Text:     line,
		}
	}

	// A first line whose id is not a number is a header the keyword check
	// did not recognize.
	if lineNo == 1 && !validation.IsInt(cols[ColumnID]) {
		l.logger.Debug("skipping header line with non-numeric id", zap.Int("line", lineNo), zap.String("text", line))
		return types.Person{}, false, nil
	}

	person, err := parseRecord(cols, lineNo)
	if err != nil {
		return types.Person{}, false, err
	}

	dep, created := reg.Resolve(cols[ColumnDepartment])
	if created {
		l.logger.Debug("new department",
			zap.Int("id", dep.ID),
			zap.String("name", dep.Name),
			zap.Int("line", lineNo),
		)
	}
	person.DepartmentID = dep.ID

	return person, true, nil
}

// parseRecord normalizes the columns of a data line in column order.
// The department is resolved by the caller.
func parseRecord(cols []string, lineNo int) (types.Person, error) {
	id, err := validation.ParseInt(cols[ColumnID], "id", lineNo)
	if err != nil {
		return types.Person{}, err
	}

	gender, err := validation.ParseGender(cols[ColumnGender], lineNo)
	if err != nil {
		return types.Person{}, err
	}

	birthDate, err := validation.ParseDate(cols[ColumnBirthDate], "birthDate", lineNo)
	if err != nil {
		return types.Person{}, err
	}

	salary, err := validation.ParseDecimal(cols[ColumnSalary], "salary", lineNo)
	if err != nil {
		return types.Person{}, err
	}

	return types.Person{
		ID:        id,
		Name:      strings.TrimSpace(cols[ColumnName]),
		Gender:    gender,
		Salary:    salary,
		BirthDate: birthDate,
	}, nil
}

// sourceName labels a reader without a path in logs and errors.
func sourceName(source string) string {
	if source == "" {
		return "<reader>"
	}
	return source
}
