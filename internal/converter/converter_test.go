package converter

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/people-csv-loader/internal/config"
	"github.com/ginjaninja78/people-csv-loader/internal/csvparser"
	"github.com/ginjaninja78/people-csv-loader/internal/validation"
)

const peopleCSV = "ID;Name;Gender;BirthDate;Department;Salary\n" +
	"1;John Smith;m;01.02.1990;Sales;1000.50\n" +
	"2;Jane Doe;f;15.07.1985;SALES;2000\n" +
	"3;Ivan;муж;03.03.1970;R&D;300\n"

func setup(t *testing.T, content, format string) (string, *config.MainConfig) {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "staff.csv")
	require.NoError(t, os.WriteFile(input, []byte(content), 0644))

	cfg := config.Default()
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.OutputFormat = format
	cfg.FileNameFormat = "{input}_{uuid}"
	return input, cfg
}

func TestRunFormats(t *testing.T) {
	testCases := []struct {
		format   string
		ext      string
		contains string
	}{
		{config.FormatText, ".txt", "Unique departments: 2"},
		{config.FormatXML, ".xml", `<people source="staff.csv">`},
		{config.FormatYAML, ".yaml", "unique_departments: 2"},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			input, cfg := setup(t, peopleCSV, tc.format)

			result := New(input, cfg, nil).Run()
			require.NoError(t, result.Error)
			assert.True(t, result.Success)
			assert.Equal(t, input, result.FilePath)
			assert.Empty(t, result.ErrorLog)

			assert.Equal(t, cfg.OutputDir, filepath.Dir(result.OutputFile))
			assert.True(t, strings.HasPrefix(filepath.Base(result.OutputFile), "staff_"))
			assert.Equal(t, tc.ext, filepath.Ext(result.OutputFile))

			content, err := os.ReadFile(result.OutputFile)
			require.NoError(t, err)
			assert.Contains(t, string(content), tc.contains)

			assert.Equal(t, 3, result.Stats.People)
			assert.Equal(t, 2, result.Stats.Departments)
			assert.Equal(t, 2, result.Stats.UniqueDepartments)
			assert.Greater(t, int64(result.Stats.ProcessingTime), int64(0))
		})
	}
}

func TestRunXLSX(t *testing.T) {
	input, cfg := setup(t, peopleCSV, config.FormatXLSX)

	result := New(input, cfg, nil).Run()
	require.NoError(t, result.Error)
	require.True(t, result.Success)

	f, err := excelize.OpenFile(result.OutputFile)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("People")
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestRunLoadFailure(t *testing.T) {
	input, cfg := setup(t, "1;A;m;01.01.1990;IT;1\n2;B;m;1990-01-01;IT;1\n", config.FormatXML)

	result := New(input, cfg, nil).Run()
	assert.False(t, result.Success)
	assert.Empty(t, result.OutputFile)
	require.Error(t, result.Error)
	assert.ErrorIs(t, result.Error, validation.ErrInvalidDate)
	assert.Contains(t, result.Error.Error(), "failed to load")

	require.NotEmpty(t, result.ErrorLog)
	content, err := os.ReadFile(result.ErrorLog)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Error Type:     invalid date")
	assert.Contains(t, string(content), "Line Number:    2")
	assert.Contains(t, string(content), "Field:          birthDate")
}

func TestRunMissingFile(t *testing.T) {
	_, cfg := setup(t, "", config.FormatText)

	result := New(filepath.Join(t.TempDir(), "absent.csv"), cfg, nil).Run()
	assert.False(t, result.Success)

	var accessErr *csvparser.FileAccessError
	assert.True(t, errors.As(result.Error, &accessErr))
	assert.True(t, errors.Is(result.Error, fs.ErrNotExist))
}

func TestErrorType(t *testing.T) {
	assert.Equal(t, "malformed column count", errorType(&validation.ColumnCountError{Line: 1}))
	assert.Equal(t, "invalid gender token", errorType(&validation.FieldError{Kind: validation.ErrInvalidGenderToken}))
	assert.Equal(t, "file access", errorType(&csvparser.FileAccessError{Path: "x", Err: fs.ErrNotExist}))
	assert.Equal(t, "export", errorType(errors.New("disk full")))
}
