package xlsxwriter

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/people-csv-loader/internal/csvparser"
)

func TestWrite(t *testing.T) {
	result, err := csvparser.NewLoader(csvparser.Settings{}, nil).Load(strings.NewReader(
		"1;John Smith;m;01.02.1990;Sales;1000.50\n" +
			"2;Jane Doe;f;15.07.1985;HR;2000\n" +
			"3;Ivan;муж;03.03.1970;sales;300\n"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "people.xlsx")
	require.NoError(t, Write(path, result))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{PeopleSheet, DepartmentsSheet}, f.GetSheetList())

	t.Run("People sheet", func(t *testing.T) {
		rows, err := f.GetRows(PeopleSheet)
		require.NoError(t, err)
		require.Len(t, rows, 4)

		assert.Equal(t, []string{"ID", "Name", "Gender", "BirthDate", "Department", "Salary"}, rows[0])
		assert.Equal(t, []string{"1", "John Smith", "MALE", "01.02.1990", "Sales", "1000.5"}, rows[1])
		assert.Equal(t, []string{"2", "Jane Doe", "FEMALE", "15.07.1985", "HR", "2000"}, rows[2])
		assert.Equal(t, "Sales", rows[3][4])
	})

	t.Run("Departments sheet", func(t *testing.T) {
		rows, err := f.GetRows(DepartmentsSheet)
		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"ID", "Name"},
			{"1", "Sales"},
			{"2", "HR"},
		}, rows)
	})

	t.Run("Header is styled", func(t *testing.T) {
		header, err := f.GetCellStyle(PeopleSheet, "F1")
		require.NoError(t, err)
		body, err := f.GetCellStyle(PeopleSheet, "F2")
		require.NoError(t, err)
		assert.NotEqual(t, body, header)
	})
}

func TestWriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, Write(path, &csvparser.LoadResult{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PeopleSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteBadPath(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "missing", "dir", "people.xlsx"), &csvparser.LoadResult{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save workbook")
}
