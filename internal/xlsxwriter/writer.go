// =============================================================================
// People CSV Loader - XLSX Writer
// =============================================================================
//
// This module exports a load result as an Excel workbook.
//
// WORKBOOK LAYOUT:
//
//   Sheet "People"
//   | ID | Name       | Gender | BirthDate  | Department | Salary |
//   |----|------------|--------|------------|------------|--------|
//   | 1  | John Smith | MALE   | 01.02.1990 | Sales      | 1000.5 |
//
//   Sheet "Departments"
//   | ID | Name  |
//   |----|-------|
//   | 1  | Sales |
//
// The header row of both sheets is bold. ID and Salary are numeric cells.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/people-csv-loader/internal/csvparser"
	"github.com/ginjaninja78/people-csv-loader/internal/types"
)

// Sheet names of the exported workbook.
const (
	PeopleSheet      = "People"
	DepartmentsSheet = "Departments"
)

var (
	peopleHeader      = []interface{}{"ID", "Name", "Gender", "BirthDate", "Department", "Salary"}
	departmentsHeader = []interface{}{"ID", "Name"}
)

// Write saves the people and departments of a load into an XLSX file.
//
// PARAMETERS:
//   - path: The destination file. It is created or overwritten.
//   - result: A successful load result.
//
// RETURNS:
//   - An error if the workbook cannot be built or saved.
func Write(path string, result *csvparser.LoadResult) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the People sheet.
	if err := f.SetSheetName(f.GetSheetName(0), PeopleSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(DepartmentsSheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", DepartmentsSheet, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writePeople(f, result, headerStyle); err != nil {
		return err
	}
	if err := writeDepartments(f, result.Departments, headerStyle); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writePeople fills the People sheet, one row per person in file order.
func writePeople(f *excelize.File, result *csvparser.LoadResult, headerStyle int) error {
	if err := writeHeader(f, PeopleSheet, peopleHeader, headerStyle); err != nil {
		return err
	}

	for i, p := range result.People {
		row := []interface{}{
			p.ID,
			p.Name,
			p.Gender.String(),
			p.BirthDate.Format(types.BirthDateLayout),
			result.Department(p).Name,
			p.Salary,
		}
		if err := setRow(f, PeopleSheet, i+2, row); err != nil {
			return err
		}
	}

	return f.SetColWidth(PeopleSheet, "B", "B", 30)
}

// writeDepartments fills the Departments sheet in first-seen order.
func writeDepartments(f *excelize.File, departments []types.Department, headerStyle int) error {
	if err := writeHeader(f, DepartmentsSheet, departmentsHeader, headerStyle); err != nil {
		return err
	}

	for i, d := range departments {
		if err := setRow(f, DepartmentsSheet, i+2, []interface{}{d.ID, d.Name}); err != nil {
			return err
		}
	}

	return f.SetColWidth(DepartmentsSheet, "B", "B", 30)
}

// writeHeader writes the header row and makes it bold.
func writeHeader(f *excelize.File, sheet string, header []interface{}, style int) error {
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return fmt.Errorf("failed to compute header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("failed to style header of %s: %w", sheet, err)
	}
	return nil
}

// setRow writes values starting at column A of the given 1-based row.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}
