package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/people-csv-loader/internal/csvparser"
	"github.com/ginjaninja78/people-csv-loader/internal/types"
)

// yamlDocument is the layout of a YAML export.
type yamlDocument struct {
	Source      string           `yaml:"source,omitempty"`
	Summary     Summary          `yaml:"summary"`
	Departments []yamlDepartment `yaml:"departments"`
	People      []yamlPerson     `yaml:"people"`
}

type yamlDepartment struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

type yamlPerson struct {
	ID           int          `yaml:"id"`
	Name         string       `yaml:"name"`
	Gender       types.Gender `yaml:"gender"`
	BirthDate    string       `yaml:"birth_date"`
	DepartmentID int          `yaml:"department_id"`
	Salary       float64      `yaml:"salary"`
}

// WriteYAML writes the departments and people of a load as a YAML document.
func WriteYAML(w io.Writer, result *csvparser.LoadResult) error {
	doc := yamlDocument{
		Source:      result.SourceFile,
		Summary:     Summarize(result),
		Departments: make([]yamlDepartment, 0, len(result.Departments)),
		People:      make([]yamlPerson, 0, len(result.People)),
	}

	for _, d := range result.Departments {
		doc.Departments = append(doc.Departments, yamlDepartment{ID: d.ID, Name: d.Name})
	}
	for _, p := range result.People {
		doc.People = append(doc.People, yamlPerson{
			ID:           p.ID,
			Name:         p.Name,
			Gender:       p.Gender,
			BirthDate:    p.BirthDate.Format(types.BirthDateLayout),
			DepartmentID: p.DepartmentID,
			Salary:       p.Salary,
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
