package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ginjaninja78/people-csv-loader/internal/csvparser"
	"github.com/ginjaninja78/people-csv-loader/internal/types"
)

func sampleResult(t *testing.T) *csvparser.LoadResult {
	t.Helper()
	result, err := csvparser.NewLoader(csvparser.Settings{}, nil).Load(strings.NewReader(
		"ID;Name;Gender;BirthDate;Department;Salary\n" +
			"1;John Smith;m;01.02.1990;Sales;1000.50\n" +
			"2;Jane Doe;f;15.07.1985; sales ;2000\n" +
			"3;Ivan;муж;03.03.1970;R&D;100000\n"))
	require.NoError(t, err)
	return result
}

func TestSummarize(t *testing.T) {
	t.Run("Distinct referenced departments", func(t *testing.T) {
		assert.Equal(t, Summary{People: 3, UniqueDepartments: 2}, Summarize(sampleResult(t)))
	})

	t.Run("Empty result", func(t *testing.T) {
		assert.Equal(t, Summary{}, Summarize(&csvparser.LoadResult{}))
	})
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleResult(t)))

	want := "Person{id=1, name='John Smith', gender=MALE, department=Department{id=1, name='Sales'}, salary=1000.5, birthDate=1990-02-01}\n\n" +
		"Person{id=2, name='Jane Doe', gender=FEMALE, department=Department{id=1, name='Sales'}, salary=2000.0, birthDate=1985-07-15}\n\n" +
		"Person{id=3, name='Ivan', gender=MALE, department=Department{id=2, name='R&D'}, salary=100000.0, birthDate=1970-03-03}\n\n" +
		"Loaded people: 3\n" +
		"Unique departments: 2\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, &csvparser.LoadResult{}))
	assert.Equal(t, "Loaded people: 0\nUnique departments: 0\n", buf.String())
}

func TestFormatSalary(t *testing.T) {
	for in, want := range map[float64]string{
		0:       "0.0",
		1000:    "1000.0",
		1000.5:  "1000.5",
		-15.25:  "-15.25",
		1234.56: "1234.56",
		1e7:     "10000000.0",
		0.0001:  "0.0001",
	} {
		assert.Equal(t, want, FormatSalary(in), in)
	}
}

func TestFormatPerson(t *testing.T) {
	p := types.Person{
		ID:        9,
		Name:      "Anna",
		Gender:    types.GenderFemale,
		Salary:    1.5,
		BirthDate: time.Date(2001, time.December, 9, 0, 0, 0, 0, time.UTC),
	}
	got := FormatPerson(p, types.Department{ID: 4, Name: "HR"})
	assert.Equal(t, "Person{id=9, name='Anna', gender=FEMALE, department=Department{id=4, name='HR'}, salary=1.5, birthDate=2001-12-09}", got)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, sampleResult(t)))

	var doc struct {
		Summary struct {
			People            int `yaml:"people"`
			UniqueDepartments int `yaml:"unique_departments"`
		} `yaml:"summary"`
		Departments []struct {
			ID   int    `yaml:"id"`
			Name string `yaml:"name"`
		} `yaml:"departments"`
		People []struct {
			ID           int     `yaml:"id"`
			Name         string  `yaml:"name"`
			Gender       string  `yaml:"gender"`
			BirthDate    string  `yaml:"birth_date"`
			DepartmentID int     `yaml:"department_id"`
			Salary       float64 `yaml:"salary"`
		} `yaml:"people"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, 3, doc.Summary.People)
	assert.Equal(t, 2, doc.Summary.UniqueDepartments)

	require.Len(t, doc.Departments, 2)
	assert.Equal(t, "Sales", doc.Departments[0].Name)
	assert.Equal(t, 2, doc.Departments[1].ID)

	require.Len(t, doc.People, 3)
	assert.Equal(t, "Jane Doe", doc.People[1].Name)
	assert.Equal(t, "FEMALE", doc.People[1].Gender)
	assert.Equal(t, "15.07.1985", doc.People[1].BirthDate)
	assert.Equal(t, 1, doc.People[1].DepartmentID)
	assert.Equal(t, 1000.5, doc.People[0].Salary)
}
