package csvparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLine(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "plain fields",
			in:   "1;John;m;01.01.1990;IT;1000",
			want: []string{"1", "John", "m", "01.01.1990", "IT", "1000"},
		},
		{
			name: "quoted delimiter and escaped quotes",
			in:   `1;"Smith; J.";m;01.01.1990;"R&D ""West""";1000`,
			want: []string{"1", "Smith; J.", "m", "01.01.1990", `R&D "West"`, "1000"},
		},
		{
			name: "fields are trimmed",
			in:   "  1 ;  John Doe  ; m ",
			want: []string{"1", "John Doe", "m"},
		},
		{
			name: "empty line yields one empty field",
			in:   "",
			want: []string{""},
		},
		{
			name: "trailing delimiter yields empty last field",
			in:   "a;b;",
			want: []string{"a", "b", ""},
		},
		{
			name: "unterminated quote swallows the rest of the line",
			in:   `1;"open;still open`,
			want: []string{"1", "open;still open"},
		},
		{
			name: "doubled quote outside quotes toggles twice",
			in:   `a""b;c`,
			want: []string{"ab", "c"},
		},
		{
			name: "quotes in the middle of a field",
			in:   `R&D "East";x`,
			want: []string{"R&D East", "x"},
		},
		{
			name: "cyrillic text",
			in:   "2;Иван;м;02.02.1985;Отдел продаж;1500,50",
			want: []string{"2", "Иван", "м", "02.02.1985", "Отдел продаж", "1500,50"},
		},
		{
			name: "only a quoted empty field",
			in:   `""`,
			want: []string{""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitLine(tc.in, Delimiter))
		})
	}
}

func TestSplitLineOtherDelimiter(t *testing.T) {
	got := SplitLine(`1,"Smith, J.",m`, ',')
	assert.Equal(t, []string{"1", "Smith, J.", "m"}, got)
}

func TestLooksLikeHeader(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"ID;Name;Gender;BirthDate;Department;Salary", true},
		{"id;name;gender;birth;department;salary", true},
		{"ИД;Имя;Пол;Дата рождения;Подразделение;Зарплата", true},
		{"id;имя;gender;birth;Подразделение;salary", true},
		{"id;name;gender;birth;division;salary", false},
		{"1;John;m;01.01.1990;IT;1000", false},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, LooksLikeHeader(tc.in))
		})
	}
}
