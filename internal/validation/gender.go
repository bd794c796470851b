package validation

import (
	"strings"

	"github.com/ginjaninja78/people-csv-loader/internal/types"
)

// genderTokens maps every recognized lowercase token to its gender.
// Add a language by adding rows; the parser does not change.
var genderTokens = map[string]types.Gender{
	"m":       types.GenderMale,
	"male":    types.GenderMale,
	"man":     types.GenderMale,
	"м":       types.GenderMale,
	"муж":     types.GenderMale,
	"мужчина": types.GenderMale,

	"f":       types.GenderFemale,
	"female":  types.GenderFemale,
	"woman":   types.GenderFemale,
	"ж":       types.GenderFemale,
	"жен":     types.GenderFemale,
	"женщина": types.GenderFemale,
}

// ParseGender matches a trimmed, case-insensitive token against the token
// table. Unknown tokens, including the empty string, fail with
// ErrInvalidGenderToken.
func ParseGender(raw string, line int) (types.Gender, error) {
	if g, ok := genderTokens[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return g, nil
	}
	return types.GenderNone, &FieldError{
		Line:  line,
		Field: "gender",
		Value: raw,
		Kind:  ErrInvalidGenderToken,
	}
}

// ParseOptionalGender returns GenderNone for a nil value and delegates to
// ParseGender otherwise.
func ParseOptionalGender(raw *string, line int) (types.Gender, error) {
	if raw == nil {
		return types.GenderNone, nil
	}
	return ParseGender(*raw, line)
}
