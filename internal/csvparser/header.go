package csvparser

import "strings"

// headerTokens lists, per required column, the substrings that identify it
// in a header line. English and Russian spellings are recognized.
var headerTokens = [][]string{
	{"id", "ид"},
	{"name", "имя"},
	{"department", "подраздел"},
}

// LooksLikeHeader reports whether a line names the id, name and department
// columns. The check is a substring match on the lowercased line.
func LooksLikeHeader(line string) bool {
	l := strings.ToLower(line)

	for _, alternatives := range headerTokens {
		found := false
		for _, token := range alternatives {
			if strings.Contains(l, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
