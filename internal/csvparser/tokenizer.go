package csvparser

import (
	"strings"
)

// Delimiter is the fixed field separator of the input format.
const Delimiter = ';'

// quote starts and ends a quoted segment; a doubled quote inside a quoted
// segment is a literal quote.
const quote = '"'

// SplitLine splits one physical line into trimmed fields.
//
// TOKENIZING RULES:
//   - sep outside quotes ends the current field
//   - a quote toggles the in-quotes state, except that "" inside quotes
//     is a literal quote
//   - everything else, including sep inside quotes, is kept verbatim
//
// An unterminated quote is not an error: the rest of the line becomes the
// last field. The result always holds at least one field.
func SplitLine(line string, sep rune) []string {
	runes := []rune(line)
	out := make([]string, 0, 8)

	var cur strings.Builder
	inQuotes := false

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		switch {
		case c == quote:
			if inQuotes && i+1 < len(runes) && runes[i+1] == quote {
				cur.WriteRune(quote)
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == sep && !inQuotes:
			out = append(out, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(c)
		}
	}

	return append(out, strings.TrimSpace(cur.String()))
}
