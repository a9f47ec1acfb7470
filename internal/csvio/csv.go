// ABOUTME: Minimal CSV codec with forgiving quote handling.
// ABOUTME: Decoding never fails; malformed quoting yields best-effort rows.
package csvio

import "strings"

// Encode joins rows with "\n" and cells with ",". There is no trailing newline.
// Cells are escaped with EscapeField.
func Encode(rows [][]string) string {
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(EscapeField(cell))
		}
	}
	return sb.String()
}

// EscapeField quotes s when it contains a comma, a quote or a newline,
// doubling any embedded quotes.
func EscapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Decode splits text into rows of fields.
//
// Outside quotes a comma ends the field, a newline ends the row, a carriage
// return is dropped and a quote opens a quoted run. Inside quotes a doubled
// quote is a literal quote and a lone quote closes the run; everything else,
// newlines included, is taken literally. A quote opens a quoted run wherever
// it appears, so `ab"c,d"e` is the single field `abc,de`.
//
// An unterminated quoted run simply consumes the rest of the input. Empty
// input yields no rows.
func Decode(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuotes {
			switch {
			case c == '"' && i+1 < len(text) && text[i+1] == '"':
				field.WriteByte('"')
				i++
			case c == '"':
				inQuotes = false
			default:
				field.WriteByte(c)
			}
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',':
			row = append(row, field.String())
			field.Reset()
		case '\n':
			row = append(row, field.String())
			rows = append(rows, row)
			row = nil
			field.Reset()
		case '\r':
		default:
			field.WriteByte(c)
		}
	}

	if field.Len() > 0 || len(row) > 0 {
		row = append(row, field.String())
		rows = append(rows, row)
	}

	return rows
}
