// ABOUTME: Header-indexed view over decoded CSV rows.
// ABOUTME: Looks cells up by column name rather than position.
package csvio

import "strings"

// Document is a decoded CSV file whose first row names the columns.
type Document struct {
	headers map[string]int
	rows    [][]string
}

// Parse decodes text and indexes its header row. Header names are trimmed;
// when a name repeats, the last column wins.
func Parse(text string) *Document {
	all := Decode(text)
	doc := &Document{headers: make(map[string]int)}
	if len(all) == 0 {
		return doc
	}
	for i, h := range all[0] {
		doc.headers[strings.TrimSpace(h)] = i
	}
	doc.rows = all[1:]
	return doc
}

// Len returns the number of data rows, blank ones included.
func (d *Document) Len() int {
	return len(d.rows)
}

// HasColumn reports whether the header row names column.
func (d *Document) HasColumn(column string) bool {
	_, ok := d.headers[column]
	return ok
}

// Blank reports whether row i carries no data: no cells, or a single empty cell.
func (d *Document) Blank(i int) bool {
	row := d.rows[i]
	return len(row) == 0 || (len(row) == 1 && row[0] == "")
}

// Value returns the cell of row i under column. Unknown columns and short
// rows yield "".
func (d *Document) Value(i int, column string) string {
	idx, ok := d.headers[column]
	if !ok {
		return ""
	}
	row := d.rows[i]
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
