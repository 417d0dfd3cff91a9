// Package table holds the ordered, header-first tabular value that readers
// produce and the alternates engine consumes.
package table

import "strings"

// Table is a header row plus data rows. Cell text is kept as read; only
// header strings are trimmed.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of name, comparing both sides after
// trimming surrounding whitespace. -1 when absent.
func (t Table) ColumnIndex(name string) int {
	want := strings.TrimSpace(name)
	for i, c := range t.Columns {
		if strings.TrimSpace(c) == want {
			return i
		}
	}
	return -1
}

// Missing lists the names from want that the header does not contain, in
// the order given.
func (t Table) Missing(want ...string) []string {
	var out []string
	for _, w := range want {
		if t.ColumnIndex(w) < 0 {
			out = append(out, w)
		}
	}
	return out
}

// Cell is safe for ragged rows: a short row reads as empty cells.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// Len is the number of data rows.
func (t Table) Len() int { return len(t.Rows) }

// Clone deep-copies the header and every row.
func (t Table) Clone() Table {
	out := Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = append([]string(nil), r...)
	}
	return out
}
