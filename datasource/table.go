package datasource

import (
	"strings"

	"jqt_lookup_backend/models"
)

// Table is one worksheet materialized in full: a trimmed header and the
// data rows below it. Rows may be ragged; missing cells read as "".
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string

	index map[string]int
}

// NewTable builds a Table from a raw cell grid. The first row is the
// header; header cells are whitespace-trimmed before indexing. Rows whose
// cells are all empty are dropped, matching how the sheet export behaves.
func NewTable(name string, cells [][]string) *Table {
	t := &Table{Name: name, index: map[string]int{}}
	if len(cells) == 0 {
		return t
	}
	for i, col := range cells[0] {
		col = strings.TrimSpace(col)
		t.Columns = append(t.Columns, col)
		if _, ok := t.index[col]; !ok {
			t.index[col] = i
		}
	}
	for _, row := range cells[1:] {
		if rowEmpty(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// HasColumn reports whether the trimmed header contains col.
func (t *Table) HasColumn(col string) bool {
	_, ok := t.index[col]
	return ok
}

// RequireColumns fails with a MissingColumnError naming the first column
// that is absent from the header.
func (t *Table) RequireColumns(cols ...string) error {
	for _, col := range cols {
		if !t.HasColumn(col) {
			return &models.MissingColumnError{Table: t.Name, Column: col}
		}
	}
	return nil
}

// Get returns the trimmed cell at (row, col), or "" when the column is
// unknown or the row is too short to reach it.
func (t *Table) Get(row int, col string) string {
	i, ok := t.index[col]
	if !ok || row < 0 || row >= len(t.Rows) {
		return ""
	}
	cells := t.Rows[row]
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
