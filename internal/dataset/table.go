// Package dataset loads and writes the CSV tables of the unified
// financial-inclusion dataset.
package dataset

// Table is an in-memory CSV table: a header plus rows of cells. Rows may
// be shorter than the header when the source file had uneven field
// counts.
type Table struct {
	Columns []string
	Rows    [][]string

	colIdx map[string]int
}

// NewTable builds an empty table with the given columns.
func NewTable(columns []string) *Table {
	t := &Table{Columns: columns}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.colIdx = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		// first occurrence wins for duplicate headers
		if _, ok := t.colIdx[c]; !ok {
			t.colIdx[c] = i
		}
	}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIdx[name]
	return ok
}

// Value returns the cell at (row, name). ok is false when the column does
// not exist or the row is too short to reach it.
func (t *Table) Value(row int, name string) (string, bool) {
	i, ok := t.colIdx[name]
	if !ok || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	r := t.Rows[row]
	if i >= len(r) {
		return "", false
	}
	return r[i], true
}

// EnsureColumn appends name to the header if absent. Existing rows are
// left short; Value treats their new cells as missing.
func (t *Table) EnsureColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.colIdx[name] = len(t.Columns)
	t.Columns = append(t.Columns, name)
}

// AppendRow adds a row assembled from column name to value. Columns not
// named get the empty string; names outside the header are ignored.
func (t *Table) AppendRow(values map[string]string) {
	row := make([]string, len(t.Columns))
	for name, v := range values {
		if i, ok := t.colIdx[name]; ok {
			row[i] = v
		}
	}
	t.Rows = append(t.Rows, row)
}
