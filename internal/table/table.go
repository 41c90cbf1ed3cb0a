// Package table loads and writes column-addressed tabular files (.csv, .xlsx).
package table

// Table is a header plus rows of text cells, addressed by column name.
// Rows shorter than the header read as "" in the missing columns.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
}

// New creates a table from a header and rows
func New(header []string, rows [][]string) *Table {
	t := &Table{Header: header, Rows: rows}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Header))
	for i, col := range t.Header {
		// First occurrence wins for duplicate column names
		if _, ok := t.index[col]; !ok {
			t.index[col] = i
		}
	}
}

// Len returns the number of data rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Has reports whether the table has the named column
func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Get returns the cell at row i in the named column, or "" when absent
func (t *Table) Get(i int, column string) string {
	j, ok := t.index[column]
	if !ok || i < 0 || i >= len(t.Rows) {
		return ""
	}
	row := t.Rows[i]
	if j >= len(row) {
		return ""
	}
	return row[j]
}

// PandasNullTokens are the cell values pandas reads as missing by default
var PandasNullTokens = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a", "nan", "null",
}
