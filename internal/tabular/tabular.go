// Package tabular reads and writes the delimited tables exchanged with
// customers. Parsing is deliberately forgiving: real-world exports arrive
// with BOMs, padded headers, and ragged rows, and none of that should stop
// a run. Cell-level problems are the normalizers' concern, not this
// package's.
package tabular

// Row is one data row addressed by column name.
type Row struct {
	index  int
	values map[string]string
}

// Get returns the cell under the named column, or "" when the column does
// not exist. Missing columns and empty cells are indistinguishable on
// purpose: both degrade to the empty value downstream.
func (r Row) Get(column string) string {
	return r.values[column]
}

// Index returns the zero-based position of this row among the data rows.
// Source order drives tie-breaks downstream, so rows carry it explicitly.
func (r Row) Index() int {
	return r.index
}

// Table is one parsed delimited file: the header in original order plus
// the data rows in source order.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the header contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
