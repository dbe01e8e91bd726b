package model

import (
	"golang.org/x/text/cases"
)

// UnnamedPrefix starts the generated header of a column with a blank header cell
const UnnamedPrefix = "Unnamed: "

// Table is the tabular content of one sheet: headers from the first row,
// every following row as data. Each row holds exactly len(Headers) values.
type Table struct {
	Headers []string
	Rows    [][]Value
}

// NewTable builds a Table, padding short rows with Null and cutting long ones
func NewTable(headers []string, rows [][]Value) *Table {
	t := &Table{
		Headers: headers,
		Rows:    make([][]Value, 0, len(rows)),
	}
	for _, row := range rows {
		norm := make([]Value, len(headers))
		copy(norm, row)
		t.Rows = append(t.Rows, norm)
	}
	return t
}

// RowCount returns the number of data rows (the header row is not counted)
func (t *Table) RowCount() int { return len(t.Rows) }

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int { return len(t.Headers) }

// IsEmpty reports whether the table has no data rows or no columns
func (t *Table) IsEmpty() bool {
	return t == nil || t.RowCount() == 0 || t.ColumnCount() == 0
}

// Cell returns the value at (row, col), or Null when out of range
func (t *Table) Cell(row, col int) Value {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Headers) {
		return Null()
	}
	return t.Rows[row][col]
}

// NonNullCounts returns, per column in header order, how many rows hold a value
func (t *Table) NonNullCounts() []int {
	counts := make([]int, t.ColumnCount())
	for _, row := range t.Rows {
		for col, v := range row {
			if !v.IsNull() {
				counts[col]++
			}
		}
	}
	return counts
}

// ColumnIndexFold returns the index of the first column whose header equals
// name under case folding, or -1.
func (t *Table) ColumnIndexFold(name string) int {
	folder := cases.Fold()
	want := folder.String(name)
	for i, h := range t.Headers {
		if folder.String(h) == want {
			return i
		}
	}
	return -1
}

// UniqueCount returns the number of distinct non-null values in column col
func (t *Table) UniqueCount(col int) int {
	if col < 0 || col >= t.ColumnCount() {
		return 0
	}
	seen := make(map[string]struct{})
	for _, row := range t.Rows {
		v := row[col]
		if v.IsNull() {
			continue
		}
		seen[v.key()] = struct{}{}
	}
	return len(seen)
}
