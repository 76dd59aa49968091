// Package dataset provides the in-memory transaction table and the search
// operations over it. The package has no HTTP dependencies and no package-level
// state: a table is loaded once, handed around by reference, and read
// concurrently without locking.
package dataset

import (
	"strconv"
	"time"
)

// Row holds one transaction as canonical column name -> typed cell.
// A missing key means the cell is absent (empty in the source file).
// Cell values are string, float64, or time.Time depending on the column type.
type Row map[string]any

// Table is an immutable in-memory table: an ordered column list plus rows.
// Search operations return new Tables that share Row maps with the source;
// rows are never mutated after Normalize.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// filter returns a new Table containing the rows for which keep returns true.
// The column list is shared with the receiver.
func (t *Table) filter(keep func(Row) bool) *Table {
	out := &Table{Columns: t.Columns, Rows: []Row{}}
	for _, r := range t.Rows {
		if keep(r) {
			out.Rows = append(out.Rows, r)
		}
	}
	return out
}

// stringCell returns the row's value for col if it is a string cell.
func stringCell(r Row, col string) (string, bool) {
	v, ok := r[col].(string)
	return v, ok
}

// numericCell returns the row's value for col if it is a numeric cell.
func numericCell(r Row, col string) (float64, bool) {
	v, ok := r[col].(float64)
	return v, ok
}

// timeCell returns the row's value for col if it is a timestamp cell.
func timeCell(r Row, col string) (time.Time, bool) {
	v, ok := r[col].(time.Time)
	return v, ok
}

// cellText renders any cell value as text. Used where the source column may
// have been typed as numeric but the comparison is textual (unit numbers).
func cellText(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case time.Time:
		return c.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}
