// Package frame provides an in-memory TableSource laid out the way a
// dataframe is presented to the grid: a single header row of column labels,
// a leading index column, and a blank top-left corner.
package frame

import (
	"github.com/pkg/errors"

	nt "tablo/entity"
)

// Frame is an immutable in-memory table.
type Frame struct {
	columns []string
	index   []nt.Value
	rows    [][]nt.Value
}

// New creates a Frame from column names, an index and rows of values.
// A nil index is replaced by a range index counting from zero.
func New(columns []string, index []nt.Value, rows [][]nt.Value) (frm *Frame, err error) {

	for i, row := range rows {
		if len(row) != len(columns) {
			err = errors.Errorf("row %d has %d values for %d columns", i, len(row), len(columns))
			return
		}
	}

	if index == nil {
		index = RangeIndex(len(rows))
	}
	if len(index) != len(rows) {
		err = errors.Errorf("index has %d values for %d rows", len(index), len(rows))
		return
	}

	frm = &Frame{
		columns: columns,
		index:   index,
		rows:    rows,
	}
	return
}

// RangeIndex returns 0..n-1 as values.
func RangeIndex(n int) []nt.Value {
	index := make([]nt.Value, n)
	for i := range index {
		index[i] = nt.Value{Raw: int64(i)}
	}
	return index
}

// Columns returns the column names, not including the index.
func (frm *Frame) Columns() []string {
	return frm.columns
}

// Len returns the number of data rows.
func (frm *Frame) Len() int {
	return len(frm.rows)
}

// HeaderRowCount is always one.
func (frm *Frame) HeaderRowCount() int {
	return 1
}

// TotalRowCount includes the header row.
func (frm *Frame) TotalRowCount() int {
	return len(frm.rows) + 1
}

// ColumnCount includes the index column.
func (frm *Frame) ColumnCount() int {
	return len(frm.columns) + 1
}

// Cell returns content and kind by absolute coordinate.
func (frm *Frame) Cell(row, col int) (cell nt.Cell, err error) {

	if row < 0 || row >= frm.TotalRowCount() || col < 0 || col >= frm.ColumnCount() {
		err = errors.Errorf("cell %d,%d is out of bounds of %dx%d", row, col, frm.TotalRowCount(), frm.ColumnCount())
		return
	}

	switch {
	case row == 0 && col == 0:
		cell = nt.Cell{Kind: nt.Blank}
	case row == 0:
		cell = nt.Cell{Content: nt.Value{Raw: frm.columns[col-1]}, Kind: nt.ColumnLabel}
	case col == 0:
		cell = nt.Cell{Content: frm.index[row-1], Kind: nt.Index}
	default:
		cell = nt.Cell{Content: frm.rows[row-1][col-1], Kind: nt.Data}
	}
	return
}
