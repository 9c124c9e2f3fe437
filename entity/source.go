package entity

// TableSource is a read-only columnar dataset whose leading rows form a header band.
//
// Row indexes are absolute: rows [0, HeaderRowCount()) are the header band and
// the data band follows up to TotalRowCount().
type TableSource interface {
	HeaderRowCount() int
	TotalRowCount() int
	ColumnCount() int
	Cell(row, col int) (Cell, error)
}

// DataRowCount returns the number of rows after the header band.
func DataRowCount(src TableSource) int {
	if src == nil {
		return 0
	}
	return max(0, src.TotalRowCount()-src.HeaderRowCount())
}

// Window is a range of data rows, Start inclusive and End exclusive,
// counted from the first row after the header band.
type Window struct {
	Start int
	End   int
}

// Len returns the number of rows spanned, before any clamping.
func (win Window) Len() int {
	return max(0, win.End-win.Start)
}
