package mem

import (
	"github.com/pkg/errors"

	nt "tablo/entity"
)

// view is a TableSource over selected rows and columns of another.
type view struct {
	source nt.TableSource
	rows   []int
	cols   []int
}

func (vw *view) HeaderRowCount() int {
	return vw.source.HeaderRowCount()
}

func (vw *view) TotalRowCount() int {
	return vw.source.HeaderRowCount() + len(vw.rows)
}

func (vw *view) ColumnCount() int {
	return len(vw.cols)
}

func (vw *view) Cell(row, col int) (cell nt.Cell, err error) {

	if row < 0 || row >= vw.TotalRowCount() || col < 0 || col >= vw.ColumnCount() {
		err = errors.Errorf("cell %d,%d is out of bounds of %dx%d", row, col, vw.TotalRowCount(), vw.ColumnCount())
		return
	}

	header := vw.HeaderRowCount()
	if row >= header {
		row = vw.rows[row-header]
	}

	return vw.source.Cell(row, vw.cols[col])
}
