// Package grid renders the header band and the paged data band of a TableSource.
package grid

import (
	"github.com/pkg/errors"

	nt "tablo/entity"
	"tablo/grid/piece"
)

// ErrCellKind aborts a render when a data cell's kind cannot be dispatched.
var ErrCellKind = errors.New("cannot parse cell type")

// Row is a rendered table row keyed by its absolute source row index.
type Row struct {
	Key    int
	Pieces []piece.Piece
}

// Grid is one render of a source: the header band and one page of the data band.
type Grid struct {
	Header  []Row
	Body    []Row
	Columns int
}

// Render runs the header pass and the data pass over win.
func Render(src nt.TableSource, win nt.Window) (grd Grid, err error) {

	header, err := Header(src)
	if err != nil {
		return
	}

	body, err := Body(src, win)
	if err != nil {
		return
	}

	grd = Grid{
		Header:  header,
		Body:    body,
		Columns: src.ColumnCount(),
	}
	return
}

// Header renders rows [0, HeaderRowCount()) with every cell as a label.
func Header(src nt.TableSource) (rows []Row, err error) {

	end := min(src.HeaderRowCount(), src.TotalRowCount())
	rows = make([]Row, 0, max(0, end))

	for rowIdx := 0; rowIdx < end; rowIdx++ {
		pieces := make([]piece.Piece, src.ColumnCount())
		for colIdx := range pieces {

			var cell nt.Cell
			cell, err = src.Cell(rowIdx, colIdx)
			if err != nil && errors.Cause(err) != nt.ErrUnknownKind {
				err = errors.Wrapf(err, "failed to get header cell %d,%d", rowIdx, colIdx)
				return
			}
			err = nil // header cells are labels whatever their kind

			pieces[colIdx] = piece.NewLabel(cell.Content.String())
		}
		rows = append(rows, Row{Key: rowIdx, Pieces: pieces})
	}

	return
}

// Body renders the data rows in win, clamped to the source's row count.
// A window starting past the last data row yields no rows.
func Body(src nt.TableSource, win nt.Window) (rows []Row, err error) {

	headerRows := src.HeaderRowCount()
	start := headerRows + max(0, win.Start)
	end := min(headerRows+win.End, src.TotalRowCount())

	rows = make([]Row, 0, max(0, end-start))

	for rowIdx := start; rowIdx < end; rowIdx++ {
		pieces := make([]piece.Piece, src.ColumnCount())
		for colIdx := range pieces {
			pieces[colIdx], err = dispatch(src, rowIdx, colIdx)
			if err != nil {
				return nil, err
			}
		}
		rows = append(rows, Row{Key: rowIdx, Pieces: pieces})
	}

	return
}

// Position returns the body position of the row with key, or -1.
func (grd Grid) Position(key int) int {
	for i, row := range grd.Body {
		if row.Key == key {
			return i
		}
	}
	return -1
}

// unexported

func dispatch(src nt.TableSource, rowIdx, colIdx int) (pc piece.Piece, err error) {

	cell, err := src.Cell(rowIdx, colIdx)
	if err != nil {
		if errors.Cause(err) == nt.ErrUnknownKind {
			err = errors.Wrapf(ErrCellKind, "row %d, column %d: %s", rowIdx, colIdx, err)
			return
		}
		err = errors.Wrapf(err, "failed to get cell %d,%d", rowIdx, colIdx)
		return
	}

	switch cell.Kind {
	case nt.Blank:
		pc = piece.Empty{}
	case nt.Index:
		pc = piece.NewNumber(cell.Content)
	case nt.ColumnLabel:
		pc = piece.NewLabel(cell.Content.String())
	case nt.Data:
		pc = piece.NewLabel(cell.Content.String())
	default:
		err = errors.Wrapf(ErrCellKind, "row %d, column %d: kind %q", rowIdx, colIdx, cell.Kind)
	}
	return
}
