// Package payload decodes a host's tagged JSON table into a TableSource.
//
//	{"data": {"headerRows": 1, "rows": 3, "columns": 2,
//	  "cells": [[{"content": "", "type": "blank"}, {"content": "a", "type": "columns"}], ...]}}
package payload

import (
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	nt "tablo/entity"
)

type envelope struct {
	Data table `json:"data"`
}

type table struct {
	HeaderRows int      `json:"headerRows"`
	Rows       int      `json:"rows"`
	Columns    int      `json:"columns"`
	Cells      [][]cell `json:"cells"`
}

type cell struct {
	Content any    `json:"content"`
	Type    string `json:"type"`
}

// Table is a TableSource whose cells keep their wire type tags.
// A cell with an unrecognized tag is reported by Cell as ErrUnknownKind.
type Table struct {
	headerRows int
	columns    int
	cells      [][]cell
}

// Load decodes the payload in the file at path.
func Load(path string) (tbl *Table, err error) {

	file, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open %s", path)
		return
	}
	defer file.Close()

	tbl, err = Decode(file)
	err = errors.Wrapf(err, "failed to decode %s", path)
	return
}

// Decode reads a payload, checking its counts against its cells.
func Decode(rdr io.Reader) (tbl *Table, err error) {

	env := envelope{}
	err = json.NewDecoder(rdr).Decode(&env)
	if err != nil {
		err = errors.Wrapf(err, "failed to unmarshal")
		return
	}
	data := env.Data

	if data.Columns < 0 {
		err = errors.Errorf("payload claims %d columns", data.Columns)
		return
	}
	if data.Rows != len(data.Cells) {
		err = errors.Errorf("payload claims %d rows and has %d", data.Rows, len(data.Cells))
		return
	}
	if data.HeaderRows < 0 || data.HeaderRows > data.Rows {
		err = errors.Errorf("payload header rows %d out of range of %d", data.HeaderRows, data.Rows)
		return
	}
	for i, row := range data.Cells {
		if len(row) != data.Columns {
			err = errors.Errorf("payload row %d has %d cells for %d columns", i, len(row), data.Columns)
			return
		}
	}

	tbl = &Table{
		headerRows: data.HeaderRows,
		columns:    data.Columns,
		cells:      data.Cells,
	}
	return
}

func (tbl *Table) HeaderRowCount() int {
	return tbl.headerRows
}

func (tbl *Table) TotalRowCount() int {
	return len(tbl.cells)
}

func (tbl *Table) ColumnCount() int {
	return tbl.columns
}

// Cell returns content and kind by absolute coordinate.
// The content is returned alongside an unknown kind error.
func (tbl *Table) Cell(row, col int) (cl nt.Cell, err error) {

	if row < 0 || row >= tbl.TotalRowCount() || col < 0 || col >= tbl.ColumnCount() {
		err = errors.Errorf("cell %d,%d is out of bounds of %dx%d", row, col, tbl.TotalRowCount(), tbl.ColumnCount())
		return
	}

	raw := tbl.cells[row][col]
	cl.Content = nt.Value{Raw: raw.Content}
	cl.Kind, err = nt.ParseKind(raw.Type)
	return
}
