// Package mem searches and projects any TableSource held in memory.
package mem

import (
	"context"

	"github.com/pkg/errors"

	nt "tablo/entity"
)

type Mem struct {
	name   string
	source nt.TableSource
	filter nt.Filter
	logger nt.Logger
}

func New(name string, src nt.TableSource, lgr nt.Logger) *Mem {

	return &Mem{
		name:   name,
		source: src,
		logger: lgr,
	}
}

// Name returns the name of the data source
func (mm *Mem) Name() string {
	return mm.name
}

// Fields returns the labels of the last header row, skipping blank ones.
func (mm *Mem) Fields() (fields []nt.Field, err error) {

	names, err := mm.names()
	if err != nil {
		return
	}

	for _, name := range names {
		if name == "" {
			continue
		}
		fields = append(fields, nt.Field{Name: name})
	}
	return
}

// SetView sets the filter applied by Source.
func (mm *Mem) SetView(filter nt.Filter) (err error) {

	err = validate(filter)
	if err != nil {
		return
	}

	mm.filter = filter
	return
}

// Source returns the header band and the data rows passing the filter,
// projected onto columns. Unlabeled columns such as the index are always kept
// and an empty columns selects every column.
func (mm *Mem) Source(columns []string) (src nt.TableSource, err error) {

	names, err := mm.names()
	if err != nil {
		return
	}

	cols, err := project(names, columns)
	if err != nil {
		return
	}

	rows, err := mm.match(names)
	if err != nil {
		return
	}

	mm.logger.Info(context.Background(), "filtered rows", "name", mm.name, "count", len(rows))

	src = &view{
		source: mm.source,
		rows:   rows,
		cols:   cols,
	}
	return
}

// unexported

func (mm *Mem) names() (names []string, err error) {

	header := mm.source.HeaderRowCount()
	names = make([]string, mm.source.ColumnCount())
	if header == 0 {
		return
	}

	for col := range names {
		var cell nt.Cell
		cell, err = mm.source.Cell(header-1, col)
		if err != nil && errors.Cause(err) != nt.ErrUnknownKind {
			err = errors.Wrapf(err, "failed to get column label %d", col)
			return
		}
		err = nil
		names[col] = cell.Content.String()
	}
	return
}

func (mm *Mem) match(names []string) (rows []int, err error) {

	idxByName := map[string]int{}
	for i, name := range names {
		if name != "" {
			idxByName[name] = i
		}
	}

	for row := mm.source.HeaderRowCount(); row < mm.source.TotalRowCount(); row++ {

		get := func(field string) (val nt.Value, err error) {
			col, ok := idxByName[field]
			if !ok {
				err = errors.Errorf("no such field: %s", field)
				return
			}

			cell, err := mm.source.Cell(row, col)
			if err != nil && errors.Cause(err) != nt.ErrUnknownKind {
				err = errors.Wrapf(err, "failed to get cell %d,%d", row, col)
				return
			}
			val = cell.Content
			err = nil
			return
		}

		var ok bool
		ok, err = eval(mm.filter, get)
		if err != nil {
			return
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return
}

func project(names, columns []string) (cols []int, err error) {

	if len(columns) == 0 {
		cols = make([]int, len(names))
		for i := range cols {
			cols[i] = i
		}
		return
	}

	idxByName := map[string]int{}
	for i, name := range names {
		if name == "" {
			cols = append(cols, i)
			continue
		}
		idxByName[name] = i
	}

	for _, column := range columns {
		idx, ok := idxByName[column]
		if !ok {
			err = errors.Errorf("no such column: %s", column)
			return
		}
		cols = append(cols, idx)
	}
	return
}
