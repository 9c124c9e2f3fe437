// Package arrowipc decodes an Arrow IPC stream into a frame.
package arrowipc

import (
	"io"
	"os"
	"regexp"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/pkg/errors"

	nt "tablo/entity"
	"tablo/frame"
)

// indexColumn matches columns pandas writes for its index.
var indexColumn = regexp.MustCompile(`^__index_level_\d+__$`)

// Load decodes the stream in the file at path.
func Load(path string) (frm *frame.Frame, err error) {

	file, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open %s", path)
		return
	}
	defer file.Close()

	frm, err = Read(file)
	err = errors.Wrapf(err, "failed to read %s", path)
	return
}

// Read decodes every record batch of an IPC stream.
// The first index column, if any, becomes the frame's index;
// further index columns are dropped.
func Read(rdr io.Reader) (frm *frame.Frame, err error) {

	reader, err := ipc.NewReader(rdr, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		err = errors.Wrapf(err, "failed to open ipc stream")
		return
	}
	defer reader.Release()

	schema := reader.Schema()

	indexAt := -1
	columns := []string{}
	dataAt := []int{}
	for i, field := range schema.Fields() {
		if indexColumn.MatchString(field.Name) {
			if indexAt < 0 {
				indexAt = i
			}
			continue
		}
		columns = append(columns, field.Name)
		dataAt = append(dataAt, i)
	}

	var index []nt.Value
	if indexAt >= 0 {
		index = []nt.Value{}
	}
	rows := [][]nt.Value{}

	for reader.Next() {
		rec := reader.Record()

		for i := 0; i < int(rec.NumRows()); i++ {
			if indexAt >= 0 {
				index = append(index, value(rec, indexAt, i))
			}

			row := make([]nt.Value, len(dataAt))
			for j, col := range dataAt {
				row[j] = value(rec, col, i)
			}
			rows = append(rows, row)
		}
	}

	err = reader.Err()
	if err != nil {
		err = errors.Wrapf(err, "failed to read record batch")
		return
	}

	frm, err = frame.New(columns, index, rows)
	return
}

// unexported

func value(rec arrow.Record, col, row int) nt.Value {

	arr := rec.Column(col)
	if arr.IsNull(row) {
		return nt.Value{}
	}
	return nt.Value{Raw: arr.GetOneForMarshal(row)}
}
