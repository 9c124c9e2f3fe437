package entity

import "github.com/pkg/errors"

// ErrUnknownKind is returned when a cell type tag is not recognized.
var ErrUnknownKind = errors.New("unknown cell kind")

// Kind tags how a cell's content is presented.
type Kind int

const (
	Blank       Kind = iota // no content
	Index                   // row index, presented as a number
	ColumnLabel             // column label, presented as text
	Data                    // data value, presented as text
)

var kindTags = []string{
	Blank:       "blank",
	Index:       "index",
	ColumnLabel: "columns",
	Data:        "data",
}

// String returns the wire tag for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindTags) {
		return "unknown"
	}
	return kindTags[k]
}

// ParseKind maps a wire tag to its Kind.
func ParseKind(tag string) (kind Kind, err error) {

	for i, known := range kindTags {
		if tag == known {
			kind = Kind(i)
			return
		}
	}

	err = errors.Wrapf(ErrUnknownKind, "cannot parse type %q", tag)
	return
}

// Cell is the content and kind at a table coordinate.
type Cell struct {
	Content Value
	Kind    Kind
}
