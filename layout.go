package tablo

import (
	"os"

	"github.com/pkg/errors"

	nt "tablo/entity"
	"tablo/pager"
	"tablo/util"
)

const rtl = "rtl"

// SampleLayout is written by --sample.
var SampleLayout = []byte(`# tablo layout
# index: id             # field shown as the index, row number when empty
# columns:              # fields shown, in order, all when empty
#   - field: name
#     width: 20         # widest this column is drawn, max_width when unset
#   - field: notes
#     hidden: true
# search: [name, city]  # fields searched with /, all shown when empty
# filter:               # rows kept before any search
#   op: and
#   children:
#     - {op: gte, field: population, value: 1000000}
#     - {op: ne, field: country, value: Atlantis}
page_size: 10           # 10, 25 or 100
direction: ltr          # ltr or rtl
max_width: 40           # widest a cell is drawn
`)

type Layout struct {
	Index     string      `yaml:"index,omitempty"`
	Columns   []nt.Column `yaml:"columns,omitempty"`
	Search    []string    `yaml:"search,omitempty"`
	Filter    nt.Filter   `yaml:"filter,omitempty"`
	PageSize  int         `yaml:"page_size,omitempty"`
	Direction string      `yaml:"direction,omitempty"`
	MaxWidth  int         `yaml:"max_width,omitempty"`
}

// LoadLayout reads a layout file; a missing file gives an empty layout.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	if path == "" {
		return
	}

	_, err = os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		err = nil
		return
	}

	err = util.LoadConfig(layout, path)
	if err != nil {
		return
	}

	switch layout.Direction {
	case "", "ltr", rtl:
	default:
		err = errors.Errorf("unknown direction %q in %s", layout.Direction, path)
	}
	return
}

// Override applies command line settings over the file.
func (layout *Layout) Override(cfg Config) {

	if cfg.PageSize != 0 {
		layout.PageSize = cfg.PageSize
	}
	if cfg.RTL {
		layout.Direction = rtl
	}
}

// columns returns the fields of the visible columns.
func (layout *Layout) columns() (fields []string) {

	for _, col := range layout.Columns {
		if !col.Hidden {
			fields = append(fields, col.Field)
		}
	}
	return
}

// widths returns the widths set for visible columns, by field.
func (layout *Layout) widths() (widths map[string]int) {

	widths = map[string]int{}
	for _, col := range layout.Columns {
		if !col.Hidden && col.Width > 0 {
			widths[col.Field] = col.Width
		}
	}
	return
}

// view combines the layout's filter with a search over fields.
func (layout *Layout) view(query string, available []nt.Field) nt.Filter {

	search := nt.SearchFilter(query, layout.searchFields(available))

	switch {
	case layout.Filter.IsZero():
		return search
	case search.IsZero():
		return layout.Filter
	}
	return nt.Filter{Op: nt.And, Children: []nt.Filter{layout.Filter, search}}
}

// searchFields returns fields searched, falling back to visible columns
// and then to every available field.
func (layout *Layout) searchFields(available []nt.Field) (fields []string) {

	if len(layout.Search) > 0 {
		return layout.Search
	}

	fields = layout.columns()
	if len(fields) > 0 {
		return
	}

	for _, field := range available {
		if field.Name != layout.Index {
			fields = append(fields, field.Name)
		}
	}
	return
}

func (layout *Layout) direction() pager.Direction {
	if layout.Direction == rtl {
		return pager.RTL
	}
	return pager.LTR
}

// apply pushes the index setting to stores that take one.
func (layout *Layout) apply(store Store) (err error) {

	indexer, ok := store.(Indexer)
	if !ok {
		return
	}

	err = indexer.SetIndex(layout.Index)
	err = errors.Wrapf(err, "failed to set index")
	return
}
