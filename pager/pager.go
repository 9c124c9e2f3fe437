// Package pager owns the page index and page size of a paginated grid and
// renders its navigation controls.
package pager

import (
	"charm.land/bubbles/v2/paginator"
	tea "charm.land/bubbletea/v2"

	nt "tablo/entity"
)

// Sizes are the selectable page sizes, smallest first.
var Sizes = []int{10, 25, 100}

// DefaultSize is the page size at construction.
const DefaultSize = 10

// Direction is the layout direction of the controls.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// Pager tracks the current page over a count of data rows.
//
// Every navigation clamps rather than rejects: the page index always lies in
// [0, Pages()-1], and with zero rows there is a single empty page.
type Pager struct {
	paginator paginator.Model
	rows      int
	dir       Direction
}

// New creates a Pager on the first page with size snapped to Sizes.
func New(size int, dir Direction) Pager {

	pgr := Pager{
		paginator: paginator.New(
			paginator.WithPerPage(Snap(size)),
		),
		dir: dir,
	}
	pgr.paginator.ArabicFormat = "page %d/%d"

	return pgr.sync()
}

// Page returns the zero-based page index.
func (pgr Pager) Page() int {
	return pgr.paginator.Page
}

// Size returns the page size.
func (pgr Pager) Size() int {
	return pgr.paginator.PerPage
}

// Rows returns the number of data rows paged over.
func (pgr Pager) Rows() int {
	return pgr.rows
}

// Direction returns the layout direction.
func (pgr Pager) Direction() Direction {
	return pgr.dir
}

// Pages returns the page count, at least one.
func (pgr Pager) Pages() int {
	size := pgr.Size()
	return max(1, (pgr.rows+size-1)/size)
}

// LastPage returns the index of the last page.
func (pgr Pager) LastPage() int {
	return pgr.Pages() - 1
}

// CanPrev reports whether first and previous are enabled.
func (pgr Pager) CanPrev() bool {
	return pgr.Page() > 0
}

// CanNext reports whether next and last are enabled.
func (pgr Pager) CanNext() bool {
	return pgr.Page() < pgr.LastPage()
}

// Window returns the data rows of the current page, End not clamped to Rows.
func (pgr Pager) Window() nt.Window {
	start := pgr.Page() * pgr.Size()
	return nt.Window{Start: start, End: start + pgr.Size()}
}

// First moves to the first page.
func (pgr Pager) First() Pager {
	return pgr.goTo(0)
}

// Prev moves back a page, staying put on the first.
func (pgr Pager) Prev() Pager {
	pgr.paginator.PrevPage()
	return pgr
}

// Next moves forward a page, staying put on the last.
func (pgr Pager) Next() Pager {
	pgr.paginator.NextPage()
	return pgr
}

// Last moves to the last page.
func (pgr Pager) Last() Pager {
	return pgr.goTo(pgr.LastPage())
}

// SetSize changes the page size and returns to the first page.
func (pgr Pager) SetSize(size int) Pager {
	pgr.paginator.PerPage = Snap(size)
	pgr.paginator.Page = 0
	return pgr.sync()
}

// CycleSize moves to the next of Sizes, wrapping around.
func (pgr Pager) CycleSize() Pager {

	next := Sizes[0]
	for i, size := range Sizes {
		if size == pgr.Size() && i+1 < len(Sizes) {
			next = Sizes[i+1]
		}
	}
	return pgr.SetSize(next)
}

// SetRows replaces the data row count, clamping the page into range.
func (pgr Pager) SetRows(rows int) Pager {
	pgr.rows = max(0, rows)
	return pgr.sync()
}

// Update applies key presses and emits a ChangedMsg when the page or size moved.
func (pgr Pager) Update(msg tea.Msg) (Pager, tea.Cmd) {

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return pgr, nil
	}

	page, size := pgr.Page(), pgr.Size()
	pgr = pgr.press(keyMsg)

	if pgr.Page() == page && pgr.Size() == size {
		return pgr, nil
	}
	return pgr, pgr.changedCmd()
}

// Snap clamps size to the nearest allowed page size at or above it.
func Snap(size int) int {
	for _, allowed := range Sizes {
		if size <= allowed {
			return allowed
		}
	}
	return Sizes[len(Sizes)-1]
}

// unexported

func (pgr Pager) goTo(page int) Pager {
	pgr.paginator.Page = page
	return pgr.sync()
}

func (pgr Pager) sync() Pager {
	pgr.paginator.TotalPages = pgr.Pages()
	pgr.paginator.Page = min(max(pgr.paginator.Page, 0), pgr.LastPage())
	return pgr
}

func (pgr Pager) changedCmd() tea.Cmd {

	changed := ChangedMsg{
		Page:   pgr.Page(),
		Size:   pgr.Size(),
		Window: pgr.Window(),
	}
	return func() tea.Msg {
		return changed
	}
}
