package grid

import (
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"

	"tablo/style"
)

// DefaultCellWidth caps a cell's width when no other limit is given.
const DefaultCellWidth = 40

// Widths caps cell widths per column, keyed by the column's label in the
// last header row. Columns without an entry get Default.
type Widths struct {
	Default int
	ByLabel map[string]int
}

// View draws the grid, highlighting the body row whose key is selected.
// The first header row is the table header; further header rows follow it
// in header style ahead of the body.
func (grd Grid) View(wds Widths, selected int) string {

	if grd.Columns == 0 {
		return ""
	}
	widths := grd.widths(wds)

	tbl := table.New()
	style.StyleTable(tbl)

	leading := max(0, len(grd.Header)-1)
	tbl.StyleFunc(style.RowStyler(leading, grd.Position(selected)))

	for i, row := range grd.Header {
		labels := cells(row, widths)
		if i == 0 {
			tbl.Headers(labels...)
			continue
		}
		tbl.Row(labels...)
	}

	for _, row := range grd.Body {
		tbl.Row(cells(row, widths)...)
	}

	return tbl.String()
}

// unexported

func (grd Grid) widths(wds Widths) (widths []int) {

	fallback := wds.Default
	if fallback <= 0 {
		fallback = DefaultCellWidth
	}

	widths = make([]int, grd.Columns)
	for col := range widths {
		widths[col] = fallback
		if len(grd.Header) == 0 {
			continue
		}

		label := grd.Header[len(grd.Header)-1].Pieces[col].Render()
		if width := wds.ByLabel[label]; width > 0 {
			widths[col] = width
		}
	}
	return
}

func cells(row Row, widths []int) (out []string) {

	out = make([]string, len(row.Pieces))
	for i, pc := range row.Pieces {
		out[i] = truncate(pc.Render(), widths[i])
	}
	return
}

func truncate(in string, width int) string {

	if ansi.StringWidth(in) <= width {
		return in
	}

	truncated := ansi.Truncate(in, width-1, "")
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
