package pager

import (
	"fmt"
	"slices"
	"strings"

	"tablo/style"
)

type glyphs struct {
	first string
	prev  string
	next  string
	last  string
}

var ltrGlyphs = glyphs{first: "«", prev: "‹", next: "›", last: "»"}

// Range returns the rows shown on the current page, such as "1–10 of 101".
func (pgr Pager) Range() string {

	if pgr.rows == 0 {
		return "0–0 of 0"
	}

	win := pgr.Window()
	return fmt.Sprintf("%d–%d of %d", win.Start+1, min(win.End, pgr.rows), pgr.rows)
}

// View renders the size selector, range, navigation buttons and page indicator.
// Under RTL the segments are mirrored and the button glyphs point the other way.
func (pgr Pager) View() string {

	gl := pgr.glyphs()

	segments := []string{
		pgr.sizeView(),
		pgr.Range(),
		button(gl.first, pgr.CanPrev()),
		button(gl.prev, pgr.CanPrev()),
		button(gl.next, pgr.CanNext()),
		button(gl.last, pgr.CanNext()),
		style.MutedStyle.Render(pgr.paginator.View()),
	}

	if pgr.dir == RTL {
		slices.Reverse(segments)
	}

	return strings.Join(segments, " ")
}

// unexported

func (pgr Pager) glyphs() glyphs {
	if pgr.dir == RTL {
		return glyphs{
			first: ltrGlyphs.last,
			prev:  ltrGlyphs.next,
			next:  ltrGlyphs.prev,
			last:  ltrGlyphs.first,
		}
	}
	return ltrGlyphs
}

func (pgr Pager) sizeView() string {

	sizes := make([]string, len(Sizes))
	for i, size := range Sizes {
		label := fmt.Sprintf("%d", size)
		if size == pgr.Size() {
			sizes[i] = style.ActiveSizeStyle.Render(label)
			continue
		}
		sizes[i] = style.SizeStyle.Render(label)
	}

	return style.MutedStyle.Render("rows per page:") + " " + strings.Join(sizes, " ")
}

func button(glyph string, enabled bool) string {
	if enabled {
		return style.ButtonStyle.Render(glyph)
	}
	return style.DisabledStyle.Render(glyph)
}
