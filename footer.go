package tablo

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"tablo/style"
)

// RenderFooter renders a footer with the result count and source name.
func RenderFooter(count int, query, name string, width int) string {

	left := fmt.Sprintf("%d rows", count)
	if query != "" {
		left = fmt.Sprintf("%d rows matching %q", count, query)
	}
	right := name

	// Calculate padding
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.FooterStyle.Render(left + strings.Repeat(" ", padding) + right)
}
