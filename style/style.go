package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	Foreground = lipgloss.Color("#f8f8f2")
	Background = lipgloss.Color("#282a36")
	HeaderBg   = lipgloss.Color("#1f2029")
	Accent     = lipgloss.Color("#bd93f9")
	SelectBg   = lipgloss.Color("#44475a")

	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	HeaderStyle      = lipgloss.NewStyle().Foreground(Foreground).Background(HeaderBg).Bold(true).Padding(0, 1).Align(lipgloss.Center)
	CellStyle        = lipgloss.NewStyle().Foreground(Foreground).Padding(0, 1).Align(lipgloss.Center)
	HlRowStyle       = CellStyle.Background(SelectBg)
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	ButtonStyle      = lipgloss.NewStyle().Foreground(Foreground).Padding(0, 1)
	DisabledStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Padding(0, 1)
	ActiveSizeStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true)
	SizeStyle        = lipgloss.NewStyle().Foreground(Foreground)
	ErrorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555"))
	FooterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// RowStyler returns a StyleFunc that styles the header band and highlights the selected row.
// The first headerRows table rows belong to the header band; selectedRow counts body rows
// from zero and -1 highlights nothing.
func RowStyler(headerRows, selectedRow int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow, row < headerRows:
			return HeaderStyle
		case selectedRow >= 0 && row == headerRows+selectedRow:
			return HlRowStyle
		}
		return CellStyle
	}
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).    // Disable top border
		BorderBottom(false). // Disable bottom border
		BorderLeft(false).   // Disable left border
		BorderRight(false).  // Disable right border
		BorderColumn(false). // Disable column separators
		BorderStyle(TableBorderStyle)
}
