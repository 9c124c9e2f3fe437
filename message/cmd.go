package message

import tea "charm.land/bubbletea/v2"

// ErrorCmd returns a command carrying err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// FrameHeightCmd returns a command reporting height
func FrameHeightCmd(height int) tea.Cmd {
	return func() tea.Msg {
		return FrameHeightMsg{Height: height}
	}
}

// ReloadCmd returns a command to reload data
func ReloadCmd() tea.Cmd {
	return func() tea.Msg {
		return ReloadMsg{}
	}
}
