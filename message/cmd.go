package message

import tea "charm.land/bubbletea/v2"

// ErrorCmd returns a command that delivers err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// StatusCmd returns a command that delivers a footer status
func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Text: text}
	}
}

// BackCmd returns a command that pops the current screen
func BackCmd(reload bool) tea.Cmd {
	return func() tea.Msg {
		return BackMsg{Reload: reload}
	}
}
