package core

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// CommandMsg carries a Command through the bubbletea update loop.
type CommandMsg struct {
	Command Command
}

func SubmitCmd(cmd Command) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg { return CommandMsg{Command: cmd} }
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
