package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/cmdpattern/core"
)

type windowAction int

const (
	windowClose windowAction = iota
	windowNoOp
)

// windowCommand is what a child window's buttons produce. Windows never touch
// the state; the command comes back to the App as a core.CommandMsg.
func windowCommand(id core.WindowID, action windowAction) tea.Cmd {
	switch action {
	case windowClose:
		return core.SubmitCmd(core.CloseWindow{ID: id})
	default:
		return core.SubmitCmd(core.NoOp{})
	}
}

func renderWindow(st styles, content core.WindowContent, selected bool) string {
	frame := st.window
	closeBtn, noopBtn := st.button, st.button
	if selected {
		frame = st.windowHot
		closeBtn, noopBtn = st.buttonHot, st.buttonHot
	}
	title := st.heading.Render(content.Title) + st.muted.Render(" #"+content.ID.String())
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		closeBtn.Render("Close"), " ", noopBtn.Render("NoOP"))
	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, title, content.Body, buttons))
}

// renderWindows lays the open windows out left to right, wrapping at width.
func renderWindows(st styles, ids []core.WindowID, selected int, width int) string {
	if len(ids) == 0 {
		return ""
	}
	var rows []string
	var row []string
	rowWidth := 0
	for i, id := range ids {
		box := renderWindow(st, core.WindowContentFor(id), i == selected)
		w := lipgloss.Width(box)
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, box)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
