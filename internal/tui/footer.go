package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (a *App) renderFooter() string {
	bindings := a.keys.HelpForScope(a.scope())
	bg := a.styles.colors.Mantle
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, a.styles.key.Render(h.Key)+space+a.styles.keyDesc.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = a.styles.keyDesc.Render("No shortcuts")
	}
	return renderBar(a.styles.footer, max(1, a.width), line, bg)
}

func (a *App) renderStatusBar() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	if a.sessionID != "" {
		msg = "[" + shortID(a.sessionID) + "] " + msg
	}
	if a.statusErr {
		return renderBar(a.styles.statusErr, max(1, a.width), msg, a.styles.colors.Surface0)
	}
	return renderBar(a.styles.status, max(1, a.width), msg, a.styles.colors.Surface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
