package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/cmdpattern/core"
)

const sliderWidth = 20

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	st := a.session.State()
	s := a.styles

	sections := []string{
		a.renderMenuBar(),
		s.heading.Render("Command pattern example"),
		"",
		a.renderQuestion(),
		a.renderCheckResult(st),
		"",
		a.renderSlider(st.Counter),
		a.renderButton("Increment", a.focus == focusPanel),
		s.muted.Render(strings.Repeat("─", max(1, min(a.width-2, 60)))),
		a.renderButton("Add window", a.focus == focusPanel),
	}
	if w := renderWindows(s, st.OpenWindows, a.windowHighlight(), max(20, a.width-2)); w != "" {
		sections = append(sections, w)
	}
	sections = append(sections,
		windowCountLine(len(st.OpenWindows)),
		"",
		s.muted.Render("Powered by bubbletea and lipgloss."),
	)
	if a.focus == focusCommand {
		sections = append(sections, a.command.View())
	}

	body := s.app.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	return lipgloss.JoinVertical(lipgloss.Left, body, a.renderStatusBar(), a.renderFooter())
}

func (a *App) renderMenuBar() string {
	mode := "light"
	if a.dark {
		mode = "dark"
	}
	return renderBar(a.styles.menuBar, max(1, a.width), " File: q quit   Theme: "+mode, a.styles.colors.Mantle)
}

func (a *App) renderQuestion() string {
	field := a.input.View()
	if a.focus != focusInput {
		field = a.styles.muted.Render("[") + a.input.Value() + a.styles.muted.Render("]")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		"What is 5 + 5? ", field, " ", a.renderButton("Check", a.focus == focusInput))
}

func (a *App) renderCheckResult(st core.State) string {
	correct, ok := st.Verified()
	switch {
	case !ok:
		return ""
	case correct:
		return a.styles.correct.Render(checkResultText(true))
	default:
		return a.styles.wrong.Render(checkResultText(false))
	}
}

func checkResultText(correct bool) string {
	if correct {
		return "Your answer was correct."
	}
	return "Your answer was wrong."
}

func (a *App) renderSlider(value float64) string {
	return sliderBar(value, a.ui.SliderMin, a.ui.SliderMax, sliderWidth) + fmt.Sprintf(" %.1f value", value)
}

// sliderBar draws value on a track from lo to hi. Values outside the range
// pin the knob to the nearest end.
func sliderBar(value, lo, hi float64, width int) string {
	pos := 0
	if hi > lo {
		frac := (value - lo) / (hi - lo)
		frac = min(max(frac, 0), 1)
		pos = int(frac*float64(width-1) + 0.5)
	}
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", width-1-pos)
}

func (a *App) renderButton(label string, hot bool) string {
	if hot {
		return a.styles.buttonHot.Render(label)
	}
	return a.styles.button.Render(label)
}

func (a *App) windowHighlight() int {
	if a.focus != focusWindows {
		return -1
	}
	return a.selected
}

func windowCountLine(n int) string {
	return fmt.Sprintf("%d windows open", n)
}
