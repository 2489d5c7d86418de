package tui

import "github.com/charmbracelet/lipgloss"

type palette struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Border   lipgloss.Color
	Accent   lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Surface0 lipgloss.Color
	Mantle   lipgloss.Color
}

var darkPalette = palette{
	Text:     "#cdd6f4",
	Muted:    "#a6adc8",
	Border:   "#585b70",
	Accent:   "#89b4fa",
	Success:  "#a6e3a1",
	Error:    "#f38ba8",
	Surface0: "#313244",
	Mantle:   "#181825",
}

var lightPalette = palette{
	Text:     "#4c4f69",
	Muted:    "#6c6f85",
	Border:   "#9ca0b0",
	Accent:   "#1e66f5",
	Success:  "#40a02b",
	Error:    "#d20f39",
	Surface0: "#ccd0da",
	Mantle:   "#e6e9ef",
}

type styles struct {
	colors palette

	app       lipgloss.Style
	heading   lipgloss.Style
	menuBar   lipgloss.Style
	muted     lipgloss.Style
	button    lipgloss.Style
	buttonHot lipgloss.Style
	correct   lipgloss.Style
	wrong     lipgloss.Style
	window    lipgloss.Style
	windowHot lipgloss.Style
	status    lipgloss.Style
	statusErr lipgloss.Style
	footer    lipgloss.Style
	key       lipgloss.Style
	keyDesc   lipgloss.Style
}

func newStyles(dark bool) styles {
	c := lightPalette
	if dark {
		c = darkPalette
	}
	return styles{
		colors:  c,
		app:     lipgloss.NewStyle().Foreground(c.Text).Padding(0, 1),
		heading: lipgloss.NewStyle().Foreground(c.Accent).Bold(true),
		menuBar: lipgloss.NewStyle().Background(c.Mantle).Foreground(c.Text),
		muted:   lipgloss.NewStyle().Foreground(c.Muted),
		button: lipgloss.NewStyle().
			Foreground(c.Text).
			Background(c.Surface0).
			Padding(0, 1),
		buttonHot: lipgloss.NewStyle().
			Foreground(c.Mantle).
			Background(c.Accent).
			Bold(true).
			Padding(0, 1),
		correct: lipgloss.NewStyle().Foreground(c.Success),
		wrong:   lipgloss.NewStyle().Foreground(c.Error),
		window: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 1),
		windowHot: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Accent).
			Padding(0, 1),
		status: lipgloss.NewStyle().
			Foreground(c.Success).
			Background(c.Surface0),
		statusErr: lipgloss.NewStyle().
			Foreground(c.Error).
			Background(c.Surface0),
		footer:  lipgloss.NewStyle().Background(c.Mantle),
		key:     lipgloss.NewStyle().Foreground(c.Accent).Bold(true).Background(c.Mantle),
		keyDesc: lipgloss.NewStyle().Foreground(c.Muted).Background(c.Mantle),
	}
}
