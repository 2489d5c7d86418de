package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/cmdpattern/core"
	"github.com/jask/cmdpattern/internal/config"
)

type focus int

const (
	focusPanel focus = iota
	focusInput
	focusWindows
	focusCommand
)

// Options wires the App to its collaborators.
type Options struct {
	Session   *core.Session
	Config    config.Config
	Logger    *zap.Logger
	SessionID string
}

// App is the host UI. It turns key presses into core commands, submits them to
// the session and renders the session state every frame.
type App struct {
	session   *core.Session
	keys      *core.KeyRegistry
	verbs     *core.CommandRegistry
	ui        config.UIConfig
	logger    *zap.Logger
	sessionID string

	input   textinput.Model
	command textinput.Model
	focus   focus
	// selected indexes the open windows while focus is focusWindows.
	selected int

	dark      bool
	styles    styles
	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

func New(opts Options) *App {
	session := opts.Session
	if session == nil {
		session = core.NewSession(core.WithState(opts.Config.InitialState()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ui := opts.Config.UI
	if ui.SliderMax <= ui.SliderMin || ui.SliderStep <= 0 {
		ui = config.Default().UI
	}

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64
	input.Width = 16
	input.SetValue(session.State().InputText)
	input.Blur()

	command := textinput.New()
	command.Prompt = ":"
	command.Placeholder = "check 10 | inc | new | close <id> | noop | help | quit"
	command.Blur()

	return &App{
		session:   session,
		keys:      core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), opts.Config.Keys)),
		verbs:     core.NewCommandRegistry(core.DefaultVerbs()),
		ui:        ui,
		logger:    logger,
		sessionID: opts.SessionID,
		input:     input,
		command:   command,
		dark:      ui.Dark,
		styles:    newStyles(ui.Dark),
		status:    "Ready",
		width:     100,
		height:    32,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) scope() string {
	switch a.focus {
	case focusInput:
		return core.ScopeInput
	case focusWindows:
		return core.ScopeWindows
	case focusCommand:
		return core.ScopeCommand
	default:
		return core.ScopePanel
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case core.StatusMsg:
		a.status = msg.Text
		a.statusErr = msg.IsErr
	case core.CommandMsg:
		a.session.Submit(msg.Command)
	case tea.KeyMsg:
		cmd = a.handleKey(msg)
	default:
		cmd = a.forwardToFocused(msg)
	}
	return a, tea.Batch(cmd, a.endFrame())
}

// endFrame applies the command submitted during this update before View runs
// and reports it on the status bar.
func (a *App) endFrame() tea.Cmd {
	pending, ok := a.session.Pending()
	flushed := ok && a.session.Flush()
	a.clampSelection()
	if !flushed {
		return nil
	}
	return core.StatusCmd("Handled " + pending.Name())
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	st := a.session.State()
	switch a.keys.Action(msg, a.scope()) {
	case core.ActionQuit:
		a.quitting = true
		a.logger.Info("quit requested")
		return tea.Quit
	case core.ActionCheck, core.ActionSubmitInput:
		a.session.Submit(core.VerifyAnswer{Text: st.InputText})
		if a.focus == focusInput {
			a.setFocus(focusPanel)
		}
	case core.ActionEditInput:
		return a.setFocus(focusInput)
	case core.ActionIncrement:
		a.session.Submit(core.IncrementByButton{})
	case core.ActionSliderDown:
		a.nudgeSlider(-a.ui.SliderStep)
	case core.ActionSliderUp:
		a.nudgeSlider(a.ui.SliderStep)
	case core.ActionNewWindow:
		a.session.NewWindow()
	case core.ActionFocusNext:
		return a.setFocus(a.nextFocus(len(st.OpenWindows)))
	case core.ActionBack:
		return a.setFocus(focusPanel)
	case core.ActionWindowPrev:
		a.selected--
	case core.ActionWindowNext:
		a.selected++
	case core.ActionCloseWindow:
		if id, ok := a.selectedWindow(st); ok {
			return windowCommand(id, windowClose)
		}
	case core.ActionWindowNoOp:
		if id, ok := a.selectedWindow(st); ok {
			return windowCommand(id, windowNoOp)
		}
	case core.ActionCommandLine:
		a.command.Reset()
		return a.setFocus(focusCommand)
	case core.ActionRunCommand:
		return a.runCommandLine()
	case core.ActionToggleTheme:
		a.dark = !a.dark
		a.styles = newStyles(a.dark)
	default:
		return a.forwardToFocused(msg)
	}
	return nil
}

// forwardToFocused hands unbound input to the focused text field. Edits to the
// answer go straight into the model, not through a command.
func (a *App) forwardToFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.focus {
	case focusInput:
		a.input, cmd = a.input.Update(msg)
		value := a.input.Value()
		a.session.Edit(func(st *core.State) { st.InputText = value })
	case focusCommand:
		a.command, cmd = a.command.Update(msg)
	}
	return cmd
}

func (a *App) setFocus(f focus) tea.Cmd {
	a.focus = f
	a.input.Blur()
	a.command.Blur()
	switch f {
	case focusInput:
		return a.input.Focus()
	case focusCommand:
		return a.command.Focus()
	}
	return nil
}

func (a *App) nextFocus(openWindows int) focus {
	switch a.focus {
	case focusInput:
		return focusPanel
	case focusPanel:
		if openWindows > 0 {
			return focusWindows
		}
		return focusInput
	default:
		return focusInput
	}
}

func (a *App) nudgeSlider(delta float64) {
	lo, hi := a.ui.SliderMin, a.ui.SliderMax
	a.session.Edit(func(st *core.State) {
		v := math.Round((st.Counter+delta)*1000) / 1000
		st.Counter = min(max(v, lo), hi)
	})
}

func (a *App) selectedWindow(st core.State) (core.WindowID, bool) {
	if a.selected < 0 || a.selected >= len(st.OpenWindows) {
		return 0, false
	}
	return st.OpenWindows[a.selected], true
}

func (a *App) clampSelection() {
	n := len(a.session.State().OpenWindows)
	if n == 0 {
		a.selected = 0
		if a.focus == focusWindows {
			a.setFocus(focusPanel)
		}
		return
	}
	a.selected = min(max(a.selected, 0), n-1)
}

var errQuit = errors.New("quit")

func (a *App) runCommandLine() tea.Cmd {
	line := strings.TrimSpace(a.command.Value())
	a.command.Reset()
	a.setFocus(focusPanel)
	if line == "" {
		return nil
	}

	if query, ok := helpQuery(line); ok {
		return core.StatusCmd(a.verbHelp(query))
	}

	cmd, err := a.parseCommandLine(line)
	if errors.Is(err, errQuit) {
		a.quitting = true
		return tea.Quit
	}
	if err != nil {
		a.logger.Debug("command line rejected", zap.String("line", line), zap.Error(err))
		return core.ErrorCmd(err)
	}
	a.session.Submit(cmd)
	return nil
}

func (a *App) parseCommandLine(line string) (core.Command, error) {
	switch strings.ToLower(strings.TrimPrefix(line, ":")) {
	case "q", "quit", "exit":
		return nil, errQuit
	}
	ctx := core.BuildContext{
		InputText: a.session.State().InputText,
		AllocWindowID: func() core.WindowID {
			var id core.WindowID
			a.session.Edit(func(st *core.State) { id = st.AllocWindowID() })
			return id
		},
	}
	cmd, err := a.verbs.Parse(line, ctx)
	if err != nil {
		return nil, fmt.Errorf("command line: %w", err)
	}
	return cmd, nil
}

// helpQuery reports whether line asks for verb help, and the filter it carries.
func helpQuery(line string) (string, bool) {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return "", false
	}
	switch strings.ToLower(fields[0]) {
	case "help", "?":
		return strings.Join(fields[1:], " "), true
	}
	return "", false
}

func (a *App) verbHelp(query string) string {
	results := a.verbs.Search(query)
	if len(results) == 0 {
		return "No commands match " + strconv.Quote(query)
	}
	usages := make([]string, 0, len(results)+1)
	for _, r := range results {
		usages = append(usages, r.Usage)
	}
	if query == "" {
		usages = append(usages, "quit")
	}
	return "Commands: " + strings.Join(usages, " | ")
}
