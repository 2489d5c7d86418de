package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/cmdpattern/core"
	"github.com/jask/cmdpattern/internal/config"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(t *testing.T) (*App, *core.Session) {
	t.Helper()
	cfg := config.Default()
	session := core.NewSession(core.WithState(cfg.InitialState()))
	return New(Options{Session: session, Config: cfg, SessionID: "0123456789abcdef"}), session
}

func send(a *App, msgs ...tea.Msg) tea.Cmd {
	var last tea.Cmd
	for _, msg := range msgs {
		_, last = a.Update(msg)
	}
	return last
}

// activate presses a window button and delivers the command it emits.
func activate(t *testing.T, a *App, msg tea.Msg) tea.Cmd {
	t.Helper()
	cmd := send(a, msg)
	require.NotNil(t, cmd)
	emitted, ok := cmd().(core.CommandMsg)
	require.True(t, ok, "window buttons emit a CommandMsg")
	return send(a, emitted)
}

func TestIncrementButtonAppliesBeforeRender(t *testing.T) {
	a, s := newTestApp(t)
	cmd := send(a, runes("+"))
	require.InDelta(t, 3.7, s.State().Counter, 1e-9)
	_, pending := s.Pending()
	require.False(t, pending)

	require.NotNil(t, cmd)
	send(a, cmd())
	assert.Equal(t, "Handled increment", a.status)
}

func TestTypedAnswerIsVerified(t *testing.T) {
	a, s := newTestApp(t)
	send(a, runes("e"), tea.KeyMsg{Type: tea.KeyCtrlU}, runes("10"))
	require.Equal(t, focusInput, a.focus)
	require.Equal(t, "10", s.State().InputText)
	_, ok := s.State().Verified()
	require.False(t, ok, "editing text does not verify")

	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	got, ok := s.State().Verified()
	require.True(t, ok)
	require.True(t, got)
	require.Equal(t, focusPanel, a.focus)
	assert.Contains(t, a.View(), "Your answer was correct.")

	send(a, runes("e"), tea.KeyMsg{Type: tea.KeyCtrlU}, runes("ten"), tea.KeyMsg{Type: tea.KeyEnter})
	got, _ = s.State().Verified()
	require.False(t, got)
	assert.Contains(t, a.View(), "Your answer was wrong.")
}

func TestWindowsOpenAndCloseBySelection(t *testing.T) {
	a, s := newTestApp(t)
	send(a, runes("n"), runes("n"), runes("n"))
	require.Equal(t, []core.WindowID{0, 1, 2}, s.State().OpenWindows)
	require.Equal(t, core.WindowID(3), s.State().NextWindowID)

	view := a.View()
	assert.Contains(t, view, "3 windows open")
	assert.Contains(t, view, "I'm a window and my id is 2")

	send(a, tea.KeyMsg{Type: tea.KeyTab}, runes("j"))
	activate(t, a, runes("x"))
	require.Equal(t, []core.WindowID{0, 2}, s.State().OpenWindows)
	require.Equal(t, focusWindows, a.focus)

	send(a, runes("j"), runes("j"))
	activate(t, a, runes("x"))
	require.Equal(t, []core.WindowID{0}, s.State().OpenWindows)

	activate(t, a, runes("x"))
	require.Empty(t, s.State().OpenWindows)
	require.Equal(t, focusPanel, a.focus, "focus leaves the empty window list")

	send(a, runes("n"))
	require.Equal(t, []core.WindowID{3}, s.State().OpenWindows, "ids are never reused")
}

func TestWindowNoOpChangesNothing(t *testing.T) {
	a, s := newTestApp(t)
	send(a, runes("n"), tea.KeyMsg{Type: tea.KeyTab})
	before := s.State()
	status := activate(t, a, runes("o"))
	require.Equal(t, before, s.State())
	require.NotNil(t, status)
	send(a, status())
	assert.Equal(t, "Handled noop", a.status)
}

func TestSliderClampsButIncrementDoesNot(t *testing.T) {
	a, s := newTestApp(t)
	for range 200 {
		send(a, tea.KeyMsg{Type: tea.KeyRight})
	}
	require.InDelta(t, 10, s.State().Counter, 1e-9)

	send(a, runes("i"))
	require.InDelta(t, 11, s.State().Counter, 1e-9)

	send(a, tea.KeyMsg{Type: tea.KeyLeft})
	require.InDelta(t, 10, s.State().Counter, 1e-9)

	for range 200 {
		send(a, runes("h"))
	}
	require.InDelta(t, 0, s.State().Counter, 1e-9)
}

func TestCommandLine(t *testing.T) {
	a, s := newTestApp(t)
	send(a, runes(":"))
	require.Equal(t, focusCommand, a.focus)
	send(a, runes("new"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, []core.WindowID{0}, s.State().OpenWindows)
	require.Equal(t, focusPanel, a.focus)

	send(a, runes(":"), runes("check 10"), tea.KeyMsg{Type: tea.KeyEnter})
	got, _ := s.State().Verified()
	require.True(t, got)

	send(a, runes(":"), runes("close 0"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Empty(t, s.State().OpenWindows)
}

func TestCommandLineErrorsGoToStatus(t *testing.T) {
	a, s := newTestApp(t)
	before := s.State()
	cmd := send(a, runes(":"), runes("clsoe 1"), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(core.StatusMsg)
	require.True(t, ok)
	require.True(t, msg.IsErr)
	require.Contains(t, msg.Text, `did you mean "close"`)

	send(a, msg)
	require.True(t, a.statusErr)
	require.Equal(t, before, s.State())
}

func TestCommandLineEscapeCancels(t *testing.T) {
	a, s := newTestApp(t)
	send(a, runes(":"), runes("inc"), tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, focusPanel, a.focus)
	require.InDelta(t, 2.7, s.State().Counter, 1e-9)
}

func TestQuit(t *testing.T) {
	a, _ := newTestApp(t)
	cmd := send(a, runes("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
	require.Empty(t, a.View())

	b, _ := newTestApp(t)
	cmd = send(b, runes(":"), runes("quit"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestQInsideInputIsText(t *testing.T) {
	a, s := newTestApp(t)
	send(a, runes("e"), tea.KeyMsg{Type: tea.KeyCtrlU}, runes("q"))
	require.False(t, a.quitting)
	require.Equal(t, "q", s.State().InputText)
}

func TestCommandMsgIsSubmitted(t *testing.T) {
	a, s := newTestApp(t)
	send(a, core.SubmitCmd(core.CreateNewWindow{ID: 9})())
	require.Equal(t, []core.WindowID{9}, s.State().OpenWindows)
}

func TestConfiguredKeysOverrideDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Keys = map[string][]string{core.ActionIncrement: {"u"}}
	session := core.NewSession(core.WithState(cfg.InitialState()))
	a := New(Options{Session: session, Config: cfg})

	send(a, runes("+"))
	require.InDelta(t, 2.7, session.State().Counter, 1e-9)
	send(a, runes("u"))
	require.InDelta(t, 3.7, session.State().Counter, 1e-9)
}

func TestThemeToggleAndStatusBar(t *testing.T) {
	a, _ := newTestApp(t)
	require.True(t, a.dark)
	send(a, runes("t"))
	require.False(t, a.dark)
	assert.Contains(t, a.View(), "Theme: light")
	assert.Contains(t, a.View(), "[01234567]")
}

func TestSliderBar(t *testing.T) {
	assert.Equal(t, "●───", sliderBar(0, 0, 10, 4))
	assert.Equal(t, "━━━●", sliderBar(10, 0, 10, 4))
	assert.Equal(t, "━━━●", sliderBar(42, 0, 10, 4))
	assert.Equal(t, "●───", sliderBar(-3, 0, 10, 4))
}

func TestWindowCommand(t *testing.T) {
	assert.Equal(t, core.CommandMsg{Command: core.CloseWindow{ID: 4}}, windowCommand(4, windowClose)())
	assert.Equal(t, core.CommandMsg{Command: core.NoOp{}}, windowCommand(4, windowNoOp)())
}

func TestWindowKeysWithoutWindowsEmitNothing(t *testing.T) {
	a, _ := newTestApp(t)
	a.focus = focusWindows
	require.Nil(t, send(a, runes("x")))
	require.Equal(t, focusPanel, a.focus)
}

func TestHelpListsVerbs(t *testing.T) {
	a, s := newTestApp(t)
	before := s.State()
	cmd := send(a, runes(":"), runes("help"), tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(core.StatusMsg)
	require.True(t, ok)
	require.False(t, msg.IsErr)
	assert.Equal(t, "Commands: check [answer] | close <id> | inc | new | noop | quit", msg.Text)
	require.Equal(t, before, s.State())

	cmd = send(a, runes(":"), runes("? window"), tea.KeyMsg{Type: tea.KeyEnter})
	msg = cmd().(core.StatusMsg)
	assert.Equal(t, "Commands: close <id> | new", msg.Text)

	cmd = send(a, runes(":"), runes("help zzz"), tea.KeyMsg{Type: tea.KeyEnter})
	msg = cmd().(core.StatusMsg)
	assert.Equal(t, `No commands match "zzz"`, msg.Text)
}

func TestCheckKeyOverrideKeepsAnswerFieldTyping(t *testing.T) {
	cfg := config.Default()
	cfg.Keys = map[string][]string{core.ActionCheck: {"c"}}
	session := core.NewSession(core.WithState(cfg.InitialState()))
	a := New(Options{Session: session, Config: cfg})

	send(a, runes("e"), tea.KeyMsg{Type: tea.KeyCtrlU}, runes("c"))
	require.Equal(t, "c", session.State().InputText)
	_, ok := session.State().Verified()
	require.False(t, ok, "typing c in the answer field does not check")

	send(a, tea.KeyMsg{Type: tea.KeyEnter})
	got, ok := session.State().Verified()
	require.True(t, ok, "enter still checks from the answer field")
	require.False(t, got)
}
