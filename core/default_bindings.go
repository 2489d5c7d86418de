package core

const (
	ScopeInput   = "focus:input"
	ScopePanel   = "focus:panel"
	ScopeWindows = "focus:windows"
	ScopeCommand = "focus:command"
)

const (
	ActionQuit        = "quit"
	ActionCheck       = "check"
	ActionSubmitInput = "submit-answer"
	ActionIncrement   = "increment"
	ActionSliderDown  = "slider-down"
	ActionSliderUp    = "slider-up"
	ActionNewWindow   = "new-window"
	ActionEditInput   = "edit-input"
	ActionFocusNext   = "focus-next"
	ActionBack        = "back"
	ActionWindowPrev  = "window-prev"
	ActionWindowNext  = "window-next"
	ActionCloseWindow = "close-window"
	ActionWindowNoOp  = "window-noop"
	ActionCommandLine = "command-line"
	ActionRunCommand  = "run-command"
	ActionToggleTheme = "toggle-theme"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopePanel, ScopeWindows}},
		{Keys: []string{"enter"}, Action: ActionSubmitInput, Description: "check", Scopes: []string{ScopeInput}},
		{Keys: []string{"c"}, Action: ActionCheck, Description: "check", Scopes: []string{ScopePanel}},
		{Keys: []string{"e", "/"}, Action: ActionEditInput, Description: "edit answer", Scopes: []string{ScopePanel}},
		{Keys: []string{"+", "i"}, Action: ActionIncrement, Description: "increment", Scopes: []string{ScopePanel}},
		{Keys: []string{"left", "h"}, Action: ActionSliderDown, Description: "value -", Scopes: []string{ScopePanel}},
		{Keys: []string{"right", "l"}, Action: ActionSliderUp, Description: "value +", Scopes: []string{ScopePanel}},
		{Keys: []string{"n"}, Action: ActionNewWindow, Description: "add window", Scopes: []string{ScopePanel}},
		{Keys: []string{"tab"}, Action: ActionFocusNext, Description: "next focus", Scopes: []string{ScopeInput, ScopePanel, ScopeWindows}},
		{Keys: []string{"esc"}, Action: ActionBack, Description: "back", Scopes: []string{ScopeInput, ScopeWindows, ScopeCommand}},
		{Keys: []string{"k", "up"}, Action: ActionWindowPrev, Description: "prev window", Scopes: []string{ScopeWindows}},
		{Keys: []string{"j", "down"}, Action: ActionWindowNext, Description: "next window", Scopes: []string{ScopeWindows}},
		{Keys: []string{"x"}, Action: ActionCloseWindow, Description: "close", Scopes: []string{ScopeWindows}},
		{Keys: []string{"o"}, Action: ActionWindowNoOp, Description: "noop", Scopes: []string{ScopeWindows}},
		{Keys: []string{":"}, Action: ActionCommandLine, Description: "command", Scopes: []string{ScopePanel, ScopeWindows}},
		{Keys: []string{"enter"}, Action: ActionRunCommand, Description: "run", Scopes: []string{ScopeCommand}},
		{Keys: []string{"t"}, Action: ActionToggleTheme, Description: "theme", Scopes: []string{ScopePanel}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action
// appears in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
