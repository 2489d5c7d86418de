package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type keyEntry struct {
	action  string
	scopes  []string
	binding key.Binding
}

// KeyRegistry resolves key presses to actions per focus scope. Bindings are
// compiled into bubbles key.Binding values once, at construction.
type KeyRegistry struct {
	entries []keyEntry
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{entries: make([]keyEntry, 0, len(bindings))}
	for _, b := range bindings {
		keys := make([]string, 0, len(b.Keys))
		for _, k := range b.Keys {
			if k = normalizeKey(k); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) == 0 || b.Action == "" {
			continue
		}
		r.entries = append(r.entries, keyEntry{
			action:  b.Action,
			scopes:  append([]string(nil), b.Scopes...),
			binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], b.Description)),
		})
	}
	return r
}

// Action returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	for _, e := range r.entries {
		if scopeMatch(scope, e.scopes) && key.Matches(msg, e.binding) {
			return e.action
		}
	}
	return ""
}

// HelpForScope returns one binding per action available in scope, in
// registration order, for footer hints.
func (r *KeyRegistry) HelpForScope(scope string) []key.Binding {
	out := make([]key.Binding, 0, len(r.entries))
	seen := map[string]bool{}
	for _, e := range r.entries {
		if !scopeMatch(scope, e.scopes) || seen[e.action] {
			continue
		}
		seen[e.action] = true
		out = append(out, e.binding)
	}
	return out
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
