package core

import (
	"fmt"
	"slices"
	"strconv"
)

const (
	// ExpectedAnswer is the answer to "What is 5 + 5?".
	ExpectedAnswer = 10
	IncrementStep  = 1.0

	DefaultInputText = "Hello World!"
	DefaultCounter   = 2.7

	windowTitle = "I'm a window"
)

// WindowID identifies one child window. IDs come from State.AllocWindowID and
// are never reused.
type WindowID uint64

func (id WindowID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// State is the application model. The UI reads its fields directly; InputText
// and Counter may also be edited by the UI outside the command path.
type State struct {
	InputText    string
	Verification *bool
	Counter      float64
	NextWindowID WindowID
	OpenWindows  []WindowID
}

func NewState() State {
	return State{
		InputText:   DefaultInputText,
		Counter:     DefaultCounter,
		OpenWindows: []WindowID{},
	}
}

// Verified reports the last verification result. ok is false until the first
// VerifyAnswer was handled.
func (s State) Verified() (correct, ok bool) {
	if s.Verification == nil {
		return false, false
	}
	return *s.Verification, true
}

// AllocWindowID returns a fresh window id and advances NextWindowID.
func (s *State) AllocWindowID() WindowID {
	id := s.NextWindowID
	s.NextWindowID++
	return id
}

func (s State) IsOpen(id WindowID) bool {
	return slices.Contains(s.OpenWindows, id)
}

// Clone returns a copy that shares no memory with s.
func (s State) Clone() State {
	out := s
	if s.Verification != nil {
		v := *s.Verification
		out.Verification = &v
	}
	out.OpenWindows = slices.Clone(s.OpenWindows)
	return out
}

// WindowContent is what a child window displays. It is derived from the id.
type WindowContent struct {
	ID    WindowID
	Title string
	Body  string
}

func WindowContentFor(id WindowID) WindowContent {
	return WindowContent{
		ID:    id,
		Title: windowTitle,
		Body:  fmt.Sprintf("I'm a window and my id is %d", id),
	}
}
