package core

import (
	"slices"
	"strconv"
	"time"
)

// Event describes one handled command.
type Event struct {
	Seq      uint64
	Command  Command
	Name     string
	Duration time.Duration
}

// Observer is called after every dispatch. It must not mutate the state.
type Observer func(Event)

// Handler applies commands to a State and reports each dispatch to Observe.
// The zero value is ready to use.
type Handler struct {
	Observe Observer

	seq uint64
}

// Handle applies cmd to s. It never fails: unparseable answers count as wrong,
// closing an unknown window is ignored and a nil command is a no-op.
func (h *Handler) Handle(s *State, cmd Command) {
	start := time.Now()
	apply(s, cmd)
	h.seq++
	if h.Observe == nil {
		return
	}
	name := NoOp{}.Name()
	if cmd != nil {
		name = cmd.Name()
	}
	h.Observe(Event{
		Seq:      h.seq,
		Command:  cmd,
		Name:     name,
		Duration: time.Since(start),
	})
}

// Handle applies cmd to s without observation.
func Handle(s *State, cmd Command) {
	apply(s, cmd)
}

func apply(s *State, cmd Command) {
	switch c := cmd.(type) {
	case VerifyAnswer:
		correct := parseAnswer(c.Text) == ExpectedAnswer
		s.Verification = &correct
	case IncrementByButton:
		s.Counter += IncrementStep
	case CreateNewWindow:
		s.OpenWindows = append(s.OpenWindows, c.ID)
	case CloseWindow:
		s.OpenWindows = slices.DeleteFunc(s.OpenWindows, func(id WindowID) bool { return id == c.ID })
	case NoOp:
	case nil:
	}
}

// parseAnswer reads text as a decimal integer, falling back to 0.
func parseAnswer(text string) int {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return n
}
