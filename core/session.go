package core

// Session owns the State and the single pending-command slot the UI writes
// into during a frame. The host calls Flush once per frame, before rendering.
type Session struct {
	state   State
	handler Handler
	pending Command

	// OnDrop is called when Submit overwrites a command that was never flushed.
	OnDrop func(dropped, replacement Command)
}

type SessionOption func(*Session)

func WithObserver(o Observer) SessionOption {
	return func(s *Session) { s.handler.Observe = o }
}

func WithDropHook(fn func(dropped, replacement Command)) SessionOption {
	return func(s *Session) { s.OnDrop = fn }
}

func WithState(st State) SessionOption {
	return func(s *Session) { s.state = st }
}

func NewSession(opts ...SessionOption) *Session {
	s := &Session{state: NewState()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit stores cmd as the pending command for this frame. A command already
// pending is replaced, not queued.
func (s *Session) Submit(cmd Command) {
	if cmd == nil {
		return
	}
	if s.pending != nil && s.OnDrop != nil {
		s.OnDrop(s.pending, cmd)
	}
	s.pending = cmd
}

func (s *Session) Pending() (Command, bool) {
	return s.pending, s.pending != nil
}

// Flush applies the pending command, if any, and clears the slot.
func (s *Session) Flush() bool {
	if s.pending == nil {
		return false
	}
	cmd := s.pending
	s.pending = nil
	s.handler.Handle(&s.state, cmd)
	return true
}

// Apply submits cmd and flushes it immediately.
func (s *Session) Apply(cmd Command) {
	s.Submit(cmd)
	s.Flush()
}

// State returns a snapshot of the model.
func (s *Session) State() State {
	return s.state.Clone()
}

// Edit gives the UI direct access to the fields it owns outside the command
// path (the input text and the slider-driven counter).
func (s *Session) Edit(fn func(st *State)) {
	fn(&s.state)
}

// NewWindow allocates a fresh window id and submits CreateNewWindow for it.
func (s *Session) NewWindow() WindowID {
	id := s.state.AllocWindowID()
	s.Submit(CreateNewWindow{ID: id})
	return id
}
