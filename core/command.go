package core

import "strconv"

// Command is a user intent consumed by Handle. The set of variants is closed:
// only types declared in this package implement it.
//
//sumtype:decl
type Command interface {
	isCommand()
	// Name is a stable, lower-case identifier used in logs and the command line.
	Name() string
}

// VerifyAnswer checks Text against ExpectedAnswer.
type VerifyAnswer struct {
	Text string
}

// IncrementByButton adds IncrementStep to the counter.
type IncrementByButton struct{}

// CreateNewWindow opens the child window ID. The caller allocates ID with
// State.AllocWindowID so it never collides with an open window.
type CreateNewWindow struct {
	ID WindowID
}

// CloseWindow closes every open child window equal to ID.
type CloseWindow struct {
	ID WindowID
}

// NoOp does nothing.
type NoOp struct{}

func (VerifyAnswer) isCommand()      {}
func (IncrementByButton) isCommand() {}
func (CreateNewWindow) isCommand()   {}
func (CloseWindow) isCommand()       {}
func (NoOp) isCommand()              {}

func (VerifyAnswer) Name() string      { return "verify-answer" }
func (IncrementByButton) Name() string { return "increment" }
func (CreateNewWindow) Name() string   { return "create-window" }
func (CloseWindow) Name() string       { return "close-window" }
func (NoOp) Name() string              { return "noop" }

func (c VerifyAnswer) String() string      { return c.Name() + "(" + strconv.Quote(c.Text) + ")" }
func (c IncrementByButton) String() string { return c.Name() }
func (c CreateNewWindow) String() string   { return c.Name() + "(" + c.ID.String() + ")" }
func (c CloseWindow) String() string       { return c.Name() + "(" + c.ID.String() + ")" }
func (c NoOp) String() string              { return c.Name() }
