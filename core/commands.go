package core

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArgument    = errors.New("bad argument")
)

// maxSuggestDistance bounds how far a typo may be from a verb to be suggested.
const maxSuggestDistance = 3

// BuildContext is what a command-line verb may use to build its Command.
type BuildContext struct {
	InputText     string
	AllocWindowID func() WindowID
}

type Verb struct {
	ID          string
	Aliases     []string
	Usage       string
	Description string
	Build       func(ctx BuildContext, args []string) (Command, error)
}

type VerbResult struct {
	ID    string
	Usage string
	Desc  string
}

type CommandRegistry struct {
	verbs map[string]Verb
	names map[string]string // id or alias -> id
}

func NewCommandRegistry(verbs []Verb) *CommandRegistry {
	reg := &CommandRegistry{verbs: map[string]Verb{}, names: map[string]string{}}
	for _, v := range verbs {
		reg.Register(v)
	}
	return reg
}

func (r *CommandRegistry) Register(v Verb) {
	if v.ID == "" {
		return
	}
	r.verbs[v.ID] = v
	r.names[v.ID] = v.ID
	for _, a := range v.Aliases {
		r.names[a] = v.ID
	}
}

func (r *CommandRegistry) Search(query string) []VerbResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]VerbResult, 0, len(r.verbs))
	for _, v := range r.verbs {
		h := strings.ToLower(v.ID + " " + strings.Join(v.Aliases, " ") + " " + v.Description)
		if q != "" && !strings.Contains(h, q) {
			continue
		}
		results = append(results, VerbResult{ID: v.ID, Usage: v.Usage, Desc: v.Description})
	}
	slices.SortFunc(results, func(a, b VerbResult) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return results
}

// Parse turns a command line such as "close 3" into a Command.
func (r *CommandRegistry) Parse(line string, ctx BuildContext) (Command, error) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), ":"))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	word := strings.ToLower(fields[0])
	id, ok := r.names[word]
	if !ok {
		if s := r.Suggest(word); s != "" {
			return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownCommand, word, s)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, word)
	}
	v := r.verbs[id]
	if v.Build == nil {
		return NoOp{}, nil
	}
	return v.Build(ctx, fields[1:])
}

// Suggest returns the closest known verb or alias, or "" if none is close.
func (r *CommandRegistry) Suggest(word string) string {
	best, bestDist := "", maxSuggestDistance+1
	for name := range r.names {
		d := levenshtein.ComputeDistance(word, name)
		if d < bestDist || (d == bestDist && name < best) {
			best, bestDist = name, d
		}
	}
	if bestDist > maxSuggestDistance {
		return ""
	}
	return best
}

func DefaultVerbs() []Verb {
	return []Verb{
		{
			ID:          "check",
			Aliases:     []string{"verify"},
			Usage:       "check [answer]",
			Description: "Check the answer (defaults to the input text)",
			Build: func(ctx BuildContext, args []string) (Command, error) {
				if len(args) == 0 {
					return VerifyAnswer{Text: ctx.InputText}, nil
				}
				return VerifyAnswer{Text: strings.Join(args, " ")}, nil
			},
		},
		{
			ID:          "inc",
			Aliases:     []string{"increment"},
			Usage:       "inc",
			Description: "Increment the value by one",
			Build: func(BuildContext, []string) (Command, error) {
				return IncrementByButton{}, nil
			},
		},
		{
			ID:          "new",
			Aliases:     []string{"window", "open"},
			Usage:       "new",
			Description: "Open a new window",
			Build: func(ctx BuildContext, _ []string) (Command, error) {
				if ctx.AllocWindowID == nil {
					return nil, fmt.Errorf("%w: no window id allocator", ErrBadArgument)
				}
				return CreateNewWindow{ID: ctx.AllocWindowID()}, nil
			},
		},
		{
			ID:          "close",
			Usage:       "close <id>",
			Description: "Close the window with the given id",
			Build: func(_ BuildContext, args []string) (Command, error) {
				if len(args) != 1 {
					return nil, fmt.Errorf("%w: close takes exactly one window id", ErrBadArgument)
				}
				n, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: window id %q", ErrBadArgument, args[0])
				}
				return CloseWindow{ID: WindowID(n)}, nil
			},
		},
		{
			ID:          "noop",
			Usage:       "noop",
			Description: "Do nothing",
			Build: func(BuildContext, []string) (Command, error) {
				return NoOp{}, nil
			},
		},
	}
}
