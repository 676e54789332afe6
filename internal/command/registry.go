// Package command maps input lines to address book operations: a static
// table of command specs, the line parser, the handlers, and the session loop
// that reads, dispatches and prints until the user quits.
package command

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/smileynet/abook/internal/contact"
)

// Handler runs a command with its validated arguments.
type Handler func(s *Session, args []string) error

// Spec describes one command: its name, usage, arity and handler.
type Spec struct {
	Name    string
	Args    string // Usage shown after the name, e.g. "<name> <phone>".
	Help    string
	MinArgs int
	MaxArgs int

	// Rest makes the last argument the remainder of the line, with its
	// internal whitespace preserved. MaxArgs is ignored.
	Rest bool

	// Quit ends the session after the command runs. Run may be nil.
	Quit bool
	Run  Handler
}

// Usage returns the command name followed by its argument synopsis.
func (s Spec) Usage() string {
	if s.Args == "" {
		return s.Name
	}
	return s.Name + " " + s.Args
}

// ParseArgs splits rest into arguments and checks the arity.
func (s Spec) ParseArgs(rest string) ([]string, error) {
	var args []string
	if s.Rest {
		args = splitN(rest, s.MinArgs)
		if len(args) < s.MinArgs {
			return nil, &UsageError{Name: s.Name, Args: s.Args}
		}
		return args, nil
	}

	args = strings.Fields(rest)
	if len(args) < s.MinArgs || len(args) > s.MaxArgs {
		return nil, &UsageError{Name: s.Name, Args: s.Args}
	}
	return args, nil
}

// UsageError reports a command invoked with the wrong arguments.
type UsageError struct {
	Name string
	Args string
}

func (e *UsageError) Error() string {
	if e.Args == "" {
		return fmt.Sprintf("Invalid input. Command '%s' doesn't need additional parameters.", e.Name)
	}
	return fmt.Sprintf("Invalid input. Use: %s %s", e.Name, e.Args)
}

// Unwrap lets callers match usage errors with contact.ErrInvalidArgument.
func (e *UsageError) Unwrap() error {
	return contact.ErrInvalidArgument
}

// Registry is the ordered command table.
// It is not safe for concurrent use; registration should happen at startup.
type Registry struct {
	specs map[string]Spec
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]Spec)}
}

// Register adds s under its lowercased name. Re-registering a name replaces
// the spec but keeps its original position.
// Panics if the name is empty or a non-quit spec has no handler (programmer error).
func (r *Registry) Register(s Spec) {
	if s.Name == "" {
		panic("command: Register called with empty name")
	}
	if s.Run == nil && !s.Quit {
		panic(fmt.Sprintf("command: Register %q called with nil handler", s.Name))
	}
	s.Name = strings.ToLower(s.Name)
	if _, ok := r.specs[s.Name]; !ok {
		r.order = append(r.order, s.Name)
	}
	r.specs[s.Name] = s
}

// Lookup returns the spec for name, ignoring letter case.
func (r *Registry) Lookup(name string) (Spec, bool) {
	s, ok := r.specs[strings.ToLower(name)]
	return s, ok
}

// Names returns command names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Specs returns every spec in registration order.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, len(r.order))
	for i, name := range r.order {
		out[i] = r.specs[name]
	}
	return out
}

// Parse splits a line into a lowercased command token and the rest of the line.
func Parse(line string) (name, rest string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:i]), strings.TrimSpace(line[i:])
}

// splitN splits s into at most n whitespace-separated fields; the last one
// is the untouched remainder of s.
func splitN(s string, n int) []string {
	var out []string
	s = strings.TrimSpace(s)
	for len(out) < n-1 && s != "" {
		i := strings.IndexFunc(s, unicode.IsSpace)
		if i < 0 {
			break
		}
		out = append(out, s[:i])
		s = strings.TrimSpace(s[i:])
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}
