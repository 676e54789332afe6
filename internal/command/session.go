package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/smileynet/abook/internal/contact"
	"github.com/smileynet/abook/internal/phone"
)

// Display renders command output.
type Display interface {
	Message(text string)
	Error(err error)
	Table(title string, headers []string, rows [][]string)
}

// Reader yields input lines. ReadLine returns io.EOF when input ends.
type Reader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Store persists the book when the session ends.
type Store interface {
	Save(book *contact.Book) error
}

// Clock supplies the current time so "today" can be fixed in tests.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Session holds the state shared by the handlers for one interactive run.
type Session struct {
	Book        *contact.Book
	Phones      *phone.Normalizer
	Commands    *Registry
	Clock       Clock
	Display     Display
	Store       Store
	Logger      *log.Logger
	DefaultDays int
}

// Option configures a Session.
type Option func(*Session)

// WithStore sets the store the book is saved to when the session ends.
func WithStore(st Store) Option {
	return func(s *Session) { s.Store = st }
}

// WithClock overrides the wall clock.
func WithClock(c Clock) Option {
	return func(s *Session) { s.Clock = c }
}

// WithLogger sets the operational logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.Logger = l }
}

// WithDefaultDays sets the window used by "birthdays" without an argument.
func WithDefaultDays(days int) Option {
	return func(s *Session) { s.DefaultDays = days }
}

// WithRegistry replaces the built-in command table.
func WithRegistry(r *Registry) Option {
	return func(s *Session) { s.Commands = r }
}

// NewSession creates a Session over book with the built-in commands.
func NewSession(book *contact.Book, phones *phone.Normalizer, d Display, opts ...Option) *Session {
	s := &Session{
		Book:        book,
		Phones:      phones,
		Display:     d,
		Clock:       SystemClock,
		Logger:      log.New(io.Discard),
		DefaultDays: contact.DefaultBirthdayDays,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Commands == nil {
		s.Commands = DefaultRegistry()
	}
	return s
}

// Today returns the current calendar date in local time.
func (s *Session) Today() contact.Date {
	return contact.DateOf(s.Clock.Now())
}

// Execute dispatches one input line and prints its result. It reports whether
// the line asked to end the session. Handler errors are printed, never returned.
func (s *Session) Execute(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		s.Display.Message("Use one of commands: " + strings.Join(s.Commands.Names(), ", "))
		return false
	}

	name, rest := Parse(line)
	spec, ok := s.Commands.Lookup(name)
	if !ok {
		s.Logger.Debug("unknown command", "name", name)
		s.showHelp()
		return false
	}

	args, err := spec.ParseArgs(rest)
	if err != nil {
		s.Display.Error(err)
		return false
	}

	s.Logger.Debug("dispatch", "command", spec.Name, "args", len(args))
	if spec.Run != nil {
		if err := spec.Run(s, args); err != nil {
			s.Display.Error(err)
			return false
		}
	}
	return spec.Quit
}

// Run reads lines from r and executes them until a quit command, end of
// input, or context cancellation, then saves the book. Only read and save
// failures are returned.
func (s *Session) Run(ctx context.Context, r Reader) error {
	s.Display.Message("Welcome to the assistant bot!")

	var readErr error
	for {
		line, err := r.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				s.Logger.Warn("input closed, saving and exiting")
			} else {
				readErr = fmt.Errorf("command: reading input: %w", err)
			}
			break
		}
		if s.Execute(line) {
			break
		}
	}

	return errors.Join(readErr, s.Save())
}

// Save writes the book to the configured store, if any.
func (s *Session) Save() error {
	if s.Store == nil {
		return nil
	}
	if err := s.Store.Save(s.Book); err != nil {
		s.Logger.Warn("save failed", "err", err)
		return fmt.Errorf("command: saving address book: %w", err)
	}
	s.Logger.Debug("saved address book", "contacts", s.Book.Len())
	return nil
}

func (s *Session) showHelp() {
	specs := s.Commands.Specs()
	rows := make([][]string, len(specs))
	for i, spec := range specs {
		rows[i] = []string{spec.Usage(), spec.Help}
	}
	s.Display.Table("Commands", []string{"Command", "Description"}, rows)
}
