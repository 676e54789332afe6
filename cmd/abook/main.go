package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/smileynet/abook/internal/command"
	"github.com/smileynet/abook/internal/config"
	"github.com/smileynet/abook/internal/contact"
	"github.com/smileynet/abook/internal/phone"
	"github.com/smileynet/abook/internal/state"
	"github.com/smileynet/abook/internal/tui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals are flags shared by every command. They override config files and
// environment variables.
type Globals struct {
	Config   string `help:"Config file layered over the user and project config." type:"path"`
	Book     string `help:"Address book file (overrides storage.path)." short:"b" type:"path"`
	Region   string `help:"Default phone region, e.g. UA (overrides phone.default_region)."`
	Days     *int   `help:"Default window for 'birthdays' in days (overrides birthdays.default_days)."`
	LogLevel string `help:"Log level: debug, info, warn or error." name:"log-level"`
	NoTUI    bool   `help:"Force plain text input and output even if attached to a terminal." name:"no-tui"`
}

// CLI is the top-level command structure for abook.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Show version." short:"V"`
	Shell   ShellCmd         `cmd:"" default:"1" help:"Start the interactive address book (default)."`
	Run     RunCmd           `cmd:"" help:"Run one address book command, then save."`
}

// storageError marks a failure to load or save the address book.
type storageError struct {
	err error
}

func (e *storageError) Error() string { return e.err.Error() }
func (e *storageError) Unwrap() error { return e.err }

// app holds the services built from configuration.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	phones *phone.Normalizer
	store  *state.FileStore
}

// loadConfig loads layered config from user and project paths with env overrides.
// An explicit path must exist.
func loadConfig(explicit string) (*config.Config, error) {
	paths := []string{
		os.ExpandEnv("$HOME/.config/abook/config.yaml"),
		".abook/config.yaml",
	}
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		paths = append(paths, explicit)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads configuration, applies flag overrides and builds the services.
// Operational logs go to stderr.
func (g *Globals) setup(stderr io.Writer) (*app, error) {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return nil, err
	}

	// Apply CLI flag overrides.
	if g.Book != "" {
		cfg.Storage.Path = g.Book
	}
	if g.Region != "" {
		cfg.Phone.DefaultRegion = g.Region
	}
	if g.Days != nil {
		cfg.Birthdays.DefaultDays = *g.Days
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.NoTUI {
		cfg.UI.Plain = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	phones, err := phone.New(cfg.Phone.DefaultRegion)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(stderr, log.Options{Prefix: "abook", Level: lvl})
	logger.Debug("config loaded", "book", cfg.Storage.Path, "region", phones.Region())

	return &app{
		cfg:    cfg,
		logger: logger,
		phones: phones,
		store:  state.NewFileStore(cfg.Storage.Path),
	}, nil
}

// load reads the address book. Any failure is a storage error.
func (a *app) load() (*contact.Book, error) {
	book, err := a.store.Load()
	if err != nil {
		return nil, &storageError{err: err}
	}
	a.logger.Debug("loaded address book", "path", a.store.Path(), "contacts", book.Len())
	return book, nil
}

func (a *app) session(book *contact.Book, d command.Display) *command.Session {
	return command.NewSession(book, a.phones, d,
		command.WithStore(a.store),
		command.WithLogger(a.logger),
		command.WithDefaultDays(a.cfg.Birthdays.DefaultDays),
	)
}

// ShellCmd runs the interactive read-dispatch-print loop.
type ShellCmd struct{}

// Run executes the shell command.
func (c *ShellCmd) Run(g *Globals) error {
	a, err := g.setup(os.Stderr)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	display := tui.NewDisplay(tui.DisplayOptions{Writer: os.Stdout, ForcePlain: a.cfg.UI.Plain})
	reader := tui.NewReader(tui.ReaderOptions{
		In:         os.Stdin,
		Out:        os.Stdout,
		Prompt:     a.cfg.UI.Prompt,
		Commands:   command.DefaultRegistry().Names(),
		ForcePlain: a.cfg.UI.Plain,
	})
	return c.run(ctx, a, display, reader)
}

// run loads the book and drives the session, enabling testable wiring.
func (c *ShellCmd) run(ctx context.Context, a *app, display command.Display, reader command.Reader) error {
	book, err := a.load()
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	if err := a.session(book, display).Run(ctx, reader); err != nil {
		return fmt.Errorf("shell: %w", &storageError{err: err})
	}
	return nil
}

// RunCmd executes a single command line against the stored book.
type RunCmd struct {
	Line []string `arg:"" passthrough:"" help:"Command and its arguments, e.g. 'add John 0671111111'."`
}

// Run executes the run command.
func (r *RunCmd) Run(g *Globals) error {
	a, err := g.setup(os.Stderr)
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	display := tui.NewDisplay(tui.DisplayOptions{Writer: os.Stdout, ForcePlain: a.cfg.UI.Plain})
	return r.run(a, display)
}

// run executes the line and saves, enabling testable wiring. Quit commands
// only save.
func (r *RunCmd) run(a *app, display command.Display) error {
	book, err := a.load()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	sess := a.session(book, display)
	sess.Execute(strings.Join(r.Line, " "))
	if err := sess.Save(); err != nil {
		return fmt.Errorf("run: %w", &storageError{err: err})
	}
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitStorage = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *storageError
	if errors.As(err, &se) {
		return exitStorage
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("abook"),
		kong.Description("A local address book with birthday reminders."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
