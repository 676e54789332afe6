package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Reader yields command lines. ReadLine returns io.EOF when input ends.
type Reader interface {
	ReadLine(ctx context.Context) (string, error)
}

// Verify at compile time that both readers implement Reader.
var (
	_ Reader = (*PlainReader)(nil)
	_ Reader = (*PromptReader)(nil)
)

// ReaderOptions configures reader creation.
type ReaderOptions struct {
	In         io.Reader // Input source (default: os.Stdin).
	Out        io.Writer // Where the prompt is drawn (default: os.Stdout).
	Prompt     string
	Commands   []string // Completion candidates for the interactive prompt.
	ForcePlain bool     // Force line reading even if both ends are TTYs.
}

// NewReader returns an interactive prompt when both input and output are
// terminals, or a plain line reader otherwise.
func NewReader(opts ReaderOptions) Reader {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.ForcePlain || !isTTYReader(opts.In) || !isTTY(opts.Out) {
		return NewPlainReader(opts.In, opts.Out, opts.Prompt)
	}
	return &PromptReader{in: opts.In, out: opts.Out, prompt: opts.Prompt, commands: opts.Commands}
}

func isTTYReader(r io.Reader) bool {
	w, ok := r.(io.Writer)
	return ok && isTTY(w)
}

// PlainReader reads newline-terminated lines, echoing the prompt before each.
type PlainReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewPlainReader creates a PlainReader over in. The prompt is written to out
// when out is non-nil.
func NewPlainReader(in io.Reader, out io.Writer, prompt string) *PlainReader {
	return &PlainReader{scanner: bufio.NewScanner(in), out: out, prompt: prompt}
}

type lineResult struct {
	line string
	err  error
}

// ReadLine returns the next line without its terminator. It returns early
// with the context error if ctx is cancelled while waiting for input; the
// reader must not be used after that.
func (r *PlainReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.out != nil && r.prompt != "" {
		_, _ = fmt.Fprint(r.out, r.prompt)
	}

	done := make(chan lineResult, 1)
	go func() {
		if !r.scanner.Scan() {
			err := r.scanner.Err()
			if err == nil {
				err = io.EOF
			} else {
				err = fmt.Errorf("tui: reading input: %w", err)
			}
			done <- lineResult{err: err}
			return
		}
		done <- lineResult{line: r.scanner.Text()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.line, res.err
	}
}

// PromptReader reads each line with a short-lived Bubble Tea program.
// Falls back to plain reading if the program fails to start.
type PromptReader struct {
	in       io.Reader
	out      io.Writer
	prompt   string
	commands []string
	fallback *PlainReader
}

// ReadLine runs the prompt until enter (the line), ctrl+c/ctrl+d (io.EOF)
// or context cancellation.
func (r *PromptReader) ReadLine(ctx context.Context) (string, error) {
	if r.fallback != nil {
		return r.fallback.ReadLine(ctx)
	}

	p := tea.NewProgram(
		NewPromptModel(r.prompt, r.commands),
		tea.WithInput(r.in),
		tea.WithOutput(r.out),
		tea.WithContext(ctx),
	)
	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		// Fall back to plain text for the rest of the session.
		r.fallback = NewPlainReader(r.in, r.out, r.prompt)
		return r.fallback.ReadLine(ctx)
	}

	m, ok := final.(PromptModel)
	if !ok || m.Quit() || !m.Submitted() {
		return "", io.EOF
	}
	return m.Value(), nil
}
