// Package tui renders command output and reads command lines, either as
// plain text for pipes and scripts or with lipgloss styling and a Bubble Tea
// prompt when attached to a terminal.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
)

// Display renders command output.
type Display interface {
	Message(text string)
	Error(err error)
	Table(title string, headers []string, rows [][]string)
}

// Verify at compile time that both displays implement Display.
var (
	_ Display = (*PlainDisplay)(nil)
	_ Display = (*StyledDisplay)(nil)
)

// DisplayOptions configures display creation.
type DisplayOptions struct {
	Writer     io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force plain text even if TTY.
}

// NewDisplay returns a styled display when the writer is a TTY, or a plain
// text display otherwise. ForcePlain overrides TTY detection.
func NewDisplay(opts DisplayOptions) Display {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Writer) {
		return NewPlainDisplay(opts.Writer)
	}
	return NewStyledDisplay(opts.Writer)
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainDisplay writes unstyled text; tables are tab-aligned columns.
type PlainDisplay struct {
	w io.Writer
}

// NewPlainDisplay creates a PlainDisplay writing to w.
func NewPlainDisplay(w io.Writer) *PlainDisplay {
	return &PlainDisplay{w: w}
}

// Message prints text on its own line.
func (d *PlainDisplay) Message(text string) {
	_, _ = fmt.Fprintln(d.w, text)
}

// Error prints err prefixed with "Error:".
func (d *PlainDisplay) Error(err error) {
	_, _ = fmt.Fprintf(d.w, "Error: %s\n", err)
}

// Table prints the title, then headers and rows aligned in columns.
func (d *PlainDisplay) Table(title string, headers []string, rows [][]string) {
	if title != "" {
		_, _ = fmt.Fprintln(d.w, strings.ToUpper(title))
	}
	tw := tabwriter.NewWriter(d.w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

// StyledDisplay renders colored messages and bordered tables with lipgloss.
type StyledDisplay struct {
	w      io.Writer
	styles styles
}

// NewStyledDisplay creates a StyledDisplay for w, detecting w's color profile.
func NewStyledDisplay(w io.Writer) *StyledDisplay {
	return &StyledDisplay{w: w, styles: newStyles(lipgloss.NewRenderer(w))}
}

// Message prints text on its own line.
func (d *StyledDisplay) Message(text string) {
	_, _ = fmt.Fprintln(d.w, d.styles.message.Render(text))
}

// Error prints err in the error color.
func (d *StyledDisplay) Error(err error) {
	_, _ = fmt.Fprintln(d.w, d.styles.errLabel.Render("✗ ")+d.styles.err.Render(err.Error()))
}

// Table prints a bordered table under a bold title.
func (d *StyledDisplay) Table(title string, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(d.styles.border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return d.styles.header
			}
			return d.styles.cell
		})

	if title != "" {
		_, _ = fmt.Fprintln(d.w, d.styles.title.Render(title))
	}
	_, _ = fmt.Fprintln(d.w, t.Render())
}
