package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	dimColor    = lipgloss.AdaptiveColor{Light: "240", Dark: "245"}
	errorColor  = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
)

// styles groups the lipgloss styles of one renderer.
type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	border   lipgloss.Style
	message  lipgloss.Style
	err      lipgloss.Style
	errLabel lipgloss.Style
	prompt   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(accentColor),
		header:   r.NewStyle().Bold(true).Foreground(accentColor).Padding(0, 1),
		cell:     r.NewStyle().Padding(0, 1),
		border:   r.NewStyle().Foreground(dimColor),
		message:  r.NewStyle(),
		err:      r.NewStyle().Foreground(errorColor),
		errLabel: r.NewStyle().Bold(true).Foreground(errorColor),
		prompt:   r.NewStyle().Bold(true).Foreground(accentColor),
	}
}
