package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptModel is the Bubble Tea model reading a single command line.
// Command names are offered as completions while the first word is typed.
type PromptModel struct {
	input     textinput.Model
	help      help.Model
	keys      promptKeys
	prompt    string
	styles    styles
	submitted bool
	quit      bool
}

// NewPromptModel creates a focused prompt that completes the given command names.
func NewPromptModel(prompt string, commands []string) PromptModel {
	st := newStyles(lipgloss.DefaultRenderer())

	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = st.prompt
	ti.Placeholder = "help"
	ti.ShowSuggestions = true
	ti.SetSuggestions(commands)
	ti.Focus()

	return PromptModel{
		input:  ti,
		help:   help.New(),
		keys:   PromptKeyMap(),
		prompt: prompt,
		styles: st,
	}
}

// Init starts the cursor blink.
func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Submit):
			m.submitted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input line and the help bar. Once finished, only the
// entered line is left on screen.
func (m PromptModel) View() string {
	if m.submitted || m.quit {
		return m.styles.prompt.Render(m.prompt) + m.input.Value() + "\n"
	}
	return m.input.View() + "\n" + m.help.View(m.keys) + "\n"
}

// Value returns the text entered so far.
func (m PromptModel) Value() string {
	return m.input.Value()
}

// Submitted reports whether the line was confirmed with enter.
func (m PromptModel) Submitted() bool {
	return m.submitted
}

// Quit reports whether the user asked to end input.
func (m PromptModel) Quit() bool {
	return m.quit
}
