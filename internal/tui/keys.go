package tui

import "github.com/charmbracelet/bubbles/key"

// promptKeys holds key bindings for the command prompt.
type promptKeys struct {
	Submit   key.Binding
	Complete key.Binding
	Next     key.Binding
	Quit     key.Binding
}

// ShortHelp returns the prompt bindings for the help bar.
func (k promptKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Complete, k.Quit}
}

// FullHelp returns the prompt bindings grouped for expanded help.
func (k promptKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Complete, k.Next},
		{k.Quit},
	}
}

// PromptKeyMap returns the key bindings for the command prompt.
func PromptKeyMap() promptKeys {
	return promptKeys{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		// Completion itself is handled by textinput's suggestion keys;
		// these bindings only feed the help bar.
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "up"),
			key.WithHelp("↑/↓", "cycle matches"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+d", "save & quit"),
		),
	}
}
