package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap contains the console's fixed keyboard shortcuts. Category
// hotkeys come from the blueprint and are matched separately.
type KeyMap struct {
	TogglePlay  key.Binding
	SeekBack    key.Binding
	SeekForward key.Binding
	CutClip     key.Binding
	CloseAll    key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// NewKeyMap creates the default console key bindings
func NewKeyMap() KeyMap {
	return KeyMap{
		TogglePlay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume clock"),
		),
		SeekBack: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←/[", "seek -5s"),
		),
		SeekForward: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→/]", "seek +5s"),
		),
		CutClip: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cut clip at clock"),
		),
		CloseAll: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close all open moments"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TogglePlay, k.SeekBack, k.SeekForward, k.CutClip, k.CloseAll, k.Help, k.Quit}
}

// FullHelp returns all key bindings grouped in columns
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TogglePlay, k.SeekBack, k.SeekForward},
		{k.CutClip, k.CloseAll, k.Help, k.Quit},
	}
}
