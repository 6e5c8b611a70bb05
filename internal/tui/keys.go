package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextGen    key.Binding
	PrevGen    key.Binding
	Register   key.Binding
	Unregister key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/↓", "down"),
		),
		NextGen: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next generation"),
		),
		PrevGen: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("⇧tab", "prev generation"),
		),
		Register: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "register"),
		),
		Unregister: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unregister"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGen, k.Register, k.Unregister, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextGen, k.PrevGen},
		{k.Register, k.Unregister, k.Quit},
	}
}
