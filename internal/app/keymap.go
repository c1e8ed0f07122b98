package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts for the application.
type KeyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Escape   key.Binding
	Toggle   key.Binding
	Options  key.Binding
	Filter   key.Binding
	Undo     key.Binding
	Copy     key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// DefaultKeyMap returns the default keyboard shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev control")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "themes")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "accents")),
		Activate: key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter/space", "activate")),
		Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Toggle:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle mode")),
		Options:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "options")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter themes")),
		Undo:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy attributes")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp returns a short list of key bindings for the help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Activate, k.Toggle, k.Options, k.Undo, k.Help, k.Quit}
}

// FullHelp returns the full list of key bindings for the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Activate, k.Escape},
		{k.Up, k.Down, k.Left, k.Right, k.Filter},
		{k.Toggle, k.Options, k.Undo, k.Copy},
		{k.Quit, k.Help},
	}
}
