package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the application
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Task Actions
	Add    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Tag    key.Binding
	SetTag key.Binding
	Delete key.Binding

	// Edit mode
	Bold      key.Binding
	Italic    key.Binding
	Underline key.Binding
	Newline   key.Binding
	Select    key.Binding
	Commit    key.Binding

	// General
	Help       key.Binding
	ThemeCycle key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle done"),
		),
		Tag: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle tag"),
		),
		SetTag: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "set tag"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),

		Bold: key.NewBinding(
			key.WithKeys("ctrl+b", "alt+b"),
			key.WithHelp("C-b", "bold"),
		),
		// ctrl+i arrives as tab in terminals
		Italic: key.NewBinding(
			key.WithKeys("alt+i"),
			key.WithHelp("M-i", "italic"),
		),
		Underline: key.NewBinding(
			key.WithKeys("ctrl+u", "alt+u"),
			key.WithHelp("C-u", "underline"),
		),
		Newline: key.NewBinding(
			key.WithKeys("alt+enter", "ctrl+j"),
			key.WithHelp("M-enter", "newline"),
		),
		Select: key.NewBinding(
			key.WithKeys("shift+left", "shift+right", "shift+home", "shift+end"),
			key.WithHelp("shift+←/→", "select"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "save"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ThemeCycle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns short help bindings (for status bar)
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Toggle, k.Tag, k.Delete, k.Help, k.Quit}
}

// FullHelp returns full help bindings (for help view)
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Add, k.Edit, k.Toggle, k.Tag, k.SetTag, k.Delete},
		{k.Bold, k.Italic, k.Underline, k.Newline, k.Select, k.Commit},
		{k.ThemeCycle, k.Help, k.Quit},
	}
}
