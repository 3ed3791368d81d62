package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	ShowLogs   key.Binding

	// Catalog
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Reload key.Binding

	// Program
	NextDay  key.Binding
	PrevDay  key.Binding
	JumpDay  key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Back     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		ShowLogs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Recent log"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open program"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload"),
		),

		NextDay: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("l/tab", "Next day"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("h", "left", "shift+tab"),
			key.WithHelp("h/shift+tab", "Previous day"),
		),
		JumpDay: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Jump to day"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "Back to programs"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.Reload},
		{k.NextDay, k.PrevDay, k.JumpDay, k.PageUp, k.PageDown, k.Back},
		{k.CycleTheme, k.ShowLogs, k.Help, k.Quit},
	}
}
