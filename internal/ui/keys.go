package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Data
	LoadRemote    key.Binding
	LoadSimulated key.Binding

	// Table
	Up         key.Binding
	Down       key.Binding
	PrevColumn key.Binding
	NextColumn key.Binding
	SortColumn key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	Detail     key.Binding

	// Filters
	Filter       key.Binding
	ClearFilters key.Binding

	// Filter form
	Confirm  key.Binding
	Escape   key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
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

		LoadRemote: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Load from API"),
		),
		LoadSimulated: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Load simulated data"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous column"),
		),
		NextColumn: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next column"),
		),
		SortColumn: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o/enter", "Sort by column"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("n", "pgdown"),
			key.WithHelp("n", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("p", "pgup"),
			key.WithHelp("p", "Previous page"),
		),
		Detail: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Toggle detail"),
		),

		Filter: key.NewBinding(
			key.WithKeys("f", "/"),
			key.WithHelp("f", "Edit filters"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Clear filters"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Apply"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LoadRemote, k.LoadSimulated, k.SortColumn, k.NextPage, k.PrevPage, k.Filter, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LoadRemote, k.LoadSimulated},
		{k.Up, k.Down, k.PrevColumn, k.NextColumn, k.SortColumn},
		{k.NextPage, k.PrevPage, k.Detail},
		{k.Filter, k.ClearFilters},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
