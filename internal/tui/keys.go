package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	SwitchPane key.Binding
	AddCountry key.Binding
	AddWish    key.Binding
	AddCity    key.Binding
	Remove     key.Binding
	Toggle     key.Binding
	Search     key.Binding
	Visit      key.Binding
	Theme      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		AddCountry: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add country"),
		),
		AddWish: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "add wish"),
		),
		AddCity: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "add city"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "expand/collapse"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Visit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "mark visited"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPane, k.AddCountry, k.AddWish, k.AddCity, k.Remove, k.Toggle, k.Search, k.Theme, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.SwitchPane, k.Visit},
		{k.AddCountry, k.AddWish, k.AddCity, k.Remove},
		{k.Toggle, k.Search, k.Theme, k.Quit},
	}
}
