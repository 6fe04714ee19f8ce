package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search key.Binding
	Prev   key.Binding
	Next   key.Binding
	Today  key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Search: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Prev:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "prev day")),
		Next:   key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next day")),
		Today:  key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "today")),
		Up:     key.NewBinding(key.WithKeys("up", "pgup"), key.WithHelp("↑/pgup", "scroll up")),
		Down:   key.NewBinding(key.WithKeys("down", "pgdown"), key.WithHelp("↓/pgdn", "scroll down")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Prev, k.Next, k.Today, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Search, k.Today, k.Quit}, {k.Prev, k.Next, k.Up, k.Down}}
}
