package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Team    key.Binding
	Refresh key.Binding
	Retry   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "player")),
		Team:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "team")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Retry:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "retry")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Refresh, k.Retry, k.Quit}
}

func (k keyMap) playerHelp() []key.Binding {
	return []key.Binding{k.Team, k.Back, k.Quit}
}

func (k keyMap) teamHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}
