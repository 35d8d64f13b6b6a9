package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Toggle     key.Binding
	Collapse   key.Binding
	Rename     key.Binding
	Quantity   key.Binding
	Price      key.Binding
	Total      key.Binding
	AddItem    key.Binding
	AddSection key.Binding
	Delete     key.Binding
	Copy       key.Binding
	NewEvent   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Price, k.AddItem, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.Collapse},
		{k.Toggle, k.Rename, k.Quantity, k.Price, k.Total},
		{k.AddItem, k.AddSection, k.Delete},
		{k.Copy, k.NewEvent, k.Help, k.Quit},
	}
}

func defaultKeys() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Top:        key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "include/exclude")),
		Collapse:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "fold section")),
		Rename:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Quantity:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "count")),
		Price:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "price")),
		Total:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "override total")),
		AddItem:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		AddSection: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add section")),
		Delete:     key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Copy:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "copy code")),
		NewEvent:   key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new event")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
