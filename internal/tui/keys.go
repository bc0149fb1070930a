package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Focus    key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Search   key.Binding
	Back     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Open     key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Sidebar  key.Binding
	Numbers  key.Binding
	Preview  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdown", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "locations")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "photos")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search locations")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Prev:     key.NewBinding(key.WithKeys("left", "h", "["), key.WithHelp("h/[", "previous photo")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "]"), key.WithHelp("l/]", "next photo")),
		Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open in viewer")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy path")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Sidebar:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sidebar")),
		Numbers:  key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "numbering")),
		Preview:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "inline preview")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
