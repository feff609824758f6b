package selectbox

import "charm.land/bubbles/v2/key"

// KeyMap defines the select key bindings.
type KeyMap struct {
	Open      key.Binding
	Close     key.Binding
	Up        key.Binding
	Down      key.Binding
	Choose    key.Binding
	Remove    key.Binding
	SelectAll key.Binding
	Clear     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open:      key.NewBinding(key.WithKeys("enter", "down"), key.WithHelp("enter", "open")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Choose:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Remove:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "remove last")),
		SelectAll: key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "all")),
		Clear:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Up, k.Down, k.Choose, k.Close, k.SelectAll, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Close, k.Up, k.Down},
		{k.Choose, k.Remove, k.SelectAll, k.Clear},
	}
}
