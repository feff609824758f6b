package gallery

import "charm.land/bubbles/v2/key"

// KeyMap defines the gallery-level bindings. They are matched before the
// active page sees a key, so none of them may collide with a widget key.
type KeyMap struct {
	Help     key.Binding
	Events   key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Events:   key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "events")),
		PrevPage: key.NewBinding(key.WithKeys("ctrl+left", "f3"), key.WithHelp("f3", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("ctrl+right", "f4"), key.WithHelp("f4", "next page")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Events, k.PrevPage, k.NextPage, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
