package rangepicker

import "charm.land/bubbles/v2/key"

// KeyMap defines the picker key bindings.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	SwitchPanel key.Binding
	Pick        key.Binding
	PrevMonth   key.Binding
	NextMonth   key.Binding
	PrevYear    key.Binding
	NextYear    key.Binding
	YearPicker  key.Binding
	MonthPicker key.Binding
	UpToNow     key.Binding
	ToggleTime  key.Binding
	Shortcuts   key.Binding
	Clear       key.Binding
	Confirm     key.Binding
	Back        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		SwitchPanel: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "panel")),
		Pick:        key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "pick")),
		PrevMonth:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		PrevYear:    key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev year")),
		NextYear:    key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),
		YearPicker:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "years")),
		MonthPicker: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "months")),
		UpToNow:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "up to now")),
		ToggleTime:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "time")),
		Shortcuts:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shortcuts")),
		Clear:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Confirm:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "confirm")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPanel, k.Pick, k.PrevMonth, k.NextMonth, k.UpToNow, k.Confirm}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.SwitchPanel, k.Pick},
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear, k.YearPicker, k.MonthPicker},
		{k.UpToNow, k.ToggleTime, k.Shortcuts, k.Clear, k.Confirm, k.Back},
	}
}
