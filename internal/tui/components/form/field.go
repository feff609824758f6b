package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by all form field types.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // string for text fields, V or []V for selects, daterange.Range for date ranges
	Label() string // Display label for the field
}

// validator is implemented by fields that carry validation rules.
type validator interface {
	Validate() string
}

// keyConsumer is implemented by fields that sometimes need the keys the
// dialog uses for navigation, such as enter inside an open dropdown.
type keyConsumer interface {
	ConsumesKey(msg tea.KeyPressMsg) bool
}
