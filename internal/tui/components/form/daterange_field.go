package form

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/tuikit/internal/core/daterange"
	"github.com/colonyops/tuikit/internal/tui/components/rangepicker"
)

// DateRangeField is a date range form field. Its value is a daterange.Range.
type DateRangeField struct {
	picker     *rangepicker.Model
	label      string
	focused    bool
	validation FieldValidation
	err        string
}

// NewDateRangeField creates a date range field. Panel switching moves from
// tab to "w" since the dialog owns tab.
func NewDateRangeField(label string, value daterange.Range, opts daterange.Options, validation ...FieldValidation) *DateRangeField {
	picker := rangepicker.New(value, opts)
	keys := picker.KeyMap()
	keys.SwitchPanel = key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "panel"))
	picker.SetKeyMap(keys)

	f := &DateRangeField{
		picker: picker,
		label:  label,
	}
	if len(validation) > 0 {
		f.validation = validation[0]
	}
	return f
}

// Picker exposes the underlying range picker.
func (f *DateRangeField) Picker() *rangepicker.Model { return f.picker }

func (f *DateRangeField) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.picker, cmd = f.picker.Update(msg)
	if f.err != "" {
		f.err = f.validation.ValidateRange(f.picker.Value())
	}
	return f, cmd
}

func (f *DateRangeField) View() string {
	return fieldFrame(f.label, f.focused, f.picker.View(), f.err)
}

// ConsumesKey keeps enter for picking, and esc while a month or year table
// is drilled into.
func (f *DateRangeField) ConsumesKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "enter":
		return true
	case "esc":
		return f.picker.Controller().PreSelecting(f.picker.Panel())
	}
	return false
}

// Validate requires a complete range within the rules and remembers the
// error for display.
func (f *DateRangeField) Validate() string {
	f.err = f.validation.ValidateRange(f.picker.Value())
	return f.err
}

func (f *DateRangeField) Focus() tea.Cmd {
	f.focused = true
	return f.picker.Focus()
}

func (f *DateRangeField) Blur() {
	f.focused = false
	f.picker.Blur()
}

func (f *DateRangeField) Focused() bool { return f.focused }
func (f *DateRangeField) Label() string { return f.label }
func (f *DateRangeField) Value() any    { return f.picker.Value() }
