package form

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
)

// TextAreaField is a multi-line text input form field.
type TextAreaField struct {
	input      textarea.Model
	label      string
	focused    bool
	validation FieldValidation
	err        string
}

// NewTextAreaField creates a new multi-line text input field.
func NewTextAreaField(label, placeholder, defaultVal string, validation ...FieldValidation) *TextAreaField {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetHeight(4)
	ta.SetWidth(40)

	if defaultVal != "" {
		ta.SetValue(defaultVal)
	}

	f := &TextAreaField{
		input: ta,
		label: label,
	}
	if len(validation) > 0 {
		f.validation = validation[0]
	}
	return f
}

func (f *TextAreaField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *TextAreaField) View() string {
	return fieldFrame(f.label, f.focused, f.input.View(), f.err)
}

// ConsumesKey keeps enter for newline insertion.
func (f *TextAreaField) ConsumesKey(msg tea.KeyPressMsg) bool {
	return msg.String() == "enter"
}

// Validate checks the current value and remembers the error for display.
func (f *TextAreaField) Validate() string {
	f.err = f.validation.ValidateText(f.input.Value())
	return f.err
}

func (f *TextAreaField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextAreaField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextAreaField) Focused() bool { return f.focused }
func (f *TextAreaField) Value() any    { return f.input.Value() }
func (f *TextAreaField) Label() string { return f.label }
