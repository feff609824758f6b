package form

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/tuikit/internal/core/styles"
)

// TextField is a single-line text input form field.
type TextField struct {
	input      textinput.Model
	label      string
	focused    bool
	validation FieldValidation
	err        string
}

// NewTextField creates a new single-line text input field. At most one
// validation rule set is used.
func NewTextField(label, placeholder, defaultVal string, validation ...FieldValidation) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.SetWidth(40)

	if defaultVal != "" {
		ti.SetValue(defaultVal)
	}

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	f := &TextField{
		input: ti,
		label: label,
	}
	if len(validation) > 0 {
		f.validation = validation[0]
	}
	return f
}

func (f *TextField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.err != "" {
		f.err = f.validation.ValidateText(f.input.Value())
	}
	return f, cmd
}

func (f *TextField) View() string {
	return fieldFrame(f.label, f.focused, f.input.View(), f.err)
}

// Validate checks the current value and remembers the error for display.
func (f *TextField) Validate() string {
	f.err = f.validation.ValidateText(f.input.Value())
	return f.err
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Focused() bool { return f.focused }
func (f *TextField) Value() any    { return f.input.Value() }
func (f *TextField) Label() string { return f.label }

// fieldFrame renders a field body under its label inside the field border,
// with the validation error below.
func fieldFrame(label string, focused bool, body, err string) string {
	titleStyle := styles.TextMutedStyle
	if focused {
		titleStyle = styles.FormTitleStyle
	}

	parts := []string{titleStyle.Render(label), body}
	if err != "" {
		parts = append(parts, styles.FormErrorStyle.Render(err))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	borderStyle := styles.FormFieldStyle
	if focused {
		borderStyle = styles.FormFieldFocusedStyle
	}
	return borderStyle.Render(content)
}
