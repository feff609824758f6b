package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/tuikit/internal/core/styles"
)

// Dialog is a form container that manages focus cycling, submission, and
// cancellation across a set of form fields.
type Dialog struct {
	fields       []Field
	variables    []string // parallel slice: variable name for each field
	focusedField int
	submitted    bool
	cancelled    bool
	Title        string
}

// NewDialog creates a form dialog with the given fields and variable names.
// The first field is focused automatically.
func NewDialog(title string, fields []Field, variables []string) *Dialog {
	d := &Dialog{
		fields:    fields,
		variables: variables,
		Title:     title,
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return d
}

// Update handles key input for the dialog, managing focus cycling and
// submit/cancel. Other messages reach every field so deferred widget
// messages arrive even after focus moved on.
func (d *Dialog) Update(msg tea.Msg) (*Dialog, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d.broadcast(msg)
	}

	if d.focusedConsumes(keyMsg) {
		return d.updateFocusedField(msg)
	}

	switch keyMsg.String() {
	case "tab", "enter":
		return d.advanceFocus()
	case "shift+tab":
		return d.retreatFocus()
	case "esc":
		d.cancelled = true
		return d, nil
	}

	return d.updateFocusedField(msg)
}

// View renders all fields vertically with spacing and help text.
func (d *Dialog) View() string {
	var parts []string
	if d.Title != "" {
		parts = append(parts, styles.FormTitleStyle.Render(d.Title), "")
	}
	for i, field := range d.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}

	help := styles.TextMutedStyle.Render("tab: next  shift+tab: prev  esc: cancel")
	parts = append(parts, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// FormValues returns a map of variable names to field values.
func (d *Dialog) FormValues() map[string]any {
	result := make(map[string]any, len(d.fields))
	for i, field := range d.fields {
		result[d.variables[i]] = field.Value()
	}
	return result
}

// Submitted returns whether the form was submitted.
func (d *Dialog) Submitted() bool { return d.submitted }

// Cancelled returns whether the form was cancelled.
func (d *Dialog) Cancelled() bool { return d.cancelled }

func (d *Dialog) advanceFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	next := d.focusedField + 1
	if next >= len(d.fields) {
		return d.trySubmit()
	}
	return d.focus(next)
}

func (d *Dialog) retreatFocus() (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 || d.focusedField == 0 {
		return d, nil
	}
	return d.focus(d.focusedField - 1)
}

func (d *Dialog) focus(i int) (*Dialog, tea.Cmd) {
	d.fields[d.focusedField].Blur()
	d.focusedField = i
	return d, d.fields[i].Focus()
}

// trySubmit validates every field and either submits or focuses the first
// invalid one.
func (d *Dialog) trySubmit() (*Dialog, tea.Cmd) {
	firstInvalid := -1
	for i, field := range d.fields {
		v, ok := field.(validator)
		if !ok {
			continue
		}
		if msg := v.Validate(); msg != "" && firstInvalid < 0 {
			firstInvalid = i
		}
	}

	if firstInvalid >= 0 {
		if firstInvalid == d.focusedField {
			return d, nil
		}
		return d.focus(firstInvalid)
	}

	d.submitted = true
	return d, nil
}

func (d *Dialog) updateFocusedField(msg tea.Msg) (*Dialog, tea.Cmd) {
	if len(d.fields) == 0 {
		return d, nil
	}

	var cmd tea.Cmd
	d.fields[d.focusedField], cmd = d.fields[d.focusedField].Update(msg)
	return d, cmd
}

func (d *Dialog) broadcast(msg tea.Msg) (*Dialog, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(d.fields))
	for i := range d.fields {
		var cmd tea.Cmd
		d.fields[i], cmd = d.fields[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return d, tea.Batch(cmds...)
}

func (d *Dialog) focusedConsumes(msg tea.KeyPressMsg) bool {
	if len(d.fields) == 0 {
		return false
	}
	if c, ok := d.fields[d.focusedField].(keyConsumer); ok {
		return c.ConsumesKey(msg)
	}
	return false
}
