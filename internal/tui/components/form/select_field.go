package form

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/tuikit/internal/core/choice"
	"github.com/colonyops/tuikit/internal/tui/components/selectbox"
)

// SelectField is a searchable select form field. Its value is a V (nil when
// nothing is chosen) in single mode and a []V in multiple mode.
type SelectField[V comparable] struct {
	box        *selectbox.Model[V]
	label      string
	focused    bool
	validation FieldValidation
	err        string
}

// NewSelectField creates a select field over options.
func NewSelectField[V comparable](label string, opts selectbox.Options[V], options []choice.Option[V], validation ...FieldValidation) *SelectField[V] {
	if opts.Width <= 0 {
		opts.Width = 40
	}
	box := selectbox.New(opts)
	box.Register(options...)

	f := &SelectField[V]{
		box:   box,
		label: label,
	}
	if len(validation) > 0 {
		f.validation = validation[0]
	}
	return f
}

// NewStringSelectField is a shorthand for a single select over plain
// strings. defaultVal pre-selects the matching option.
func NewStringSelectField(label string, options []string, defaultVal string, validation ...FieldValidation) *SelectField[string] {
	opts := make([]choice.Option[string], len(options))
	for i, o := range options {
		opts[i] = choice.Option[string]{ID: o}
	}
	f := NewSelectField(label, selectbox.Options[string]{Choice: choice.DefaultConfig[string]()}, opts, validation...)
	if slices.Contains(options, defaultVal) {
		f.SetValue(defaultVal)
	}
	return f
}

// SetValue replaces the selection without emitting events.
func (f *SelectField[V]) SetValue(values ...V) { f.box.SetValue(values...) }

// Box exposes the underlying select.
func (f *SelectField[V]) Box() *selectbox.Model[V] { return f.box }

func (f *SelectField[V]) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	f.box, cmd = f.box.Update(msg)
	if f.err != "" {
		f.err = f.validation.ValidateSelection(len(f.box.Values()))
	}
	return f, cmd
}

func (f *SelectField[V]) View() string {
	return fieldFrame(f.label, f.focused, f.box.View(), f.err)
}

// ConsumesKey keeps enter for opening and choosing, and esc for closing an
// open dropdown.
func (f *SelectField[V]) ConsumesKey(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "enter":
		return true
	case "esc":
		return f.box.Selection().IsOpen()
	}
	return false
}

// Validate checks the selection count and remembers the error for display.
func (f *SelectField[V]) Validate() string {
	f.err = f.validation.ValidateSelection(len(f.box.Values()))
	return f.err
}

func (f *SelectField[V]) Focus() tea.Cmd {
	f.focused = true
	return f.box.Focus()
}

func (f *SelectField[V]) Blur() {
	f.focused = false
	f.box.Blur()
}

func (f *SelectField[V]) Focused() bool { return f.focused }
func (f *SelectField[V]) Label() string { return f.label }

func (f *SelectField[V]) Value() any {
	values := f.box.Values()
	if f.box.Selection().Multiple() {
		return values
	}
	if len(values) == 0 {
		return nil
	}
	return values[0]
}
