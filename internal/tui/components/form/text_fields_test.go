package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tuikit/pkg/tuitest"
)

// textInput is the part of the text fields exercised here.
type textInput interface {
	Field
	Validate() string
}

func TestTextFields(t *testing.T) {
	builders := []struct {
		name string
		new  func(label, value string, v FieldValidation) textInput
	}{
		{"single line", func(label, value string, v FieldValidation) textInput {
			return NewTextField(label, "type here", value, v)
		}},
		{"multi line", func(label, value string, v FieldValidation) textInput {
			return NewTextAreaField(label, "type here", value, v)
		}},
	}

	for _, b := range builders {
		t.Run(b.name, func(t *testing.T) {
			t.Run("starts blurred with its default", func(t *testing.T) {
				f := b.new("Notes", "window seat", FieldValidation{})
				assert.Equal(t, "Notes", f.Label())
				assert.Equal(t, "window seat", f.Value())
				assert.False(t, f.Focused())
			})

			t.Run("ignores keys while blurred", func(t *testing.T) {
				f := b.new("Notes", "", FieldValidation{})
				_, cmd := f.Update(tuitest.KeyPress('x'))
				assert.Nil(t, cmd)
				assert.Empty(t, f.Value())
			})

			t.Run("accepts typing once focused", func(t *testing.T) {
				f := b.new("Notes", "", FieldValidation{})
				f.Focus()
				for _, msg := range tuitest.Type("aisle") {
					f.Update(msg)
				}
				assert.Equal(t, "aisle", f.Value())

				f.Blur()
				assert.False(t, f.Focused())
			})

			t.Run("renders label and error", func(t *testing.T) {
				f := b.new("Notes", "", FieldValidation{Required: true})
				blurred := tuitest.StripANSI(f.View())
				assert.Contains(t, blurred, "Notes")
				assert.NotContains(t, blurred, "required")

				require.Equal(t, "required", f.Validate())
				assert.Contains(t, tuitest.StripANSI(f.View()), "required")

				f.Focus()
				assert.NotEqual(t, blurred, f.View())
			})
		})
	}
}

func TestTextField_RevalidatesAfterError(t *testing.T) {
	f := NewTextField("Name", "", "", FieldValidation{Required: true})
	require.Equal(t, "required", f.Validate())

	f.Focus()
	f.Update(tuitest.KeyPress('A'))
	assert.NotContains(t, tuitest.StripANSI(f.View()), "required")
}

func TestTextAreaField_KeepsEnter(t *testing.T) {
	f := NewTextAreaField("Notes", "", "")
	assert.True(t, f.ConsumesKey(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})))
	assert.False(t, f.ConsumesKey(tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})))
}
