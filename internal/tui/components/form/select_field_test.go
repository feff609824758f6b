package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/tuikit/internal/core/choice"
	"github.com/colonyops/tuikit/internal/tui/components/selectbox"
	"github.com/colonyops/tuikit/pkg/tuitest"
)

func TestStringSelectField(t *testing.T) {
	options := []string{"alpha", "beta", "gamma"}

	t.Run("creation with no default", func(t *testing.T) {
		f := NewStringSelectField("Pick", options, "")
		assert.Equal(t, "Pick", f.Label())
		assert.False(t, f.Focused())
		assert.Nil(t, f.Value())
	})

	t.Run("creation with default value", func(t *testing.T) {
		f := NewStringSelectField("Pick", options, "beta")
		assert.Equal(t, "beta", f.Value())
	})

	t.Run("creation with unknown default selects nothing", func(t *testing.T) {
		f := NewStringSelectField("Pick", options, "nonexistent")
		assert.Nil(t, f.Value())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewStringSelectField("Pick", options, "")
		f.Focus()
		assert.True(t, f.Focused())
		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("keys ignored when not focused", func(t *testing.T) {
		f := NewStringSelectField("Pick", options, "")
		d := NewDialog("Test", []Field{NewTextField("Name", "", ""), f}, []string{"name", "pick"})

		pump(d, tuitest.KeyEnter())
		assert.Nil(t, f.Value())
		assert.True(t, f.Focused(), "enter on the text field moves focus on")
	})

	t.Run("search and choose inside a dialog", func(t *testing.T) {
		f := NewStringSelectField("Pick", options, "")
		d := NewDialog("Test", []Field{f}, []string{"pick"})

		pump(d, tuitest.Type("gam")...)
		pump(d, tuitest.KeyEnter())

		assert.Equal(t, "gamma", f.Value())
		assert.False(t, d.Submitted())
		assert.False(t, f.Box().Selection().IsOpen())

		pump(d, tuitest.KeyEnter())
		assert.False(t, d.Submitted(), "enter reopens the dropdown")
		pump(d, tuitest.KeyTab())
		assert.True(t, d.Submitted())
		assert.Equal(t, "gamma", d.FormValues()["pick"])
	})

	t.Run("esc closes the dropdown before cancelling", func(t *testing.T) {
		f := NewStringSelectField("Pick", options, "")
		d := NewDialog("Test", []Field{f}, []string{"pick"})

		pump(d, tuitest.KeyEnter())
		assert.True(t, f.Box().Selection().IsOpen())

		pump(d, tuitest.KeyEsc())
		assert.False(t, f.Box().Selection().IsOpen())
		assert.False(t, d.Cancelled())

		pump(d, tuitest.KeyEsc())
		assert.True(t, d.Cancelled())
	})

	t.Run("view renders label", func(t *testing.T) {
		f := NewStringSelectField("Empty", []string{}, "")
		assert.Contains(t, tuitest.StripANSI(f.View()), "Empty")
	})
}

func TestSelectField_Validation(t *testing.T) {
	cfg := choice.DefaultConfig[int]()
	cfg.Multiple = true
	f := NewSelectField("Fruit", selectbox.Options[int]{Choice: cfg}, []choice.Option[int]{
		{ID: 1, Name: "Apple"},
		{ID: 2, Name: "Banana"},
		{ID: 3, Name: "Cherry"},
	}, FieldValidation{Min: 2})
	d := NewDialog("Test", []Field{f}, []string{"fruit"})

	f.SetValue(1)
	pump(d, tuitest.KeyTab())
	assert.False(t, d.Submitted())
	assert.Contains(t, tuitest.StripANSI(f.View()), "select at least 2")

	f.SetValue(1, 3)
	pump(d, tea.KeyPressMsg(tea.Key{Code: tea.KeyTab}))
	assert.True(t, d.Submitted())
	assert.Equal(t, []int{1, 3}, d.FormValues()["fruit"])
}
