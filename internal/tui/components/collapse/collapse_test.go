package collapse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tuikit/pkg/tuitest"
)

func sample() []Item {
	return []Item{
		{Name: "consistency", Title: "Consistency", Content: "Consistent with real life"},
		{Name: "feedback", Title: "Feedback", Content: "Operation feedback"},
		{Name: "efficiency", Title: "Efficiency", Content: "Simplify the process"},
	}
}

func TestCollapse_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		accordion bool
		toggles   []string
		want      []string
	}{
		{name: "open two", toggles: []string{"consistency", "efficiency"}, want: []string{"consistency", "efficiency"}},
		{name: "close again", toggles: []string{"feedback", "feedback"}, want: []string{}},
		{name: "accordion keeps one", accordion: true, toggles: []string{"consistency", "efficiency"}, want: []string{"efficiency"}},
		{name: "unknown ignored", toggles: []string{"missing"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(sample(), Options{Accordion: tt.accordion})
			for _, name := range tt.toggles {
				m.Toggle(name)
			}
			assert.ElementsMatch(t, tt.want, m.Active())
		})
	}
}

func TestCollapse_InitialActive(t *testing.T) {
	m := New(sample(), Options{Active: []string{"feedback", "bogus", "feedback"}})
	assert.Equal(t, []string{"feedback"}, m.Active())

	acc := New(sample(), Options{Accordion: true, Active: []string{"feedback", "efficiency"}})
	assert.Equal(t, []string{"feedback"}, acc.Active())
}

func TestCollapse_KeyboardEmitsChange(t *testing.T) {
	m := New(sample(), Options{})
	m.Focus()

	m.Update(tuitest.KeyDown())
	_, cmd := m.Update(tuitest.KeyEnter())
	require.NotNil(t, cmd)

	change, ok := cmd().(ChangeMsg)
	require.True(t, ok)
	assert.Equal(t, m.ID(), change.ID)
	assert.Equal(t, []string{"feedback"}, change.Active)

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Operation feedback")
	assert.NotContains(t, view, "Simplify the process")
}

func TestCollapse_CursorClamps(t *testing.T) {
	m := New(sample(), Options{})
	m.Focus()
	for range 5 {
		m.Update(tuitest.KeyDown())
	}
	assert.Equal(t, 2, m.Cursor())

	m.Update(tuitest.KeyUp())
	assert.Equal(t, 1, m.Cursor())
}

func TestCollapse_CustomRenderers(t *testing.T) {
	m := New(sample(), Options{
		Active:  []string{"consistency"},
		Title:   func(it Item, open bool) string { return "# " + it.Name },
		Content: func(it Item) string { return "> " + it.Content },
	})
	view := m.View()
	assert.Contains(t, view, "# consistency")
	assert.Contains(t, view, "> Consistent with real life")
}
