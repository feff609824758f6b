package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tuikit/internal/core/choice"
	"github.com/colonyops/tuikit/internal/tui/components/selectbox"
	"github.com/colonyops/tuikit/pkg/tuitest"
)

var (
	shiftTab = tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
	enter    = tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	esc      = tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
)

// focusedIndex returns the index of the single focused field, or -1.
func focusedIndex(t *testing.T, fields []Field) int {
	t.Helper()
	idx := -1
	for i, f := range fields {
		if f.Focused() {
			require.Equal(t, -1, idx, "more than one field focused")
			idx = i
		}
	}
	return idx
}

func TestDialog_Navigation(t *testing.T) {
	tests := []struct {
		name      string
		notesLast bool
		keys      []tea.Msg
		focused   int
		submitted bool
		cancelled bool
	}{
		{name: "first field focused", focused: 0},
		{name: "tab advances", keys: []tea.Msg{tab, tab}, focused: 2},
		{name: "enter advances", keys: []tea.Msg{enter}, focused: 1},
		{name: "shift+tab retreats", keys: []tea.Msg{tab, tab, shiftTab}, focused: 1},
		{name: "shift+tab stops at first", keys: []tea.Msg{shiftTab}, focused: 0},
		{name: "tab past last submits", keys: []tea.Msg{tab, tab, tab}, focused: 2, submitted: true},
		{name: "enter past last submits", keys: []tea.Msg{enter, enter, enter}, focused: 2, submitted: true},
		{name: "esc cancels", keys: []tea.Msg{tab, esc}, focused: 1, cancelled: true},
		{name: "textarea keeps enter", notesLast: true, keys: []tea.Msg{tab, tab, enter}, focused: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var last Field = NewTextField("Code", "", "LIS")
			if tt.notesLast {
				last = NewTextAreaField("Notes", "", "")
			}
			fields := []Field{
				NewTextField("Name", "", "Ada"),
				NewTextField("City", "", "Lisbon"),
				last,
			}
			d := NewDialog("Trip", fields, []string{"name", "city", "last"})

			for _, k := range tt.keys {
				d.Update(k)
			}

			assert.Equal(t, tt.focused, focusedIndex(t, fields))
			assert.Equal(t, tt.submitted, d.Submitted())
			assert.Equal(t, tt.cancelled, d.Cancelled())
		})
	}
}

func TestDialog_Empty(t *testing.T) {
	d := NewDialog("", nil, nil)
	d.Update(tab)
	d.Update(shiftTab)

	assert.False(t, d.Submitted())
	assert.Empty(t, d.FormValues())
	assert.Contains(t, d.View(), "esc: cancel")
}

func TestDialog_FormValues(t *testing.T) {
	cfg := choice.DefaultConfig[string]()
	cfg.Multiple = true
	sights := NewSelectField("Sights", selectbox.Options[string]{Choice: cfg}, []choice.Option[string]{
		{ID: "tower"}, {ID: "castle"}, {ID: "tram"},
	})
	d := NewDialog("Trip", []Field{
		sights,
		NewTextField("City", "", "Lisbon"),
	}, []string{"sights", "city"})

	// The first enter opens the dropdown, the second chooses the active option.
	pump(d, enter)
	pump(d, enter)
	assert.False(t, d.Submitted(), "enter belongs to the open select")

	vals := d.FormValues()
	assert.Equal(t, []string{"tower"}, vals["sights"])
	assert.Equal(t, "Lisbon", vals["city"])
}

func TestDialog_View(t *testing.T) {
	d := NewDialog("Trip request", []Field{
		NewTextField("Name", "your name", ""),
		NewStringSelectField("Season", []string{"spring", "autumn"}, ""),
	}, []string{"name", "season"})

	view := tuitest.StripANSI(d.View())
	for _, want := range []string{"Trip request", "Name", "Season", "tab: next"} {
		assert.Contains(t, view, want)
	}
}
