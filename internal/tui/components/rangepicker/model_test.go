package rangepicker

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tuikit/internal/core/daterange"
	"github.com/colonyops/tuikit/pkg/tuitest"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func endOfDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
}

func newPicker(t *testing.T, value daterange.Range, mutate func(*daterange.Options)) *Model {
	t.Helper()
	opts := daterange.DefaultOptions()
	opts.Now = func() time.Time { return fixedNow }
	if mutate != nil {
		mutate(&opts)
	}
	m := New(value, opts)
	m.Focus()
	return m
}

func send(m *Model, msgs ...tea.Msg) []tea.Msg {
	var out []tea.Msg
	for _, msg := range msgs {
		_, cmd := m.Update(msg)
		out = append(out, tuitest.Drain(cmd)...)
	}
	return out
}

func events(msgs []tea.Msg) []daterange.Event {
	var out []daterange.Event
	for _, msg := range msgs {
		if em, ok := msg.(EventsMsg); ok {
			out = append(out, em.Events...)
		}
	}
	return out
}

func names(evs []daterange.Event) []string {
	out := make([]string, len(evs))
	for i, e := range evs {
		out[i] = e.EventName()
	}
	return out
}

func ctrlKey(r rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: r, Mod: tea.ModCtrl})
}

func TestModel_KeyboardRangePick(t *testing.T) {
	m := newPicker(t, daterange.Range{}, nil)
	assert.Equal(t, day(2024, 3, 15), m.Cursor())

	first := events(send(m, tuitest.KeyEnter()))
	require.Equal(t, []string{"pick-first"}, names(first))
	assert.Equal(t, day(2024, 3, 15), first[0].(daterange.PickFirstEvent).Value)

	evs := events(send(m, tuitest.KeyRight(), tuitest.KeyRight(), tuitest.KeyRight(), tuitest.KeyEnter()))
	require.Equal(t, []string{"pick"}, names(evs))

	pick := evs[0].(daterange.PickEvent)
	assert.Equal(t, daterange.KindDate, pick.Kind)
	assert.False(t, pick.Visible)
	assert.Equal(t, daterange.Range{From: day(2024, 3, 15), To: endOfDay(2024, 3, 18)}, m.Value())
	assert.Equal(t, daterange.PhaseCommitted, m.Controller().Phase())
}

func TestModel_SecondPickBeforeFirstIsSorted(t *testing.T) {
	m := newPicker(t, daterange.Range{}, nil)
	send(m, tuitest.KeyEnter(), tuitest.KeyUp(), tuitest.KeyEnter())

	assert.Equal(t, daterange.Range{From: day(2024, 3, 8), To: endOfDay(2024, 3, 15)}, m.Value())
}

func TestModel_HoverShowsTentativeRange(t *testing.T) {
	m := newPicker(t, daterange.Range{}, nil)
	send(m, tuitest.KeyEnter(), tuitest.KeyRight(), tuitest.KeyRight())

	assert.True(t, m.Controller().State().Selecting)
	assert.Equal(t, day(2024, 3, 17), m.Controller().HoverDate())
	assert.True(t, m.Controller().InRange(day(2024, 3, 16)))
	assert.Contains(t, tuitest.StripANSI(m.View()), "2024-03-15 → 2024-03-17")
}

func TestModel_CursorLeavingMonthAdvancesPanel(t *testing.T) {
	t.Run("split", func(t *testing.T) {
		m := newPicker(t, daterange.Range{}, nil)
		send(m, tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyDown())

		assert.Equal(t, day(2024, 4, 5), m.Cursor())
		assert.Equal(t, time.April, m.Controller().Anchor(daterange.Left).Month())
		assert.Equal(t, time.May, m.Controller().Anchor(daterange.Right).Month(), "right panel corrected once")
	})

	t.Run("linked", func(t *testing.T) {
		m := newPicker(t, daterange.Range{}, func(o *daterange.Options) { o.SplitPanels = false })
		send(m, tuitest.KeyPress(']'))

		assert.Equal(t, time.April, m.Controller().Anchor(daterange.Left).Month())
		assert.Equal(t, time.May, m.Controller().Anchor(daterange.Right).Month())
	})
}

func TestModel_SwitchPanel(t *testing.T) {
	m := newPicker(t, daterange.Range{}, nil)
	send(m, tuitest.KeyTab())

	assert.Equal(t, daterange.Right, m.Panel())
	assert.Equal(t, day(2024, 4, 1), m.Cursor())

	send(m, tuitest.KeyEnter(), tuitest.KeyTab(), tuitest.KeyEnter())
	assert.Equal(t, daterange.Range{From: day(2024, 3, 15), To: endOfDay(2024, 4, 1)}, m.Value())
}

func TestModel_DrillDown(t *testing.T) {
	m := newPicker(t, daterange.Range{}, nil)

	send(m, tuitest.KeyPress('y'))
	require.Equal(t, daterange.TableYear, m.Controller().Table(daterange.Left))
	assert.Contains(t, tuitest.StripANSI(m.View()), "2020-2029")

	evs := events(send(m, tuitest.KeyRight(), tuitest.KeyEnter()))
	assert.Empty(t, evs)
	require.Equal(t, daterange.TableMonth, m.Controller().Table(daterange.Left))
	assert.Equal(t, 2025, m.Controller().Anchor(daterange.Left).Year())

	evs = events(send(m, tuitest.KeyRight(), tuitest.KeyRight(), tuitest.KeyEnter()))
	assert.Empty(t, evs, "drill-down picks never touch the range")
	assert.Equal(t, daterange.TableDay, m.Controller().Table(daterange.Left))
	assert.Equal(t, day(2025, 3, 1), m.Controller().Anchor(daterange.Left))
	assert.Equal(t, day(2025, 3, 1), m.Cursor())
	assert.Equal(t, daterange.PhaseIdle, m.Controller().Phase())
}

func TestModel_ConfirmSchedulesReset(t *testing.T) {
	m := newPicker(t, daterange.Range{}, nil)
	send(m, tuitest.KeyEnter(), tuitest.KeyRight(), tuitest.KeyEnter())

	msgs := send(m, ctrlKey('s'))
	assert.Equal(t, []string{"pick-success"}, names(events(msgs)))

	var reset *ResetMsg
	for _, msg := range msgs {
		if r, ok := msg.(ResetMsg); ok {
			reset = &r
		}
	}
	require.NotNil(t, reset)
	assert.Equal(t, m.ID(), reset.ID)

	send(m, ResetMsg{ID: m.ID() + 1000, Token: reset.Token})
	assert.True(t, m.Controller().ResetPending(), "other pickers' resets are ignored")

	send(m, ResetMsg{ID: m.ID(), Token: reset.Token - 1})
	assert.True(t, m.Controller().ResetPending(), "stale tokens are ignored")

	send(m, *reset)
	assert.False(t, m.Controller().ResetPending())
	assert.Equal(t, daterange.PhaseIdle, m.Controller().Phase())
	assert.False(t, m.Value().IsEmpty(), "reset keeps the value")
}

func TestModel_OpenInvalidatesPendingReset(t *testing.T) {
	m := newPicker(t, daterange.Range{From: day(2024, 3, 1), To: endOfDay(2024, 3, 5)}, nil)
	tok := m.Controller().Confirm()

	m.Open()
	assert.False(t, m.Controller().ResetPending())

	send(m, ResetMsg{ID: m.ID(), Token: tok})
	assert.Equal(t, daterange.PhaseIdle, m.Controller().Phase())
}

func TestModel_Clear(t *testing.T) {
	m := newPicker(t, daterange.Range{From: day(2024, 3, 1), To: endOfDay(2024, 3, 5)}, nil)
	msgs := send(m, tuitest.KeyPress('c'))

	assert.Equal(t, []string{"pick-clear"}, names(events(msgs)))
	assert.True(t, m.Value().IsEmpty())
}

func TestModel_Shortcuts(t *testing.T) {
	last7, ok := daterange.Preset("last-7-days", func() time.Time { return fixedNow })
	require.True(t, ok)

	m := newPicker(t, daterange.Range{}, func(o *daterange.Options) {
		o.Shortcuts = []daterange.Shortcut{last7}
		o.ShortcutClose = true
	})
	assert.Contains(t, tuitest.StripANSI(m.View()), "Last 7 days")

	msgs := send(m, tuitest.KeyPress('s'), tuitest.KeyEnter())
	evs := events(msgs)
	require.Equal(t, []string{"pick", "pick-success"}, names(evs))

	pick := evs[0].(daterange.PickEvent)
	assert.Equal(t, daterange.KindShortcut, pick.Kind)
	require.NotNil(t, pick.Shortcut)
	assert.Equal(t, "Last 7 days", pick.Shortcut.Text)
	assert.Equal(t, daterange.Range{From: day(2024, 3, 9), To: endOfDay(2024, 3, 15)}, m.Value())
	assert.Equal(t, 0, m.Controller().SelectedShortcut())
	assert.True(t, m.Controller().ResetPending())
}

func TestModel_UpToNow(t *testing.T) {
	m := newPicker(t, daterange.Range{}, func(o *daterange.Options) { o.UpToNow = true })

	send(m, tuitest.KeyLeft(), tuitest.KeyEnter())
	assert.Contains(t, tuitest.StripANSI(m.View()), "n: up to now")

	evs := events(send(m, tuitest.KeyPress('n')))
	require.Equal(t, []string{"pick"}, names(evs))
	assert.Equal(t, daterange.KindUpToNow, evs[0].(daterange.PickEvent).Kind)
	assert.Equal(t, daterange.Range{From: day(2024, 3, 14), To: fixedNow}, m.Value())
}

func TestModel_UpToNowHiddenWhenDisabled(t *testing.T) {
	m := newPicker(t, daterange.Range{}, nil)
	send(m, tuitest.KeyEnter())

	assert.NotContains(t, tuitest.StripANSI(m.View()), "up to now")
	assert.Empty(t, events(send(m, tuitest.KeyPress('n'))))
}

func TestModel_DisabledDate(t *testing.T) {
	m := newPicker(t, daterange.Range{}, func(o *daterange.Options) {
		o.DisabledDate = func(t time.Time) bool { return t.Day() == 16 }
	})

	evs := events(send(m, tuitest.KeyRight(), tuitest.KeyEnter()))
	assert.Empty(t, evs)
	assert.Equal(t, daterange.PhaseIdle, m.Controller().Phase())
}

func TestModel_TimeView(t *testing.T) {
	value := daterange.Range{
		From: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 12, 18, 0, 0, 0, time.UTC),
	}
	m := newPicker(t, value, func(o *daterange.Options) { o.Type = daterange.TypeDateTimeRange })

	send(m, tuitest.KeyPress('t'))
	require.Equal(t, daterange.GranularityTime, m.Controller().View())

	evs := events(send(m, tuitest.KeyUp(), tuitest.KeyTab(), tuitest.KeyLeft(), tuitest.KeyEnter()))
	require.Equal(t, []string{"pick"}, names(evs))
	assert.Equal(t, daterange.Range{
		From: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 12, 17, 45, 0, 0, time.UTC),
	}, m.Value())
	assert.Contains(t, tuitest.StripANSI(m.View()), "2024-03-10 09:00")

	send(m, tuitest.KeyPress('t'))
	assert.Equal(t, daterange.GranularityDate, m.Controller().View())
}

func TestModel_TimeToggleOnlyForDateTime(t *testing.T) {
	m := newPicker(t, daterange.Range{}, nil)
	send(m, tuitest.KeyPress('t'))
	assert.Equal(t, daterange.GranularityDate, m.Controller().View())
}

func TestModel_IgnoresKeysWhenBlurred(t *testing.T) {
	m := newPicker(t, daterange.Range{}, nil)
	m.Blur()

	assert.Empty(t, send(m, tuitest.KeyEnter()))
	assert.Equal(t, daterange.PhaseIdle, m.Controller().Phase())
}

func TestModel_View(t *testing.T) {
	m := newPicker(t, daterange.Range{}, nil)
	out := tuitest.StripANSI(m.View())

	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "April 2024")
	assert.Contains(t, out, "Su Mo Tu We Th Fr Sa")
}
