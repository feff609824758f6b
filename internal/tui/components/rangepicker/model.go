// Package rangepicker is a two-panel terminal date range picker built on
// the daterange controller.
package rangepicker

import (
	"sync/atomic"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/tuikit/internal/core/daterange"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// EventsMsg carries the controller events produced by one update, in
// emission order.
type EventsMsg struct {
	ID     int
	Events []daterange.Event
}

// ResetMsg applies a deferred view reset. It is produced by a tick and only
// takes effect when its token is still current.
type ResetMsg struct {
	ID    int
	Token daterange.ResetToken
}

type area int

const (
	areaGrid area = iota
	areaShortcuts
)

// timeStep is the minute increment of the time view.
const timeStep = 15 * time.Minute

// Model is a Bubble Tea date range picker.
type Model struct {
	id   int
	ctrl *daterange.Controller
	keys KeyMap
	help help.Model
	log  zerolog.Logger

	focused  bool
	area     area
	panel    daterange.Panel
	cursor   time.Time
	cell     int
	shortcut int
	draft    daterange.Range
	tables   [2]daterange.Table

	pending []daterange.Event
}

// New creates a picker bound to value.
func New(value daterange.Range, opts daterange.Options) *Model {
	ctrl := daterange.New(value, opts)
	m := &Model{
		id:   nextID(),
		ctrl: ctrl,
		keys: DefaultKeyMap(),
		help: help.New(),
		log:  *ctrl.Options().Logger,
	}
	ctrl.Subscribe(func(e daterange.Event) {
		m.pending = append(m.pending, e)
	})

	t := ctrl.Options().Type
	m.keys.ToggleTime.SetEnabled(t == daterange.TypeDateTimeRange || t == daterange.TypeDateTime)
	m.keys.Shortcuts.SetEnabled(len(ctrl.Shortcuts()) > 0)
	m.keys.UpToNow.SetEnabled(ctrl.ShowUpToNow())

	m.syncCursor(true)
	return m
}

func (m *Model) ID() int                          { return m.id }
func (m *Model) Controller() *daterange.Controller { return m.ctrl }
func (m *Model) Value() daterange.Range           { return m.ctrl.Value() }
func (m *Model) KeyMap() KeyMap                   { return m.keys }
func (m *Model) Focused() bool                    { return m.focused }
func (m *Model) Panel() daterange.Panel           { return m.panel }
func (m *Model) Cursor() time.Time                { return m.cursor }

// SetKeyMap replaces the key bindings. Start from KeyMap() to keep the
// enabled state New derived from the options.
func (m *Model) SetKeyMap(k KeyMap) { m.keys = k }

// SetValue replaces the bound value without emitting events.
func (m *Model) SetValue(r daterange.Range) {
	m.ctrl.SetValue(r)
	m.syncCursor(true)
}

// Open prepares the picker for display, applying any pending reset.
func (m *Model) Open() {
	m.ctrl.Open()
	m.area = areaGrid
	m.panel = daterange.Left
	m.syncCursor(true)
}

// Focus gives the picker keyboard focus and opens it.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	m.Open()
	return nil
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
}

// Update handles key presses while focused and the picker's own messages.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResetMsg:
		if msg.ID == m.id && m.ctrl.ApplyReset(msg.Token) {
			m.log.Debug().Uint64("token", uint64(msg.Token)).Msg("view reset applied")
			m.syncCursor(true)
		}
		return m, nil
	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		reset := m.handleKey(msg)
		return m, tea.Batch(m.flush(), reset)
	}
	return m, nil
}

func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	events := m.pending
	m.pending = nil
	id := m.id
	return func() tea.Msg {
		return EventsMsg{ID: id, Events: events}
	}
}

func (m *Model) scheduleReset(tok daterange.ResetToken) tea.Cmd {
	id := m.id
	return tea.Tick(daterange.ResetDelay, func(time.Time) tea.Msg {
		return ResetMsg{ID: id, Token: tok}
	})
}

// handleKey applies one key press and returns the reset tick, if any.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.scheduleReset(m.ctrl.Confirm())
	case key.Matches(msg, m.keys.Clear):
		tok := m.ctrl.Clear()
		m.syncCursor(false)
		return m.scheduleReset(tok)
	case key.Matches(msg, m.keys.UpToNow):
		if m.ctrl.PickUpToNow() {
			m.syncCursor(false)
		}
		return nil
	case key.Matches(msg, m.keys.Shortcuts):
		if m.area == areaShortcuts {
			m.area = areaGrid
		} else {
			m.area = areaShortcuts
		}
		return nil
	case key.Matches(msg, m.keys.ToggleTime):
		m.ctrl.ToggleTime()
		m.syncCursor(true)
		return nil
	}

	if m.area == areaShortcuts {
		return m.handleShortcutKey(msg)
	}
	if m.ctrl.View() == daterange.GranularityTime {
		m.handleTimeKey(msg)
		return nil
	}
	m.handleGridKey(msg)
	return nil
}

func (m *Model) handleShortcutKey(msg tea.KeyPressMsg) tea.Cmd {
	n := len(m.ctrl.Shortcuts())
	switch {
	case key.Matches(msg, m.keys.Back):
		m.area = areaGrid
	case key.Matches(msg, m.keys.Up):
		if n > 0 {
			m.shortcut = (m.shortcut - 1 + n) % n
		}
	case key.Matches(msg, m.keys.Down):
		if n > 0 {
			m.shortcut = (m.shortcut + 1) % n
		}
	case key.Matches(msg, m.keys.Pick):
		if !m.ctrl.ApplyShortcut(m.shortcut) {
			return nil
		}
		m.syncCursor(true)
		if m.ctrl.Options().ShortcutClose {
			return m.scheduleReset(m.ctrl.ScheduleReset())
		}
	}
	return nil
}

func (m *Model) handleTimeKey(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, m.keys.SwitchPanel):
		m.panel = m.panel.Other()
	case key.Matches(msg, m.keys.Up):
		m.adjustDraft(time.Hour)
	case key.Matches(msg, m.keys.Down):
		m.adjustDraft(-time.Hour)
	case key.Matches(msg, m.keys.Right):
		m.adjustDraft(timeStep)
	case key.Matches(msg, m.keys.Left):
		m.adjustDraft(-timeStep)
	case key.Matches(msg, m.keys.Pick):
		m.ctrl.PickTime(m.draft)
		m.draft = m.ctrl.Value()
	}
}

func (m *Model) adjustDraft(d time.Duration) {
	if m.panel == daterange.Left {
		m.draft.From = m.draft.From.Add(d)
	} else {
		m.draft.To = m.draft.To.Add(d)
	}
}

func (m *Model) handleGridKey(msg tea.KeyPressMsg) {
	p := m.panel
	switch {
	case key.Matches(msg, m.keys.SwitchPanel):
		m.panel = p.Other()
		m.syncCursor(true)
	case key.Matches(msg, m.keys.PrevMonth):
		m.ctrl.PrevMonth(p)
		m.syncCursor(true)
	case key.Matches(msg, m.keys.NextMonth):
		m.ctrl.NextMonth(p)
		m.syncCursor(true)
	case key.Matches(msg, m.keys.PrevYear):
		m.ctrl.PrevYear(p)
		m.syncCursor(true)
	case key.Matches(msg, m.keys.NextYear):
		m.ctrl.NextYear(p)
		m.syncCursor(true)
	case key.Matches(msg, m.keys.YearPicker):
		m.ctrl.ShowYearPicker(p)
		m.syncCursor(false)
	case key.Matches(msg, m.keys.MonthPicker):
		m.ctrl.ShowMonthPicker(p)
		m.syncCursor(false)
	case key.Matches(msg, m.keys.Back):
		if m.ctrl.PreSelecting(p) {
			m.ctrl.Open()
			m.syncCursor(true)
		}
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-7, -3)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(7, 3)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1, 1)
	case key.Matches(msg, m.keys.Pick):
		m.pickCursor()
	}
}

// moveCursor moves by days in the day table and by cells in the month and
// year tables. Leaving the shown month advances the panel.
func (m *Model) moveCursor(days, cells int) {
	switch m.ctrl.Table(m.panel) {
	case daterange.TableDay:
		next := m.cursor.AddDate(0, 0, days)
		anchor := m.ctrl.Anchor(m.panel)
		if monthIndex(next) != monthIndex(anchor) {
			m.ctrl.Advance(m.panel, daterange.UnitMonth, monthIndex(next)-monthIndex(anchor))
		}
		m.cursor = next
		m.ctrl.Hover(next)
	case daterange.TableMonth:
		m.cell = min(max(m.cell+cells, 0), 11)
	case daterange.TableYear:
		m.cell = min(max(m.cell+cells, 0), 9)
	}
}

func (m *Model) pickCursor() {
	p := m.panel
	anchor := m.ctrl.Anchor(p)
	loc := anchor.Location()

	var t time.Time
	switch m.ctrl.Table(p) {
	case daterange.TableDay:
		t = m.cursor
	case daterange.TableMonth:
		t = time.Date(anchor.Year(), time.Month(m.cell+1), 1, 0, 0, 0, 0, loc)
	case daterange.TableYear:
		t = time.Date(decadeStart(anchor.Year())+m.cell, time.January, 1, 0, 0, 0, 0, loc)
	}

	before := m.ctrl.Table(p)
	m.ctrl.Pick(p, t)
	m.syncCursor(before != m.ctrl.Table(p))
}

// syncCursor realigns the cursor with the focused panel. With force the
// cursor is moved even when the table did not change.
func (m *Model) syncCursor(force bool) {
	if m.ctrl.View() == daterange.GranularityTime {
		m.draft = m.ctrl.Value()
		now := m.ctrl.Options().Now()
		if m.draft.From.IsZero() {
			m.draft.From = now
		}
		if m.draft.To.IsZero() {
			m.draft.To = m.draft.From
		}
		return
	}

	p := m.panel
	table := m.ctrl.Table(p)
	if !force && table == m.tables[p] {
		return
	}
	m.tables[p] = table

	anchor := m.ctrl.Anchor(p)
	switch table {
	case daterange.TableDay:
		m.cursor = dayOf(anchor)
		if from := m.ctrl.State().From; !from.IsZero() && monthIndex(from) == monthIndex(anchor) {
			m.cursor = dayOf(from)
		}
	case daterange.TableMonth:
		m.cell = int(anchor.Month()) - 1
	case daterange.TableYear:
		m.cell = anchor.Year() - decadeStart(anchor.Year())
	}
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func dayOf(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}

func decadeStart(year int) int {
	return year / 10 * 10
}
