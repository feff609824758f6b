// Package selectbox is a searchable single or multiple select built on the
// choice selection model.
package selectbox

import (
	"sync/atomic"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/tuikit/internal/core/choice"
	"github.com/colonyops/tuikit/internal/core/styles"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

const (
	defaultWidth  = 40
	defaultHeight = 8
)

// EventsMsg carries the selection events produced by one update, in
// emission order.
type EventsMsg struct {
	ID     int
	Events []choice.Event
}

// openMsg runs the bookkeeping that needs the dropdown to have been drawn
// once. Only the most recent open is honoured.
type openMsg struct {
	id  int
	tok uint64
}

// Options configures a select.
type Options[V comparable] struct {
	Choice      choice.Config[V]
	Placeholder string
	Width       int
	// Height is the number of option rows shown at once.
	Height int
	// Window switches to rendering only the rows in view once the list has
	// more rows than this. Zero renders every row.
	Window int
}

// Model is a Bubble Tea select.
type Model[V comparable] struct {
	id   int
	opts Options[V]
	sel  *choice.Model[V]
	log  zerolog.Logger

	input textinput.Model
	list  viewport.Model
	keys  KeyMap
	help  help.Model

	focused bool
	openTok uint64
	offset  int
	atEnd   bool
	rows    []row[V]

	pending []choice.Event
}

// New creates an empty select.
func New[V comparable](opts Options[V]) *Model[V] {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	sel := choice.New(opts.Choice)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = opts.Placeholder
	ti.SetWidth(opts.Width - 4)
	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	m := &Model[V]{
		id:    nextID(),
		opts:  opts,
		sel:   sel,
		log:   *sel.Config().Logger,
		input: ti,
		list: viewport.New(
			viewport.WithWidth(opts.Width),
			viewport.WithHeight(opts.Height),
		),
		keys: DefaultKeyMap(),
		help: help.New(),
	}
	sel.Subscribe(func(e choice.Event) {
		m.pending = append(m.pending, e)
	})

	multiple := sel.Multiple()
	m.keys.Remove.SetEnabled(multiple)
	m.keys.SelectAll.SetEnabled(multiple)
	m.refresh()
	return m
}

func (m *Model[V]) ID() int                     { return m.id }
func (m *Model[V]) Selection() *choice.Model[V] { return m.sel }
func (m *Model[V]) KeyMap() KeyMap              { return m.keys }
func (m *Model[V]) Focused() bool               { return m.focused }
func (m *Model[V]) Values() []V                 { return m.sel.Values() }

// Register adds options in order. Duplicate IDs are ignored.
func (m *Model[V]) Register(opts ...choice.Option[V]) {
	for _, o := range opts {
		m.sel.Register(o)
	}
	m.refresh()
}

// RegisterGroup adds a group heading.
func (m *Model[V]) RegisterGroup(g choice.Group) {
	m.sel.RegisterGroup(g)
	m.refresh()
}

// SetValue replaces the selection without emitting events.
func (m *Model[V]) SetValue(values ...V) {
	m.sel.SetValue(values...)
	m.refresh()
}

// Focus gives the select keyboard focus.
func (m *Model[V]) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes focus and closes the dropdown.
func (m *Model[V]) Blur() {
	m.focused = false
	m.input.Blur()
	m.sel.SetOpen(false)
	m.syncInput()
	m.refresh()
}

// Update handles key presses while focused and the select's own messages.
func (m *Model[V]) Update(msg tea.Msg) (*Model[V], tea.Cmd) {
	switch msg := msg.(type) {
	case openMsg:
		if msg.id == m.id && msg.tok == m.openTok && m.sel.IsOpen() {
			m.sel.AfterOpen()
			m.offset = 0
			m.refresh()
		}
		return m, m.flush()
	case tea.KeyPressMsg:
		if !m.focused {
			return m, nil
		}
		wasOpen := m.sel.IsOpen()
		cmd := m.handleKey(msg)
		m.syncInput()
		m.refresh()

		var opened tea.Cmd
		if !wasOpen && m.sel.IsOpen() {
			opened = m.openCmd()
		}
		return m, tea.Batch(m.flush(), opened, cmd)
	}
	if m.focused {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model[V]) openCmd() tea.Cmd {
	m.openTok++
	msg := openMsg{id: m.id, tok: m.openTok}
	return func() tea.Msg { return msg }
}

func (m *Model[V]) flush() tea.Cmd {
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

func (m *Model[V]) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	open := m.sel.IsOpen()

	switch {
	case key.Matches(msg, m.keys.Clear):
		m.sel.Clear()
		return nil
	case key.Matches(msg, m.keys.SelectAll):
		if m.sel.Config().ShowAll {
			m.sel.ToggleAll()
		} else {
			m.sel.ToggleSelectAll()
		}
		return nil
	case key.Matches(msg, m.keys.Remove) && m.input.Value() == "":
		m.sel.Backspace()
		return nil
	}

	if !open {
		if key.Matches(msg, m.keys.Open) {
			m.sel.SetOpen(true)
			return nil
		}
		if msg.Text != "" && m.sel.Config().Filterable {
			m.sel.SetOpen(true)
			return m.updateInput(msg)
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.sel.SetOpen(false)
	case key.Matches(msg, m.keys.Up):
		m.sel.MoveActive(-1)
		m.scrollToActive()
	case key.Matches(msg, m.keys.Down):
		m.sel.MoveActive(1)
		m.scrollToActive()
	case key.Matches(msg, m.keys.Choose):
		m.sel.Enter()
	default:
		if m.sel.Config().Filterable {
			return m.updateInput(msg)
		}
	}
	return nil
}

func (m *Model[V]) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.sel.Search() {
		m.sel.SetSearch(v)
		m.offset = 0
	}
	return cmd
}

// syncInput mirrors search changes made by the selection model, such as
// clearing on close, back into the text input.
func (m *Model[V]) syncInput() {
	if m.input.Value() != m.sel.Search() {
		m.input.SetValue(m.sel.Search())
	}

	placeholder := m.opts.Placeholder
	if !m.sel.Multiple() {
		if labels := m.sel.Labels(); len(labels) > 0 {
			placeholder = labels[0]
		}
	}
	m.input.Placeholder = placeholder
}

// scrollToActive keeps the active row in view and reports reaching the end
// of a scrollable list.
func (m *Model[V]) scrollToActive() {
	m.refresh()

	idx := m.activeRow()
	if idx < 0 {
		return
	}
	h := m.opts.Height
	switch {
	case idx < m.offset:
		m.offset = idx
	case idx >= m.offset+h:
		m.offset = idx - h + 1
	}
	m.refresh()

	atEnd := len(m.rows) > h && m.offset+h >= len(m.rows)
	if atEnd && !m.atEnd {
		m.sel.ScrollEnd()
	}
	m.atEnd = atEnd
}

func (m *Model[V]) activeRow() int {
	for i, r := range m.rows {
		if r.kind == rowOption && m.sel.IsActive(r.id) {
			return i
		}
	}
	return -1
}
