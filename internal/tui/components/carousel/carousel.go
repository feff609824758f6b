// Package carousel cycles through a list of frames, optionally advancing on
// a timer.
package carousel

import (
	"strings"
	"sync/atomic"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/tuikit/internal/core/styles"
)

// DefaultInterval is the autoplay delay between frames.
const DefaultInterval = 8 * time.Second

var lastID int64

// Item is one carousel frame.
type Item struct {
	Title string
	Body  string
}

// IndexChangeMsg reports a frame change.
type IndexChangeMsg struct {
	ID    int
	Index int
	Prev  int
}

// tickMsg advances the carousel. Ticks from a superseded timer carry an old
// generation and are dropped.
type tickMsg struct {
	id  int
	gen uint64
}

// KeyMap defines the carousel key bindings.
type KeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Pause key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Pause: key.NewBinding(key.WithKeys("p", "space"), key.WithHelp("p", "pause")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Prev, k.Next, k.Pause} }

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// Options configures a carousel.
type Options struct {
	// Loop enables autoplay.
	Loop     bool
	Interval time.Duration
	Width    int
	Height   int
}

// Model is a Bubble Tea carousel.
type Model struct {
	id     int
	opts   Options
	items  []Item
	index  int
	gen    uint64
	paused bool
	keys   KeyMap
}

// New creates a carousel over items.
func New(items []Item, opts Options) *Model {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Width <= 0 {
		opts.Width = 40
	}
	if opts.Height <= 0 {
		opts.Height = 6
	}
	return &Model{
		id:    int(atomic.AddInt64(&lastID, 1)),
		opts:  opts,
		items: items,
		keys:  DefaultKeyMap(),
	}
}

func (m *Model) ID() int        { return m.id }
func (m *Model) Index() int     { return m.index }
func (m *Model) Paused() bool   { return m.paused }
func (m *Model) KeyMap() KeyMap { return m.keys }

// Init starts autoplay when looping.
func (m *Model) Init() tea.Cmd {
	return m.restart()
}

// restart invalidates any running timer and starts a new one.
func (m *Model) restart() tea.Cmd {
	m.gen++
	if !m.opts.Loop || m.paused || len(m.items) < 2 {
		return nil
	}
	msg := tickMsg{id: m.id, gen: m.gen}
	return tea.Tick(m.opts.Interval, func(time.Time) tea.Msg { return msg })
}

// Pause stops autoplay, as when the pointer rests on the carousel.
func (m *Model) Pause() {
	m.paused = true
	m.gen++
}

// Resume restarts autoplay after Pause.
func (m *Model) Resume() tea.Cmd {
	m.paused = false
	return m.restart()
}

// SetIndex shows frame i, wrapping out-of-range values.
func (m *Model) SetIndex(i int) tea.Cmd {
	n := len(m.items)
	if n == 0 {
		return nil
	}
	i = ((i % n) + n) % n
	if i == m.index {
		return nil
	}
	change := IndexChangeMsg{ID: m.id, Index: i, Prev: m.index}
	m.index = i
	return func() tea.Msg { return change }
}

// Next shows the following frame.
func (m *Model) Next() tea.Cmd { return m.SetIndex(m.index + 1) }

// Prev shows the preceding frame.
func (m *Model) Prev() tea.Cmd { return m.SetIndex(m.index - 1) }

// Update handles autoplay ticks and navigation keys. Manual navigation
// restarts the autoplay timer.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.id != m.id || msg.gen != m.gen || m.paused {
			return m, nil
		}
		change := m.Next()
		return m, tea.Batch(change, m.restart())
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Prev):
			return m, tea.Batch(m.Prev(), m.restart())
		case key.Matches(msg, m.keys.Next):
			return m, tea.Batch(m.Next(), m.restart())
		case key.Matches(msg, m.keys.Pause):
			if m.paused {
				return m, m.Resume()
			}
			m.Pause()
		}
	}
	return m, nil
}

// View renders the current frame and the position indicators.
func (m *Model) View() string {
	if len(m.items) == 0 {
		return ""
	}
	it := m.items[m.index]

	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.TextPrimaryBoldStyle.Render(it.Title),
		styles.TextForegroundStyle.Render(it.Body),
	)
	frame := styles.CarouselFrameStyle.
		Width(m.opts.Width).
		Height(m.opts.Height).
		Render(body)

	dots := make([]string, len(m.items))
	for i := range m.items {
		if i == m.index {
			dots[i] = styles.TextPrimaryStyle.Render(styles.IconDotActive)
		} else {
			dots[i] = styles.CarouselIndicatorStyle.Render(styles.IconDotIdle)
		}
	}
	indicator := strings.Join(dots, " ")
	if m.paused {
		indicator += "  " + styles.TextMutedStyle.Render("paused")
	}

	return lipgloss.JoinVertical(lipgloss.Center, frame, indicator)
}
