// Package collapse renders a list of panels that expand and collapse, with
// an optional accordion mode where at most one panel is open.
package collapse

import (
	"slices"
	"strings"
	"sync/atomic"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/tuikit/internal/core/styles"
)

var lastID int64

// Item is one collapsible panel. Name identifies it in the active set.
type Item struct {
	Name    string
	Title   string
	Content string
}

// ChangeMsg reports the new set of open panels.
type ChangeMsg struct {
	ID     int
	Active []string
}

// KeyMap defines the collapse key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "toggle")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Up, k.Down, k.Toggle} }

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

// Options configures a collapse.
type Options struct {
	Accordion bool
	Active    []string
	// Title and Content override the default renderers.
	Title   func(it Item, open bool) string
	Content func(it Item) string
}

// Model is a Bubble Tea collapse.
type Model struct {
	id      int
	opts    Options
	items   []Item
	active  []string
	cursor  int
	focused bool
	keys    KeyMap
}

// New creates a collapse over items.
func New(items []Item, opts Options) *Model {
	m := &Model{
		id:    int(atomic.AddInt64(&lastID, 1)),
		opts:  opts,
		items: items,
		keys:  DefaultKeyMap(),
	}
	for _, name := range opts.Active {
		if m.index(name) >= 0 && !slices.Contains(m.active, name) {
			m.active = append(m.active, name)
		}
	}
	if opts.Accordion && len(m.active) > 1 {
		m.active = m.active[:1]
	}
	return m
}

func (m *Model) ID() int          { return m.id }
func (m *Model) KeyMap() KeyMap   { return m.keys }
func (m *Model) Cursor() int      { return m.cursor }
func (m *Model) Focused() bool    { return m.focused }
func (m *Model) Active() []string { return slices.Clone(m.active) }

// IsOpen reports whether the panel called name is expanded.
func (m *Model) IsOpen(name string) bool {
	return slices.Contains(m.active, name)
}

func (m *Model) index(name string) int {
	return slices.IndexFunc(m.items, func(it Item) bool { return it.Name == name })
}

// Focus gives the collapse keyboard focus.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return nil
}

// Blur removes keyboard focus.
func (m *Model) Blur() { m.focused = false }

// Toggle opens or closes the panel called name. In accordion mode opening
// a panel closes the others.
func (m *Model) Toggle(name string) bool {
	if m.index(name) < 0 {
		return false
	}

	if i := slices.Index(m.active, name); i >= 0 {
		m.active = slices.Delete(m.active, i, i+1)
		return true
	}
	if m.opts.Accordion {
		m.active = []string{name}
	} else {
		m.active = append(m.active, name)
	}
	return true
}

// Update moves the cursor and toggles the panel under it.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused || len(m.items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case key.Matches(keyMsg, m.keys.Toggle):
		if m.Toggle(m.items[m.cursor].Name) {
			change := ChangeMsg{ID: m.id, Active: m.Active()}
			return m, func() tea.Msg { return change }
		}
	}
	return m, nil
}

// View renders every panel title and the content of open panels.
func (m *Model) View() string {
	var b strings.Builder
	for i, it := range m.items {
		if i > 0 {
			b.WriteString("\n")
		}
		open := m.IsOpen(it.Name)
		b.WriteString(m.renderTitle(i, it, open))
		if open {
			b.WriteString("\n")
			b.WriteString(m.renderContent(it))
		}
	}
	return b.String()
}

func (m *Model) renderTitle(i int, it Item, open bool) string {
	if m.opts.Title != nil {
		return m.opts.Title(it, open)
	}

	icon := styles.IconChevronRt
	if open {
		icon = styles.IconChevronDn
	}
	title := it.Title
	if title == "" {
		title = it.Name
	}

	style := styles.CollapseTitleStyle
	if m.focused && i == m.cursor {
		style = styles.CollapseTitleActiveStyle
	}
	return style.Render(icon + " " + title)
}

func (m *Model) renderContent(it Item) string {
	if m.opts.Content != nil {
		return m.opts.Content(it)
	}
	return styles.CollapseContentStyle.Render(it.Content)
}
