// Package gallery is the root Bubble Tea model of the tuikit binary. It
// hosts every widget on its own page, or a single widget for the
// per-widget commands, and records the events they emit.
package gallery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/tuikit/internal/core/config"
	"github.com/colonyops/tuikit/internal/core/logging"
	"github.com/colonyops/tuikit/internal/core/styles"
	"github.com/colonyops/tuikit/internal/tui/components"
)

type state int

const (
	stateNormal state = iota
	stateHelp
	stateEvents
)

// Options configures the gallery.
type Options struct {
	Config config.Config
	// Pages lists the hosted pages in tab order. A single page hides the
	// tab bar and quits once the widget reports it is done.
	Pages []Page
	// Now is the clock handed to the date pickers. Defaults to time.Now.
	Now func() time.Time
	// Watcher, when set, reloads the config while the gallery runs.
	Watcher *ConfigWatcher
	Width   int
}

// Model is the gallery root model.
type Model struct {
	ctx     context.Context
	cfg     config.Config
	order   []Page
	pages   []page
	active  int
	now     func() time.Time
	watcher *ConfigWatcher
	log     zerolog.Logger

	keys       KeyMap
	help       help.Model
	events     *components.EventLog
	helpDialog *components.HelpDialog
	state      state

	width  int
	height int

	cancelled bool
	quitting  bool
}

// New creates the gallery. ctx carries the command name for the widget
// loggers.
func New(ctx context.Context, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.Pages) == 0 {
		opts.Pages = Pages()
	}

	m := Model{
		ctx:     ctx,
		cfg:     opts.Config,
		order:   opts.Pages,
		now:     opts.Now,
		watcher: opts.Watcher,
		log:     logging.Component("gallery"),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		events:  components.NewEventLog("Events", "[j/k] scroll  [c] clear  [esc] close", opts.Config.EventLogSize),
		width:   opts.Width,
	}
	if m.single() {
		m.keys.NextPage.SetEnabled(false)
		m.keys.PrevPage.SetEnabled(false)
	}
	m.buildPages()
	return m
}

func (m *Model) buildPages() {
	e := env{ctx: m.ctx, cfg: m.cfg, now: m.now, width: m.width}
	m.pages = make([]page, len(m.order))
	for i, p := range m.order {
		m.pages[i] = newPage(p, e)
	}
}

func (m Model) single() bool { return len(m.order) == 1 }

// ActivePage returns the page shown.
func (m Model) ActivePage() Page { return m.order[m.active] }

// Events returns the recorded widget events, oldest first.
func (m Model) Events() []components.EventEntry { return m.events.Entries() }

// Cancelled reports whether the user quit with ctrl+c.
func (m Model) Cancelled() bool { return m.cancelled }

// Finished reports whether the gallery has asked to quit.
func (m Model) Finished() bool { return m.quitting }

// Result returns the value of the active page: a daterange.Range, the
// selected values, the submitted form values (nil when the form was
// cancelled), the open collapse panels or the carousel index.
func (m Model) Result() any { return m.pages[m.active].Result() }

// Init focuses the first page and starts the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.pages[m.active].Focus(), m.watch())
}

func (m Model) watch() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Start()
}

// Update routes key presses to the active page and every other message to
// all pages, since deferred widget messages may belong to a page that is
// no longer active.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.events.SetSize(msg.Width, msg.Height)
		return m, nil
	case ConfigReloadMsg:
		return m.reload(msg)
	case ConfigErrorMsg:
		m.record(components.EventEntry{
			At:     m.now(),
			Source: "config",
			Name:   "reload",
			Detail: msg.Err.Error(),
			Level:  zerolog.ErrorLevel,
		})
		return m, m.watch()
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	for _, e := range eventEntries(msg, m.now()) {
		m.record(e)
	}

	cmds := make([]tea.Cmd, 0, len(m.pages))
	for _, p := range m.pages {
		cmds = append(cmds, p.Update(msg))
	}
	return m.finish(tea.Batch(cmds...))
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.cancelled = true
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case stateHelp:
		if msg.String() == "esc" || key.Matches(msg, m.keys.Help) {
			m.state = stateNormal
			m.helpDialog = nil
		}
		return m, nil
	case stateEvents:
		switch msg.String() {
		case "esc", "f2":
			m.state = stateNormal
		case "up", "k":
			m.events.ScrollUp()
		case "down", "j":
			m.events.ScrollDown()
		case "c":
			m.events.Clear()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		p := m.pages[m.active]
		m.helpDialog = components.NewHelpDialog(p.Title()+" keys", []components.HelpSection{
			{Title: p.Title(), Bindings: flatten(p.KeyMap().FullHelp())},
			{Title: "Gallery", Bindings: m.keys.ShortHelp()},
		})
		m.state = stateHelp
		return m, nil
	case key.Matches(msg, m.keys.Events):
		m.state = stateEvents
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		return m.switchTo(m.active + 1)
	case key.Matches(msg, m.keys.PrevPage):
		return m.switchTo(m.active - 1)
	}

	return m.finish(m.pages[m.active].Update(msg))
}

func flatten(cols [][]key.Binding) []key.Binding {
	var out []key.Binding
	for _, col := range cols {
		out = append(out, col...)
	}
	return out
}

// finish quits a single page run once its widget is done.
func (m Model) finish(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.single() && m.pages[m.active].Done() && !m.quitting {
		m.quitting = true
		return m, tea.Sequence(cmd, tea.Quit)
	}
	return m, cmd
}

// switchTo activates page i, wrapping around.
func (m Model) switchTo(i int) (tea.Model, tea.Cmd) {
	n := len(m.pages)
	i = ((i % n) + n) % n
	if i == m.active {
		return m, nil
	}
	m.pages[m.active].Blur()
	m.active = i
	m.log.Debug().Str("page", m.order[i].String()).Msg("page switched")
	return m, m.pages[i].Focus()
}

// reload applies a new config. Widgets are rebuilt, so in-progress
// selections are lost; the event log is kept.
func (m Model) reload(msg ConfigReloadMsg) (tea.Model, tea.Cmd) {
	if p, ok := styles.GetPalette(msg.Config.Theme); ok {
		styles.SetTheme(p)
	}
	m.cfg = msg.Config
	m.buildPages()

	at := m.now()
	m.record(components.EventEntry{At: at, Source: "config", Name: "reload", Level: zerolog.InfoLevel})
	for _, w := range msg.Warnings {
		m.record(components.EventEntry{
			At:     at,
			Source: "config",
			Name:   w.Item,
			Detail: w.Message,
			Level:  zerolog.WarnLevel,
		})
	}
	return m, tea.Batch(m.pages[m.active].Focus(), m.watch())
}

func (m Model) record(e components.EventEntry) {
	m.events.Append(e)
	m.log.Debug().
		Str("source", e.Source).
		Str("event", e.Name).
		Str("detail", e.Detail).
		Msg("widget event")
}

// View renders the gallery.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	mainView := m.renderPage(w, h)

	var content string
	switch {
	case m.state == stateHelp && m.helpDialog != nil:
		content = m.helpDialog.Overlay(mainView, w, h)
	case m.state == stateEvents:
		content = m.events.Overlay(mainView, w, h)
	default:
		content = mainView
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// renderPage lays out the tab bar, the active widget and the key hints.
func (m Model) renderPage(w, h int) string {
	var tabs []string
	if m.single() {
		tabs = append(tabs, styles.TabSelectedStyle.Render(m.pages[0].Title()))
	} else {
		for i, p := range m.pages {
			if i == m.active {
				tabs = append(tabs, styles.TabSelectedStyle.Render(p.Title()))
			} else {
				tabs = append(tabs, styles.TabNormalStyle.Render(p.Title()))
			}
		}
	}
	tabsLeft := strings.Join(tabs, " | ")

	branding := styles.TabBrandingStyle.Render(styles.IconCalendar + " tuikit")
	if n := m.events.Len(); n > 0 {
		branding = styles.TextMutedStyle.Render(fmt.Sprintf("%d events ", n)) + branding
	}

	margin := 1
	spacerWidth := max(w-lipgloss.Width(tabsLeft)-lipgloss.Width(branding)-(margin*2), 1)
	header := lipgloss.JoinHorizontal(lipgloss.Left,
		components.Pad(margin), tabsLeft, components.Pad(spacerWidth), branding, components.Pad(margin),
	)
	divider := styles.TextMutedStyle.Render(strings.Repeat("─", w))

	footer := m.help.ShortHelpView(m.keys.ShortHelp())
	contentHeight := max(h-5, 1)
	body := lipgloss.NewStyle().
		Height(contentHeight).
		Padding(1, 2, 0, 2).
		Render(m.pages[m.active].View())

	return lipgloss.JoinVertical(lipgloss.Left, divider, header, divider, body, footer)
}
