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
	"github.com/colonyops/tuikit/internal/core/daterange"
	"github.com/colonyops/tuikit/internal/core/logging"
	"github.com/colonyops/tuikit/internal/core/styles"
	"github.com/colonyops/tuikit/internal/tui/components/carousel"
	"github.com/colonyops/tuikit/internal/tui/components/collapse"
	"github.com/colonyops/tuikit/internal/tui/components/form"
	"github.com/colonyops/tuikit/internal/tui/components/rangepicker"
	"github.com/colonyops/tuikit/internal/tui/components/selectbox"
)

// Page identifies one widget demo.
type Page int

const (
	PageDateRange Page = iota
	PageSelect
	PageForm
	PageCollapse
	PageCarousel
)

var pageNames = [...]string{"daterange", "select", "form", "collapse", "carousel"}

// Pages lists every page in tab order.
func Pages() []Page {
	return []Page{PageDateRange, PageSelect, PageForm, PageCollapse, PageCarousel}
}

func (p Page) String() string {
	if p < 0 || int(p) >= len(pageNames) {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageNames[p]
}

// ParsePage looks a page up by name.
func ParsePage(name string) (Page, bool) {
	for i, n := range pageNames {
		if n == name {
			return Page(i), true
		}
	}
	return 0, false
}

// page is one hosted widget. Update sees every non-key message, and key
// presses only while the page is active.
type page interface {
	Title() string
	Focus() tea.Cmd
	Blur()
	Update(msg tea.Msg) tea.Cmd
	View() string
	KeyMap() help.KeyMap
	// Done reports that the user finished with the widget. Only single
	// page runs act on it.
	Done() bool
	Result() any
}

// env is what pages are built from.
type env struct {
	ctx   context.Context
	cfg   config.Config
	now   func() time.Time
	width int
}

func (e env) logger(name string) *zerolog.Logger {
	return logging.Widget(e.ctx, name)
}

func newPage(p Page, e env) page {
	switch p {
	case PageSelect:
		return newSelectPage(e)
	case PageForm:
		return newFormPage(e)
	case PageCollapse:
		return newCollapsePage(e)
	case PageCarousel:
		return newCarouselPage(e)
	default:
		return newDateRangePage(e)
	}
}

// keyMaps joins a widget key map with page-level bindings.
type keyMaps struct {
	widget help.KeyMap
	extra  []key.Binding
}

func (k keyMaps) ShortHelp() []key.Binding {
	return append(k.widget.ShortHelp(), k.extra...)
}

func (k keyMaps) FullHelp() [][]key.Binding {
	full := k.widget.FullHelp()
	if len(k.extra) > 0 {
		full = append(full, k.extra)
	}
	return full
}

func valueLine(label, value string) string {
	if value == "" {
		value = styles.TextMutedStyle.Render("(empty)")
	}
	return styles.TextMutedStyle.Render(label+": ") + value
}

type dateRangePage struct {
	picker *rangepicker.Model
	done   bool
}

func newDateRangePage(e env) *dateRangePage {
	opts := e.cfg.DatePicker.Options(e.now, e.logger(PageDateRange.String()))
	return &dateRangePage{picker: rangepicker.New(daterange.Range{}, opts)}
}

func (p *dateRangePage) Title() string  { return "Date range" }
func (p *dateRangePage) Focus() tea.Cmd { return p.picker.Focus() }
func (p *dateRangePage) Blur()          { p.picker.Blur() }
func (p *dateRangePage) Done() bool     { return p.done }
func (p *dateRangePage) Result() any    { return p.picker.Value() }

func (p *dateRangePage) KeyMap() help.KeyMap { return p.picker.KeyMap() }

func (p *dateRangePage) Update(msg tea.Msg) tea.Cmd {
	if ev, ok := msg.(rangepicker.EventsMsg); ok && ev.ID == p.picker.ID() {
		for _, e := range ev.Events {
			if _, ok := e.(daterange.PickSuccessEvent); ok {
				p.done = true
			}
		}
	}
	var cmd tea.Cmd
	p.picker, cmd = p.picker.Update(msg)
	return cmd
}

func (p *dateRangePage) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.picker.View(),
		"",
		valueLine("value", formatValue(p.picker.Value())),
	)
}

type selectPage struct {
	box    *selectbox.Model[string]
	finish key.Binding
	done   bool
}

func newSelectPage(e env) *selectPage {
	cfg := e.cfg.Select
	box := selectbox.New(selectbox.Options[string]{
		Choice:      cfg.ChoiceConfig(e.logger(PageSelect.String())),
		Placeholder: cfg.Placeholder,
		Height:      cfg.Height,
		Window:      cfg.Window,
	})
	for _, g := range cfg.ChoiceGroups() {
		box.RegisterGroup(g)
	}
	box.Register(cfg.ChoiceOptions()...)

	return &selectPage{
		box:    box,
		finish: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "done")),
	}
}

func (p *selectPage) Title() string  { return "Select" }
func (p *selectPage) Focus() tea.Cmd { return p.box.Focus() }
func (p *selectPage) Blur()          { p.box.Blur() }
func (p *selectPage) Done() bool     { return p.done }
func (p *selectPage) Result() any    { return p.box.Values() }

func (p *selectPage) KeyMap() help.KeyMap {
	return keyMaps{widget: p.box.KeyMap(), extra: []key.Binding{p.finish}}
}

func (p *selectPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if key.Matches(msg, p.finish) {
			p.done = true
			return nil
		}
	case selectbox.EventsMsg:
		// A single select is finished by its first pick.
		if msg.ID == p.box.ID() && !p.box.Selection().Multiple() {
			for _, e := range msg.Events {
				if e.EventName() == "change" {
					p.done = true
				}
			}
		}
	}
	var cmd tea.Cmd
	p.box, cmd = p.box.Update(msg)
	return cmd
}

func (p *selectPage) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.box.View(),
		"",
		valueLine("value", strings.Join(p.box.Values(), ", ")),
	)
}

// formPage hosts a dialog that mixes the widgets with plain text fields.
// Once finished it shows the outcome until restarted.
type formPage struct {
	env     env
	dialog  *form.Dialog
	restart key.Binding
}

func newFormPage(e env) *formPage {
	p := &formPage{
		env:     e,
		restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	}
	p.dialog = p.build()
	return p
}

func (p *formPage) build() *form.Dialog {
	cfg := p.env.cfg
	logger := p.env.logger(PageForm.String())

	choiceCfg := cfg.Select.ChoiceConfig(logger)
	choiceCfg.ShowAll = false
	fruit := form.NewSelectField("Favourite", selectbox.Options[string]{
		Choice:      choiceCfg,
		Placeholder: cfg.Select.Placeholder,
		Height:      cfg.Select.Height,
	}, cfg.Select.ChoiceOptions(), form.FieldValidation{Required: true, Min: 1})

	dates := form.NewDateRangeField("Trip", daterange.Range{},
		cfg.DatePicker.Options(p.env.now, logger),
		form.FieldValidation{Required: true, MaxDays: cfg.DatePicker.MaxDays},
	)

	fields := []form.Field{
		form.NewTextField("Name", "who is travelling", "", form.FieldValidation{Required: true, MaxLength: 40}),
		fruit,
		dates,
		form.NewTextAreaField("Notes", "anything else", ""),
	}
	return form.NewDialog("Trip request", fields, []string{"name", "favourite", "trip", "notes"})
}

func (p *formPage) Title() string { return "Form" }

func (p *formPage) Focus() tea.Cmd { return nil }
func (p *formPage) Blur()          {}

func (p *formPage) Done() bool {
	return p.dialog.Submitted() || p.dialog.Cancelled()
}

func (p *formPage) Result() any {
	if !p.dialog.Submitted() {
		return nil
	}
	return p.dialog.FormValues()
}

func (p *formPage) KeyMap() help.KeyMap {
	return keyMaps{widget: formKeys{}, extra: []key.Binding{p.restart}}
}

func (p *formPage) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && p.Done() {
		if key.Matches(keyMsg, p.restart) {
			p.dialog = p.build()
		}
		return nil
	}
	var cmd tea.Cmd
	p.dialog, cmd = p.dialog.Update(msg)
	return cmd
}

func (p *formPage) View() string {
	switch {
	case p.dialog.Submitted():
		values := p.dialog.FormValues()
		lines := []string{styles.FormTitleStyle.Render("Submitted"), ""}
		for _, name := range []string{"name", "favourite", "trip", "notes"} {
			lines = append(lines, valueLine(name, formatValue(values[name])))
		}
		lines = append(lines, "", styles.TextMutedStyle.Render("r: restart"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	case p.dialog.Cancelled():
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.TextMutedStyle.Render("Cancelled."),
			"",
			styles.TextMutedStyle.Render("r: restart"),
		)
	}
	return p.dialog.View()
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case daterange.Range:
		if v.IsEmpty() {
			return ""
		}
		return v.String()
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

// formKeys documents the dialog navigation for the help overlay.
type formKeys struct{}

func (formKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "date panel")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k formKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type collapsePage struct {
	c *collapse.Model
}

func newCollapsePage(e env) *collapsePage {
	cfg := e.cfg.Collapse
	items := make([]collapse.Item, len(cfg.Items))
	for i, it := range cfg.Items {
		items[i] = collapse.Item{Name: it.Name, Title: it.Title, Content: it.Content}
	}

	opts := collapse.Options{Accordion: cfg.Accordion, Active: cfg.Active}
	if cfg.Markdown {
		md := newMarkdown(max(e.width-6, 40), *e.logger(PageCollapse.String()))
		opts.Content = func(it collapse.Item) string {
			return styles.CollapseContentStyle.Render(md.Render(it.Content))
		}
	}
	return &collapsePage{c: collapse.New(items, opts)}
}

func (p *collapsePage) Title() string       { return "Collapse" }
func (p *collapsePage) Focus() tea.Cmd      { return p.c.Focus() }
func (p *collapsePage) Blur()               { p.c.Blur() }
func (p *collapsePage) Done() bool          { return false }
func (p *collapsePage) Result() any         { return p.c.Active() }
func (p *collapsePage) KeyMap() help.KeyMap { return p.c.KeyMap() }
func (p *collapsePage) View() string        { return p.c.View() }

func (p *collapsePage) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.c, cmd = p.c.Update(msg)
	return cmd
}

// carouselPage autoplays only while it is the active page.
type carouselPage struct {
	c *carousel.Model
}

func newCarouselPage(e env) *carouselPage {
	cfg := e.cfg.Carousel
	items := make([]carousel.Item, len(cfg.Items))
	for i, it := range cfg.Items {
		items[i] = carousel.Item{Title: it.Title, Body: it.Body}
	}

	c := carousel.New(items, carousel.Options{
		Loop:     cfg.Loop == nil || *cfg.Loop,
		Interval: cfg.Interval,
		Width:    min(max(e.width-8, 40), 72),
	})
	c.Pause()
	return &carouselPage{c: c}
}

func (p *carouselPage) Title() string       { return "Carousel" }
func (p *carouselPage) Focus() tea.Cmd      { return p.c.Resume() }
func (p *carouselPage) Blur()               { p.c.Pause() }
func (p *carouselPage) Done() bool          { return false }
func (p *carouselPage) Result() any         { return p.c.Index() }
func (p *carouselPage) KeyMap() help.KeyMap { return p.c.KeyMap() }
func (p *carouselPage) View() string        { return p.c.View() }

func (p *carouselPage) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.c, cmd = p.c.Update(msg)
	return cmd
}
