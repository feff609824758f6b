package selectbox

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/tuikit/internal/core/styles"
)

type rowKind int

const (
	rowOption rowKind = iota
	rowGroup
	rowAll
	rowCreate
	rowNotice
)

type row[V comparable] struct {
	kind rowKind
	id   V
	text string
}

// refresh rebuilds the rows and the viewport content.
func (m *Model[V]) refresh() {
	m.rows = m.buildRows()

	content := m.renderRows()
	h := min(m.opts.Height, max(len(content), 1))
	m.list.SetHeight(h)
	m.offset = min(m.offset, max(len(content)-h, 0))

	if m.windowed() {
		end := min(m.offset+h, len(content))
		m.list.SetContent(strings.Join(content[m.offset:end], "\n"))
		m.list.SetYOffset(0)
		return
	}
	m.list.SetContent(strings.Join(content, "\n"))
	m.list.SetYOffset(m.offset)
}

func (m *Model[V]) windowed() bool {
	return m.opts.Window > 0 && len(m.rows) > m.opts.Window
}

func (m *Model[V]) buildRows() []row[V] {
	cfg := m.sel.Config()
	var rows []row[V]

	if search := m.sel.Search(); cfg.AllowCreate && search != "" && !m.hasLabel(search) {
		rows = append(rows, row[V]{kind: rowCreate, text: search})
	}

	if m.sel.OptionsEmpty() {
		return append(rows, row[V]{kind: rowNotice, text: "No data"})
	}
	if m.sel.SearchEmpty() {
		rows = append(rows, row[V]{kind: rowNotice, text: "No matching data"})
		if hint := m.sel.Suggest(m.sel.Search(), 1); len(hint) > 0 {
			rows = append(rows, row[V]{kind: rowNotice, text: fmt.Sprintf("did you mean %q?", hint[0])})
		}
		return rows
	}

	if cfg.Multiple && cfg.ShowAll {
		rows = append(rows, row[V]{kind: rowAll, id: cfg.AllOptionID, text: cfg.AllLabel})
	}

	labels := make(map[string]string)
	for _, g := range m.sel.Registry().Groups() {
		labels[g.Name] = g.Label
	}

	// Options arrive bucketed by group, so each heading is emitted once.
	headed := make(map[string]bool)
	for _, o := range m.sel.Options() {
		if !o.Visible() {
			continue
		}
		if label, ok := labels[o.Group]; ok && !headed[o.Group] {
			headed[o.Group] = true
			rows = append(rows, row[V]{kind: rowGroup, text: label})
		}
		rows = append(rows, row[V]{kind: rowOption, id: o.ID, text: o.Label()})
	}
	return rows
}

func (m *Model[V]) hasLabel(text string) bool {
	for _, o := range m.sel.Options() {
		if strings.EqualFold(o.Label(), text) {
			return true
		}
	}
	return false
}

func (m *Model[V]) renderRows() []string {
	lines := make([]string, len(m.rows))
	for i, r := range m.rows {
		lines[i] = m.renderRow(r)
	}
	return lines
}

func (m *Model[V]) renderRow(r row[V]) string {
	width := m.opts.Width - 2
	switch r.kind {
	case rowGroup:
		return styles.SelectGroupStyle.Render(r.text)
	case rowNotice:
		return styles.SelectEmptyStyle.Render(r.text)
	case rowCreate:
		return styles.SelectOptionStyle.Width(width).Render(fmt.Sprintf("+ %q", r.text))
	case rowAll:
		return m.optionStyle(r.id, false, m.sel.IsAll()).Width(width).Render(m.mark(m.sel.IsAll()) + r.text)
	}

	o, _ := m.sel.Registry().Get(r.id)
	selected := m.sel.IsSelected(r.id)
	return m.optionStyle(r.id, o.Disabled, selected).Width(width).Render(m.mark(selected) + r.text)
}

func (m *Model[V]) mark(selected bool) string {
	if selected {
		return styles.IconCheck + " "
	}
	return "  "
}

func (m *Model[V]) optionStyle(id V, disabled, selected bool) lipgloss.Style {
	switch {
	case disabled:
		return styles.SelectOptionDisabledStyle
	case m.sel.IsActive(id):
		if selected {
			return styles.SelectOptionActiveStyle.Inherit(styles.SelectOptionSelectedStyle)
		}
		return styles.SelectOptionActiveStyle
	case selected:
		return styles.SelectOptionStyle.Inherit(styles.SelectOptionSelectedStyle)
	default:
		return styles.SelectOptionStyle
	}
}

// View renders the trigger, the dropdown when open and the key help when
// focused.
func (m *Model[V]) View() string {
	parts := []string{m.renderTrigger()}
	if m.sel.IsOpen() {
		parts = append(parts, styles.SelectDropdownStyle.Width(m.opts.Width).Render(m.list.View()))
	}
	if m.focused {
		parts = append(parts, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model[V]) renderTrigger() string {
	cfg := m.sel.Config()
	open := m.sel.IsOpen()

	var content string
	switch {
	case cfg.Multiple:
		var tags []string
		for _, e := range m.sel.Selected() {
			tags = append(tags, styles.SelectTagStyle.Render(m.sel.Label(e.Value)+" "+styles.IconClose))
		}
		text := m.input.View()
		if !open && len(tags) > 0 {
			text = ""
		}
		content = strings.Join(tags, "") + text
	case open && cfg.Filterable:
		content = m.input.View()
	default:
		if labels := m.sel.Labels(); len(labels) > 0 {
			content = styles.TextForegroundStyle.Render(labels[0])
		} else {
			content = styles.TextMutedStyle.Render(m.opts.Placeholder)
		}
	}

	chevron := styles.IconChevronDn
	if open {
		chevron = styles.IconChevronUp
	}

	style := styles.SelectTriggerStyle
	if m.focused {
		style = styles.SelectTriggerFocusedStyle
	}
	inner := m.opts.Width - 4
	pad := max(inner-lipgloss.Width(content)-lipgloss.Width(chevron), 1)
	return style.Render(content + strings.Repeat(" ", pad) + styles.TextMutedStyle.Render(chevron))
}
