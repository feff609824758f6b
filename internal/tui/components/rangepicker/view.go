package rangepicker

import (
	"fmt"
	"strings"
	"time"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/tuikit/internal/core/daterange"
	"github.com/colonyops/tuikit/internal/core/styles"
)

const (
	gridRows    = 6
	monthCols   = 3
	displayDate = "2006-01-02"
	displayTime = "2006-01-02 15:04"
)

var weekdays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// View renders the picker.
func (m *Model) View() string {
	var body string
	if m.ctrl.View() == daterange.GranularityTime {
		body = m.renderTime()
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderPanel(daterange.Left),
			m.renderPanel(daterange.Right),
		)
	}

	if len(m.ctrl.Shortcuts()) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderShortcuts(), body)
	}

	parts := []string{body, m.renderFooter()}
	if m.focused {
		parts = append(parts, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderPanel(p daterange.Panel) string {
	var grid string
	switch m.ctrl.Table(p) {
	case daterange.TableYear:
		grid = m.renderYears(p)
	case daterange.TableMonth:
		grid = m.renderMonths(p)
	default:
		grid = m.renderDays(p)
	}
	return styles.CalendarPanelStyle.Render(grid)
}

func (m *Model) header(p daterange.Panel, title string) string {
	prev := styles.IconPrevFast + " " + styles.IconPrev
	next := styles.IconNext + " " + styles.IconNextFast
	style := styles.CalendarHeaderStyle
	if m.focused && m.area == areaGrid && m.panel == p {
		style = style.Foreground(styles.ColorPrimary)
	}
	return styles.TextMutedStyle.Render(prev) + " " + style.Render(fmt.Sprintf("%-14s", title)) + " " + styles.TextMutedStyle.Render(next)
}

func (m *Model) cursorOn(p daterange.Panel) bool {
	return m.focused && m.area == areaGrid && m.panel == p
}

func (m *Model) renderDays(p daterange.Panel) string {
	anchor := m.ctrl.Anchor(p)
	start := daterange.MonthStart(anchor)
	first := start.AddDate(0, 0, -int(start.Weekday()))
	now := m.ctrl.Options().Now()

	lines := []string{
		m.header(p, start.Format("January 2006")),
		styles.CalendarWeekdayStyle.Render(strings.Join(weekdays, " ")),
	}

	for row := range gridRows {
		cells := make([]string, 7)
		for col := range 7 {
			d := first.AddDate(0, 0, row*7+col)
			s := m.dayStyle(d, d.Month() == start.Month(), now)
			if m.cursorOn(p) && sameDay(d, m.cursor) {
				s = s.Reverse(true)
			}
			cells[col] = s.Render(fmt.Sprintf("%2d", d.Day()))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) dayStyle(d time.Time, inMonth bool, now time.Time) lipgloss.Style {
	state := m.ctrl.State()
	switch {
	case !inMonth:
		return styles.CalendarOtherMonthStyle
	case m.ctrl.IsDisabled(d):
		return styles.CalendarDisabledStyle
	case sameDay(d, state.From) || sameDay(d, state.To) || (state.Selecting && sameDay(d, m.ctrl.HoverDate())):
		return styles.CalendarEndpointStyle
	case m.ctrl.InRange(d):
		return styles.CalendarInRangeStyle
	case sameDay(d, now):
		return styles.CalendarTodayStyle
	default:
		return styles.CalendarCellStyle
	}
}

func (m *Model) renderMonths(p daterange.Panel) string {
	anchor := m.ctrl.Anchor(p)
	lines := []string{m.header(p, anchor.Format("2006")), ""}

	for row := range 12 / monthCols {
		cells := make([]string, monthCols)
		for col := range monthCols {
			i := row*monthCols + col
			t := time.Date(anchor.Year(), time.Month(i+1), 1, 0, 0, 0, 0, anchor.Location())
			cells[col] = m.cellStyle(p, i, m.monthSelected(t)).Render(fmt.Sprintf(" %s ", t.Format("Jan")))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderYears(p daterange.Panel) string {
	anchor := m.ctrl.Anchor(p)
	start := decadeStart(anchor.Year())
	lines := []string{m.header(p, fmt.Sprintf("%d-%d", start, start+9)), ""}

	for row := 0; row*monthCols < 10; row++ {
		var cells []string
		for col := range monthCols {
			i := row*monthCols + col
			if i >= 10 {
				break
			}
			year := start + i
			cells = append(cells, m.cellStyle(p, i, m.yearSelected(year)).Render(fmt.Sprintf(" %d", year)))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) cellStyle(p daterange.Panel, i int, selected bool) lipgloss.Style {
	s := styles.CalendarCellStyle
	if selected {
		s = styles.CalendarEndpointStyle
	}
	if m.cursorOn(p) && i == m.cell {
		s = s.Reverse(true)
	}
	return s
}

func (m *Model) monthSelected(t time.Time) bool {
	st := m.ctrl.State()
	return (!st.From.IsZero() && monthIndex(st.From) == monthIndex(t)) ||
		(!st.To.IsZero() && monthIndex(st.To) == monthIndex(t))
}

func (m *Model) yearSelected(year int) bool {
	st := m.ctrl.State()
	return (!st.From.IsZero() && st.From.Year() == year) || (!st.To.IsZero() && st.To.Year() == year)
}

func (m *Model) renderTime() string {
	row := func(p daterange.Panel, label string, t time.Time) string {
		s := styles.TextForegroundStyle
		if m.focused && m.panel == p {
			s = styles.TextPrimaryBoldStyle
		}
		return fmt.Sprintf("%s %s", styles.TextMutedStyle.Render(label), s.Render(t.Format(displayTime)))
	}
	return styles.CalendarPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		row(daterange.Left, "from", m.draft.From),
		row(daterange.Right, "to  ", m.draft.To),
	))
}

func (m *Model) renderShortcuts() string {
	selected := m.ctrl.SelectedShortcut()
	lines := make([]string, 0, len(m.ctrl.Shortcuts()))
	for i, s := range m.ctrl.Shortcuts() {
		style := styles.ShortcutStyle
		if i == selected {
			style = styles.ShortcutSelectedStyle
		}
		text := s.Text
		if m.focused && m.area == areaShortcuts && i == m.shortcut {
			text = styles.IconChevronRt + " " + text
		} else {
			text = "  " + text
		}
		lines = append(lines, style.Render(text))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	layout := displayDate
	if t := m.ctrl.Options().Type; t == daterange.TypeDateTimeRange || t == daterange.TypeDateTime {
		layout = displayTime
	}

	st := m.ctrl.State()
	format := func(t time.Time) string {
		if t.IsZero() {
			return styles.TextMutedStyle.Render("-")
		}
		return styles.TextForegroundStyle.Render(t.Format(layout))
	}

	to := st.To
	if st.Selecting {
		to = m.ctrl.HoverDate()
	}
	line := styles.IconCalendar + " " + format(st.From) + " " + styles.IconRangeArrow + " " + format(to)

	if m.ctrl.UpToNowEnabled() {
		line += "  " + styles.TextPrimaryStyle.Render("n: up to now")
	}
	return line
}

func sameDay(a, b time.Time) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
