package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/tuikit/internal/core/styles"
)

const (
	eventLogMaxHeight = 30
	eventLogMargin    = 4
	eventLogChrome    = 6 // title + divider + help + spacing
	eventLogMinWidth  = 50

	// DefaultEventLogSize is the number of entries kept when no size is given.
	DefaultEventLogSize = 200
)

// EventEntry is one widget event as shown in the log.
type EventEntry struct {
	At     time.Time
	Source string
	Name   string
	Detail string
	Level  zerolog.Level
}

// EventLog is a scrollable dialog over the most recent widget events,
// newest last.
type EventLog struct {
	title    string
	helpText string
	size     int
	entries  []EventEntry
	width    int
	height   int
	viewport viewport.Model
}

// NewEventLog creates an empty event log keeping at most size entries.
func NewEventLog(title, helpText string, size int) *EventLog {
	if size <= 0 {
		size = DefaultEventLogSize
	}
	l := &EventLog{
		title:    title,
		helpText: helpText,
		size:     size,
		viewport: viewport.New(),
	}
	l.SetSize(80, 24)
	return l
}

// Entries returns the kept entries, oldest first.
func (l *EventLog) Entries() []EventEntry { return l.entries }

// Len returns the number of kept entries.
func (l *EventLog) Len() int { return len(l.entries) }

// Append records an entry, dropping the oldest past the size limit, and
// keeps the view pinned to the bottom.
func (l *EventLog) Append(e EventEntry) {
	l.entries = append(l.entries, e)
	if over := len(l.entries) - l.size; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
	l.refresh()
	l.viewport.GotoBottom()
}

// Clear drops every entry.
func (l *EventLog) Clear() {
	l.entries = nil
	l.refresh()
}

// SetSize fits the dialog to a terminal of the given size.
func (l *EventLog) SetSize(width, height int) {
	l.width = min(max(int(float64(width)*0.65), eventLogMinWidth), width-eventLogMargin)
	l.height = min(height-eventLogMargin, eventLogMaxHeight)
	l.viewport.SetWidth(max(l.width-4, 1))
	l.viewport.SetHeight(max(l.height-eventLogChrome, 1))
	l.refresh()
}

// ScrollUp scrolls the log up one line.
func (l *EventLog) ScrollUp() { l.viewport.ScrollUp(1) }

// ScrollDown scrolls the log down one line.
func (l *EventLog) ScrollDown() { l.viewport.ScrollDown(1) }

func (l *EventLog) refresh() {
	if len(l.entries) == 0 {
		l.viewport.SetContent(styles.TextMutedStyle.Render("no events yet"))
		return
	}
	lines := make([]string, len(l.entries))
	for i, e := range l.entries {
		lines[i] = formatEventEntry(e)
	}
	l.viewport.SetContent(strings.Join(lines, "\n"))
}

func formatEventEntry(e EventEntry) string {
	const sourceWidth = 10

	stamp := styles.TextMutedStyle.Render(e.At.Format("15:04:05.000"))
	source := e.Source + Pad(sourceWidth-lipgloss.Width(e.Source))
	line := fmt.Sprintf("%s %s %s %s",
		stamp,
		levelIcon(e.Level),
		styles.TextPrimaryStyle.Render(source),
		styles.TextForegroundBoldStyle.Render(e.Name),
	)
	if e.Detail != "" {
		line += "  " + styles.TextMutedStyle.Render(e.Detail)
	}
	return line
}

func levelIcon(level zerolog.Level) string {
	switch level {
	case zerolog.WarnLevel:
		return styles.TextWarningStyle.Render("●")
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return styles.TextErrorStyle.Render("✘")
	default:
		return styles.TextSuccessStyle.Render("✔")
	}
}

// Overlay renders the log centered over background.
func (l *EventLog) Overlay(background string, width, height int) string {
	scrollInfo := ""
	if l.viewport.TotalLineCount() > l.viewport.VisibleLineCount() {
		scrollInfo = styles.TextMutedStyle.Render(
			fmt.Sprintf(" (%.0f%%)", l.viewport.ScrollPercent()*100),
		)
	}

	divider := styles.TextSurfaceStyle.Render(strings.Repeat("─", max(l.width-6, 1)))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render(fmt.Sprintf("%s [%d]%s", l.title, len(l.entries), scrollInfo)),
		divider,
		l.viewport.View(),
		styles.ModalHelpStyle.Render(l.helpText),
	)

	modal := styles.ModalStyle.
		Width(l.width).
		Height(l.height).
		Render(content)
	return overlay(background, modal, width, height)
}
