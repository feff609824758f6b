package gallery

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/tuikit/internal/core/choice"
	"github.com/colonyops/tuikit/internal/core/daterange"
	"github.com/colonyops/tuikit/internal/tui/components"
	"github.com/colonyops/tuikit/internal/tui/components/carousel"
	"github.com/colonyops/tuikit/internal/tui/components/collapse"
	"github.com/colonyops/tuikit/internal/tui/components/rangepicker"
	"github.com/colonyops/tuikit/internal/tui/components/selectbox"
)

// eventEntries translates widget output messages into event log entries.
// It returns nil for every other message.
func eventEntries(msg tea.Msg, at time.Time) []components.EventEntry {
	switch msg := msg.(type) {
	case rangepicker.EventsMsg:
		src := fmt.Sprintf("daterange#%d", msg.ID)
		out := make([]components.EventEntry, len(msg.Events))
		for i, e := range msg.Events {
			out[i] = components.EventEntry{
				At:     at,
				Source: src,
				Name:   e.EventName(),
				Detail: dateEventDetail(e),
				Level:  dateEventLevel(e),
			}
		}
		return out
	case selectbox.EventsMsg:
		src := fmt.Sprintf("select#%d", msg.ID)
		out := make([]components.EventEntry, len(msg.Events))
		for i, e := range msg.Events {
			out[i] = components.EventEntry{
				At:     at,
				Source: src,
				Name:   e.EventName(),
				Detail: choiceEventDetail(e),
				Level:  zerolog.InfoLevel,
			}
		}
		return out
	case collapse.ChangeMsg:
		return []components.EventEntry{{
			At:     at,
			Source: fmt.Sprintf("collapse#%d", msg.ID),
			Name:   "change",
			Detail: "[" + strings.Join(msg.Active, ", ") + "]",
			Level:  zerolog.InfoLevel,
		}}
	case carousel.IndexChangeMsg:
		return []components.EventEntry{{
			At:     at,
			Source: fmt.Sprintf("carousel#%d", msg.ID),
			Name:   "change",
			Detail: fmt.Sprintf("%d -> %d", msg.Prev, msg.Index),
			Level:  zerolog.InfoLevel,
		}}
	}
	return nil
}

func dateEventDetail(e daterange.Event) string {
	switch e := e.(type) {
	case daterange.PickEvent:
		detail := e.Value.String()
		if e.Kind != "" {
			detail += " " + e.Kind
		}
		if e.Shortcut != nil {
			detail += fmt.Sprintf(" (%s)", e.Shortcut.Text)
		}
		return detail
	case daterange.PickFirstEvent:
		return e.Value.Format(time.DateTime)
	}
	return ""
}

func dateEventLevel(e daterange.Event) zerolog.Level {
	if _, ok := e.(daterange.PickClearEvent); ok {
		return zerolog.WarnLevel
	}
	return zerolog.InfoLevel
}

// choiceEventDetail covers the string-valued events the gallery hosts.
func choiceEventDetail(e choice.Event) string {
	switch e := e.(type) {
	case choice.ChangeEvent[string]:
		return fmt.Sprintf("%q -> %q", e.Old, e.Value)
	case choice.SelectEvent[string]:
		return e.ID
	case choice.DeselectEvent[string]:
		return e.ID
	case choice.TagRemoveEvent[string]:
		return e.ID
	case choice.SearchChangeEvent:
		return fmt.Sprintf("%q", e.Term)
	case choice.ToggleEvent:
		if e.Open {
			return "open"
		}
		return "closed"
	}
	return ""
}
