package components

import (
	"fmt"
	"testing"
	"time"

	"charm.land/bubbles/v2/key"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/tuikit/pkg/tuitest"
)

type testKeys struct {
	Up, Down, Hidden key.Binding
}

func (k testKeys) ShortHelp() []key.Binding { return []key.Binding{k.Up} }
func (k testKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Hidden}}
}

func TestHelpFromKeyMap(t *testing.T) {
	km := testKeys{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "move up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "move down")),
		Hidden: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "secret"), key.WithDisabled()),
	}

	out := tuitest.StripANSI(HelpFromKeyMap("Keys", km, "Navigation", "Other").Overlay("bg", 80, 24))
	assert.Contains(t, out, "Keys")
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "move down")
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "Other", "a section with only disabled bindings is skipped")
}

func TestEventLog(t *testing.T) {
	at := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("renders entries and levels", func(t *testing.T) {
		l := NewEventLog("Events", "[j/k] scroll  [esc] close", 0)
		l.SetSize(120, 40)
		l.Append(EventEntry{At: at, Source: "select", Name: "change", Detail: "[1]"})
		l.Append(EventEntry{At: at, Source: "daterange", Name: "pick-clear", Level: zerolog.WarnLevel})
		l.Append(EventEntry{At: at, Source: "form", Name: "invalid", Level: zerolog.ErrorLevel})

		out := l.Overlay("bg", 120, 40)
		assert.Contains(t, out, "Events")
		assert.Contains(t, out, "12:00:00.000")
		assert.Contains(t, out, "change")
		assert.Contains(t, out, "[1]")
		assert.Contains(t, out, "✔")
		assert.Contains(t, out, "●")
		assert.Contains(t, out, "✘")
	})

	t.Run("keeps only the newest entries", func(t *testing.T) {
		l := NewEventLog("Events", "", 3)
		for i := range 5 {
			l.Append(EventEntry{At: at, Source: "carousel", Name: fmt.Sprintf("e%d", i)})
		}
		assert.Equal(t, 3, l.Len())
		assert.Equal(t, "e2", l.Entries()[0].Name)

		l.Clear()
		assert.Zero(t, l.Len())
		assert.Contains(t, tuitest.StripANSI(l.Overlay("bg", 80, 24)), "no events yet")
	})

	t.Run("scrolls", func(t *testing.T) {
		l := NewEventLog("Events", "help", 0)
		l.SetSize(70, 18)
		for range 50 {
			l.Append(EventEntry{At: at, Source: "select", Name: "change"})
		}

		before := l.Overlay("bg", 70, 18)
		l.ScrollUp()
		after := l.Overlay("bg", 70, 18)
		assert.NotEqual(t, before, after)
	})
}
