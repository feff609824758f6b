package carousel

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tuikit/pkg/tuitest"
)

func frames(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Title: string(rune('A' + i))}
	}
	return items
}

func changeOf(t *testing.T, cmd tea.Cmd) IndexChangeMsg {
	t.Helper()
	require.NotNil(t, cmd)
	for _, msg := range tuitest.DrainWithin(cmd, 50*time.Millisecond) {
		if c, ok := msg.(IndexChangeMsg); ok {
			return c
		}
	}
	t.Fatal("no index change")
	return IndexChangeMsg{}
}

func TestCarousel_SetIndexWraps(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{in: 1, want: 1},
		{in: 3, want: 0},
		{in: -1, want: 2},
		{in: 7, want: 1},
	}
	for _, tt := range tests {
		m := New(frames(3), Options{})
		m.SetIndex(tt.in)
		assert.Equal(t, tt.want, m.Index(), "SetIndex(%d)", tt.in)
	}
}

func TestCarousel_IndexChange(t *testing.T) {
	m := New(frames(3), Options{})

	c := changeOf(t, m.Prev())
	assert.Equal(t, IndexChangeMsg{ID: m.ID(), Index: 2, Prev: 0}, c)

	assert.Nil(t, m.SetIndex(2), "no change, no message")
}

func TestCarousel_Autoplay(t *testing.T) {
	m := New(frames(3), Options{Loop: true, Interval: time.Second})
	require.NotNil(t, m.Init())

	_, cmd := m.Update(tickMsg{id: m.ID(), gen: m.gen})
	assert.Equal(t, 1, m.Index())
	assert.NotNil(t, cmd)

	_, cmd = m.Update(tickMsg{id: m.ID(), gen: m.gen - 1})
	assert.Nil(t, cmd, "superseded timers are ignored")
	assert.Equal(t, 1, m.Index())
}

func TestCarousel_NoLoopNoTimer(t *testing.T) {
	m := New(frames(3), Options{})
	assert.Nil(t, m.Init())

	single := New(frames(1), Options{Loop: true})
	assert.Nil(t, single.Init())
}

func TestCarousel_PauseResume(t *testing.T) {
	m := New(frames(3), Options{Loop: true})
	m.Init()
	gen := m.gen

	m.Pause()
	assert.True(t, m.Paused())
	_, cmd := m.Update(tickMsg{id: m.ID(), gen: gen})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Index())

	assert.NotNil(t, m.Resume())
	assert.False(t, m.Paused())

	m.Update(tuitest.KeyPress('p'))
	assert.True(t, m.Paused())
	assert.Contains(t, tuitest.StripANSI(m.View()), "paused")
}

func TestCarousel_KeysRestartTimer(t *testing.T) {
	m := New(frames(3), Options{Loop: true})
	m.Init()
	before := m.gen

	m.Update(tuitest.KeyRight())
	assert.Equal(t, 1, m.Index())
	assert.Greater(t, m.gen, before)

	m.Update(tuitest.KeyLeft())
	m.Update(tuitest.KeyLeft())
	assert.Equal(t, 2, m.Index())
}

func TestCarousel_View(t *testing.T) {
	m := New(frames(3), Options{})
	m.Next()
	view := tuitest.StripANSI(m.View())

	assert.Contains(t, view, "B")
	assert.Contains(t, view, "○ ● ○")
}
