package daterange

import (
	"sort"
	"time"
)

// Shortcut is a named range applied in one step. Func, when set, is
// evaluated at pick time and takes precedence over Value.
type Shortcut struct {
	Text    string
	Value   Range
	Func    func() Range
	OnClick func(s Shortcut, index int)
}

// Resolve returns the shortcut's range. ok is false when the shortcut has
// no usable value.
func (s Shortcut) Resolve() (r Range, ok bool) {
	if s.Func != nil {
		r = s.Func()
	} else {
		r = s.Value
	}
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// ApplyShortcut commits shortcut i directly, skipping PendingSecond. It
// reports whether the shortcut was applied.
func (c *Controller) ApplyShortcut(i int) bool {
	if i < 0 || i >= len(c.opts.Shortcuts) {
		return false
	}

	s := c.opts.Shortcuts[i]
	r, ok := s.Resolve()
	if !ok {
		c.log.Debug().Str("shortcut", s.Text).Msg("shortcut has no value")
		return false
	}
	if s.OnClick != nil {
		s.OnClick(s, i)
	}

	c.selectedShortcut = i
	c.commit(r.Sorted(), KindShortcut, &s)

	if c.opts.ShortcutClose {
		c.emit(PickSuccessEvent{})
	}
	return true
}

// presets maps built-in shortcut names to range builders.
var presets = map[string]struct {
	text  string
	build func(now time.Time) Range
}{
	"today": {"Today", func(now time.Time) Range {
		return Range{From: dayStart(now), To: endOfDay(now)}
	}},
	"yesterday": {"Yesterday", func(now time.Time) Range {
		y := now.AddDate(0, 0, -1)
		return Range{From: dayStart(y), To: endOfDay(y)}
	}},
	"last-7-days": {"Last 7 days", func(now time.Time) Range {
		return Range{From: dayStart(now.AddDate(0, 0, -6)), To: endOfDay(now)}
	}},
	"last-30-days": {"Last 30 days", func(now time.Time) Range {
		return Range{From: dayStart(now.AddDate(0, 0, -29)), To: endOfDay(now)}
	}},
	"this-month": {"This month", func(now time.Time) Range {
		start := MonthStart(now)
		return Range{From: start, To: endOfDay(start.AddDate(0, 0, DaysIn(start)-1))}
	}},
	"last-month": {"Last month", func(now time.Time) Range {
		start := MonthStart(now).AddDate(0, -1, 0)
		return Range{From: start, To: endOfDay(start.AddDate(0, 0, DaysIn(start)-1))}
	}},
}

// PresetNames returns the sorted names accepted by Preset.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the built-in shortcut called name. The range is computed
// from now each time the shortcut fires.
func Preset(name string, now func() time.Time) (Shortcut, bool) {
	p, ok := presets[name]
	if !ok {
		return Shortcut{}, false
	}
	if now == nil {
		now = time.Now
	}
	return Shortcut{
		Text: p.text,
		Func: func() Range { return p.build(now()) },
	}, true
}
