package daterange

import "time"

// Navigator owns the displayed anchors of the two panels.
//
// In split mode the panels move independently but the left anchor is kept
// strictly before the right one. In linked mode the right panel follows the
// left panel at a fixed offset.
type Navigator struct {
	anchors [2]time.Time
	split   bool
}

// NewNavigator places the left panel at left and the right panel on the
// first day of the following month.
func NewNavigator(left time.Time, split bool) *Navigator {
	return &Navigator{
		anchors: [2]time.Time{left, nextMonthStart(left)},
		split:   split,
	}
}

// Anchor returns the displayed date of panel p.
func (n *Navigator) Anchor(p Panel) time.Time { return n.anchors[p] }

// SetAnchor replaces the displayed date of panel p without touching the other panel.
func (n *Navigator) SetAnchor(p Panel, t time.Time) { n.anchors[p] = t }

// Split reports whether the panels navigate independently.
func (n *Navigator) Split() bool { return n.split }

// Shift moves panel p by delta units and leaves the other panel alone.
func (n *Navigator) Shift(p Panel, u Unit, delta int) {
	n.anchors[p] = shift(n.anchors[p], u, delta)
}

// Advance moves panel p by delta units and then repairs the other panel.
//
// Split mode applies at most one corrective step of one unit; it does not
// loop until the anchors are ordered again. Linked mode moves the other panel
// by the same delta.
func (n *Navigator) Advance(p Panel, u Unit, delta int) {
	n.Shift(p, u, delta)

	if !n.split {
		n.Shift(p.Other(), u, delta)
		return
	}

	left, right := n.anchors[Left], n.anchors[Right]
	switch {
	case p == Left && !left.Before(right):
		n.Shift(Right, u, 1)
	case p == Right && !right.After(left):
		n.Shift(Left, u, -1)
	}
}

// Reposition places the left panel at left and derives the right panel. In
// split mode the right panel is kept at or after hint when hint is later.
func (n *Navigator) Reposition(left, hint time.Time) {
	right := nextMonthStart(left)
	if n.split && hint.After(right) {
		right = hint
	}
	n.anchors = [2]time.Time{left, right}
}

// shift moves t by delta months (or years) keeping the day of month where
// possible and clamping it to the last day of the target month otherwise.
func shift(t time.Time, u Unit, delta int) time.Time {
	months := delta
	if u == UnitYear {
		months = delta * 12
	}

	y, m, d := t.Date()
	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	d = min(d, daysIn(target.Year(), target.Month(), t.Location()))

	return time.Date(target.Year(), target.Month(), d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func nextMonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	return daysIn(t.Year(), t.Month(), t.Location())
}
