package daterange

import (
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Controller.
type Options struct {
	Type          PickerType
	SelectionMode Granularity
	SplitPanels   bool
	UpToNow       bool
	ShortcutClose bool
	StartDate     time.Time
	Shortcuts     []Shortcut
	DisabledDate  DisabledFunc

	// Now is the clock used for "up to now" and default anchors.
	Now    func() time.Time
	Logger *zerolog.Logger
}

// DefaultOptions returns the options of a plain date range picker.
func DefaultOptions() Options {
	return Options{
		Type:          TypeDateRange,
		SelectionMode: GranularityDate,
		SplitPanels:   true,
	}
}

func (o Options) normalize() Options {
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	if o.Now == nil {
		o.Now = time.Now
	}

	if o.Type == "" {
		o.Type = TypeDateRange
	} else if !o.Type.IsValid() {
		o.Logger.Warn().Str("type", string(o.Type)).Msg("type property is not valid, using daterange")
		o.Type = TypeDateRange
	}

	if o.SelectionMode == "" {
		o.SelectionMode = GranularityDate
	} else if !o.SelectionMode.IsValid() {
		o.Logger.Warn().Str("selection_mode", string(o.SelectionMode)).Msg("selectionMode property is not valid, using date")
		o.SelectionMode = GranularityDate
	}

	return o
}

// Controller is the range selection state machine of a two-panel picker.
type Controller struct {
	opts Options
	log  zerolog.Logger
	nav  *Navigator

	view   Granularity
	tables [2]Table

	state RangeState
	phase Phase
	dates Range
	hover time.Time

	selectedShortcut int

	resetGen     ResetToken
	resetPending bool

	listeners []Listener
}

// New creates a controller bound to value.
func New(value Range, opts Options) *Controller {
	opts = opts.normalize()

	c := &Controller{
		opts:             opts,
		log:              *opts.Logger,
		view:             opts.SelectionMode,
		selectedShortcut: -1,
	}
	c.tables = [2]Table{tableFor(c.view), tableFor(c.view)}

	if value.From.IsZero() && !value.To.IsZero() {
		value = Range{From: value.To}
	}
	value = value.Sorted()
	c.dates = value

	switch {
	case value.IsComplete():
		c.state = RangeState{From: value.From, To: value.To}
		c.phase = PhaseCommitted
	case !value.From.IsZero():
		c.state = RangeState{From: value.From, Selecting: true}
		c.phase = PhasePendingSecond
	default:
		c.phase = PhaseIdle
	}

	left := opts.StartDate
	if left.IsZero() {
		left = value.From
	}
	if left.IsZero() {
		left = opts.Now()
	}
	c.nav = NewNavigator(left, opts.SplitPanels)

	return c
}

// Subscribe registers l for every subsequent event.
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Controller) emit(e Event) {
	c.log.Debug().Str("event", e.EventName()).Msg("emit")
	for _, l := range c.listeners {
		l(e)
	}
}

func (c *Controller) Options() Options             { return c.opts }
func (c *Controller) Phase() Phase                 { return c.phase }
func (c *Controller) State() RangeState            { return c.state }
func (c *Controller) Value() Range                 { return c.dates }
func (c *Controller) View() Granularity            { return c.view }
func (c *Controller) Table(p Panel) Table          { return c.tables[p] }
func (c *Controller) Anchor(p Panel) time.Time     { return c.nav.Anchor(p) }
func (c *Controller) Shortcuts() []Shortcut        { return c.opts.Shortcuts }
func (c *Controller) SelectedShortcut() int        { return c.selectedShortcut }
func (c *Controller) IsDisabled(t time.Time) bool  { return c.opts.DisabledDate != nil && c.opts.DisabledDate(t) }
func (c *Controller) PreSelecting(p Panel) bool    { return c.tables[p] != tableFor(c.view) }
func (c *Controller) HoverDate() time.Time         { return c.hover }
func (c *Controller) ShowUpToNow() bool            { return c.opts.UpToNow }
func (c *Controller) ResetPending() bool           { return c.resetPending }

// UpToNowEnabled reports whether the later endpoint may be "now".
//
// Eligibility is evaluated against the clock on every call, not frozen at
// the first pick: a first endpoint in the future becomes eligible once the
// clock passes it.
func (c *Controller) UpToNowEnabled() bool {
	if !c.opts.UpToNow {
		return false
	}

	from := c.state.From
	switch {
	case c.view == GranularityTime:
		from = c.dates.From
	case !c.state.Selecting:
		return false
	}

	return !from.IsZero() && from.Before(c.opts.Now())
}

// Pick handles a cell pick on panel p. Drill-down grids only move the
// panel; the active grid feeds the range state machine.
func (c *Controller) Pick(p Panel, t time.Time) {
	if c.PreSelecting(p) {
		c.PreSelect(p, t)
		return
	}
	c.RangePick(t, KindDate)
}

// RangePick feeds t into the range state machine.
func (c *Controller) RangePick(t time.Time, kind string) {
	if t.IsZero() {
		return
	}
	if kind != KindUpToNow && c.IsDisabled(t) {
		c.log.Debug().Time("date", t).Msg("ignoring pick of disabled date")
		return
	}
	if c.view == GranularityTime {
		c.log.Debug().Msg("range pick ignored in time view, use PickTime")
		return
	}

	if !c.state.Selecting {
		c.emit(PickFirstEvent{Value: t, View: c.view})
		c.state = RangeState{From: t, Selecting: true}
		c.hover = time.Time{}
		c.phase = PhasePendingSecond
		return
	}

	lo, hi := c.state.From, t
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	if kind == KindUpToNow {
		hi = c.opts.Now()
	} else {
		hi = endOfDay(hi)
	}

	c.commit(Range{From: lo, To: hi}, kind, nil)
}

// PickUpToNow commits the pending range with the current instant as its
// later endpoint. It reports whether anything happened.
func (c *Controller) PickUpToNow() bool {
	if !c.UpToNowEnabled() {
		return false
	}

	if c.view == GranularityTime {
		c.commit(Range{From: c.dates.From, To: c.opts.Now()}, KindUpToNow, nil)
		return true
	}

	c.RangePick(c.opts.Now(), KindUpToNow)
	return true
}

// PickTime replaces the value directly. It is the pick path of the time view.
func (c *Controller) PickTime(r Range) {
	c.commit(r.Sorted(), KindDate, nil)
}

func (c *Controller) commit(r Range, kind string, s *Shortcut) {
	c.dates = r
	c.state = RangeState{From: r.From, To: r.To}
	c.hover = time.Time{}
	c.phase = PhaseCommitted
	c.emit(PickEvent{Value: r, Visible: false, Kind: kind, Shortcut: s})
}

// Hover records the date under the cursor while the second endpoint is
// pending so the tentative range can be highlighted.
func (c *Controller) Hover(t time.Time) {
	if !c.state.Selecting {
		return
	}
	c.hover = t
}

// InRange reports whether t lies within the committed or tentative range,
// compared by calendar day.
func (c *Controller) InRange(t time.Time) bool {
	from, to := c.state.From, c.state.To
	if c.state.Selecting {
		to = c.hover
	}
	if from.IsZero() || to.IsZero() {
		return false
	}
	if to.Before(from) {
		from, to = to, from
	}
	day := dayStart(t)
	return !day.Before(dayStart(from)) && !day.After(dayStart(to))
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// PreSelect handles a pick in a year or month drill-down grid: the panel
// jumps to t and its grid moves one level down. The range state is not
// touched.
func (c *Controller) PreSelect(p Panel, t time.Time) {
	c.nav.SetAnchor(p, t)

	if c.tables[p] == TableYear {
		c.tables[p] = TableMonth
	} else {
		c.tables[p] = tableFor(c.view)
	}

	if c.nav.Split() {
		return
	}

	other := p.Other()
	c.nav.SetAnchor(other, t)
	delta := 1
	if other == Left {
		delta = -1
	}
	c.nav.Shift(other, UnitMonth, delta)
}

// ShowYearPicker switches panel p to the year grid.
func (c *Controller) ShowYearPicker(p Panel) { c.tables[p] = TableYear }

// ShowMonthPicker switches panel p to the month grid.
func (c *Controller) ShowMonthPicker(p Panel) { c.tables[p] = TableMonth }

// PrevYear moves panel p back a year, or a decade in the year view.
func (c *Controller) PrevYear(p Panel) { c.nav.Advance(p, UnitYear, -c.yearStep()) }

// NextYear moves panel p forward a year, or a decade in the year view.
func (c *Controller) NextYear(p Panel) { c.nav.Advance(p, UnitYear, c.yearStep()) }

// PrevMonth moves panel p back a month.
func (c *Controller) PrevMonth(p Panel) { c.nav.Advance(p, UnitMonth, -1) }

// NextMonth moves panel p forward a month.
func (c *Controller) NextMonth(p Panel) { c.nav.Advance(p, UnitMonth, 1) }

// Advance exposes the navigator for arbitrary steps.
func (c *Controller) Advance(p Panel, u Unit, delta int) { c.nav.Advance(p, u, delta) }

func (c *Controller) yearStep() int {
	if c.view == GranularityYear {
		return 10
	}
	return 1
}

// SetView switches the active granularity. When both anchors fall in the
// same year (and month, for the date view) the right panel is moved once so
// the two panels stay distinct.
func (c *Controller) SetView(g Granularity) {
	if !g.IsValid() {
		c.log.Warn().Str("view", string(g)).Msg("unknown view ignored")
		return
	}

	c.view = g
	if g != GranularityTime {
		c.tables = [2]Table{tableFor(g), tableFor(g)}
	}

	left, right := c.nav.Anchor(Left), c.nav.Anchor(Right)
	sameYear := left.Year() == right.Year()

	switch {
	case g == GranularityDate && sameYear && left.Month() == right.Month():
		c.nav.Shift(Right, UnitMonth, 1)
	case g == GranularityMonth && sameYear:
		c.nav.Shift(Right, UnitYear, 1)
	case g == GranularityYear && sameYear:
		c.nav.Shift(Right, UnitYear, 10)
	}
}

// ToggleTime flips between the time view and the date view.
func (c *Controller) ToggleTime() {
	if c.view == GranularityTime {
		c.SetView(GranularityDate)
		return
	}
	c.SetView(GranularityTime)
}

// SetValue synchronises the controller with an externally bound value. It
// never emits and never enters PendingSecond.
func (c *Controller) SetValue(r Range) {
	if r.From.IsZero() && !r.To.IsZero() {
		r = Range{From: r.To}
	}
	r = r.Sorted()

	c.dates = r
	c.state = RangeState{From: r.From, To: r.To}
	c.hover = time.Time{}
	if r.IsComplete() {
		c.phase = PhaseCommitted
	} else {
		c.phase = PhaseIdle
	}

	left := c.opts.StartDate
	if left.IsZero() {
		left = r.From
	}
	if left.IsZero() {
		left = c.opts.Now()
	}
	c.nav.Reposition(left, r.To)
}

// Open prepares the picker for display. A reset still pending from the
// previous pick is applied now and its timer invalidated.
func (c *Controller) Open() {
	if c.resetPending {
		c.applyReset()
	}
	c.resetGen++
	c.tables = [2]Table{tableFor(c.view), tableFor(c.view)}
}

// Confirm emits pick-success and schedules the view reset.
func (c *Controller) Confirm() ResetToken {
	c.emit(PickSuccessEvent{})
	return c.ScheduleReset()
}

// Clear drops the value, emits pick-clear and schedules the view reset.
func (c *Controller) Clear() ResetToken {
	c.dates = Range{}
	c.state = RangeState{}
	c.hover = time.Time{}
	c.phase = PhaseIdle
	c.selectedShortcut = -1
	c.emit(PickClearEvent{})
	return c.ScheduleReset()
}

// ScheduleReset arms a view reset and returns its token. Only the most
// recently issued token can be applied.
func (c *Controller) ScheduleReset() ResetToken {
	c.resetGen++
	c.resetPending = true
	return c.resetGen
}

// ApplyReset performs the reset armed by tok. Stale tokens are ignored.
func (c *Controller) ApplyReset(tok ResetToken) bool {
	if !c.resetPending || tok != c.resetGen {
		return false
	}
	c.applyReset()
	return true
}

func (c *Controller) applyReset() {
	c.resetPending = false
	c.SetView(c.opts.SelectionMode)
	if c.phase == PhaseCommitted {
		c.phase = PhaseIdle
	}
}
