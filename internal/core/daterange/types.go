// Package daterange implements the state machine behind the two-panel date
// range picker: range selection, panel navigation and shortcut presets.
//
// The package has no rendering or terminal dependencies. Widgets drive it
// through method calls and observe it through [Listener] callbacks.
package daterange

import (
	"fmt"
	"time"
)

// Panel identifies one of the two calendar panels.
type Panel int

const (
	Left Panel = iota
	Right
)

// Other returns the opposite panel.
func (p Panel) Other() Panel {
	if p == Left {
		return Right
	}
	return Left
}

func (p Panel) String() string {
	if p == Left {
		return "left"
	}
	return "right"
}

// Granularity is the unit of selectable time.
type Granularity string

const (
	GranularityYear  Granularity = "year"
	GranularityMonth Granularity = "month"
	GranularityDate  Granularity = "date"
	GranularityTime  Granularity = "time"
)

// IsValid reports whether g is a known granularity.
func (g Granularity) IsValid() bool {
	switch g {
	case GranularityYear, GranularityMonth, GranularityDate, GranularityTime:
		return true
	default:
		return false
	}
}

// Table is the grid a panel currently displays.
type Table int

const (
	TableDay Table = iota
	TableMonth
	TableYear
)

func (t Table) String() string {
	switch t {
	case TableYear:
		return "year-table"
	case TableMonth:
		return "month-table"
	default:
		return "date-table"
	}
}

// tableFor maps a granularity to the grid it is picked from. Time selection
// keeps the day grid underneath the time spinner.
func tableFor(g Granularity) Table {
	switch g {
	case GranularityYear:
		return TableYear
	case GranularityMonth:
		return TableMonth
	default:
		return TableDay
	}
}

// PickerType is the overall picker flavour a host configures.
type PickerType string

const (
	TypeYear          PickerType = "year"
	TypeMonth         PickerType = "month"
	TypeDate          PickerType = "date"
	TypeDateRange     PickerType = "daterange"
	TypeDateTime      PickerType = "datetime"
	TypeDateTimeRange PickerType = "datetimerange"
	TypeTime          PickerType = "time"
	TypeTimeRange     PickerType = "timerange"
)

// IsValid reports whether t is a known picker type.
func (t PickerType) IsValid() bool {
	switch t {
	case TypeYear, TypeMonth, TypeDate, TypeDateRange, TypeDateTime,
		TypeDateTimeRange, TypeTime, TypeTimeRange:
		return true
	default:
		return false
	}
}

// Unit is the calendar unit a panel anchor moves by.
type Unit int

const (
	UnitMonth Unit = iota
	UnitYear
)

// Range is a pair of endpoints. A zero time.Time means the endpoint is absent.
type Range struct {
	From time.Time
	To   time.Time
}

// IsEmpty reports whether neither endpoint is set.
func (r Range) IsEmpty() bool { return r.From.IsZero() && r.To.IsZero() }

// IsComplete reports whether both endpoints are set.
func (r Range) IsComplete() bool { return !r.From.IsZero() && !r.To.IsZero() }

// Sorted returns r with its endpoints in chronological order. Absent
// endpoints are left where they are.
func (r Range) Sorted() Range {
	if r.IsComplete() && r.To.Before(r.From) {
		return Range{From: r.To, To: r.From}
	}
	return r
}

func (r Range) String() string {
	return fmt.Sprintf("[%s, %s]", formatEndpoint(r.From), formatEndpoint(r.To))
}

func formatEndpoint(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(time.DateTime)
}

// RangeState is the in-progress selection.
//
// Selecting implies From is set and To is absent.
type RangeState struct {
	From      time.Time
	To        time.Time
	Selecting bool
}

// Phase is the selection state machine's current state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePendingSecond
	PhaseCommitted
)

func (p Phase) String() string {
	switch p {
	case PhasePendingSecond:
		return "pending-second"
	case PhaseCommitted:
		return "committed"
	default:
		return "idle"
	}
}

// Pick kinds reported on Pick events.
const (
	KindDate     = "date"
	KindUpToNow  = "upToNow"
	KindShortcut = "shortcut"
	KindClear    = "clear"
)

// DisabledFunc reports whether a cell date cannot be picked. It must be pure.
type DisabledFunc func(time.Time) bool

// ResetToken identifies a scheduled view reset. Zero is never issued.
type ResetToken uint64

// ResetDelay is how long a committed picker keeps its view before reverting
// to the configured granularity.
const ResetDelay = 500 * time.Millisecond
