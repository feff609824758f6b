package daterange

import "time"

// Event is emitted by the controller after a state change.
type Event interface {
	EventName() string
}

// PickEvent reports a committed value: a finished range, a shortcut, an
// "up to now" commit, a time replacement or a clear.
type PickEvent struct {
	Value    Range
	Visible  bool
	Kind     string
	Shortcut *Shortcut
}

// PickFirstEvent reports the first endpoint of a range.
type PickFirstEvent struct {
	Value time.Time
	View  Granularity
}

// PickSuccessEvent reports a confirmed selection.
type PickSuccessEvent struct{}

// PickClearEvent reports a cleared selection.
type PickClearEvent struct{}

func (PickEvent) EventName() string        { return "pick" }
func (PickFirstEvent) EventName() string   { return "pick-first" }
func (PickSuccessEvent) EventName() string { return "pick-success" }
func (PickClearEvent) EventName() string   { return "pick-clear" }

// Listener receives controller events synchronously, in emission order.
type Listener func(Event)
