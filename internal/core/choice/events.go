package choice

// Event is emitted by Model after a state change.
type Event interface {
	EventName() string
}

// ChangeEvent reports a new bound value. Single-select values hold at most
// one element.
type ChangeEvent[V comparable] struct {
	Value    []V
	Old      []V
	Multiple bool
}

// Single returns the single-select value.
func (e ChangeEvent[V]) Single() (V, bool) {
	if len(e.Value) == 0 {
		var zero V
		return zero, false
	}
	return e.Value[0], true
}

type SelectEvent[V comparable] struct{ ID V }

type DeselectEvent[V comparable] struct{ ID V }

type TagRemoveEvent[V comparable] struct{ ID V }

type SearchChangeEvent struct{ Term string }

// ScrollEndEvent asks the host for more options.
type ScrollEndEvent struct{}

type ToggleEvent struct{ Open bool }

type ClearEvent struct{}

func (ChangeEvent[V]) EventName() string    { return "change" }
func (SelectEvent[V]) EventName() string    { return "select" }
func (DeselectEvent[V]) EventName() string  { return "deselect" }
func (TagRemoveEvent[V]) EventName() string { return "tag-remove" }
func (SearchChangeEvent) EventName() string { return "search-change" }
func (ScrollEndEvent) EventName() string    { return "scroll-end" }
func (ToggleEvent) EventName() string       { return "toggle" }
func (ClearEvent) EventName() string        { return "clear" }

// Listener receives events synchronously, in emission order.
type Listener func(Event)
