// Package choice holds the option registry and selection model behind the
// searchable select widget. It knows nothing about rendering: widgets feed
// it key presses and option registrations and observe it through listeners.
package choice

import (
	"fmt"
	"sort"
)

// Option is a selectable entry. Options are identified by ID; the first
// registration of an ID wins.
type Option[V comparable] struct {
	ID       V
	Name     string
	Group    string
	Disabled bool
	Attrs    map[string]any

	order   int
	visible bool
	listed  bool
}

// Label returns the display name, falling back to the formatted ID.
func (o Option[V]) Label() string {
	if o.Name != "" {
		return o.Name
	}
	return fmt.Sprint(o.ID)
}

// Order is the registration sequence number.
func (o Option[V]) Order() int { return o.order }

// Visible reports whether the option passed the current search.
func (o Option[V]) Visible() bool { return o.visible }

// Available reports whether keyboard navigation may land on the option.
func (o Option[V]) Available() bool { return o.visible && !o.Disabled }

// Group is a named heading options can belong to.
type Group struct {
	Name  string
	Label string

	order int
}

// Registry is the live set of options and groups.
type Registry[V comparable] struct {
	options map[V]*Option[V]
	groups  map[string]*Group
	seq     int
}

// NewRegistry creates an empty registry.
func NewRegistry[V comparable]() *Registry[V] {
	return &Registry[V]{
		options: make(map[V]*Option[V]),
		groups:  make(map[string]*Group),
	}
}

// Register adds o. It reports false, and changes nothing, when an option with
// the same ID is already registered.
func (r *Registry[V]) Register(o Option[V]) bool {
	if _, ok := r.options[o.ID]; ok {
		return false
	}
	r.seq++
	o.order = r.seq
	o.visible = true
	r.options[o.ID] = &o
	return true
}

// Unregister removes the option with id. Surviving options keep their order.
func (r *Registry[V]) Unregister(id V) bool {
	if _, ok := r.options[id]; !ok {
		return false
	}
	delete(r.options, id)
	return true
}

// Get returns the option registered under id.
func (r *Registry[V]) Get(id V) (Option[V], bool) {
	o, ok := r.options[id]
	if !ok {
		return Option[V]{}, false
	}
	return *o, true
}

// Len returns the number of registered options.
func (r *Registry[V]) Len() int { return len(r.options) }

// Options returns a snapshot of all options in display order: ungrouped
// options, then each registered group's options in group order, then the
// options backed by the external list. Registration order breaks ties.
func (r *Registry[V]) Options() []Option[V] {
	out := make([]Option[V], 0, len(r.options))
	for _, o := range r.options {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.listed != b.listed {
			return b.listed
		}
		if ra, rb := r.groupRank(a.Group), r.groupRank(b.Group); ra != rb {
			return ra < rb
		}
		return a.order < b.order
	})
	return out
}

// groupRank places options of unregistered groups with the ungrouped ones.
func (r *Registry[V]) groupRank(name string) int {
	if g, ok := r.groups[name]; ok && name != "" {
		return g.order
	}
	return 0
}

// Available returns the visible, enabled options in display order.
func (r *Registry[V]) Available() []Option[V] {
	all := r.Options()
	out := all[:0]
	for _, o := range all {
		if o.Available() {
			out = append(out, o)
		}
	}
	return out
}

// setVisible records the search result for id.
func (r *Registry[V]) setVisible(id V, visible bool) {
	if o, ok := r.options[id]; ok {
		o.visible = visible
	}
}

// RegisterGroup adds g. The first registration of a name wins.
func (r *Registry[V]) RegisterGroup(g Group) bool {
	if _, ok := r.groups[g.Name]; ok {
		return false
	}
	r.seq++
	g.order = r.seq
	r.groups[g.Name] = &g
	return true
}

// UnregisterGroup removes the group called name.
func (r *Registry[V]) UnregisterGroup(name string) bool {
	if _, ok := r.groups[name]; !ok {
		return false
	}
	delete(r.groups, name)
	return true
}

// Groups returns the registered groups in registration order.
func (r *Registry[V]) Groups() []Group {
	out := make([]Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].order < out[j].order })
	return out
}
