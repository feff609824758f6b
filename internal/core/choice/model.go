package choice

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Entry is a selected value with the label it is displayed with.
type Entry[V comparable] struct {
	Value V
	Label string
}

// ListItem is an externally supplied option. Items without a registered
// option of the same ID are offered as options of their own, after the
// registered ones.
type ListItem[V comparable] struct {
	ID       V
	Name     string
	Disabled bool
}

// Config configures a Model.
type Config[V comparable] struct {
	Multiple        bool
	Filterable      bool
	AllowCreate     bool
	KeepSearchValue bool
	Disabled        bool

	// ShowAll enables the "all" sentinel entry identified by AllOptionID.
	ShowAll     bool
	AllOptionID V
	AllLabel    string

	// AllowEmpty lists values that count as a selection in single mode even
	// though they equal the zero value.
	AllowEmpty []V

	List    []ListItem[V]
	Matcher Matcher[V]

	// CreateValue converts free text into a value. When nil, text is only
	// accepted if V is string.
	CreateValue func(text string) (V, bool)

	Logger *zerolog.Logger
}

// DefaultConfig returns a filterable single-select configuration with
// pinyin search enabled.
func DefaultConfig[V comparable]() Config[V] {
	return Config[V]{
		Filterable: true,
		AllLabel:   "All",
		Matcher:    Matcher[V]{Pinyin: true},
	}
}

type selectAllRecord[V comparable] struct {
	before []Entry[V]
	after  []Entry[V]
}

// Model is the selection state of one select widget.
type Model[V comparable] struct {
	cfg Config[V]
	log zerolog.Logger
	reg *Registry[V]

	value    []V
	selected []Entry[V]

	search    string
	active    V
	hasActive bool
	open      bool

	lastSelectAll *selectAllRecord[V]

	listeners []Listener
}

// New creates a Model with its own registry.
func New[V comparable](cfg Config[V]) *Model[V] {
	if cfg.Logger == nil {
		nop := zerolog.Nop()
		cfg.Logger = &nop
	}
	if cfg.AllLabel == "" {
		cfg.AllLabel = "All"
	}
	m := &Model[V]{
		cfg: cfg,
		log: *cfg.Logger,
		reg: NewRegistry[V](),
	}
	m.syncList()
	return m
}

// Subscribe registers l for every subsequent event.
func (m *Model[V]) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

func (m *Model[V]) emit(e Event) {
	for _, l := range m.listeners {
		l(e)
	}
}

func (m *Model[V]) Config() Config[V]         { return m.cfg }
func (m *Model[V]) Registry() *Registry[V]    { return m.reg }
func (m *Model[V]) Multiple() bool            { return m.cfg.Multiple }
func (m *Model[V]) Search() string            { return m.search }
func (m *Model[V]) IsOpen() bool              { return m.open }
func (m *Model[V]) Selected() []Entry[V]      { return slices.Clone(m.selected) }
func (m *Model[V]) Options() []Option[V]      { return m.reg.Options() }
func (m *Model[V]) Available() []Option[V]    { return m.reg.Available() }
func (m *Model[V]) OptionsEmpty() bool        { return m.reg.Len() == 0 }
func (m *Model[V]) Active() (V, bool)         { return m.active, m.hasActive }
func (m *Model[V]) IsActive(id V) bool        { return m.hasActive && m.active == id }

// Values returns the selected values in selection order.
func (m *Model[V]) Values() []V {
	out := make([]V, len(m.selected))
	for i, e := range m.selected {
		out[i] = e.Value
	}
	return out
}

// IsSelected reports whether id is part of the selection.
func (m *Model[V]) IsSelected(id V) bool {
	return m.indexOf(id) >= 0
}

func (m *Model[V]) indexOf(id V) int {
	return slices.IndexFunc(m.selected, func(e Entry[V]) bool { return e.Value == id })
}

// SearchEmpty reports whether options exist but the search hides all of them.
func (m *Model[V]) SearchEmpty() bool {
	opts := m.reg.Options()
	if len(opts) == 0 {
		return false
	}
	for _, o := range opts {
		if o.visible {
			return false
		}
	}
	return true
}

// Register adds an option, applies the current search to it and refreshes
// selected labels. Duplicate IDs are ignored.
func (m *Model[V]) Register(o Option[V]) bool {
	o.listed = false
	if prev, ok := m.reg.Get(o.ID); ok && prev.listed {
		m.reg.Unregister(o.ID)
	}
	if !m.reg.Register(o) {
		m.log.Debug().Any("id", o.ID).Msg("duplicate option ignored")
		return false
	}
	m.matchOne(o.ID)
	m.sync()
	return true
}

// Unregister removes an option. A selected value keeps its last label. An
// external list item with the same ID takes the option's place.
func (m *Model[V]) Unregister(id V) bool {
	if o, ok := m.reg.Get(id); !ok || o.listed {
		return false
	}
	m.reg.Unregister(id)
	for _, item := range m.cfg.List {
		if item.ID == id {
			m.registerItem(item)
			break
		}
	}
	if _, ok := m.reg.Get(id); !ok && m.hasActive && m.active == id {
		m.hasActive = false
	}
	m.sync()
	return true
}

func (m *Model[V]) matchOne(id V) {
	if !m.cfg.Filterable {
		return
	}
	if stored, ok := m.reg.Get(id); ok {
		m.reg.setVisible(id, m.cfg.Matcher.Match(m.search, stored))
	}
}

// syncList replaces the list-backed options with the current list items.
func (m *Model[V]) syncList() {
	for _, o := range m.reg.Options() {
		if o.listed {
			m.reg.Unregister(o.ID)
		}
	}
	for _, item := range m.cfg.List {
		m.registerItem(item)
	}
	if m.hasActive {
		if _, ok := m.reg.Get(m.active); !ok {
			m.hasActive = false
		}
	}
}

// registerItem offers item as an option unless one with its ID exists.
func (m *Model[V]) registerItem(item ListItem[V]) {
	o := Option[V]{ID: item.ID, Name: item.Name, Disabled: item.Disabled, listed: true}
	if m.reg.Register(o) {
		m.matchOne(item.ID)
	}
}

// RegisterGroup adds a group heading.
func (m *Model[V]) RegisterGroup(g Group) bool { return m.reg.RegisterGroup(g) }

// UnregisterGroup removes a group heading.
func (m *Model[V]) UnregisterGroup(name string) bool { return m.reg.UnregisterGroup(name) }

// SetList replaces the external list, re-offering its items, and refreshes
// labels.
func (m *Model[V]) SetList(items []ListItem[V]) {
	m.cfg.List = slices.Clone(items)
	m.syncList()
	m.sync()
}

// SetValue synchronises with the externally bound value without emitting.
func (m *Model[V]) SetValue(values ...V) {
	m.value = slices.Clone(values)
	m.lastSelectAll = nil
	m.sync()
}

// sync rebuilds the selected entries from the bound value.
func (m *Model[V]) sync() {
	cached := make(map[V]string, len(m.selected))
	for _, e := range m.selected {
		cached[e.Value] = e.Label
	}

	entries := make([]Entry[V], 0, len(m.value))
	for _, v := range m.value {
		if !m.cfg.Multiple && !m.countsAsValue(v) {
			continue
		}
		entries = append(entries, Entry[V]{Value: v, Label: m.resolveLabel(v, cached)})
		if !m.cfg.Multiple {
			break
		}
	}
	m.selected = entries
}

func (m *Model[V]) countsAsValue(v V) bool {
	var zero V
	return v != zero || slices.Contains(m.cfg.AllowEmpty, v)
}

// Label resolves the display label of v: the registered option, then the
// external list, then the label cached on the selection, then v itself.
func (m *Model[V]) Label(v V) string {
	cached := make(map[V]string, len(m.selected))
	for _, e := range m.selected {
		cached[e.Value] = e.Label
	}
	return m.resolveLabel(v, cached)
}

func (m *Model[V]) resolveLabel(v V, cached map[V]string) string {
	if o, ok := m.reg.Get(v); ok && o.Name != "" {
		return o.Name
	}
	for _, item := range m.cfg.List {
		if item.ID == v && item.Name != "" {
			return item.Name
		}
	}
	if label, ok := cached[v]; ok && label != "" {
		return label
	}
	if m.cfg.ShowAll && v == m.cfg.AllOptionID {
		return m.cfg.AllLabel
	}
	return fmt.Sprint(v)
}

// Labels returns the display labels of the selection.
func (m *Model[V]) Labels() []string {
	out := make([]string, len(m.selected))
	for i, e := range m.selected {
		out[i] = m.Label(e.Value)
	}
	return out
}

func (m *Model[V]) emitChange() {
	next := m.Values()
	if slices.Equal(next, m.value) {
		return
	}
	old := m.value
	m.value = next
	m.emit(ChangeEvent[V]{Value: slices.Clone(next), Old: old, Multiple: m.cfg.Multiple})
}

// Select chooses the option with id as if it was clicked. Multi-select
// toggles, single-select replaces and closes.
func (m *Model[V]) Select(id V) bool {
	if m.cfg.Disabled {
		return false
	}
	o, ok := m.reg.Get(id)
	if !ok {
		return false
	}

	if m.cfg.ShowAll {
		if i := m.indexOf(m.cfg.AllOptionID); i >= 0 && m.cfg.AllOptionID != id {
			m.selected = slices.Delete(m.selected, i, i+1)
		}
	}

	if m.cfg.Multiple {
		if i := m.indexOf(id); i >= 0 {
			m.selected = slices.Delete(m.selected, i, i+1)
			m.emitChange()
			m.emit(DeselectEvent[V]{ID: id})
			m.clearMultipleSearch()
			return true
		}
		m.selected = append(m.selected, Entry[V]{Value: id, Label: o.Label()})
		m.emitChange()
		m.emit(SelectEvent[V]{ID: id})
		m.clearMultipleSearch()
		return true
	}

	m.selected = []Entry[V]{{Value: id, Label: o.Label()}}
	if m.cfg.Filterable && m.cfg.AllowCreate {
		m.search = ""
	}
	m.emitChange()
	m.emit(SelectEvent[V]{ID: id})
	m.SetOpen(false)
	return true
}

// Create selects free text, reusing an option whose name matches it
// case-insensitively instead of creating a duplicate.
func (m *Model[V]) Create(text string) bool {
	if !m.cfg.AllowCreate || text == "" || m.cfg.Disabled {
		return false
	}

	if m.cfg.Filterable {
		for _, o := range m.reg.Options() {
			if strings.EqualFold(o.Label(), text) {
				m.Select(o.ID)
				m.clearSearch()
				return true
			}
		}
	}

	v, ok := m.createValue(text)
	if !ok {
		m.log.Warn().Str("text", text).Msg("cannot convert text to option value")
		return false
	}
	if _, exists := m.reg.Get(v); exists {
		return false
	}

	if m.cfg.Multiple {
		if m.IsSelected(v) {
			m.clearSearch()
			return false
		}
		m.selected = append(m.selected, Entry[V]{Value: v, Label: text})
		m.emitChange()
	} else {
		m.selected = []Entry[V]{{Value: v, Label: text}}
		m.emitChange()
		m.SetOpen(false)
	}
	m.clearSearch()
	return true
}

func (m *Model[V]) createValue(text string) (V, bool) {
	if m.cfg.CreateValue != nil {
		return m.cfg.CreateValue(text)
	}
	v, ok := any(text).(V)
	return v, ok
}

func (m *Model[V]) clearSearch() {
	if m.search != "" {
		m.SetSearch("")
	}
}

// clearMultipleSearch drops the search term after a multi-select toggle.
func (m *Model[V]) clearMultipleSearch() {
	if m.cfg.Filterable && !m.cfg.KeepSearchValue {
		m.clearSearch()
	}
}

// Backspace removes the most recently added entry of a multi-selection when
// the search term is empty.
func (m *Model[V]) Backspace() bool {
	if !m.cfg.Multiple || len(m.selected) == 0 || m.search != "" || m.cfg.Disabled {
		return false
	}
	m.selected = m.selected[:len(m.selected)-1]
	m.emitChange()
	return true
}

// RemoveTag removes v from the selection.
func (m *Model[V]) RemoveTag(v V) bool {
	if m.cfg.Disabled {
		return false
	}
	i := m.indexOf(v)
	if i < 0 {
		return false
	}
	m.selected = slices.Delete(m.selected, i, i+1)
	m.emitChange()
	m.emit(TagRemoveEvent[V]{ID: v})
	return true
}

// Clear empties the selection and closes the dropdown.
func (m *Model[V]) Clear() {
	if m.cfg.Disabled {
		return
	}
	m.selected = nil
	m.emitChange()
	m.emit(ClearEvent{})
	m.SetOpen(false)
}

// IsAllSelected reports whether every enabled option is selected.
func (m *Model[V]) IsAllSelected() bool {
	enabled := 0
	for _, o := range m.reg.Options() {
		if o.Disabled {
			continue
		}
		enabled++
		if !m.IsSelected(o.ID) {
			return false
		}
	}
	return enabled <= len(m.selected)
}

// ToggleSelectAll selects every enabled option, or clears the selection
// when everything is already selected. Toggling back right after a
// select-all restores the selection that existed before it.
func (m *Model[V]) ToggleSelectAll() {
	if !m.cfg.Multiple || m.cfg.Disabled {
		return
	}

	switch {
	case m.lastSelectAll != nil && slices.Equal(m.selected, m.lastSelectAll.after):
		m.selected = slices.Clone(m.lastSelectAll.before)
		m.lastSelectAll = nil
	case m.IsAllSelected():
		m.selected = nil
		m.lastSelectAll = nil
	default:
		before := slices.Clone(m.selected)
		var all []Entry[V]
		for _, o := range m.reg.Options() {
			if o.Disabled {
				continue
			}
			all = append(all, Entry[V]{Value: o.ID, Label: o.Label()})
		}
		m.selected = all
		m.lastSelectAll = &selectAllRecord[V]{before: before, after: slices.Clone(all)}
	}

	m.emitChange()
}

// IsAll reports whether the "all" sentinel is the selection.
func (m *Model[V]) IsAll() bool {
	return m.cfg.ShowAll && len(m.selected) == 1 && m.selected[0].Value == m.cfg.AllOptionID
}

// ToggleAll switches between the "all" sentinel and an empty selection.
func (m *Model[V]) ToggleAll() {
	if !m.cfg.Multiple || !m.cfg.ShowAll || m.cfg.Disabled {
		return
	}
	if m.IsSelected(m.cfg.AllOptionID) {
		m.selected = nil
	} else {
		m.selected = []Entry[V]{{Value: m.cfg.AllOptionID, Label: m.cfg.AllLabel}}
	}
	m.emitChange()
}

// SetSearch updates the search term, recomputes visibility and resets the
// active option.
func (m *Model[V]) SetSearch(term string) {
	if term == m.search {
		return
	}
	m.search = term
	m.emit(SearchChangeEvent{Term: term})
	m.applySearch()
	m.InitActive()
}

func (m *Model[V]) applySearch() {
	if !m.cfg.Filterable {
		return
	}
	for _, o := range m.reg.Options() {
		m.reg.setVisible(o.ID, m.cfg.Matcher.Match(m.search, o))
	}
}

// SetOpen opens or closes the dropdown. Closing drops the search term unless
// KeepSearchValue is set. Opening does not touch the active option; hosts
// call AfterOpen once the dropdown has been rendered.
func (m *Model[V]) SetOpen(open bool) {
	if open && m.cfg.Disabled {
		return
	}
	if m.open == open {
		return
	}
	m.open = open
	m.emit(ToggleEvent{Open: open})
	if !open && !m.cfg.KeepSearchValue {
		m.clearSearch()
	}
}

// AfterOpen runs the bookkeeping that needs the rendered dropdown: it
// computes the initially active option.
func (m *Model[V]) AfterOpen() {
	if !m.open {
		return
	}
	m.InitActive()
}

// ScrollEnd reports that the option list was scrolled to its end.
func (m *Model[V]) ScrollEnd() {
	m.emit(ScrollEndEvent{})
}
