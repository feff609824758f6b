package choice

// InitActive points the active option at the first selected option when it
// can be navigated to, otherwise at the first available option.
func (m *Model[V]) InitActive() {
	if len(m.selected) > 0 {
		if o, ok := m.reg.Get(m.selected[0].Value); ok && o.Available() {
			m.active, m.hasActive = o.ID, true
			return
		}
	}

	avail := m.reg.Available()
	if len(avail) == 0 {
		var zero V
		m.active, m.hasActive = zero, false
		return
	}
	m.active, m.hasActive = avail[0].ID, true
}

// SetActive highlights id when it can be navigated to.
func (m *Model[V]) SetActive(id V) bool {
	o, ok := m.reg.Get(id)
	if !ok || !o.Available() {
		return false
	}
	m.active, m.hasActive = id, true
	return true
}

// MoveActive moves the highlight by delta through the visible, enabled
// options, wrapping at both ends.
func (m *Model[V]) MoveActive(delta int) {
	avail := m.reg.Available()
	n := len(avail)
	if n == 0 || delta == 0 {
		return
	}

	cur := -1
	if m.hasActive {
		for i, o := range avail {
			if o.ID == m.active {
				cur = i
				break
			}
		}
	}

	var next int
	switch {
	case cur < 0 && delta > 0:
		next = 0
	case cur < 0:
		next = n - 1
	default:
		next = ((cur+delta)%n + n) % n
	}
	m.active, m.hasActive = avail[next].ID, true
}

// ActiveIndex returns the position of the active option among the
// available options, or -1.
func (m *Model[V]) ActiveIndex() int {
	if !m.hasActive {
		return -1
	}
	for i, o := range m.reg.Available() {
		if o.ID == m.active {
			return i
		}
	}
	return -1
}

// Enter commits the active option through the same path as a click. With
// free-text creation enabled and a non-empty search term, the term is
// created (or matched) instead.
func (m *Model[V]) Enter() bool {
	if m.cfg.AllowCreate && m.search != "" {
		return m.Create(m.search)
	}
	if !m.hasActive {
		return false
	}
	return m.Select(m.active)
}
