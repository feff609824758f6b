package choice

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to limit option labels closest to text by edit
// distance. Labels further than a third of their length away are dropped.
func (m *Model[V]) Suggest(text string, limit int) []string {
	if text == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		label string
		dist  int
	}

	needle := strings.ToLower(text)
	var candidates []scored
	for _, o := range m.reg.Options() {
		if o.Disabled {
			continue
		}
		label := o.Label()
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(label))
		if dist > max(2, len([]rune(label))/3) {
			continue
		}
		candidates = append(candidates, scored{label: label, dist: dist})
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	out := make([]string, 0, min(limit, len(candidates)))
	for _, c := range candidates[:min(limit, len(candidates))] {
		out = append(out, c.label)
	}
	return out
}
