package choice

import (
	"strings"

	"github.com/mozillazg/go-pinyin"
)

// FilterFunc decides whether an option matches term. When set it replaces
// every built-in matching mode.
type FilterFunc[V comparable] func(term string, o Option[V]) bool

// Matcher decides option visibility for a search term.
type Matcher[V comparable] struct {
	Filter FilterFunc[V]
	Pinyin bool
}

// Match reports whether o matches term. An empty term matches everything.
func (m Matcher[V]) Match(term string, o Option[V]) bool {
	if term == "" {
		return true
	}
	if m.Filter != nil {
		return m.Filter(term, o)
	}
	return MatchText(term, o.Label(), m.Pinyin)
}

// MatchText matches term against text by case-insensitive containment and,
// when withPinyin is set, against the full and initial-letter pinyin
// transliterations of text.
func MatchText(term, text string, withPinyin bool) bool {
	needle := strings.ToLower(term)
	if strings.Contains(strings.ToLower(text), needle) {
		return true
	}
	if !withPinyin {
		return false
	}

	full, initials := Transliterate(text)
	return strings.Contains(full, needle) || strings.Contains(initials, needle)
}

var pinyinArgs = func() pinyin.Args {
	a := pinyin.NewArgs()
	a.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	return a
}()

// Transliterate returns the lower-case pinyin of text and the string of each
// syllable's first letter. Runes without a reading pass through unchanged.
func Transliterate(text string) (full, initials string) {
	var fb, ib strings.Builder
	for _, syllable := range pinyin.LazyPinyin(text, pinyinArgs) {
		if syllable == "" {
			continue
		}
		s := strings.ToLower(syllable)
		fb.WriteString(s)
		ib.WriteString(string([]rune(s)[:1]))
	}
	return fb.String(), ib.String()
}
