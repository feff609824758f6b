package choice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchText(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		text   string
		pinyin bool
		want   bool
	}{
		{"substring", "ppl", "Apple", false, true},
		{"case insensitive", "APP", "apple", false, true},
		{"miss", "kiwi", "Apple", false, false},
		{"pinyin full", "beijing", "北京", true, true},
		{"pinyin initials", "bj", "北京", true, true},
		{"pinyin mixed text", "bjcs", "北京测试", true, true},
		{"pinyin disabled", "bj", "北京", false, false},
		{"han substring", "京", "北京", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchText(tt.term, tt.text, tt.pinyin))
		})
	}
}

func TestTransliterate(t *testing.T) {
	full, initials := Transliterate("北京a1")
	assert.Equal(t, "beijinga1", full)
	assert.Equal(t, "bja1", initials)
}

func TestMatcher_FilterTakesPrecedence(t *testing.T) {
	m := Matcher[int]{
		Pinyin: true,
		Filter: func(term string, o Option[int]) bool {
			return o.Attrs["code"] == term
		},
	}

	apple := Option[int]{ID: 1, Name: "Apple", Attrs: map[string]any{"code": "x1"}}
	assert.True(t, m.Match("x1", apple))
	assert.False(t, m.Match("App", apple), "built-in modes are skipped when a filter is set")
	assert.True(t, m.Match("", apple), "empty term shows everything")
}

func TestMatcher_Default(t *testing.T) {
	m := Matcher[int]{}
	assert.True(t, m.Match("ban", Option[int]{ID: 2, Name: "Banana"}))
	assert.True(t, m.Match("7", Option[int]{ID: 7}), "unnamed options match on their ID")
	assert.False(t, m.Match(strings.Repeat("z", 3), Option[int]{ID: 2, Name: "Banana"}))
}
