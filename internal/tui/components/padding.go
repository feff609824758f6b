package components

import "strings"

// spaces backs Pad for the widths used by dialog columns.
var spaces = strings.Repeat(" ", 128)

// Pad returns a string of n spaces.
func Pad(n int) string {
	switch {
	case n <= 0:
		return ""
	case n <= len(spaces):
		return spaces[:n]
	default:
		return strings.Repeat(" ", n)
	}
}
