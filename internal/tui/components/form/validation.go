package form

import (
	"fmt"
	"regexp"
	"time"

	"github.com/colonyops/tuikit/internal/core/daterange"
)

// FieldValidation holds runtime validation rules for a form field.
type FieldValidation struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Min       int // minimum selections (multi-select)
	Max       int // maximum selections (multi-select)
	MaxDays   int // longest allowed date range, in calendar days
}

// ValidateText checks a text value against the validation rules.
func (v FieldValidation) ValidateText(value string) string {
	if v.Required && value == "" {
		return "required"
	}
	if value == "" {
		return ""
	}
	if v.MinLength > 0 && len(value) < v.MinLength {
		return fmt.Sprintf("minimum %d characters", v.MinLength)
	}
	if v.MaxLength > 0 && len(value) > v.MaxLength {
		return fmt.Sprintf("maximum %d characters", v.MaxLength)
	}
	if v.Pattern != nil && !v.Pattern.MatchString(value) {
		return fmt.Sprintf("must match pattern: %s", v.Pattern.String())
	}
	return ""
}

// ValidateSelection checks a selection count against the validation rules.
func (v FieldValidation) ValidateSelection(count int) string {
	if v.Required && count == 0 {
		return "at least one selection required"
	}
	if v.Min > 0 && count < v.Min {
		return fmt.Sprintf("select at least %d", v.Min)
	}
	if v.Max > 0 && count > v.Max {
		return fmt.Sprintf("select at most %d", v.Max)
	}
	return ""
}

// ValidateRange checks a date range against the validation rules. A range
// missing its second endpoint is incomplete.
func (v FieldValidation) ValidateRange(r daterange.Range) string {
	if r.IsEmpty() {
		if v.Required {
			return "required"
		}
		return ""
	}
	if !r.IsComplete() {
		return "choose an end date"
	}
	if v.MaxDays > 0 {
		if calendarDays(r.From, r.To) > v.MaxDays {
			return fmt.Sprintf("at most %d days", v.MaxDays)
		}
	}
	return ""
}

// calendarDays counts the dates from..to inclusive. Both ends are moved to
// UTC midnight of their wall-clock date so DST shifts do not skew the count.
func calendarDays(from, to time.Time) int {
	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours()/24) + 1
}
