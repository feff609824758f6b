package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tuikit/internal/core/daterange"
	"github.com/colonyops/tuikit/pkg/tuitest"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func newRangeField(validation ...FieldValidation) *DateRangeField {
	opts := daterange.DefaultOptions()
	opts.Now = func() time.Time { return fixedNow }
	return NewDateRangeField("When", daterange.Range{}, opts, validation...)
}

func TestDateRangeField(t *testing.T) {
	t.Run("enter picks instead of advancing", func(t *testing.T) {
		f := newRangeField()
		next := NewTextField("Note", "", "")
		d := NewDialog("Test", []Field{f, next}, []string{"when", "note"})

		pump(d, tuitest.KeyEnter(), tuitest.KeyRight(), tuitest.KeyRight(), tuitest.KeyEnter())

		assert.True(t, f.Focused())
		r, ok := d.FormValues()["when"].(daterange.Range)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), r.From)
		assert.Equal(t, time.Date(2024, 3, 17, 23, 59, 59, 0, time.UTC), r.To)
	})

	t.Run("tab leaves the field and w switches panels", func(t *testing.T) {
		f := newRangeField()
		d := NewDialog("Test", []Field{f, NewTextField("Note", "", "")}, []string{"when", "note"})

		pump(d, tuitest.KeyPress('w'))
		assert.Equal(t, daterange.Right, f.Picker().Panel())
		assert.True(t, f.Focused())

		pump(d, tuitest.KeyTab())
		assert.False(t, f.Focused())
	})

	t.Run("esc backs out of a drilled table before cancelling", func(t *testing.T) {
		f := newRangeField()
		d := NewDialog("Test", []Field{f}, []string{"when"})

		pump(d, tuitest.KeyPress('y'))
		require.True(t, f.Picker().Controller().PreSelecting(daterange.Left))

		pump(d, tuitest.KeyEsc())
		assert.False(t, f.Picker().Controller().PreSelecting(daterange.Left))
		assert.False(t, d.Cancelled())

		pump(d, tuitest.KeyEsc())
		assert.True(t, d.Cancelled())
	})
}

func TestDateRangeField_Validation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// Clocks fall back on 2025-11-02, making that week an hour longer.
	fallBack := daterange.Range{
		From: time.Date(2025, 11, 1, 0, 0, 0, 0, ny),
		To:   time.Date(2025, 11, 7, 23, 59, 59, 0, ny),
	}
	// Clocks spring forward on 2025-03-09, making that week an hour shorter.
	springForward := daterange.Range{
		From: time.Date(2025, 3, 8, 0, 0, 0, 0, ny),
		To:   time.Date(2025, 3, 14, 23, 59, 59, 0, ny),
	}

	tests := []struct {
		name  string
		v     FieldValidation
		value daterange.Range
		want  string
	}{
		{"optional empty", FieldValidation{}, daterange.Range{}, ""},
		{"required empty", FieldValidation{Required: true}, daterange.Range{}, "required"},
		{"incomplete", FieldValidation{}, daterange.Range{From: fixedNow}, "choose an end date"},
		{"within max days", FieldValidation{MaxDays: 3}, daterange.Range{From: fixedNow, To: fixedNow.AddDate(0, 0, 2)}, ""},
		{"over max days", FieldValidation{MaxDays: 3}, daterange.Range{From: fixedNow, To: fixedNow.AddDate(0, 0, 3)}, "at most 3 days"},
		{"week across fall back", FieldValidation{MaxDays: 7}, fallBack, ""},
		{"week across spring forward", FieldValidation{MaxDays: 7}, springForward, ""},
		{"over max across fall back", FieldValidation{MaxDays: 6}, fallBack, "at most 6 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.ValidateRange(tt.value))
		})
	}

	t.Run("blocks submit until complete", func(t *testing.T) {
		f := newRangeField(FieldValidation{Required: true})
		d := NewDialog("Test", []Field{f}, []string{"when"})

		pump(d, tuitest.KeyTab())
		assert.False(t, d.Submitted())
		assert.Contains(t, tuitest.StripANSI(f.View()), "required")

		pump(d, tuitest.KeyEnter(), tuitest.KeyRight(), tuitest.KeyEnter(), tuitest.KeyTab())
		assert.True(t, d.Submitted())
	})
}
