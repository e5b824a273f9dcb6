package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func rng(start, end string) DateRange {
	return DateRange{Start: day(start), End: day(end)}
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{name: "Should overlap partially", a: rng("2025-01-06", "2025-01-12"), b: rng("2025-01-08", "2025-01-14"), want: true},
		{name: "Should overlap on a shared boundary day", a: rng("2025-01-06", "2025-01-12"), b: rng("2025-01-12", "2025-01-18"), want: true},
		{name: "Should not overlap adjacent weeks", a: rng("2025-01-06", "2025-01-12"), b: rng("2025-01-13", "2025-01-19"), want: false},
		{name: "Should overlap when one contains the other", a: rng("2025-01-01", "2025-01-31"), b: rng("2025-01-10", "2025-01-11"), want: true},
		{name: "Should overlap single day ranges on the same day", a: rng("2025-01-10", "2025-01-10"), b: rng("2025-01-10", "2025-01-10"), want: true},
		{name: "Should never overlap an empty range", a: rng("2025-01-10", "2025-01-09"), b: rng("2025-01-01", "2025-01-31"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestDateRange_OverlapsItself(t *testing.T) {
	start := day("2024-12-20")
	for i := 0; i < 30; i++ {
		r := DateRange{Start: start, End: start.AddDate(0, 0, i)}
		assert.True(t, r.Overlaps(r))
	}
}

func TestTruckAssignment_Covers(t *testing.T) {
	a := &TruckAssignment{StartDay: day("2025-01-06"), EndDay: day("2025-01-12")}
	assert.True(t, a.Covers(day("2025-01-06")))
	assert.True(t, a.Covers(day("2025-01-12")))
	assert.False(t, a.Covers(day("2025-01-13")))
	assert.False(t, a.Covers(day("2025-01-05")))
}

func TestDateRange_Shift(t *testing.T) {
	got := rng("2025-01-06", "2025-01-12").Shift(7)
	assert.Equal(t, rng("2025-01-13", "2025-01-19"), got)
}
