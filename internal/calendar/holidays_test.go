package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasterSunday(t *testing.T) {
	tests := map[int]time.Time{
		2000: Date(2000, time.April, 23),
		2008: Date(2008, time.March, 23),
		2019: Date(2019, time.April, 21),
		2024: Date(2024, time.March, 31),
		2025: Date(2025, time.April, 20),
		2026: Date(2026, time.April, 5),
		2038: Date(2038, time.April, 25),
	}
	for year, want := range tests {
		assert.Equal(t, want, EasterSunday(year), "easter %d", year)
	}
}

func TestSwedishHolidays_2025(t *testing.T) {
	want := []string{
		"2025-01-01", "2025-01-06", "2025-04-18", "2025-04-21", "2025-05-01",
		"2025-05-29", "2025-06-06", "2025-06-08", "2025-06-20", "2025-06-21",
		"2025-11-01", "2025-12-24", "2025-12-25", "2025-12-26", "2025-12-31",
	}

	holidays := SwedishHolidays(2025)
	require.Len(t, holidays, 15)

	got := make([]string, 0, len(holidays))
	for _, h := range holidays {
		got = append(got, FormatDay(h.Date))
	}
	assert.Equal(t, want, got)

	set := HolidaySet(2025)
	assert.True(t, set["2025-06-20"].Eve)
	assert.Equal(t, "Midsommardagen", set["2025-06-21"].Name)
	assert.False(t, set["2025-06-21"].Eve)
	assert.True(t, set["2025-12-24"].Eve)
}

func TestSwedishHolidays_Deterministic(t *testing.T) {
	assert.Equal(t, SwedishHolidays(2031), SwedishHolidays(2031))
}

func TestSwedishHolidays_CollidingRulesAreDeduplicated(t *testing.T) {
	// Ascension fell on May 1 in 2008.
	holidays := SwedishHolidays(2008)
	assert.Len(t, holidays, 14)
	set := HolidaySet(2008)
	assert.Equal(t, "Första maj", set["2008-05-01"].Name)
}

func TestSwedishHolidays_SaturdayAnchors(t *testing.T) {
	for year := 2000; year <= 2050; year++ {
		set := HolidaySet(year)
		var midsummer, allSaints time.Time
		for _, h := range set {
			switch h.Name {
			case "Midsommardagen":
				midsummer = h.Date
			case "Alla helgons dag":
				allSaints = h.Date
			}
		}
		require.Equal(t, time.Saturday, midsummer.Weekday(), "midsummer %d", year)
		require.Equal(t, time.Saturday, allSaints.Weekday(), "all saints %d", year)
		require.False(t, midsummer.Before(Date(year, time.June, 20)))
		require.False(t, midsummer.After(Date(year, time.June, 26)))
		require.False(t, allSaints.Before(Date(year, time.October, 31)))
		require.False(t, allSaints.After(Date(year, time.November, 6)))

		eve, ok := set[FormatDay(midsummer.AddDate(0, 0, -1))]
		require.True(t, ok)
		require.Equal(t, "Midsommarafton", eve.Name)
	}
}

func TestIsWorkday(t *testing.T) {
	assert.False(t, IsWorkday(Date(2025, time.April, 18)), "good friday")
	assert.False(t, IsWorkday(Date(2025, time.April, 19)), "saturday")
	assert.False(t, IsWorkday(Date(2025, time.December, 24)), "christmas eve")
	assert.True(t, IsWorkday(Date(2025, time.April, 22)))

	h, ok := IsHoliday(time.Date(2025, time.June, 6, 13, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "Sveriges nationaldag", h.Name)
}

func TestNextWorkday(t *testing.T) {
	// Thursday before Easter -> Tuesday after Easter Monday.
	assert.Equal(t, Date(2025, time.April, 22), NextWorkday(Date(2025, time.April, 17)))
	assert.Equal(t, Date(2025, time.January, 13), NextWorkday(Date(2025, time.January, 10)))
	assert.Equal(t, Date(2025, time.January, 7), NextWorkday(Date(2025, time.January, 3)), "skips trettondedag")
}

func TestAddWorkdays(t *testing.T) {
	start := Date(2025, time.April, 17)
	assert.Equal(t, start, AddWorkdays(start, 0))
	assert.Equal(t, Date(2025, time.April, 22), AddWorkdays(start, 1))
	assert.Equal(t, Date(2025, time.April, 24), AddWorkdays(start, 3))
}
