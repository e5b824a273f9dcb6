package calendar

import (
	"sort"
	"time"
)

// Holiday is a Swedish public holiday or eve for a given year.
type Holiday struct {
	Date time.Time
	Name string
	Eve  bool
}

// EasterSunday computes Easter Sunday with the anonymous Gregorian algorithm.
func EasterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return Date(year, time.Month(month), day)
}

// firstWeekdayOnOrAfter returns the first wd falling on or after t.
func firstWeekdayOnOrAfter(t time.Time, wd time.Weekday) time.Time {
	delta := (int(wd) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, delta)
}

// SwedishHolidays returns the holidays of year in date order. When two rules
// land on the same date the earlier rule wins.
func SwedishHolidays(year int) []Holiday {
	easter := EasterSunday(year)
	midsummer := firstWeekdayOnOrAfter(Date(year, time.June, 20), time.Saturday)

	candidates := []Holiday{
		{Date: Date(year, time.January, 1), Name: "Nyårsdagen"},
		{Date: Date(year, time.January, 6), Name: "Trettondedag jul"},
		{Date: Date(year, time.May, 1), Name: "Första maj"},
		{Date: Date(year, time.June, 6), Name: "Sveriges nationaldag"},
		{Date: Date(year, time.December, 25), Name: "Juldagen"},
		{Date: Date(year, time.December, 26), Name: "Annandag jul"},
		{Date: Date(year, time.December, 24), Name: "Julafton", Eve: true},
		{Date: Date(year, time.December, 31), Name: "Nyårsafton", Eve: true},
		{Date: easter.AddDate(0, 0, -2), Name: "Långfredagen"},
		{Date: easter.AddDate(0, 0, 1), Name: "Annandag påsk"},
		{Date: easter.AddDate(0, 0, 39), Name: "Kristi himmelsfärdsdag"},
		{Date: easter.AddDate(0, 0, 49), Name: "Pingstdagen"},
		{Date: midsummer, Name: "Midsommardagen"},
		{Date: midsummer.AddDate(0, 0, -1), Name: "Midsommarafton", Eve: true},
		{Date: firstWeekdayOnOrAfter(Date(year, time.October, 31), time.Saturday), Name: "Alla helgons dag"},
	}

	seen := make(map[string]bool, len(candidates))
	holidays := make([]Holiday, 0, len(candidates))
	for _, h := range candidates {
		key := FormatDay(h.Date)
		if seen[key] {
			continue
		}
		seen[key] = true
		holidays = append(holidays, h)
	}
	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Date.Before(holidays[j].Date) })
	return holidays
}

// HolidaySet indexes the holidays of year by YYYY-MM-DD.
func HolidaySet(year int) map[string]Holiday {
	list := SwedishHolidays(year)
	set := make(map[string]Holiday, len(list))
	for _, h := range list {
		set[FormatDay(h.Date)] = h
	}
	return set
}

// IsHoliday looks t up among the holidays of its year.
func IsHoliday(t time.Time) (Holiday, bool) {
	h, ok := HolidaySet(t.Year())[FormatDay(Truncate(t))]
	return h, ok
}

// IsWorkday reports whether crews work on t: not a weekend, not a holiday or eve.
func IsWorkday(t time.Time) bool {
	if IsWeekend(t) {
		return false
	}
	_, holiday := IsHoliday(t)
	return !holiday
}

// NextWorkday returns the first workday strictly after t.
func NextWorkday(t time.Time) time.Time {
	d := Truncate(t).AddDate(0, 0, 1)
	for !IsWorkday(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// AddWorkdays returns the n-th workday after t. n <= 0 returns t.
func AddWorkdays(t time.Time, n int) time.Time {
	d := Truncate(t)
	for i := 0; i < n; i++ {
		d = NextWorkday(d)
	}
	return d
}
