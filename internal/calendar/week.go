// Package calendar holds the pure date arithmetic used by the planning board:
// ISO week numbering, Swedish public holidays and month/week grids. Every day
// is a time.Time at midnight UTC.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/crew-planner/internal/domain"
)

// Layout is the wire and storage format of a calendar day.
const Layout = "2006-01-02"

var weekKeyPattern = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// Date returns the given day at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock part of t, keeping its calendar date.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, &domain.ParseError{Input: s, Reason: "expected a date as YYYY-MM-DD"}
	}
	return t, nil
}

// FormatDay renders t as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(Layout)
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return domain.Sunday
	}
	return wd
}

// ISOWeekNumber returns the ISO-8601 week of t (1..53).
func ISOWeekNumber(t time.Time) int {
	_, w := t.ISOWeek()
	return w
}

// ISOWeekYear returns the year the ISO week of t belongs to, which differs
// from t.Year() for some days around New Year.
func ISOWeekYear(t time.Time) int {
	y, _ := t.ISOWeek()
	return y
}

// ISOWeekKey returns the week key of t, e.g. "2025-W01".
func ISOWeekKey(t time.Time) string {
	y, w := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", y, w)
}

// WeeksInYear returns 52 or 53. December 28 always falls in the last ISO week.
func WeeksInYear(year int) int {
	_, w := Date(year, time.December, 28).ISOWeek()
	return w
}

// StartOfISOWeek returns the Monday of the week containing t.
func StartOfISOWeek(t time.Time) time.Time {
	d := Truncate(t)
	return d.AddDate(0, 0, -(ISOWeekday(d) - domain.Monday))
}

// EndOfISOWeek returns the Sunday of the week containing t.
func EndOfISOWeek(t time.Time) time.Time {
	return StartOfISOWeek(t).AddDate(0, 0, 6)
}

// ParseWeekKey splits a week key into its ISO year and week.
func ParseWeekKey(key string) (year, week int, err error) {
	m := weekKeyPattern.FindStringSubmatch(strings.TrimSpace(key))
	if m == nil {
		return 0, 0, &domain.ParseError{Input: key, Reason: "expected a week key as YYYY-Www"}
	}
	year, _ = strconv.Atoi(m[1])
	week, _ = strconv.Atoi(m[2])
	if week < 1 || week > 53 {
		return 0, 0, &domain.ParseError{Input: key, Reason: "week must be between 1 and 53"}
	}
	if week > WeeksInYear(year) {
		return 0, 0, &domain.ParseError{Input: key, Reason: fmt.Sprintf("%d has only %d ISO weeks", year, WeeksInYear(year))}
	}
	return year, week, nil
}

// MondayOf returns the Monday starting the week named by key.
func MondayOf(key string) (time.Time, error) {
	year, week, err := ParseWeekKey(key)
	if err != nil {
		return time.Time{}, err
	}
	// January 4 is always in week 1.
	week1 := StartOfISOWeek(Date(year, time.January, 4))
	return week1.AddDate(0, 0, (week-1)*7), nil
}

// IsWeekend reports whether t is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ParseDayOrWeek accepts either a day or a week key and returns the Monday of
// the matching week.
func ParseDayOrWeek(s string) (time.Time, error) {
	if weekKeyPattern.MatchString(strings.TrimSpace(s)) {
		return MondayOf(s)
	}
	d, err := ParseDay(s)
	if err != nil {
		return time.Time{}, &domain.ParseError{Input: s, Reason: "expected YYYY-MM-DD or YYYY-Www"}
	}
	return StartOfISOWeek(d), nil
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)).Hours() / 24)
}
