package calendar

import "time"

// Day is a calendar cell of the month grid or week lane view.
type Day struct {
	Date        time.Time `json:"-"`
	Key         string    `json:"date"`
	Week        int       `json:"week"`
	WeekYear    int       `json:"weekYear"`
	WeekKey     string    `json:"weekKey"`
	Weekend     bool      `json:"weekend"`
	Holiday     bool      `json:"holiday"`
	HolidayName string    `json:"holidayName,omitempty"`
	InMonth     bool      `json:"inMonth"`
}

type holidayLookup map[int]map[string]Holiday

func (l holidayLookup) get(t time.Time) (Holiday, bool) {
	set, ok := l[t.Year()]
	if !ok {
		set = HolidaySet(t.Year())
		l[t.Year()] = set
	}
	h, ok := set[FormatDay(t)]
	return h, ok
}

func newDay(t time.Time, holidays holidayLookup) Day {
	y, w := t.ISOWeek()
	d := Day{
		Date:     t,
		Key:      FormatDay(t),
		Week:     w,
		WeekYear: y,
		WeekKey:  ISOWeekKey(t),
		Weekend:  IsWeekend(t),
	}
	if h, ok := holidays.get(t); ok {
		d.Holiday = true
		d.HolidayName = h.Name
	}
	return d
}

// NewDay derives the calendar attributes of t.
func NewDay(t time.Time) Day {
	return newDay(Truncate(t), holidayLookup{})
}

// MonthGrid returns the Monday-first weeks covering the given month. Days of
// the neighbouring months are included with InMonth false.
func MonthGrid(year int, month time.Month) [][]Day {
	first := Date(year, month, 1)
	last := first.AddDate(0, 1, -1)
	start := StartOfISOWeek(first)
	end := EndOfISOWeek(last)

	holidays := holidayLookup{}
	var weeks [][]Day
	for monday := start; !monday.After(end); monday = monday.AddDate(0, 0, 7) {
		week := make([]Day, 0, 7)
		for i := 0; i < 7; i++ {
			d := newDay(monday.AddDate(0, 0, i), holidays)
			d.InMonth = d.Date.Month() == month
			week = append(week, d)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// WeekDays returns the seven days of the ISO week named by key.
func WeekDays(key string) ([]Day, error) {
	monday, err := MondayOf(key)
	if err != nil {
		return nil, err
	}
	holidays := holidayLookup{}
	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		d := newDay(monday.AddDate(0, 0, i), holidays)
		d.InMonth = true
		days = append(days, d)
	}
	return days, nil
}
