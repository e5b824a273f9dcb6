package entity

import "time"

// TruckAssignment says which crew runs a truck over an inclusive date range.
// A slot may carry a directory id, a free-text name, or both.
type TruckAssignment struct {
	ID        int64     `json:"id"`
	TruckID   string    `json:"truckId"`
	StartDay  time.Time `json:"-"`
	EndDay    time.Time `json:"-"`
	Team1ID   *int64    `json:"team1Id,omitempty"`
	Team2ID   *int64    `json:"team2Id,omitempty"`
	Team1Name string    `json:"teamMember1Name,omitempty"`
	Team2Name string    `json:"teamMember2Name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Covers reports whether day lies in [StartDay, EndDay].
func (a *TruckAssignment) Covers(day time.Time) bool {
	return !day.Before(a.StartDay) && !day.After(a.EndDay)
}

// Range returns the assignment's date range.
func (a *TruckAssignment) Range() DateRange {
	return DateRange{Start: a.StartDay, End: a.EndDay}
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Empty reports whether the range contains no day.
func (r DateRange) Empty() bool {
	return r.End.Before(r.Start)
}

// Overlaps reports whether r and o share at least one day.
func (r DateRange) Overlaps(o DateRange) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return !r.Start.After(o.End) && !r.End.Before(o.Start)
}

// Shift moves both ends by days.
func (r DateRange) Shift(days int) DateRange {
	return DateRange{Start: r.Start.AddDate(0, 0, days), End: r.End.AddDate(0, 0, days)}
}

// Crew is the resolved pair of names running a truck on a day.
type Crew struct {
	Member1 string `json:"member1"`
	Member2 string `json:"member2"`
}

// Empty reports whether no one is assigned.
func (c Crew) Empty() bool {
	return c.Member1 == "" && c.Member2 == ""
}

// CrewMember is a directory entry for an installer.
type CrewMember struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
