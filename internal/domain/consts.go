package domain

import "strings"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their Swedish names
var WeekdayNames = map[int]string{
	Monday:    "måndag",
	Tuesday:   "tisdag",
	Wednesday: "onsdag",
	Thursday:  "torsdag",
	Friday:    "fredag",
	Saturday:  "lördag",
	Sunday:    "söndag",
}

// WeekdayNumbers maps weekday numbers as strings to integers
var WeekdayNumbers = map[string]int{
	"1": Monday,
	"2": Tuesday,
	"3": Wednesday,
	"4": Thursday,
	"5": Friday,
	"6": Saturday,
	"7": Sunday,
}

// UnassignedLane is the synthetic truck key for segments without a truck.
const UnassignedLane = "__UNASSIGNED__"

// Job types used by the planning board. JobType is free text, these are the
// values the board itself writes.
const (
	JobTypeDelivery    = "Leverans"
	JobTypeInbound     = "Inleverans"
	JobTypeOutbound    = "Utleverans"
	JobTypeInstall     = "Installation"
	JobTypeAfterworks  = "Efterarbete"
	DefaultSegmentDays = 1
)

// IsDeliveryJobType reports whether jobType describes an inbound or outbound delivery.
func IsDeliveryJobType(jobType string) bool {
	jt := strings.ToLower(strings.TrimSpace(jobType))
	if jt == "" {
		return false
	}
	return strings.Contains(jt, "leverans") || strings.Contains(jt, "delivery")
}
