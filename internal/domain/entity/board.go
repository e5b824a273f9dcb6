package entity

import "github.com/diegoclair/crew-planner/internal/calendar"

// Board is the rendered planning board for a week or month.
type Board struct {
	Title string      `json:"title"`
	Days  []*BoardDay `json:"days"`
}

// BoardDay is one calendar day of the board with its truck lanes.
type BoardDay struct {
	calendar.Day
	Lanes []*Lane `json:"lanes"`
}

// Lane holds the ordered segments of one (day, truck) pair.
type Lane struct {
	Truck   string       `json:"truck"`
	Crew    Crew         `json:"crew"`
	Entries []*LaneEntry `json:"entries"`
}

// LaneEntry is a segment together with what the board shows next to it.
type LaneEntry struct {
	Segment *ScheduledSegment `json:"segment"`
	Project *Project          `json:"project,omitempty"`
	Span    SpanRole          `json:"span,omitempty"`
	Bags    *BagUsageStatus   `json:"bags,omitempty"`
}

// OrderNumber returns the entry's project order number, or "".
func (e *LaneEntry) OrderNumber() string {
	if e.Project == nil {
		return ""
	}
	return e.Project.OrderNumber
}

// ProjectName returns the entry's project name, or "".
func (e *LaneEntry) ProjectName() string {
	if e.Project == nil {
		return ""
	}
	return e.Project.Name
}
