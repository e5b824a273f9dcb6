package entity

import "time"

// SpanRole marks a day-row's position inside a multi-day span.
type SpanRole string

const (
	SpanNone   SpanRole = ""
	SpanStart  SpanRole = "spanStart"
	SpanMiddle SpanRole = "spanMiddle"
)

// ScheduledSegment is one day-row of a project's work placed on a day and
// optionally a truck. Rows of the same multi-day span share SegmentID.
type ScheduledSegment struct {
	ID        int64     `json:"id"`
	SegmentID string    `json:"segmentId"`
	ProjectID int64     `json:"projectId"`
	Day       time.Time `json:"-"`
	Truck     *string   `json:"truck"`
	JobType   string    `json:"jobType,omitempty"`
	BagCount  *int      `json:"bagCount,omitempty"`
	Color     *string   `json:"color,omitempty"`
	SortIndex *int      `json:"sortIndex"`
	CreatedAt time.Time `json:"createdAt"`
}

// LaneKey returns the truck key of the lane the segment renders in.
func (s *ScheduledSegment) LaneKey(unassigned string) string {
	if s.Truck == nil || *s.Truck == "" {
		return unassigned
	}
	return *s.Truck
}

// Project is the work order a segment belongs to. The planner never mutates it.
type Project struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	OrderNumber      string    `json:"orderNumber"`
	Customer         string    `json:"customer"`
	SalesResponsible string    `json:"salesResponsible"`
	CreatedAt        time.Time `json:"createdAt"`
}
