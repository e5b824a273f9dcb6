package service

import (
	"slices"
	"strings"
	"time"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
)

// SnapshotData is everything a Snapshot is built from.
type SnapshotData struct {
	Range       entity.DateRange
	Assignments []*entity.TruckAssignment
	// Segments are the day-rows inside Range.
	Segments []*entity.ScheduledSegment
	// SpanRows are all rows of the spans touching Range. Defaults to Segments.
	SpanRows []*entity.ScheduledSegment
	// ProjectRows are all rows of the projects touching Range, for bag plans.
	// Defaults to Segments.
	ProjectRows []*entity.ScheduledSegment
	Projects    []*entity.Project
	Used        map[int64]int
	Names       map[int64]string
}

// Snapshot is an immutable view of the planning data for a date range. Every
// read works on the state captured at load time; call Reload for fresh data.
type Snapshot struct {
	rng         entity.DateRange
	assignments []*entity.TruckAssignment
	byDay       map[string][]*entity.ScheduledSegment
	spans       map[int64]entity.SpanRole
	projects    map[int64]*entity.Project
	bags        map[int64]*entity.BagUsageStatus
	names       map[int64]string
}

func NewSnapshot(d SnapshotData) *Snapshot {
	spanRows := d.SpanRows
	if spanRows == nil {
		spanRows = d.Segments
	}
	projectRows := d.ProjectRows
	if projectRows == nil {
		projectRows = d.Segments
	}

	s := &Snapshot{
		rng:         d.Range,
		assignments: slices.Clone(d.Assignments),
		byDay:       make(map[string][]*entity.ScheduledSegment),
		spans:       MarkSpans(spanRows),
		projects:    make(map[int64]*entity.Project, len(d.Projects)),
		bags:        make(map[int64]*entity.BagUsageStatus),
		names:       make(map[int64]string, len(d.Names)),
	}
	for _, seg := range d.Segments {
		key := calendar.FormatDay(seg.Day)
		s.byDay[key] = append(s.byDay[key], seg)
	}
	for _, p := range d.Projects {
		s.projects[p.ID] = p
	}
	for id, plan := range plansByProject(projectRows) {
		if status := ComputeBagUsageStatus(plan, d.Used[id]); status != nil {
			s.bags[id] = status
		}
	}
	for id, name := range d.Names {
		s.names[id] = name
	}
	return s
}

// Range returns the date range the snapshot was loaded for.
func (s *Snapshot) Range() entity.DateRange {
	return s.rng
}

// ResolveCrew returns the crew running truckID on day.
func (s *Snapshot) ResolveCrew(truckID string, day time.Time) entity.Crew {
	return ResolveCrew(s.assignments, truckID, calendar.Truncate(day), s.names)
}

// Board renders the given days with one lane per truck. Configured trucks come
// first in their configured order, then other trucks with segments in name
// order, then the unassigned lane when it has entries.
func (s *Snapshot) Board(title string, days []calendar.Day, trucks []string, filter contract.Filter) *entity.Board {
	board := &entity.Board{Title: title, Days: make([]*entity.BoardDay, 0, len(days))}

	for _, day := range days {
		lanes := make(map[string][]*entity.LaneEntry)
		for _, seg := range s.byDay[day.Key] {
			entry := s.entry(seg)
			if !matchesFilter(entry, filter) {
				continue
			}
			key := seg.LaneKey(domain.UnassignedLane)
			lanes[key] = append(lanes[key], entry)
		}

		boardDay := &entity.BoardDay{Day: day}
		for _, truck := range laneOrder(trucks, lanes, filter.Truck) {
			lane := &entity.Lane{Truck: truck, Entries: lanes[truck]}
			if lane.Entries == nil {
				lane.Entries = []*entity.LaneEntry{}
			}
			SortLane(lane.Entries)
			if truck != domain.UnassignedLane {
				lane.Crew = s.ResolveCrew(truck, day.Date)
			}
			boardDay.Lanes = append(boardDay.Lanes, lane)
		}
		board.Days = append(board.Days, boardDay)
	}
	return board
}

func (s *Snapshot) entry(seg *entity.ScheduledSegment) *entity.LaneEntry {
	return &entity.LaneEntry{
		Segment: seg,
		Project: s.projects[seg.ProjectID],
		Span:    s.spans[seg.ID],
		Bags:    s.bags[seg.ProjectID],
	}
}

func laneOrder(trucks []string, lanes map[string][]*entity.LaneEntry, only string) []string {
	configured := make(map[string]bool, len(trucks))
	keys := make([]string, 0, len(trucks)+len(lanes))
	for _, t := range trucks {
		configured[t] = true
		keys = append(keys, t)
	}

	var extra []string
	for key := range lanes {
		if !configured[key] && key != domain.UnassignedLane {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)
	keys = append(keys, extra...)

	if len(lanes[domain.UnassignedLane]) > 0 {
		keys = append(keys, domain.UnassignedLane)
	}

	if only == "" {
		return keys
	}
	for _, key := range keys {
		if key == only {
			return []string{key}
		}
	}
	return nil
}

func matchesFilter(entry *entity.LaneEntry, filter contract.Filter) bool {
	if sp := strings.TrimSpace(filter.Salesperson); sp != "" {
		if entry.Project == nil || !strings.EqualFold(strings.TrimSpace(entry.Project.SalesResponsible), sp) {
			return false
		}
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	if term == "" {
		return true
	}
	if entry.Project == nil {
		return false
	}
	for _, field := range []string{entry.Project.Name, entry.Project.OrderNumber, entry.Project.Customer} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
