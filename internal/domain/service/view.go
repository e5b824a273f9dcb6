package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/diegoclair/crew-planner/internal/logger"
)

var monthNames = [...]string{
	"januari", "februari", "mars", "april", "maj", "juni",
	"juli", "augusti", "september", "oktober", "november", "december",
}

type viewService struct {
	dm        contract.DataManager
	directory contract.CrewDirectory
	trucks    []string
	log       logger.Logger
}

func newViewService(dm contract.DataManager, directory contract.CrewDirectory, trucks []string, log logger.Logger) *viewService {
	return &viewService{
		dm:        dm,
		directory: directory,
		trucks:    slices.Clone(trucks),
		log:       log,
	}
}

// Reload loads a fresh Snapshot of [start, end].
func (s *viewService) Reload(ctx context.Context, start, end time.Time) (*Snapshot, error) {
	start, end = calendar.Truncate(start), calendar.Truncate(end)
	params := map[string]any{"start": calendar.FormatDay(start), "end": calendar.FormatDay(end)}

	assignments, err := s.dm.Assignment().ListInRange(ctx, start, end)
	if err != nil {
		return nil, domain.NewPersistenceError("load assignments", err, params)
	}

	segments, err := s.dm.Segment().ListInRange(ctx, start, end)
	if err != nil {
		return nil, domain.NewPersistenceError("load segments", err, params)
	}

	var segmentIDs []string
	var projectIDs []int64
	seenSegment := make(map[string]bool)
	seenProject := make(map[int64]bool)
	for _, seg := range segments {
		if !seenSegment[seg.SegmentID] {
			seenSegment[seg.SegmentID] = true
			segmentIDs = append(segmentIDs, seg.SegmentID)
		}
		if !seenProject[seg.ProjectID] {
			seenProject[seg.ProjectID] = true
			projectIDs = append(projectIDs, seg.ProjectID)
		}
	}

	spanRows, err := s.dm.Segment().ListBySegmentIDs(ctx, segmentIDs)
	if err != nil {
		return nil, domain.NewPersistenceError("load spans", err, params)
	}

	projects, err := s.dm.Project().ListByIDs(ctx, projectIDs)
	if err != nil {
		return nil, domain.NewPersistenceError("load projects", err, params)
	}

	projectRows, err := s.dm.Segment().ListByProjects(ctx, projectIDs)
	if err != nil {
		return nil, domain.NewPersistenceError("load project segments", err, params)
	}

	used, err := s.dm.BagReport().SumUsedByProjects(ctx, projectIDs)
	if err != nil {
		return nil, domain.NewPersistenceError("load bag usage", err, params)
	}

	names, err := resolveNames(ctx, s.directory, assignments)
	if err != nil {
		return nil, err
	}

	s.log.Debugw("snapshot loaded", map[string]any{
		"start":       params["start"],
		"end":         params["end"],
		"assignments": len(assignments),
		"segments":    len(segments),
	})

	return NewSnapshot(SnapshotData{
		Range:       entity.DateRange{Start: start, End: end},
		Assignments: assignments,
		Segments:    segments,
		SpanRows:    spanRows,
		ProjectRows: projectRows,
		Projects:    projects,
		Used:        used,
		Names:       names,
	}), nil
}

// Week renders the ISO week named by weekKey.
func (s *viewService) Week(ctx context.Context, weekKey string, filter contract.Filter) (*entity.Board, error) {
	days, err := calendar.WeekDays(strings.TrimSpace(weekKey))
	if err != nil {
		return nil, err
	}

	snapshot, err := s.Reload(ctx, days[0].Date, days[len(days)-1].Date)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Vecka %d, %d", days[0].Week, days[0].WeekYear)
	return snapshot.Board(title, days, s.trucks, filter), nil
}

// Month renders the Monday-first grid covering the month, neighbouring days
// included.
func (s *viewService) Month(ctx context.Context, year int, month time.Month, filter contract.Filter) (*entity.Board, error) {
	if month < time.January || month > time.December {
		return nil, &domain.ValidationError{Field: "month", Message: "must be between 1 and 12"}
	}

	var days []calendar.Day
	for _, week := range calendar.MonthGrid(year, month) {
		days = append(days, week...)
	}

	snapshot, err := s.Reload(ctx, days[0].Date, days[len(days)-1].Date)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("%s %d", monthNames[month-1], year)
	return snapshot.Board(title, days, s.trucks, filter), nil
}

// Crew resolves who runs truckID on day.
func (s *viewService) Crew(ctx context.Context, truckID string, day time.Time) (entity.Crew, error) {
	truckID = strings.TrimSpace(truckID)
	if truckID == "" {
		return entity.Crew{}, &domain.ValidationError{Field: "truckId", Message: "truck is required"}
	}

	snapshot, err := s.Reload(ctx, day, day)
	if err != nil {
		return entity.Crew{}, err
	}
	return snapshot.ResolveCrew(truckID, day), nil
}

// Trucks returns the configured truck lanes in display order.
func (s *viewService) Trucks() []string {
	return slices.Clone(s.trucks)
}
