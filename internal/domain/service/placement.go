package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/diegoclair/crew-planner/internal/logger"
	"github.com/google/uuid"
)

// MaxSpanDays bounds how many day-rows a single span may expand into.
const MaxSpanDays = 31

type placementService struct {
	dm    contract.DataManager
	log   logger.Logger
	newID func() string
}

func newPlacementService(dm contract.DataManager, log logger.Logger) *placementService {
	return &placementService{dm: dm, log: log, newID: uuid.NewString}
}

// Place puts a project on a day and optional truck. The new segment has no
// sort index.
func (s *placementService) Place(ctx context.Context, req contract.PlaceRequest) (*entity.ScheduledSegment, error) {
	rows, err := s.PlaceSpan(ctx, req, 1, false)
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

// PlaceSpan expands one logical segment into days day-rows sharing a
// SegmentID. With skipNonWorking the rows after the first land on workdays only.
func (s *placementService) PlaceSpan(ctx context.Context, req contract.PlaceRequest, days int, skipNonWorking bool) ([]*entity.ScheduledSegment, error) {
	if err := validatePlacement(req); err != nil {
		return nil, err
	}
	if days < 1 || days > MaxSpanDays {
		return nil, &domain.ValidationError{Field: "days", Message: fmt.Sprintf("must be between 1 and %d", MaxSpanDays)}
	}
	if err := s.requireProject(ctx, req.ProjectID); err != nil {
		return nil, err
	}

	segmentID := s.newID()
	truck := normalizeTruck(req.Truck)
	day := calendar.Truncate(req.Day)

	rows := make([]*entity.ScheduledSegment, 0, days)
	for i := 0; i < days; i++ {
		rows = append(rows, &entity.ScheduledSegment{
			SegmentID: segmentID,
			ProjectID: req.ProjectID,
			Day:       day,
			Truck:     truck,
			JobType:   strings.TrimSpace(req.JobType),
			BagCount:  req.BagCount,
			Color:     normalizeColor(req.Color),
		})
		if skipNonWorking {
			day = calendar.NextWorkday(day)
		} else {
			day = day.AddDate(0, 0, 1)
		}
	}

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, row := range rows {
			if err := tx.Segment().Create(ctx, row); err != nil {
				return fmt.Errorf("failed to create segment row: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewPersistenceError("place segment", err, map[string]any{
			"projectId": req.ProjectID,
			"day":       calendar.FormatDay(req.Day),
			"days":      days,
		})
	}

	s.log.Infow("segment placed", map[string]any{
		"segmentId": segmentID,
		"projectId": req.ProjectID,
		"day":       calendar.FormatDay(rows[0].Day),
		"days":      days,
	})
	return rows, nil
}

// Move drags a single day-row to another day and truck. When the destination
// lane already has entries the row is appended after the lane's highest sort
// index.
func (s *placementService) Move(ctx context.Context, id int64, newDay time.Time, newTruck *string) (*entity.ScheduledSegment, error) {
	if newDay.IsZero() {
		return nil, &domain.ValidationError{Field: "day", Message: "day is required"}
	}

	segment, err := s.getSegment(ctx, id)
	if err != nil {
		return nil, err
	}

	day := calendar.Truncate(newDay)
	truck := normalizeTruck(newTruck)
	if segment.Day.Equal(day) && sameTruck(segment.Truck, truck) {
		return segment, nil
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		lane, err := tx.Segment().ListLane(ctx, day, truck)
		if err != nil {
			return fmt.Errorf("failed to list destination lane: %w", err)
		}

		if idx, ok := appendIndex(lane, map[int64]bool{segment.ID: true}); ok {
			segment.SortIndex = idx
		}
		segment.Day = day
		segment.Truck = truck

		if err := tx.Segment().Update(ctx, segment); err != nil {
			return fmt.Errorf("failed to update segment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewPersistenceError("move segment", err, map[string]any{
			"id":  id,
			"day": calendar.FormatDay(day),
		})
	}

	s.log.Infow("segment moved", map[string]any{"id": id, "day": calendar.FormatDay(day), "truck": laneName(truck)})
	return segment, nil
}

// MoveSpan shifts every day-row of a span by the distance between its first
// row and newStart, and puts them all on newTruck.
func (s *placementService) MoveSpan(ctx context.Context, segmentID string, newStart time.Time, newTruck *string) ([]*entity.ScheduledSegment, error) {
	if newStart.IsZero() {
		return nil, &domain.ValidationError{Field: "day", Message: "day is required"}
	}

	rows, err := s.dm.Segment().ListBySegmentID(ctx, segmentID)
	if err != nil {
		return nil, domain.NewPersistenceError("list span", err, map[string]any{"segmentId": segmentID})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("segment %s: %w", segmentID, domain.ErrNotFound)
	}

	delta := calendar.DaysBetween(rows[0].Day, newStart)
	truck := normalizeTruck(newTruck)
	own := make(map[int64]bool, len(rows))
	for _, row := range rows {
		own[row.ID] = true
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, row := range rows {
			day := row.Day.AddDate(0, 0, delta)
			if !row.Day.Equal(day) || !sameTruck(row.Truck, truck) {
				lane, err := tx.Segment().ListLane(ctx, day, truck)
				if err != nil {
					return fmt.Errorf("failed to list destination lane: %w", err)
				}
				if idx, ok := appendIndex(lane, own); ok {
					row.SortIndex = idx
				}
			}
			row.Day = day
			row.Truck = truck
			if err := tx.Segment().Update(ctx, row); err != nil {
				return fmt.Errorf("failed to update segment row %d: %w", row.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewPersistenceError("move span", err, map[string]any{
			"segmentId": segmentID,
			"day":       calendar.FormatDay(newStart),
		})
	}

	s.log.Infow("span moved", map[string]any{"segmentId": segmentID, "days": delta, "truck": laneName(truck)})
	return rows, nil
}

// Reorder assigns sort indexes 0..n-1 to a lane in the given order. The ids
// must be exactly the lane's rows.
func (s *placementService) Reorder(ctx context.Context, day time.Time, truck *string, orderedIDs []int64) error {
	day = calendar.Truncate(day)
	truck = normalizeTruck(truck)

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		lane, err := tx.Segment().ListLane(ctx, day, truck)
		if err != nil {
			return fmt.Errorf("failed to list lane: %w", err)
		}

		byID := make(map[int64]*entity.ScheduledSegment, len(lane))
		for _, row := range lane {
			byID[row.ID] = row
		}
		if len(orderedIDs) != len(lane) {
			return &domain.ValidationError{Field: "order", Message: fmt.Sprintf("expected %d segment ids, got %d", len(lane), len(orderedIDs))}
		}

		for i, id := range orderedIDs {
			row, ok := byID[id]
			if !ok {
				return &domain.ValidationError{Field: "order", Message: fmt.Sprintf("segment %d is not in the lane or listed twice", id)}
			}
			delete(byID, id)

			index := i
			row.SortIndex = &index
			if err := tx.Segment().Update(ctx, row); err != nil {
				return fmt.Errorf("failed to update segment %d: %w", id, err)
			}
		}
		return nil
	})
	if ve, ok := domain.AsValidationError(err); ok {
		return ve
	}
	if err != nil {
		return domain.NewPersistenceError("reorder lane", err, map[string]any{
			"day":   calendar.FormatDay(day),
			"truck": laneName(truck),
		})
	}

	s.log.Infow("lane reordered", map[string]any{"day": calendar.FormatDay(day), "truck": laneName(truck), "count": len(orderedIDs)})
	return nil
}

// Update applies a manual edit. Job type, bags and color belong to the logical
// segment, so every row of its span is updated.
func (s *placementService) Update(ctx context.Context, id int64, patch contract.SegmentPatch) (*entity.ScheduledSegment, error) {
	if patch.BagCount != nil && *patch.BagCount < 0 {
		return nil, &domain.ValidationError{Field: "bagCount", Message: "must not be negative"}
	}

	segment, err := s.getSegment(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := s.dm.Segment().ListBySegmentID(ctx, segment.SegmentID)
	if err != nil {
		return nil, domain.NewPersistenceError("list span", err, map[string]any{"segmentId": segment.SegmentID})
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, row := range rows {
			applyPatch(row, patch)
			if err := tx.Segment().Update(ctx, row); err != nil {
				return fmt.Errorf("failed to update segment %d: %w", row.ID, err)
			}
			if row.ID == segment.ID {
				segment = row
			}
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewPersistenceError("update segment", err, map[string]any{"id": id})
	}
	return segment, nil
}

func (s *placementService) Unplace(ctx context.Context, id int64) error {
	if _, err := s.getSegment(ctx, id); err != nil {
		return err
	}
	if err := s.dm.Segment().Delete(ctx, id); err != nil {
		return domain.NewPersistenceError("delete segment", err, map[string]any{"id": id})
	}
	s.log.Infow("segment removed", map[string]any{"id": id})
	return nil
}

func (s *placementService) UnplaceSpan(ctx context.Context, segmentID string) error {
	deleted, err := s.dm.Segment().DeleteBySegmentID(ctx, segmentID)
	if err != nil {
		return domain.NewPersistenceError("delete span", err, map[string]any{"segmentId": segmentID})
	}
	if deleted == 0 {
		return fmt.Errorf("segment %s: %w", segmentID, domain.ErrNotFound)
	}
	s.log.Infow("span removed", map[string]any{"segmentId": segmentID, "rows": deleted})
	return nil
}

func (s *placementService) getSegment(ctx context.Context, id int64) (*entity.ScheduledSegment, error) {
	segment, err := s.dm.Segment().GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewPersistenceError("get segment", err, map[string]any{"id": id})
	}
	if segment == nil {
		return nil, fmt.Errorf("segment %d: %w", id, domain.ErrNotFound)
	}
	return segment, nil
}

func (s *placementService) requireProject(ctx context.Context, projectID int64) error {
	project, err := s.dm.Project().GetByID(ctx, projectID)
	if err != nil {
		return domain.NewPersistenceError("get project", err, map[string]any{"projectId": projectID})
	}
	if project == nil {
		return &domain.ValidationError{Field: "projectId", Message: fmt.Sprintf("project %d does not exist", projectID)}
	}
	return nil
}

func validatePlacement(req contract.PlaceRequest) error {
	if req.ProjectID <= 0 {
		return &domain.ValidationError{Field: "projectId", Message: "project is required"}
	}
	if req.Day.IsZero() {
		return &domain.ValidationError{Field: "day", Message: "day is required"}
	}
	if req.BagCount != nil && *req.BagCount < 0 {
		return &domain.ValidationError{Field: "bagCount", Message: "must not be negative"}
	}
	return nil
}

// appendIndex returns the sort index that puts a row last in lane, ignoring
// the rows in skip. ok is false when the lane has no other rows, meaning the
// row keeps its index. A lane without any index yields nil.
func appendIndex(lane []*entity.ScheduledSegment, skip map[int64]bool) (idx *int, ok bool) {
	var highest *int
	for _, row := range lane {
		if skip[row.ID] {
			continue
		}
		ok = true
		if row.SortIndex != nil && (highest == nil || *row.SortIndex > *highest) {
			highest = row.SortIndex
		}
	}
	if !ok || highest == nil {
		return nil, ok
	}
	next := *highest + 1
	return &next, true
}

func applyPatch(row *entity.ScheduledSegment, patch contract.SegmentPatch) {
	if patch.JobType != nil {
		row.JobType = strings.TrimSpace(*patch.JobType)
	}
	switch {
	case patch.ClearBags:
		row.BagCount = nil
	case patch.BagCount != nil:
		bags := *patch.BagCount
		row.BagCount = &bags
	}
	switch {
	case patch.ClearColor:
		row.Color = nil
	case patch.Color != nil:
		row.Color = normalizeColor(patch.Color)
	}
}

// normalizeTruck maps blank and the unassigned lane key to nil.
func normalizeTruck(truck *string) *string {
	if truck == nil {
		return nil
	}
	t := strings.TrimSpace(*truck)
	if t == "" || t == domain.UnassignedLane {
		return nil
	}
	return &t
}

func normalizeColor(color *string) *string {
	if color == nil {
		return nil
	}
	c := strings.TrimSpace(*color)
	if c == "" {
		return nil
	}
	return &c
}

func sameTruck(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func laneName(truck *string) string {
	if truck == nil {
		return domain.UnassignedLane
	}
	return *truck
}
