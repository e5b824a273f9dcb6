package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/diegoclair/crew-planner/internal/logger"
)

type assignmentService struct {
	dm  contract.DataManager
	log logger.Logger
}

func newAssignmentService(dm contract.DataManager, log logger.Logger) *assignmentService {
	return &assignmentService{dm: dm, log: log}
}

// ProbeOverlap counts the assignments of the request's truck that intersect its
// range. It never writes. A positive count comes back as an OverlapConflict.
func (s *assignmentService) ProbeOverlap(ctx context.Context, req contract.AssignmentRequest) (int, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return 0, err
	}

	overlapping, err := s.dm.Assignment().FindOverlapping(ctx, req.TruckID, req.StartDay, req.EndDay)
	if err != nil {
		return 0, domain.NewPersistenceError("probe overlap", err, requestParams(req))
	}
	if len(overlapping) > 0 {
		return len(overlapping), newConflict(req.TruckID, overlapping)
	}
	return 0, nil
}

// CommitReplace deletes every assignment overlapping the request and inserts
// the new one in a single transaction. Overlaps are queried again inside the
// transaction so rows written since the probe are superseded too.
func (s *assignmentService) CommitReplace(ctx context.Context, req contract.AssignmentRequest) (*contract.ReplaceResult, error) {
	req, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	var result *contract.ReplaceResult
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		overlapping, err := tx.Assignment().FindOverlapping(ctx, req.TruckID, req.StartDay, req.EndDay)
		if err != nil {
			return fmt.Errorf("failed to find overlapping assignments: %w", err)
		}

		for _, old := range overlapping {
			if err := tx.Assignment().Delete(ctx, old.ID); err != nil {
				return fmt.Errorf("failed to delete assignment %d: %w", old.ID, err)
			}
		}

		assignment := newAssignment(req)
		if err := tx.Assignment().Create(ctx, assignment); err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		result = &contract.ReplaceResult{Assignment: assignment, Superseded: overlapping}
		return nil
	})
	if err != nil {
		return nil, domain.NewPersistenceError("replace assignment", err, requestParams(req))
	}

	s.log.Infow("assignment saved", map[string]any{
		"truck":      req.TruckID,
		"start":      calendar.FormatDay(req.StartDay),
		"end":        calendar.FormatDay(req.EndDay),
		"superseded": len(result.Superseded),
	})
	return result, nil
}

// CreateOrReplace inserts the assignment. Without replace, an overlap aborts
// the write and returns the OverlapConflict.
func (s *assignmentService) CreateOrReplace(ctx context.Context, req contract.AssignmentRequest, replace bool) (*contract.ReplaceResult, error) {
	if replace {
		return s.CommitReplace(ctx, req)
	}

	req, err := normalizeRequest(req)
	if err != nil {
		return nil, err
	}

	var result *contract.ReplaceResult
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		overlapping, err := tx.Assignment().FindOverlapping(ctx, req.TruckID, req.StartDay, req.EndDay)
		if err != nil {
			return fmt.Errorf("failed to find overlapping assignments: %w", err)
		}
		if len(overlapping) > 0 {
			return newConflict(req.TruckID, overlapping)
		}

		assignment := newAssignment(req)
		if err := tx.Assignment().Create(ctx, assignment); err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		result = &contract.ReplaceResult{Assignment: assignment}
		return nil
	})
	if conflict, ok := domain.AsOverlapConflict(err); ok {
		s.logConflict(conflict)
		return nil, conflict
	}
	if err != nil {
		return nil, domain.NewPersistenceError("create assignment", err, requestParams(req))
	}

	s.log.Infow("assignment saved", map[string]any{
		"truck": req.TruckID,
		"start": calendar.FormatDay(req.StartDay),
		"end":   calendar.FormatDay(req.EndDay),
	})
	return result, nil
}

// CreateWithConfirmation probes for overlaps and, when there are any, asks
// confirm whether they may be replaced. A refusal returns the conflict and
// leaves storage untouched.
func (s *assignmentService) CreateWithConfirmation(ctx context.Context, req contract.AssignmentRequest, confirm contract.ConfirmReplaceFunc) (*contract.ReplaceResult, error) {
	count, err := s.ProbeOverlap(ctx, req)
	conflict, isConflict := domain.AsOverlapConflict(err)
	if err != nil && !isConflict {
		return nil, err
	}

	if count == 0 {
		return s.CreateOrReplace(ctx, req, false)
	}

	if confirm == nil || !confirm(count) {
		s.logConflict(conflict)
		return nil, conflict
	}
	return s.CommitReplace(ctx, req)
}

// CopyToNextWeek duplicates an assignment seven days later.
func (s *assignmentService) CopyToNextWeek(ctx context.Context, assignmentID int64, replace bool) (*contract.ReplaceResult, error) {
	source, err := s.dm.Assignment().GetByID(ctx, assignmentID)
	if err != nil {
		return nil, domain.NewPersistenceError("get assignment", err, map[string]any{"id": assignmentID})
	}
	if source == nil {
		return nil, fmt.Errorf("assignment %d: %w", assignmentID, domain.ErrNotFound)
	}

	next := source.Range().Shift(7)
	req := contract.AssignmentRequest{
		TruckID:   source.TruckID,
		StartDay:  next.Start,
		EndDay:    next.End,
		Team1ID:   source.Team1ID,
		Team2ID:   source.Team2ID,
		Team1Name: source.Team1Name,
		Team2Name: source.Team2Name,
	}
	return s.CreateOrReplace(ctx, req, replace)
}

func (s *assignmentService) Delete(ctx context.Context, assignmentID int64) error {
	existing, err := s.dm.Assignment().GetByID(ctx, assignmentID)
	if err != nil {
		return domain.NewPersistenceError("get assignment", err, map[string]any{"id": assignmentID})
	}
	if existing == nil {
		return fmt.Errorf("assignment %d: %w", assignmentID, domain.ErrNotFound)
	}

	if err := s.dm.Assignment().Delete(ctx, assignmentID); err != nil {
		return domain.NewPersistenceError("delete assignment", err, map[string]any{"id": assignmentID})
	}

	s.log.Infow("assignment deleted", map[string]any{"id": assignmentID, "truck": existing.TruckID})
	return nil
}

func (s *assignmentService) logConflict(conflict *domain.OverlapConflict) {
	s.log.Infow("assignment overlaps existing ones", map[string]any{
		"truck": conflict.TruckID,
		"count": conflict.Count,
	})
}

func normalizeRequest(req contract.AssignmentRequest) (contract.AssignmentRequest, error) {
	req.TruckID = strings.TrimSpace(req.TruckID)
	req.Team1Name = strings.TrimSpace(req.Team1Name)
	req.Team2Name = strings.TrimSpace(req.Team2Name)

	if req.TruckID == "" {
		return req, &domain.ValidationError{Field: "truckId", Message: "truck is required"}
	}
	if req.StartDay.IsZero() {
		return req, &domain.ValidationError{Field: "startDay", Message: "start day is required"}
	}
	if req.EndDay.IsZero() {
		return req, &domain.ValidationError{Field: "endDay", Message: "end day is required"}
	}

	req.StartDay = calendar.Truncate(req.StartDay)
	req.EndDay = calendar.Truncate(req.EndDay)
	if req.EndDay.Before(req.StartDay) {
		return req, &domain.ValidationError{Field: "endDay", Message: "end day must not be before start day"}
	}

	if req.Team1ID == nil && req.Team2ID == nil && req.Team1Name == "" && req.Team2Name == "" {
		return req, &domain.ValidationError{Field: "team", Message: "at least one crew member is required"}
	}
	return req, nil
}

func newAssignment(req contract.AssignmentRequest) *entity.TruckAssignment {
	return &entity.TruckAssignment{
		TruckID:   req.TruckID,
		StartDay:  req.StartDay,
		EndDay:    req.EndDay,
		Team1ID:   req.Team1ID,
		Team2ID:   req.Team2ID,
		Team1Name: req.Team1Name,
		Team2Name: req.Team2Name,
	}
}

func newConflict(truckID string, overlapping []*entity.TruckAssignment) *domain.OverlapConflict {
	ids := make([]int64, 0, len(overlapping))
	for _, a := range overlapping {
		ids = append(ids, a.ID)
	}
	return &domain.OverlapConflict{TruckID: truckID, Count: len(overlapping), Existing: ids}
}

func requestParams(req contract.AssignmentRequest) map[string]any {
	return map[string]any{
		"truck": req.TruckID,
		"start": calendar.FormatDay(req.StartDay),
		"end":   calendar.FormatDay(req.EndDay),
	}
}
