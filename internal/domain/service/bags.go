package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/diegoclair/crew-planner/internal/logger"
)

// ComputeBagUsageStatus compares a project's planned bags with what has been
// reported. It returns nil when no plan exists.
func ComputeBagUsageStatus(plan *int, used int) *entity.BagUsageStatus {
	if plan == nil {
		return nil
	}
	return &entity.BagUsageStatus{
		Plan:      *plan,
		Used:      used,
		Remaining: max(*plan-used, 0),
		Overrun:   max(used-*plan, 0),
	}
}

// PlannedBags sums the bag counts of a project's segments. Rows of one span
// share a single count, so each SegmentID contributes once. Nil when no
// segment carries a count.
func PlannedBags(segments []*entity.ScheduledSegment) *int {
	seen := make(map[string]bool, len(segments))
	var total int
	var found bool
	for _, s := range segments {
		if s.BagCount == nil || seen[s.SegmentID] {
			continue
		}
		seen[s.SegmentID] = true
		total += *s.BagCount
		found = true
	}
	if !found {
		return nil
	}
	return &total
}

// plansByProject groups segments by project and computes each plan.
func plansByProject(segments []*entity.ScheduledSegment) map[int64]*int {
	grouped := make(map[int64][]*entity.ScheduledSegment)
	for _, s := range segments {
		grouped[s.ProjectID] = append(grouped[s.ProjectID], s)
	}
	plans := make(map[int64]*int, len(grouped))
	for id, segs := range grouped {
		plans[id] = PlannedBags(segs)
	}
	return plans
}

type bagService struct {
	dm  contract.DataManager
	log logger.Logger
}

func newBagService(dm contract.DataManager, log logger.Logger) *bagService {
	return &bagService{dm: dm, log: log}
}

func (s *bagService) ProjectStatus(ctx context.Context, projectID int64) (*entity.BagUsageStatus, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	segments, err := s.dm.Segment().ListByProject(ctx, projectID)
	if err != nil {
		return nil, domain.NewPersistenceError("list project segments", err, map[string]any{"projectId": projectID})
	}

	used, err := s.dm.BagReport().SumUsedByProject(ctx, projectID)
	if err != nil {
		return nil, domain.NewPersistenceError("sum used bags", err, map[string]any{"projectId": projectID})
	}

	return ComputeBagUsageStatus(PlannedBags(segments), used), nil
}

func (s *bagService) ReportUsage(ctx context.Context, projectID int64, bags int, note string) (*entity.BagReport, error) {
	if bags <= 0 {
		return nil, &domain.ValidationError{Field: "bags", Message: "must be a positive number"}
	}
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	report := &entity.BagReport{
		ProjectID: projectID,
		Bags:      bags,
		Note:      strings.TrimSpace(note),
	}
	if err := s.dm.BagReport().Create(ctx, report); err != nil {
		return nil, domain.NewPersistenceError("report bag usage", err, map[string]any{"projectId": projectID, "bags": bags})
	}

	s.log.Infow("bag usage reported", map[string]any{"projectId": projectID, "bags": bags})
	return report, nil
}

func (s *bagService) requireProject(ctx context.Context, projectID int64) error {
	project, err := s.dm.Project().GetByID(ctx, projectID)
	if err != nil {
		return domain.NewPersistenceError("get project", err, map[string]any{"projectId": projectID})
	}
	if project == nil {
		return fmt.Errorf("project %d: %w", projectID, domain.ErrNotFound)
	}
	return nil
}
