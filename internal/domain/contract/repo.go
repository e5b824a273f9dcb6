package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/crew-planner/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Assignment() AssignmentRepo
	Segment() SegmentRepo
	Project() ProjectRepo
	BagReport() BagReportRepo
	Crew() CrewRepo
}

// AssignmentRepo defines the contract for truck assignment repository
type AssignmentRepo interface {
	Create(ctx context.Context, assignment *entity.TruckAssignment) error
	GetByID(ctx context.Context, id int64) (*entity.TruckAssignment, error)
	// FindOverlapping returns the truck's assignments intersecting [start, end], inclusive.
	FindOverlapping(ctx context.Context, truckID string, start, end time.Time) ([]*entity.TruckAssignment, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]*entity.TruckAssignment, error)
	Delete(ctx context.Context, id int64) error
}

// SegmentRepo defines the contract for scheduled segment repository
type SegmentRepo interface {
	Create(ctx context.Context, segment *entity.ScheduledSegment) error
	GetByID(ctx context.Context, id int64) (*entity.ScheduledSegment, error)
	Update(ctx context.Context, segment *entity.ScheduledSegment) error
	Delete(ctx context.Context, id int64) error
	DeleteBySegmentID(ctx context.Context, segmentID string) (int64, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]*entity.ScheduledSegment, error)
	// ListLane returns the segments on day in the truck's lane; a nil truck is the unassigned lane.
	ListLane(ctx context.Context, day time.Time, truck *string) ([]*entity.ScheduledSegment, error)
	ListBySegmentID(ctx context.Context, segmentID string) ([]*entity.ScheduledSegment, error)
	ListBySegmentIDs(ctx context.Context, segmentIDs []string) ([]*entity.ScheduledSegment, error)
	ListByProject(ctx context.Context, projectID int64) ([]*entity.ScheduledSegment, error)
	ListByProjects(ctx context.Context, projectIDs []int64) ([]*entity.ScheduledSegment, error)
}

// ProjectRepo defines the contract for project repository
type ProjectRepo interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id int64) (*entity.Project, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*entity.Project, error)
}

// BagReportRepo defines the contract for the consumption report feed
type BagReportRepo interface {
	Create(ctx context.Context, report *entity.BagReport) error
	SumUsedByProject(ctx context.Context, projectID int64) (int, error)
	SumUsedByProjects(ctx context.Context, projectIDs []int64) (map[int64]int, error)
}

// CrewRepo defines the contract for the crew member directory
type CrewRepo interface {
	Create(ctx context.Context, member *entity.CrewMember) error
	GetByID(ctx context.Context, id int64) (*entity.CrewMember, error)
	ListActive(ctx context.Context) ([]*entity.CrewMember, error)
}
