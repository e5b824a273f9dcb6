package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service.go -package=mocks

import (
	"context"
	"time"

	"github.com/diegoclair/crew-planner/internal/domain/entity"
)

// ConfirmReplaceFunc asks a human whether overlapCount existing assignments may
// be superseded. Returning false abandons the write.
type ConfirmReplaceFunc func(overlapCount int) bool

// AssignmentRequest describes a truck assignment to create or replace.
type AssignmentRequest struct {
	TruckID   string
	StartDay  time.Time
	EndDay    time.Time
	Team1ID   *int64
	Team2ID   *int64
	Team1Name string
	Team2Name string
}

// ReplaceResult is the outcome of a successful assignment write. Superseded
// holds the rows that were removed to make room.
type ReplaceResult struct {
	Assignment *entity.TruckAssignment
	Superseded []*entity.TruckAssignment
}

// PlaceRequest describes a new segment placement.
type PlaceRequest struct {
	ProjectID int64
	Day       time.Time
	Truck     *string
	JobType   string
	BagCount  *int
	Color     *string
}

// SegmentPatch carries a manual edit. Nil fields are left unchanged; Clear*
// flags reset nullable fields.
type SegmentPatch struct {
	JobType    *string
	BagCount   *int
	ClearBags  bool
	Color      *string
	ClearColor bool
}

// Filter narrows the planning board.
type Filter struct {
	Truck       string
	Salesperson string
	Search      string
}

type AssignmentService interface {
	ProbeOverlap(ctx context.Context, req AssignmentRequest) (int, error)
	CommitReplace(ctx context.Context, req AssignmentRequest) (*ReplaceResult, error)
	CreateOrReplace(ctx context.Context, req AssignmentRequest, replace bool) (*ReplaceResult, error)
	CreateWithConfirmation(ctx context.Context, req AssignmentRequest, confirm ConfirmReplaceFunc) (*ReplaceResult, error)
	CopyToNextWeek(ctx context.Context, assignmentID int64, replace bool) (*ReplaceResult, error)
	Delete(ctx context.Context, assignmentID int64) error
}

type PlacementService interface {
	Place(ctx context.Context, req PlaceRequest) (*entity.ScheduledSegment, error)
	PlaceSpan(ctx context.Context, req PlaceRequest, days int, skipNonWorking bool) ([]*entity.ScheduledSegment, error)
	Move(ctx context.Context, id int64, newDay time.Time, newTruck *string) (*entity.ScheduledSegment, error)
	MoveSpan(ctx context.Context, segmentID string, newStart time.Time, newTruck *string) ([]*entity.ScheduledSegment, error)
	Reorder(ctx context.Context, day time.Time, truck *string, orderedIDs []int64) error
	Update(ctx context.Context, id int64, patch SegmentPatch) (*entity.ScheduledSegment, error)
	Unplace(ctx context.Context, id int64) error
	UnplaceSpan(ctx context.Context, segmentID string) error
}

type BagService interface {
	ProjectStatus(ctx context.Context, projectID int64) (*entity.BagUsageStatus, error)
	ReportUsage(ctx context.Context, projectID int64, bags int, note string) (*entity.BagReport, error)
}

// CrewDirectory resolves crew member ids into display names.
type CrewDirectory interface {
	NameOf(ctx context.Context, id int64) (string, error)
}

type ViewService interface {
	Week(ctx context.Context, weekKey string, filter Filter) (*entity.Board, error)
	Month(ctx context.Context, year int, month time.Month, filter Filter) (*entity.Board, error)
	Crew(ctx context.Context, truckID string, day time.Time) (entity.Crew, error)
	Trucks() []string
}
