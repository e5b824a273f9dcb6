package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
)

const segmentColumns = `id, segment_id, project_id, day, truck, job_type, bag_count, color,
	sort_index, created_at`

type segmentRepo struct {
	db dbConn
}

func newSegmentRepo(db dbConn) contract.SegmentRepo {
	return &segmentRepo{db: db}
}

func (r *segmentRepo) Create(ctx context.Context, segment *entity.ScheduledSegment) error {
	query := `
		INSERT INTO scheduled_segments (segment_id, project_id, day, truck, job_type,
			bag_count, color, sort_index, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	if segment.CreatedAt.IsZero() {
		segment.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		segment.SegmentID,
		segment.ProjectID,
		formatDay(segment.Day),
		nullString(segment.Truck),
		segment.JobType,
		nullInt(segment.BagCount),
		nullString(segment.Color),
		nullInt(segment.SortIndex),
		segment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create segment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	segment.ID = id
	return nil
}

func (r *segmentRepo) GetByID(ctx context.Context, id int64) (*entity.ScheduledSegment, error) {
	query := `SELECT ` + segmentColumns + ` FROM scheduled_segments WHERE id = ?`

	segment, err := scanSegment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get segment: %w", err)
	}

	return segment, nil
}

func (r *segmentRepo) Update(ctx context.Context, segment *entity.ScheduledSegment) error {
	query := `
		UPDATE scheduled_segments SET
			day = ?,
			truck = ?,
			job_type = ?,
			bag_count = ?,
			color = ?,
			sort_index = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		formatDay(segment.Day),
		nullString(segment.Truck),
		segment.JobType,
		nullInt(segment.BagCount),
		nullString(segment.Color),
		nullInt(segment.SortIndex),
		segment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update segment: %w", err)
	}

	return nil
}

func (r *segmentRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM scheduled_segments WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete segment: %w", err)
	}

	return nil
}

func (r *segmentRepo) DeleteBySegmentID(ctx context.Context, segmentID string) (int64, error) {
	query := `DELETE FROM scheduled_segments WHERE segment_id = ?`

	result, err := r.db.ExecContext(ctx, query, segmentID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete span: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}

func (r *segmentRepo) ListInRange(ctx context.Context, start, end time.Time) ([]*entity.ScheduledSegment, error) {
	query := `
		SELECT ` + segmentColumns + `
		FROM scheduled_segments
		WHERE day BETWEEN ? AND ?
		ORDER BY day, id
	`

	return r.list(ctx, "segments in range", query, formatDay(start), formatDay(end))
}

func (r *segmentRepo) ListLane(ctx context.Context, day time.Time, truck *string) ([]*entity.ScheduledSegment, error) {
	if truck == nil {
		query := `
			SELECT ` + segmentColumns + `
			FROM scheduled_segments
			WHERE day = ? AND (truck IS NULL OR truck = '')
			ORDER BY id
		`
		return r.list(ctx, "unassigned lane", query, formatDay(day))
	}

	query := `
		SELECT ` + segmentColumns + `
		FROM scheduled_segments
		WHERE day = ? AND truck = ?
		ORDER BY id
	`
	return r.list(ctx, "lane", query, formatDay(day), *truck)
}

func (r *segmentRepo) ListBySegmentID(ctx context.Context, segmentID string) ([]*entity.ScheduledSegment, error) {
	query := `
		SELECT ` + segmentColumns + `
		FROM scheduled_segments
		WHERE segment_id = ?
		ORDER BY day, id
	`

	return r.list(ctx, "span segments", query, segmentID)
}

func (r *segmentRepo) ListBySegmentIDs(ctx context.Context, segmentIDs []string) ([]*entity.ScheduledSegment, error) {
	if len(segmentIDs) == 0 {
		return nil, nil
	}

	in, args := inClause(segmentIDs)
	query := `
		SELECT ` + segmentColumns + `
		FROM scheduled_segments
		WHERE segment_id IN (` + in + `)
		ORDER BY segment_id, day, id
	`

	return r.list(ctx, "span segments", query, args...)
}

func (r *segmentRepo) ListByProjects(ctx context.Context, projectIDs []int64) ([]*entity.ScheduledSegment, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}

	in, args := inClause(projectIDs)
	query := `
		SELECT ` + segmentColumns + `
		FROM scheduled_segments
		WHERE project_id IN (` + in + `)
		ORDER BY project_id, day, id
	`

	return r.list(ctx, "project segments", query, args...)
}

func (r *segmentRepo) ListByProject(ctx context.Context, projectID int64) ([]*entity.ScheduledSegment, error) {
	query := `
		SELECT ` + segmentColumns + `
		FROM scheduled_segments
		WHERE project_id = ?
		ORDER BY day, id
	`

	return r.list(ctx, "project segments", query, projectID)
}

func (r *segmentRepo) list(ctx context.Context, what, query string, args ...any) ([]*entity.ScheduledSegment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	defer rows.Close()

	var segments []*entity.ScheduledSegment
	for rows.Next() {
		segment, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan segment: %w", err)
		}
		segments = append(segments, segment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", what, err)
	}

	return segments, nil
}

func scanSegment(row rowScanner) (*entity.ScheduledSegment, error) {
	segment := &entity.ScheduledSegment{}
	var day string
	var truck, color sql.NullString
	var bagCount, sortIndex sql.NullInt64

	err := row.Scan(
		&segment.ID,
		&segment.SegmentID,
		&segment.ProjectID,
		&day,
		&truck,
		&segment.JobType,
		&bagCount,
		&color,
		&sortIndex,
		&segment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if segment.Day, err = scanDay("day", day); err != nil {
		return nil, err
	}
	if truck.Valid && truck.String != "" {
		segment.Truck = stringPtr(truck)
	}
	segment.BagCount = intPtr(bagCount)
	segment.Color = stringPtr(color)
	segment.SortIndex = intPtr(sortIndex)

	return segment, nil
}
