package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
)

const assignmentColumns = `id, truck_id, start_day, end_day, team1_id, team2_id,
	team_member1_name, team_member2_name, created_at`

type assignmentRepo struct {
	db dbConn
}

func newAssignmentRepo(db dbConn) contract.AssignmentRepo {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *entity.TruckAssignment) error {
	query := `
		INSERT INTO truck_assignments (truck_id, start_day, end_day, team1_id, team2_id,
			team_member1_name, team_member2_name, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		assignment.TruckID,
		formatDay(assignment.StartDay),
		formatDay(assignment.EndDay),
		nullInt64(assignment.Team1ID),
		nullInt64(assignment.Team2ID),
		assignment.Team1Name,
		assignment.Team2Name,
		assignment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create truck assignment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	assignment.ID = id
	return nil
}

func (r *assignmentRepo) GetByID(ctx context.Context, id int64) (*entity.TruckAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM truck_assignments WHERE id = ?`

	assignment, err := scanAssignment(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get truck assignment: %w", err)
	}

	return assignment, nil
}

func (r *assignmentRepo) FindOverlapping(ctx context.Context, truckID string, start, end time.Time) ([]*entity.TruckAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM truck_assignments
		WHERE truck_id = ? AND start_day <= ? AND end_day >= ?
		ORDER BY start_day, id
	`

	return r.list(ctx, "overlapping truck assignments", query, truckID, formatDay(end), formatDay(start))
}

func (r *assignmentRepo) ListInRange(ctx context.Context, start, end time.Time) ([]*entity.TruckAssignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM truck_assignments
		WHERE start_day <= ? AND end_day >= ?
		ORDER BY truck_id, start_day, id
	`

	return r.list(ctx, "truck assignments", query, formatDay(end), formatDay(start))
}

func (r *assignmentRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM truck_assignments WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete truck assignment: %w", err)
	}

	return nil
}

func (r *assignmentRepo) list(ctx context.Context, what, query string, args ...any) ([]*entity.TruckAssignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", what, err)
	}
	defer rows.Close()

	var assignments []*entity.TruckAssignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan truck assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", what, err)
	}

	return assignments, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssignment(row rowScanner) (*entity.TruckAssignment, error) {
	assignment := &entity.TruckAssignment{}
	var startDay, endDay string
	var team1ID, team2ID sql.NullInt64

	err := row.Scan(
		&assignment.ID,
		&assignment.TruckID,
		&startDay,
		&endDay,
		&team1ID,
		&team2ID,
		&assignment.Team1Name,
		&assignment.Team2Name,
		&assignment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if assignment.StartDay, err = scanDay("start_day", startDay); err != nil {
		return nil, err
	}
	if assignment.EndDay, err = scanDay("end_day", endDay); err != nil {
		return nil, err
	}
	assignment.Team1ID = int64Ptr(team1ID)
	assignment.Team2ID = int64Ptr(team2ID)

	return assignment, nil
}
