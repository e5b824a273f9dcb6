package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
)

type bagReportRepo struct {
	db dbConn
}

func newBagReportRepo(db dbConn) contract.BagReportRepo {
	return &bagReportRepo{db: db}
}

func (r *bagReportRepo) Create(ctx context.Context, report *entity.BagReport) error {
	query := `
		INSERT INTO bag_reports (project_id, bags, note, reported_at)
		VALUES (?, ?, ?, ?)
	`

	if report.ReportedAt.IsZero() {
		report.ReportedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		report.ProjectID,
		report.Bags,
		report.Note,
		report.ReportedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create bag report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	report.ID = id
	return nil
}

func (r *bagReportRepo) SumUsedByProject(ctx context.Context, projectID int64) (int, error) {
	query := `SELECT COALESCE(SUM(bags), 0) FROM bag_reports WHERE project_id = ?`

	var used int
	if err := r.db.QueryRowContext(ctx, query, projectID).Scan(&used); err != nil {
		return 0, fmt.Errorf("failed to sum bag reports: %w", err)
	}

	return used, nil
}

func (r *bagReportRepo) SumUsedByProjects(ctx context.Context, projectIDs []int64) (map[int64]int, error) {
	used := make(map[int64]int, len(projectIDs))
	if len(projectIDs) == 0 {
		return used, nil
	}

	in, args := inClause(projectIDs)
	query := `
		SELECT project_id, COALESCE(SUM(bags), 0)
		FROM bag_reports
		WHERE project_id IN (` + in + `)
		GROUP BY project_id
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to sum bag reports: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var projectID int64
		var sum int
		if err := rows.Scan(&projectID, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan bag report sum: %w", err)
		}
		used[projectID] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bag report sums: %w", err)
	}

	return used, nil
}
