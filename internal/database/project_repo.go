package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
)

type projectRepo struct {
	db dbConn
}

func newProjectRepo(db dbConn) contract.ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *entity.Project) error {
	query := `
		INSERT INTO projects (name, order_number, customer, sales_responsible, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query,
		project.Name,
		project.OrderNumber,
		project.Customer,
		project.SalesResponsible,
		project.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	project.ID = id
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, id int64) (*entity.Project, error) {
	project := &entity.Project{}
	query := `
		SELECT id, name, order_number, customer, sales_responsible, created_at
		FROM projects
		WHERE id = ?
	`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.OrderNumber,
		&project.Customer,
		&project.SalesResponsible,
		&project.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

func (r *projectRepo) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	in, args := inClause(ids)
	query := `
		SELECT id, name, order_number, customer, sales_responsible, created_at
		FROM projects
		WHERE id IN (` + in + `)
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	defer rows.Close()

	var projects []*entity.Project
	for rows.Next() {
		project := &entity.Project{}
		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.OrderNumber,
			&project.Customer,
			&project.SalesResponsible,
			&project.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}
