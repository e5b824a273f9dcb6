package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
)

type crewRepo struct {
	db dbConn
}

func newCrewRepo(db dbConn) contract.CrewRepo {
	return &crewRepo{db: db}
}

func (r *crewRepo) Create(ctx context.Context, member *entity.CrewMember) error {
	query := `INSERT INTO crew_members (name, is_active, created_at) VALUES (?, ?, ?)`

	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx, query, member.Name, member.IsActive, member.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create crew member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	member.ID = id
	return nil
}

func (r *crewRepo) GetByID(ctx context.Context, id int64) (*entity.CrewMember, error) {
	member := &entity.CrewMember{}
	query := `SELECT id, name, is_active, created_at FROM crew_members WHERE id = ?`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.IsActive,
		&member.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get crew member: %w", err)
	}

	return member, nil
}

func (r *crewRepo) ListActive(ctx context.Context) ([]*entity.CrewMember, error) {
	query := `
		SELECT id, name, is_active, created_at
		FROM crew_members
		WHERE is_active = 1
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active crew members: %w", err)
	}
	defer rows.Close()

	var members []*entity.CrewMember
	for rows.Next() {
		member := &entity.CrewMember{}
		if err := rows.Scan(&member.ID, &member.Name, &member.IsActive, &member.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan crew member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate crew members: %w", err)
	}

	return members, nil
}
