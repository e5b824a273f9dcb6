package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/crew-planner/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	assignmentRepo contract.AssignmentRepo
	segmentRepo    contract.SegmentRepo
	projectRepo    contract.ProjectRepo
	bagReportRepo  contract.BagReportRepo
	crewRepo       contract.CrewRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := repoInstancesWithConn(db.conn)
	instance.db = db
	return instance
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		assignmentRepo: newAssignmentRepo(db),
		segmentRepo:    newSegmentRepo(db),
		projectRepo:    newProjectRepo(db),
		bagReportRepo:  newBagReportRepo(db),
		crewRepo:       newCrewRepo(db),
	}
}

func (i *instance) Assignment() contract.AssignmentRepo {
	return i.assignmentRepo
}

func (i *instance) Segment() contract.SegmentRepo {
	return i.segmentRepo
}

func (i *instance) Project() contract.ProjectRepo {
	return i.projectRepo
}

func (i *instance) BagReport() contract.BagReportRepo {
	return i.bagReportRepo
}

func (i *instance) Crew() contract.CrewRepo {
	return i.crewRepo
}

// WithTransaction executes a function within a database transaction. A
// DataManager handed to fn while a transaction is open joins that transaction.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
