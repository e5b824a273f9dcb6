package database

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("should commit delete and insert together", func(t *testing.T) {
		db := SetupTestDB(t)
		defer CleanupTestDB(t, db)
		dm := NewInstance(db)

		old := &entity.TruckAssignment{TruckID: "T1", StartDay: mustDay(t, "2025-01-06"), EndDay: mustDay(t, "2025-01-12"), Team1Name: "A"}
		require.NoError(t, dm.Assignment().Create(ctx, old))

		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Assignment().Delete(ctx, old.ID); err != nil {
				return err
			}
			return tx.Assignment().Create(ctx, &entity.TruckAssignment{TruckID: "T1", StartDay: mustDay(t, "2025-01-08"), EndDay: mustDay(t, "2025-01-14"), Team1Name: "B"})
		})
		require.NoError(t, err)

		rows, err := dm.Assignment().FindOverlapping(ctx, "T1", mustDay(t, "2025-01-01"), mustDay(t, "2025-01-31"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "B", rows[0].Team1Name)
	})

	t.Run("should roll back the delete when the insert fails", func(t *testing.T) {
		db := SetupTestDB(t)
		defer CleanupTestDB(t, db)
		dm := NewInstance(db)

		old := &entity.TruckAssignment{TruckID: "T1", StartDay: mustDay(t, "2025-01-06"), EndDay: mustDay(t, "2025-01-12"), Team1Name: "A"}
		require.NoError(t, dm.Assignment().Create(ctx, old))

		boom := errors.New("boom")
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Assignment().Delete(ctx, old.ID); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		found, err := dm.Assignment().GetByID(ctx, old.ID)
		require.NoError(t, err)
		assert.NotNil(t, found, "old assignment must survive a failed replace")
	})
}
