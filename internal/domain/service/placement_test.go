package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func seedProject(t *testing.T, dm contract.DataManager, name, orderNumber string) *entity.Project {
	t.Helper()
	p := &entity.Project{Name: name, OrderNumber: orderNumber, Customer: "Brf " + name, SalesResponsible: "Eva"}
	require.NoError(t, dm.Project().Create(context.Background(), p))
	return p
}

func TestPlacementService_Place(t *testing.T) {
	ctx := context.Background()
	svc, dm := newServiceTestDB(t, "T1")
	project := seedProject(t, dm, "Villa Lindgren", "101")
	day := calendar.Date(2025, time.January, 8)

	t.Run("Should place without sort index", func(t *testing.T) {
		seg, err := svc.Placement.Place(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: day, Truck: strPtr("T1"), JobType: domain.JobTypeInstall, BagCount: intPtr(40)})
		require.NoError(t, err)
		assert.NotZero(t, seg.ID)
		assert.NotEmpty(t, seg.SegmentID)
		assert.Nil(t, seg.SortIndex)
		assert.Equal(t, "T1", *seg.Truck)
	})

	t.Run("Should map the unassigned key to no truck", func(t *testing.T) {
		seg, err := svc.Placement.Place(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: day, Truck: strPtr(domain.UnassignedLane)})
		require.NoError(t, err)
		assert.Nil(t, seg.Truck)
	})

	t.Run("Should reject an unknown project", func(t *testing.T) {
		_, err := svc.Placement.Place(ctx, contract.PlaceRequest{ProjectID: 999, Day: day})
		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "projectId", ve.Field)
	})

	t.Run("Should reject negative bags", func(t *testing.T) {
		_, err := svc.Placement.Place(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: day, BagCount: intPtr(-1)})
		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
	})
}

func TestPlacementService_PlaceSpan(t *testing.T) {
	ctx := context.Background()
	svc, dm := newServiceTestDB(t, "T1")
	project := seedProject(t, dm, "Villa Lindgren", "101")

	t.Run("Should skip weekends and holidays", func(t *testing.T) {
		// Thursday before Easter 2025
		rows, err := svc.Placement.PlaceSpan(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: calendar.Date(2025, time.April, 17), Truck: strPtr("T1")}, 3, true)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, calendar.Date(2025, time.April, 17), rows[0].Day)
		assert.Equal(t, calendar.Date(2025, time.April, 22), rows[1].Day)
		assert.Equal(t, calendar.Date(2025, time.April, 23), rows[2].Day)
		for _, row := range rows {
			assert.Equal(t, rows[0].SegmentID, row.SegmentID)
		}
	})

	t.Run("Should use consecutive days otherwise", func(t *testing.T) {
		rows, err := svc.Placement.PlaceSpan(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: calendar.Date(2025, time.January, 10)}, 3, false)
		require.NoError(t, err)
		assert.Equal(t, calendar.Date(2025, time.January, 12), rows[2].Day)
	})

	t.Run("Should bound the number of days", func(t *testing.T) {
		_, err := svc.Placement.PlaceSpan(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: calendar.Date(2025, time.January, 10)}, 0, false)
		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
		_, err = svc.Placement.PlaceSpan(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: calendar.Date(2025, time.January, 10)}, MaxSpanDays+1, false)
		_, ok = domain.AsValidationError(err)
		assert.True(t, ok)
	})
}

func TestPlacementService_Move(t *testing.T) {
	ctx := context.Background()
	svc, dm := newServiceTestDB(t, "T1", "T2")
	project := seedProject(t, dm, "Villa Lindgren", "101")
	day := calendar.Date(2025, time.January, 8)

	place := func(truck string) *entity.ScheduledSegment {
		seg, err := svc.Placement.Place(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: day, Truck: strPtr(truck)})
		require.NoError(t, err)
		return seg
	}

	a := place("T1")
	b := place("T1")
	moving := place("T2")

	t.Run("Should keep a nil index when no one in the lane has one", func(t *testing.T) {
		moved, err := svc.Placement.Move(ctx, moving.ID, day, strPtr("T1"))
		require.NoError(t, err)
		assert.Nil(t, moved.SortIndex)
		assert.Equal(t, "T1", *moved.Truck)
	})

	t.Run("Should append after the highest index", func(t *testing.T) {
		require.NoError(t, svc.Placement.Reorder(ctx, day, strPtr("T1"), []int64{b.ID, a.ID, moving.ID}))

		other := place("T2")
		moved, err := svc.Placement.Move(ctx, other.ID, day, strPtr("T1"))
		require.NoError(t, err)
		require.NotNil(t, moved.SortIndex)
		assert.Equal(t, 3, *moved.SortIndex)
	})

	t.Run("Should keep the index when the destination lane is empty", func(t *testing.T) {
		moved, err := svc.Placement.Move(ctx, a.ID, day.AddDate(0, 0, 1), nil)
		require.NoError(t, err)
		require.NotNil(t, moved.SortIndex)
		assert.Equal(t, 1, *moved.SortIndex)
		assert.Nil(t, moved.Truck)
	})

	t.Run("Should return not found for an unknown segment", func(t *testing.T) {
		_, err := svc.Placement.Move(ctx, 9999, day, nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPlacementService_MoveSpan(t *testing.T) {
	ctx := context.Background()
	svc, dm := newServiceTestDB(t, "T1", "T2")
	project := seedProject(t, dm, "Villa Lindgren", "101")

	rows, err := svc.Placement.PlaceSpan(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: calendar.Date(2025, time.January, 7), Truck: strPtr("T1")}, 3, false)
	require.NoError(t, err)

	moved, err := svc.Placement.MoveSpan(ctx, rows[0].SegmentID, calendar.Date(2025, time.January, 14), strPtr("T2"))
	require.NoError(t, err)
	require.Len(t, moved, 3)
	for i, row := range moved {
		assert.Equal(t, calendar.Date(2025, time.January, 14+i), row.Day)
		assert.Equal(t, "T2", *row.Truck)
	}

	_, err = svc.Placement.MoveSpan(ctx, "missing", calendar.Date(2025, time.January, 14), nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlacementService_Reorder(t *testing.T) {
	ctx := context.Background()
	svc, dm := newServiceTestDB(t, "T1")
	project := seedProject(t, dm, "Villa Lindgren", "101")
	day := calendar.Date(2025, time.January, 8)

	var ids []int64
	for i := 0; i < 3; i++ {
		seg, err := svc.Placement.Place(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: day, Truck: strPtr("T1")})
		require.NoError(t, err)
		ids = append(ids, seg.ID)
	}

	t.Run("Should reject an incomplete order", func(t *testing.T) {
		err := svc.Placement.Reorder(ctx, day, strPtr("T1"), ids[:2])
		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
	})

	t.Run("Should reject duplicates", func(t *testing.T) {
		err := svc.Placement.Reorder(ctx, day, strPtr("T1"), []int64{ids[0], ids[0], ids[1]})
		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
	})

	t.Run("Should number the lane from zero", func(t *testing.T) {
		require.NoError(t, svc.Placement.Reorder(ctx, day, strPtr("T1"), []int64{ids[2], ids[0], ids[1]}))
		for want, id := range []int64{ids[2], ids[0], ids[1]} {
			seg, err := dm.Segment().GetByID(ctx, id)
			require.NoError(t, err)
			require.NotNil(t, seg.SortIndex)
			assert.Equal(t, want, *seg.SortIndex)
		}
	})
}

func TestPlacementService_UpdateAndUnplace(t *testing.T) {
	ctx := context.Background()
	svc, dm := newServiceTestDB(t, "T1")
	project := seedProject(t, dm, "Villa Lindgren", "101")

	rows, err := svc.Placement.PlaceSpan(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: calendar.Date(2025, time.January, 7), Color: strPtr("#ff0000")}, 2, false)
	require.NoError(t, err)

	t.Run("Should apply an edit to every row of the span", func(t *testing.T) {
		updated, err := svc.Placement.Update(ctx, rows[1].ID, contract.SegmentPatch{JobType: strPtr(domain.JobTypeDelivery), BagCount: intPtr(25), ClearColor: true})
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, updated.ID)

		span, err := dm.Segment().ListBySegmentID(ctx, rows[0].SegmentID)
		require.NoError(t, err)
		for _, row := range span {
			assert.Equal(t, domain.JobTypeDelivery, row.JobType)
			assert.Equal(t, 25, *row.BagCount)
			assert.Nil(t, row.Color)
		}

		status, err := svc.Bags.ProjectStatus(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, 25, status.Plan)
	})

	t.Run("Should remove a single row", func(t *testing.T) {
		require.NoError(t, svc.Placement.Unplace(ctx, rows[1].ID))
		assert.ErrorIs(t, svc.Placement.Unplace(ctx, rows[1].ID), domain.ErrNotFound)
	})

	t.Run("Should remove a whole span", func(t *testing.T) {
		require.NoError(t, svc.Placement.UnplaceSpan(ctx, rows[0].SegmentID))
		assert.ErrorIs(t, svc.Placement.UnplaceSpan(ctx, rows[0].SegmentID), domain.ErrNotFound)
	})
}

func TestAppendIndex(t *testing.T) {
	tests := []struct {
		name   string
		lane   []*entity.ScheduledSegment
		want   *int
		wantOK bool
	}{
		{name: "Should report an empty lane", lane: nil, want: nil, wantOK: false},
		{name: "Should ignore the moving row", lane: []*entity.ScheduledSegment{{ID: 1, SortIndex: intPtr(4)}}, want: nil, wantOK: false},
		{name: "Should return nil when no row has an index", lane: []*entity.ScheduledSegment{{ID: 2}}, want: nil, wantOK: true},
		{name: "Should append after the maximum", lane: []*entity.ScheduledSegment{{ID: 2, SortIndex: intPtr(1)}, {ID: 3}, {ID: 4, SortIndex: intPtr(5)}}, want: intPtr(6), wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := appendIndex(tt.lane, map[int64]bool{1: true})
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
