package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func laneTrucks(day *entity.BoardDay) []string {
	var out []string
	for _, lane := range day.Lanes {
		out = append(out, lane.Truck)
	}
	return out
}

func findLane(day *entity.BoardDay, truck string) *entity.Lane {
	for _, lane := range day.Lanes {
		if lane.Truck == truck {
			return lane
		}
	}
	return nil
}

func TestSnapshot_Board(t *testing.T) {
	monday := calendar.Date(2025, time.January, 6)
	days, err := calendar.WeekDays("2025-W02")
	require.NoError(t, err)

	projects := []*entity.Project{
		{ID: 1, Name: "Villa Lindgren", OrderNumber: "101", Customer: "Lindgren", SalesResponsible: "Eva"},
		{ID: 2, Name: "Brf Åsen", OrderNumber: "202", Customer: "Brf Åsen", SalesResponsible: "Olle"},
	}
	segments := []*entity.ScheduledSegment{
		{ID: 1, SegmentID: "a", ProjectID: 1, Day: monday, Truck: strPtr("T1"), BagCount: intPtr(40)},
		{ID: 2, SegmentID: "b", ProjectID: 2, Day: monday, Truck: strPtr("X9")},
		{ID: 3, SegmentID: "c", ProjectID: 2, Day: monday.AddDate(0, 0, 1)},
	}
	snapshot := NewSnapshot(SnapshotData{
		Range:       entity.DateRange{Start: days[0].Date, End: days[6].Date},
		Assignments: []*entity.TruckAssignment{{ID: 1, TruckID: "T1", StartDay: monday, EndDay: monday.AddDate(0, 0, 4), Team1Name: "Anna", Team2ID: int64Ptr(5)}},
		Segments:    segments,
		Projects:    projects,
		Used:        map[int64]int{1: 45},
		Names:       map[int64]string{5: "Bo Ek"},
	})

	t.Run("Should order configured, extra and unassigned lanes", func(t *testing.T) {
		board := snapshot.Board("Vecka 2, 2025", days, []string{"T1", "T2"}, contract.Filter{})
		require.Len(t, board.Days, 7)
		assert.Equal(t, []string{"T1", "T2", "X9"}, laneTrucks(board.Days[0]))
		assert.Equal(t, []string{"T1", "T2", domain.UnassignedLane}, laneTrucks(board.Days[1]))

		t1 := findLane(board.Days[0], "T1")
		assert.Equal(t, entity.Crew{Member1: "Anna", Member2: "Bo Ek"}, t1.Crew)
		require.Len(t, t1.Entries, 1)
		assert.Equal(t, &entity.BagUsageStatus{Plan: 40, Used: 45, Overrun: 5}, t1.Entries[0].Bags)
		assert.NotNil(t, findLane(board.Days[0], "T2").Entries)
	})

	t.Run("Should filter by salesperson and hide the empty unassigned lane", func(t *testing.T) {
		board := snapshot.Board("", days, []string{"T1"}, contract.Filter{Salesperson: "eva"})
		assert.Equal(t, []string{"T1"}, laneTrucks(board.Days[1]))
		assert.Len(t, findLane(board.Days[0], "T1").Entries, 1)
	})

	t.Run("Should search order number and customer", func(t *testing.T) {
		board := snapshot.Board("", days, nil, contract.Filter{Search: "åsen"})
		assert.Equal(t, []string{"X9"}, laneTrucks(board.Days[0]))
		assert.Equal(t, []string{domain.UnassignedLane}, laneTrucks(board.Days[1]))

		board = snapshot.Board("", days, nil, contract.Filter{Search: "101"})
		assert.Equal(t, []string{"T1"}, laneTrucks(board.Days[0]))
	})

	t.Run("Should restrict to one truck", func(t *testing.T) {
		board := snapshot.Board("", days, []string{"T1", "T2"}, contract.Filter{Truck: "T2"})
		assert.Equal(t, []string{"T2"}, laneTrucks(board.Days[0]))
		assert.Empty(t, findLane(board.Days[0], "T2").Entries)
	})
}

func TestViewService_Week(t *testing.T) {
	ctx := context.Background()
	svc, dm := newServiceTestDB(t, "T1", "T2")
	project := seedProject(t, dm, "Villa Lindgren", "101")

	member := &entity.CrewMember{Name: "Anna Berg", IsActive: true}
	require.NoError(t, dm.Crew().Create(ctx, member))

	// a span starting the Friday before the viewed week
	_, err := svc.Placement.PlaceSpan(ctx, contract.PlaceRequest{ProjectID: project.ID, Day: calendar.Date(2025, time.January, 3), Truck: strPtr("T1"), BagCount: intPtr(30)}, 5, false)
	require.NoError(t, err)
	_, err = svc.Assignment.CreateOrReplace(ctx, contract.AssignmentRequest{
		TruckID: "T1", StartDay: calendar.Date(2025, time.January, 6), EndDay: calendar.Date(2025, time.January, 10), Team1ID: &member.ID,
	}, false)
	require.NoError(t, err)
	_, err = svc.Bags.ReportUsage(ctx, project.ID, 10, "")
	require.NoError(t, err)

	board, err := svc.View.Week(ctx, "2025-W02", contract.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "Vecka 2, 2025", board.Title)

	monday := findLane(board.Days[0], "T1")
	require.Len(t, monday.Entries, 1)
	assert.Equal(t, entity.SpanMiddle, monday.Entries[0].Span)
	assert.Equal(t, "Anna Berg", monday.Crew.Member1)
	assert.Equal(t, &entity.BagUsageStatus{Plan: 30, Used: 10, Remaining: 20}, monday.Entries[0].Bags)

	t.Run("Should fail on a malformed week key", func(t *testing.T) {
		_, err := svc.View.Week(ctx, "2025-W54", contract.Filter{})
		_, ok := domain.AsParseError(err)
		assert.True(t, ok)
	})
}

func TestViewService_Month(t *testing.T) {
	ctx := context.Background()
	svc, _ := newServiceTestDB(t, "T1")

	board, err := svc.View.Month(ctx, 2025, time.March, contract.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "mars 2025", board.Title)
	assert.Equal(t, 0, len(board.Days)%7)
	assert.Equal(t, "2025-02-24", board.Days[0].Key)
	assert.False(t, board.Days[0].InMonth)

	_, err = svc.View.Month(ctx, 2025, 13, contract.Filter{})
	_, ok := domain.AsValidationError(err)
	assert.True(t, ok)
}

func TestViewService_Reload(t *testing.T) {
	ctx := context.Background()

	t.Run("Should wrap storage failures", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		day := calendar.Date(2025, time.January, 6)
		m.mockAssignmentRepo.EXPECT().ListInRange(ctx, day, day).Return(nil, errors.New("no such table"))

		s := newViewService(m.mockDataManager, m.mockDirectory, nil, nopLog)
		_, err := s.Crew(ctx, "T1", day)
		pe, ok := domain.AsPersistenceError(err)
		require.True(t, ok)
		assert.Equal(t, "load assignments", pe.Op)
	})

	t.Run("Should reject a blank truck", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newViewService(m.mockDataManager, m.mockDirectory, nil, nopLog)
		_, err := s.Crew(ctx, " ", time.Now())
		_, ok := domain.AsValidationError(err)
		assert.True(t, ok)
	})

	t.Run("Should return a copy of the trucks", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		s := newViewService(m.mockDataManager, m.mockDirectory, []string{"T1"}, nopLog)
		trucks := s.Trucks()
		trucks[0] = "changed"
		assert.Equal(t, []string{"T1"}, s.Trucks())
	})
}
