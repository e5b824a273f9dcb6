package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/crew-planner/internal/domain"
	"github.com/diegoclair/crew-planner/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func TestComputeBagUsageStatus(t *testing.T) {
	tests := []struct {
		name string
		plan *int
		used int
		want *entity.BagUsageStatus
	}{
		{name: "Should return nil without a plan", plan: nil, used: 12, want: nil},
		{name: "Should report remaining bags", plan: intPtr(40), used: 10, want: &entity.BagUsageStatus{Plan: 40, Used: 10, Remaining: 30}},
		{name: "Should report an overrun", plan: intPtr(40), used: 45, want: &entity.BagUsageStatus{Plan: 40, Used: 45, Overrun: 5}},
		{name: "Should report an exact match", plan: intPtr(40), used: 40, want: &entity.BagUsageStatus{Plan: 40, Used: 40}},
		{name: "Should handle a zero plan", plan: intPtr(0), used: 3, want: &entity.BagUsageStatus{Plan: 0, Used: 3, Overrun: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBagUsageStatus(tt.plan, tt.used)
			assert.Equal(t, tt.want, got)
			if got != nil {
				assert.GreaterOrEqual(t, got.Remaining, 0)
				assert.GreaterOrEqual(t, got.Overrun, 0)
				assert.False(t, got.Remaining > 0 && got.Overrun > 0)
			}
		})
	}
}

func TestPlannedBags(t *testing.T) {
	t.Run("Should count a span once", func(t *testing.T) {
		got := PlannedBags([]*entity.ScheduledSegment{
			{SegmentID: "a", BagCount: intPtr(20)},
			{SegmentID: "a", BagCount: intPtr(20)},
			{SegmentID: "b", BagCount: intPtr(15)},
			{SegmentID: "c"},
		})
		require.NotNil(t, got)
		assert.Equal(t, 35, *got)
	})

	t.Run("Should return nil when no segment has a count", func(t *testing.T) {
		assert.Nil(t, PlannedBags([]*entity.ScheduledSegment{{SegmentID: "a"}}))
		assert.Nil(t, PlannedBags(nil))
	})
}

func TestBagService_ProjectStatus(t *testing.T) {
	ctx := context.Background()
	project := &entity.Project{ID: 7, Name: "Villa Lindgren", OrderNumber: "101"}

	tests := []struct {
		name      string
		buildMock func(m allMocks)
		want      *entity.BagUsageStatus
		wantErr   error
	}{
		{
			name: "Should compare plan and reported usage",
			buildMock: func(m allMocks) {
				m.mockProjectRepo.EXPECT().GetByID(ctx, int64(7)).Return(project, nil)
				m.mockSegmentRepo.EXPECT().ListByProject(ctx, int64(7)).Return([]*entity.ScheduledSegment{
					{SegmentID: "a", ProjectID: 7, BagCount: intPtr(40)},
				}, nil)
				m.mockBagReportRepo.EXPECT().SumUsedByProject(ctx, int64(7)).Return(45, nil)
			},
			want: &entity.BagUsageStatus{Plan: 40, Used: 45, Overrun: 5},
		},
		{
			name: "Should return nil status without a plan",
			buildMock: func(m allMocks) {
				m.mockProjectRepo.EXPECT().GetByID(ctx, int64(7)).Return(project, nil)
				m.mockSegmentRepo.EXPECT().ListByProject(ctx, int64(7)).Return(nil, nil)
				m.mockBagReportRepo.EXPECT().SumUsedByProject(ctx, int64(7)).Return(3, nil)
			},
			want: nil,
		},
		{
			name: "Should return not found for an unknown project",
			buildMock: func(m allMocks) {
				m.mockProjectRepo.EXPECT().GetByID(ctx, int64(7)).Return(nil, nil)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()
			tt.buildMock(m)

			s := newBagService(m.mockDataManager, nopLog)
			got, err := s.ProjectStatus(ctx, 7)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Should wrap storage failures", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		dbErr := errors.New("disk I/O error")
		m.mockProjectRepo.EXPECT().GetByID(ctx, int64(7)).Return(project, nil)
		m.mockSegmentRepo.EXPECT().ListByProject(ctx, int64(7)).Return(nil, dbErr)

		_, err := newBagService(m.mockDataManager, nopLog).ProjectStatus(ctx, 7)
		pe, ok := domain.AsPersistenceError(err)
		require.True(t, ok)
		assert.Equal(t, int64(7), pe.Params["projectId"])
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestBagService_ReportUsage(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject non positive counts before touching storage", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		_, err := newBagService(m.mockDataManager, nopLog).ReportUsage(ctx, 7, 0, "")
		ve, ok := domain.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "bags", ve.Field)
	})

	t.Run("Should store a report", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockProjectRepo.EXPECT().GetByID(ctx, int64(7)).Return(&entity.Project{ID: 7}, nil)
		m.mockBagReportRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.BagReport) error {
			r.ID = 3
			return nil
		})

		report, err := newBagService(m.mockDataManager, nopLog).ReportUsage(ctx, 7, 12, "  vind  ")
		require.NoError(t, err)
		assert.Equal(t, int64(3), report.ID)
		assert.Equal(t, 12, report.Bags)
		assert.Equal(t, "vind", report.Note)
	})
}
