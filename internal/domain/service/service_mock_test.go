package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/crew-planner/internal/database"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/logger"
	"github.com/diegoclair/crew-planner/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var nopLog logger.Logger = logger.NopLogger{}

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockAssignmentRepo *mocks.MockAssignmentRepo
	mockSegmentRepo    *mocks.MockSegmentRepo
	mockProjectRepo    *mocks.MockProjectRepo
	mockBagReportRepo  *mocks.MockBagReportRepo
	mockCrewRepo       *mocks.MockCrewRepo
	mockDirectory      *mocks.MockCrewDirectory
	mockSlackClient    *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	assignmentRepo := mocks.NewMockAssignmentRepo(ctrl)
	dm.EXPECT().Assignment().Return(assignmentRepo).AnyTimes()

	segmentRepo := mocks.NewMockSegmentRepo(ctrl)
	dm.EXPECT().Segment().Return(segmentRepo).AnyTimes()

	projectRepo := mocks.NewMockProjectRepo(ctrl)
	dm.EXPECT().Project().Return(projectRepo).AnyTimes()

	bagReportRepo := mocks.NewMockBagReportRepo(ctrl)
	dm.EXPECT().BagReport().Return(bagReportRepo).AnyTimes()

	crewRepo := mocks.NewMockCrewRepo(ctrl)
	dm.EXPECT().Crew().Return(crewRepo).AnyTimes()

	// transactions run against the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockAssignmentRepo: assignmentRepo,
		mockSegmentRepo:    segmentRepo,
		mockProjectRepo:    projectRepo,
		mockBagReportRepo:  bagReportRepo,
		mockCrewRepo:       crewRepo,
		mockDirectory:      mocks.NewMockCrewDirectory(ctrl),
		mockSlackClient:    mocks.NewMockSlackClient(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, m.mockDirectory, []string{"T1", "T2"}, logger.NopLogger{})
	require.NotNil(t, instance)

	return
}

// newServiceTestDB returns a service instance on a migrated in-memory database.
func newServiceTestDB(t *testing.T, trucks ...string) (*Instance, contract.DataManager) {
	t.Helper()

	db := database.SetupTestDB(t)
	t.Cleanup(func() { database.CleanupTestDB(t, db) })

	dm := database.NewInstance(db)
	directory := NewCrewDirectory(dm, time.Minute)
	return NewInstance(dm, directory, trucks, logger.NopLogger{}), dm
}
