package service

import (
	"testing"
	"time"

	"github.com/diegoclair/workout-reminder-bot/internal/catalog"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/workout"
	"github.com/diegoclair/workout-reminder-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockStateRepo   *mocks.MockStateRepo
	mockSlackClient *mocks.MockSlackClient
	mockPlanLoader  *mocks.MockPlanLoader
	mockDelivery    *mocks.MockDeliveryService
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	stateRepo := mocks.NewMockStateRepo(ctrl)
	dm.EXPECT().State().Return(stateRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockStateRepo:   stateRepo,
		mockSlackClient: mocks.NewMockSlackClient(ctrl),
		mockPlanLoader:  mocks.NewMockPlanLoader(ctrl),
		mockDelivery:    mocks.NewMockDeliveryService(ctrl),
	}

	return
}

// newTestWorkout wires a workout service on the mocks with the embedded catalog and a fixed clock
func newTestWorkout(t *testing.T, m allMocks, now time.Time) *workoutService {
	t.Helper()

	c, err := catalog.Default()
	require.NoError(t, err)

	s := newWorkout(m.mockDataManager, m.mockDelivery, m.mockPlanLoader, workout.NewRenderer(c), Options{
		PlanPath:        "plan.xlsx",
		MaxMessageChars: 1500,
		Location:        time.UTC,
	}, zap.NewNop())
	require.NotNil(t, s)

	s.now = func() time.Time { return now }
	return s
}
