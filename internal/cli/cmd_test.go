package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/workout-reminder-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeScheduler struct {
	ran  bool
	next time.Time
}

func (f *fakeScheduler) Spec() string { return "0 0 7 * * *" }

func (f *fakeScheduler) NextRun(now time.Time) (time.Time, error) { return f.next, nil }

func (f *fakeScheduler) Run(ctx context.Context) error {
	f.ran = true
	return nil
}

type fakeHandler struct{}

func (fakeHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("command"))
}

func (fakeHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}

type cliMocks struct {
	workout   *mocks.MockWorkoutService
	delivery  *mocks.MockDeliveryService
	scheduler *fakeScheduler
}

func testApp(t *testing.T) (*App, cliMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := cliMocks{
		workout:   mocks.NewMockWorkoutService(ctrl),
		delivery:  mocks.NewMockDeliveryService(ctrl),
		scheduler: &fakeScheduler{next: time.Date(2024, 1, 4, 7, 0, 0, 0, time.UTC)},
	}

	return &App{
		Workout:   m.workout,
		Delivery:  m.delivery,
		Scheduler: m.scheduler,
		Handler:   fakeHandler{},
		Port:      "0",
		Log:       zap.NewNop(),
	}, m
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCmd_NoSubcommandPrintsUsage(t *testing.T) {
	app, _ := testApp(t)

	out, err := executeCmd(t, app)

	require.NoError(t, err)
	assert.Contains(t, out, "list-keys")
	assert.Contains(t, out, "send-today")
}

func TestListKeysCmd(t *testing.T) {
	app, m := testApp(t)
	m.workout.EXPECT().ListAliases(gomock.Any()).Return([]entity.AliasEntry{
		{Alias: "push1", Day: "Push Day"},
		{Alias: "cardio", Day: "Cardio"},
	}, nil).Times(1)

	out, err := executeCmd(t, app, "list-keys")

	require.NoError(t, err)
	assert.Contains(t, out, "push1")
	assert.Contains(t, out, "→ Push Day")
	assert.Contains(t, out, "→ Cardio")
}

func TestSendKeyCmd(t *testing.T) {
	t.Run("should report the sent day", func(t *testing.T) {
		app, m := testApp(t)
		m.workout.EXPECT().SendAlias(gomock.Any(), "push1").Return(&entity.Dispatch{
			RunID: "run-1",
			Day:   "Push Day",
			Parts: []entity.MessagePart{{Index: 1, Total: 1}},
			Deliveries: []entity.Delivery{
				{Recipient: "C1", PartIndex: 1},
				{Recipient: "U2", PartIndex: 1},
			},
		}, nil).Times(1)

		out, err := executeCmd(t, app, "send-key", "push1")

		require.NoError(t, err)
		assert.Contains(t, out, "Push Day")
		assert.Contains(t, out, "1 part(s) to 2 recipient(s)")
	})

	t.Run("should list options and exit cleanly for an unknown alias", func(t *testing.T) {
		app, m := testApp(t)
		m.workout.EXPECT().
			SendAlias(gomock.Any(), "push2").
			Return(nil, &domain.LookupError{Kind: "Alias", Key: "push2", Options: []string{"push1", "push"}}).Times(1)

		out, err := executeCmd(t, app, "send-key", "push2")

		require.NoError(t, err)
		assert.Contains(t, out, "Alias 'push2' not found.")
		assert.Contains(t, out, "Options: push1, push")
	})

	t.Run("should require exactly one alias", func(t *testing.T) {
		app, _ := testApp(t)

		_, err := executeCmd(t, app, "send-key")

		require.Error(t, err)
	})
}

func TestSendDayCmd(t *testing.T) {
	app, m := testApp(t)
	m.workout.EXPECT().
		SendDay(gomock.Any(), "Leg Day").
		Return(&entity.Dispatch{Day: "Leg Day"}, nil).Times(1)

	out, err := executeCmd(t, app, "send-day", "Leg", "Day")

	require.NoError(t, err)
	assert.Contains(t, out, "Leg Day")
}

func TestSendTodayCmd(t *testing.T) {
	t.Run("should fail on invalid credentials", func(t *testing.T) {
		app, m := testApp(t)
		m.workout.EXPECT().SendToday(gomock.Any()).Return(nil, domain.ErrAuth).Times(1)

		_, err := executeCmd(t, app, "send-today")

		require.ErrorIs(t, err, domain.ErrAuth)
	})

	t.Run("should propagate plan errors", func(t *testing.T) {
		app, m := testApp(t)
		m.workout.EXPECT().SendToday(gomock.Any()).Return(nil, domain.ErrPlanLoad).Times(1)

		_, err := executeCmd(t, app, "send-today")

		require.ErrorIs(t, err, domain.ErrPlanLoad)
	})
}

func TestPreviewCmd(t *testing.T) {
	preview := &entity.Preview{
		Day: "Leg Day",
		Parts: []entity.MessagePart{
			{Index: 1, Total: 2, Text: "(Part 1/2)\n\n📅 *Leg Day*"},
			{Index: 2, Total: 2, Text: "(Part 2/2)\n\n🧊 *Cool-down*"},
		},
	}

	t.Run("should print today's parts", func(t *testing.T) {
		app, m := testApp(t)
		m.workout.EXPECT().Preview(gomock.Any()).Return(preview, nil).Times(1)

		out, err := executeCmd(t, app, "preview")

		require.NoError(t, err)
		assert.Contains(t, out, "(Part 1/2)")
		assert.Contains(t, out, "(Part 2/2)")
		assert.Contains(t, out, "Leg Day, 2 part(s)")
	})

	t.Run("should preview an alias", func(t *testing.T) {
		app, m := testApp(t)
		m.workout.EXPECT().Show(gomock.Any(), "legs").Return(preview, nil).Times(1)

		_, err := executeCmd(t, app, "preview", "--key", "legs")

		require.NoError(t, err)
	})

	t.Run("should preview a day name", func(t *testing.T) {
		app, m := testApp(t)
		m.workout.EXPECT().ShowDay(gomock.Any(), "Leg Day").Return(preview, nil).Times(1)

		_, err := executeCmd(t, app, "preview", "--day", "Leg Day")

		require.NoError(t, err)
	})

	t.Run("should reject both flags", func(t *testing.T) {
		app, _ := testApp(t)

		_, err := executeCmd(t, app, "preview", "--day", "Leg Day", "--key", "legs")

		require.Error(t, err)
	})
}

func TestRestCmd(t *testing.T) {
	t.Run("should confirm the rest day", func(t *testing.T) {
		app, m := testApp(t)
		m.workout.EXPECT().
			MarkRestToday(gomock.Any()).
			Return(&entity.RunState{LastDay: "Push Day", RestToday: true}, nil).Times(1)

		out, err := executeCmd(t, app, "rest")

		require.NoError(t, err)
		assert.Contains(t, out, "Push Day")
	})

	t.Run("should fail before the first send", func(t *testing.T) {
		app, m := testApp(t)
		m.workout.EXPECT().MarkRestToday(gomock.Any()).Return(nil, domain.ErrNoState).Times(1)

		_, err := executeCmd(t, app, "rest")

		require.ErrorIs(t, err, domain.ErrNoState)
	})
}

func TestScheduleCmd(t *testing.T) {
	t.Run("should validate credentials before starting", func(t *testing.T) {
		app, m := testApp(t)
		m.delivery.EXPECT().Validate(gomock.Any()).Return(domain.ErrAuth).Times(1)

		_, err := executeCmd(t, app, "schedule")

		require.ErrorIs(t, err, domain.ErrAuth)
		assert.False(t, m.scheduler.ran)
	})

	t.Run("should print the next run and start", func(t *testing.T) {
		app, m := testApp(t)
		m.delivery.EXPECT().Validate(gomock.Any()).Return(nil).Times(1)

		out, err := executeCmd(t, app, "schedule")

		require.NoError(t, err)
		assert.True(t, m.scheduler.ran)
		assert.Contains(t, out, "0 0 7 * * *")
		assert.Contains(t, out, "Thu 04 Jan 2024 07:00 UTC")
	})
}

func TestNewMux(t *testing.T) {
	mux := newMux(fakeHandler{})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "slash command", method: http.MethodPost, path: "/slack/commands", wantStatus: http.StatusOK, wantBody: "command"},
		{name: "wrong method", method: http.MethodGet, path: "/slack/commands", wantStatus: http.StatusMethodNotAllowed},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			mux.ServeHTTP(recorder, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}
