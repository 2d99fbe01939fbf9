package workout

import (
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fiveDays = []string{"Pull Day", "Push Day", "Leg Day", "Cardio", "Full Body"}

func TestDefaultDay(t *testing.T) {
	tests := []struct {
		name    string
		days    []string
		now     time.Time
		want    string
		wantErr bool
	}{
		{
			name: "Monday should pick the first day",
			days: fiveDays,
			now:  time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC),
			want: "Pull Day",
		},
		{
			name: "Wednesday should pick index 2",
			days: fiveDays,
			now:  time.Date(2024, 1, 3, 7, 0, 0, 0, time.UTC),
			want: "Leg Day",
		},
		{
			name: "Sunday should wrap around",
			days: fiveDays,
			now:  time.Date(2024, 1, 7, 7, 0, 0, 0, time.UTC), // index 6 mod 5
			want: "Push Day",
		},
		{
			name:    "Empty plan should fail",
			days:    nil,
			now:     time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultDay(tt.days, tt.now)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrPlanLoad))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectDay(t *testing.T) {
	wednesday := time.Date(2024, 1, 3, 7, 0, 0, 0, time.UTC)

	t.Run("should use default without state", func(t *testing.T) {
		day, rest, err := SelectDay(fiveDays, wednesday, nil)
		require.NoError(t, err)
		assert.Equal(t, "Leg Day", day)
		assert.False(t, rest)
	})

	t.Run("should ignore state without rest flag", func(t *testing.T) {
		day, rest, err := SelectDay(fiveDays, wednesday, &entity.RunState{LastDay: "Push Day"})
		require.NoError(t, err)
		assert.Equal(t, "Leg Day", day)
		assert.False(t, rest)
	})

	t.Run("should repeat last day on rest flag", func(t *testing.T) {
		day, rest, err := SelectDay(fiveDays, wednesday, &entity.RunState{LastDay: "Push Day", RestToday: true})
		require.NoError(t, err)
		assert.Equal(t, "Push Day", day)
		assert.True(t, rest)
	})
}
