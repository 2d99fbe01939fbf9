package workout

import (
	"testing"

	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAliases(t *testing.T) {
	days := []string{"Pull Day", "Push Day", "Leg Day", "Pull Day B", "Cardio", "Rest & Mobility", "Push Day B"}

	index := BuildAliases(days)

	t.Run("should assign numbered aliases in plan order", func(t *testing.T) {
		want := []entity.AliasEntry{
			{Alias: "pull1", Day: "Pull Day"},
			{Alias: "push1", Day: "Push Day"},
			{Alias: "legs1", Day: "Leg Day"},
			{Alias: "pull2", Day: "Pull Day B"},
			{Alias: "cardio1", Day: "Cardio"},
			{Alias: "general1", Day: "Rest & Mobility"},
			{Alias: "push2", Day: "Push Day B"},
		}
		assert.Equal(t, want, index.Entries)
	})

	t.Run("should map bare category to first day of the category", func(t *testing.T) {
		assert.Equal(t, "Pull Day", index.ToDay["pull"])
		assert.Equal(t, "Push Day", index.ToDay["push"])
		assert.Equal(t, "Leg Day", index.ToDay["legs"])
		assert.Equal(t, "Cardio", index.ToDay["cardio"])
		assert.Equal(t, "Rest & Mobility", index.ToDay["general"])
	})

	t.Run("should hold one key per day plus one per used category", func(t *testing.T) {
		assert.Len(t, index.ToDay, len(days)+5)
	})

	t.Run("lookup should ignore case and spaces", func(t *testing.T) {
		day, ok := index.Lookup("  PUSH2 ")
		require.True(t, ok)
		assert.Equal(t, "Push Day B", day)

		_, ok = index.Lookup("legs2")
		assert.False(t, ok)
	})
}

func TestBuildAliases_SizeBound(t *testing.T) {
	tests := []struct {
		name     string
		days     []string
		wantKeys int
	}{
		{name: "empty plan", days: nil, wantKeys: 0},
		{name: "single category", days: []string{"Push A", "Push B", "Push C"}, wantKeys: 4},
		{name: "two categories", days: []string{"Push A", "Leg A", "Push B"}, wantKeys: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index := BuildAliases(tt.days)
			assert.Len(t, index.ToDay, tt.wantKeys)
			assert.Len(t, index.Entries, len(tt.days))

			for _, e := range index.Entries {
				assert.Equal(t, e.Day, index.ToDay[e.Alias])
			}
		})
	}
}

func TestListedAliases(t *testing.T) {
	index := BuildAliases([]string{"Push Day", "Full Body", "Leg Day", "Push Day B"})

	got := ListedAliases(index)

	want := []entity.AliasEntry{
		{Alias: "push1", Day: "Push Day"},
		{Alias: "general1", Day: "Full Body"},
		{Alias: "legs1", Day: "Leg Day"},
		{Alias: "push2", Day: "Push Day B"},
		{Alias: "push", Day: "Push Day"},
		{Alias: "legs", Day: "Leg Day"},
	}
	assert.Equal(t, want, got)
}
