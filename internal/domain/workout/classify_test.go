package workout

import (
	"testing"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		day  string
		want domain.Category
	}{
		{day: "Pull Day", want: domain.CategoryPull},
		{day: "PULL", want: domain.CategoryPull},
		{day: "Push Day 2", want: domain.CategoryPush},
		{day: "Legs", want: domain.CategoryLegs},
		{day: "leg day", want: domain.CategoryLegs},
		{day: "Cardio + Core", want: domain.CategoryCardio},
		{day: "Full Body", want: domain.CategoryGeneral},
		{day: "", want: domain.CategoryGeneral},
		// priority: pull > push > legs > cardio
		{day: "Push/Pull", want: domain.CategoryPull},
		{day: "Push and Legs", want: domain.CategoryPush},
		{day: "Legs cardio finisher", want: domain.CategoryLegs},
	}

	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.day))
		})
	}
}
