package workout

import (
	"fmt"
	"time"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
)

// DefaultDay picks days[weekday mod len(days)], Monday being index 0
func DefaultDay(days []string, now time.Time) (string, error) {
	if len(days) == 0 {
		return "", fmt.Errorf("%w: plan has no days", domain.ErrPlanLoad)
	}
	return days[domain.WeekdayIndex(now)%len(days)], nil
}

// SelectDay applies the rest-day override on top of DefaultDay.
// The returned bool reports whether the override was used.
func SelectDay(days []string, now time.Time, state *entity.RunState) (string, bool, error) {
	day, err := DefaultDay(days, now)
	if err != nil {
		return "", false, err
	}

	if state != nil && state.RestToday {
		return state.LastDay, true, nil
	}

	return day, false, nil
}
