package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/workout-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/workout"
)

type daySelector struct {
	dm contract.DataManager
}

func newDaySelector(dm contract.DataManager) *daySelector {
	return &daySelector{dm: dm}
}

// pick returns today's day and clears the rest flag when it was used
func (s *daySelector) pick(ctx context.Context, days []string, now time.Time) (day string, usedRest bool, err error) {
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		state, err := tx.State().Get()
		if err != nil {
			return fmt.Errorf("failed to get run state: %w", err)
		}

		day, usedRest, err = workout.SelectDay(days, now, state)
		if err != nil {
			return err
		}

		if !usedRest {
			return nil
		}

		cleared := &entity.RunState{LastDay: state.LastDay, RestToday: false}
		if err := tx.State().Save(cleared); err != nil {
			return fmt.Errorf("failed to clear rest flag: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", false, err
	}

	return day, usedRest, nil
}

// peek returns the day pick would return, without touching the stored state
func (s *daySelector) peek(days []string, now time.Time) (string, bool, error) {
	state, err := s.dm.State().Get()
	if err != nil {
		return "", false, fmt.Errorf("failed to get run state: %w", err)
	}

	return workout.SelectDay(days, now, state)
}

// record stores the day that was just sent
func (s *daySelector) record(ctx context.Context, day string) error {
	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.State().Save(&entity.RunState{LastDay: day, RestToday: false}); err != nil {
			return fmt.Errorf("failed to save run state: %w", err)
		}
		return nil
	})
}
