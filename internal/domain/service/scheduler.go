package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/workout-reminder-bot/internal/domain/contract"
	"github.com/robfig/cron"
	"go.uber.org/zap"
)

type scheduler struct {
	workout  contract.WorkoutService
	spec     string
	location *time.Location
	log      *zap.Logger
}

func newScheduler(workout contract.WorkoutService, hour, minute int, location *time.Location, log *zap.Logger) *scheduler {
	if location == nil {
		location = time.Local
	}

	return &scheduler{
		workout:  workout,
		spec:     fmt.Sprintf("0 %d %d * * *", minute, hour),
		location: location,
		log:      log,
	}
}

// Spec returns the cron expression, seconds first
func (s *scheduler) Spec() string {
	return s.spec
}

// NextRun returns the first send time strictly after now, in the scheduler's location
func (s *scheduler) NextRun(now time.Time) (time.Time, error) {
	schedule, err := cron.Parse(s.spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule %q: %w", s.spec, err)
	}
	return schedule.Next(now.In(s.location)), nil
}

// Run sends today's workout every day at the configured time until ctx is done
func (s *scheduler) Run(ctx context.Context) error {
	c := cron.NewWithLocation(s.location)
	if err := c.AddFunc(s.spec, func() { s.runJob(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule daily workout: %w", err)
	}

	c.Start()
	s.log.Info("Scheduler started", zap.String("spec", s.spec), zap.String("timezone", s.location.String()))

	<-ctx.Done()

	c.Stop()
	s.log.Info("Scheduler stopped")
	return nil
}

// runJob never returns an error so one bad day does not stop the schedule
func (s *scheduler) runJob(ctx context.Context) {
	dispatch, err := s.workout.SendToday(ctx)
	if err != nil {
		s.log.Error("Scheduled workout failed", zap.Error(err))
		return
	}

	s.log.Info("Scheduled workout sent",
		zap.String("run_id", dispatch.RunID),
		zap.String("day", dispatch.Day),
		zap.Int("parts", len(dispatch.Parts)))
}
