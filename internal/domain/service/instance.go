package service

import (
	"github.com/diegoclair/workout-reminder-bot/internal/catalog"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/workout"
	"go.uber.org/zap"
)

// Schedule is the daily send time
type Schedule struct {
	Hour   int
	Minute int
}

type Instance struct {
	Workout   *workoutService
	Delivery  *deliveryService
	Scheduler *scheduler
}

func NewInstance(
	dm contract.DataManager,
	slackClient contract.SlackClient,
	loader contract.PlanLoader,
	c *catalog.Catalog,
	creds Credentials,
	opts Options,
	schedule Schedule,
	log *zap.Logger,
) *Instance {
	deliveryService := newDelivery(slackClient, creds, log)
	workoutService := newWorkout(dm, deliveryService, loader, workout.NewRenderer(c), opts, log)

	return &Instance{
		Workout:   workoutService,
		Delivery:  deliveryService,
		Scheduler: newScheduler(workoutService, schedule.Hour, schedule.Minute, workoutService.opts.Location, log),
	}
}
