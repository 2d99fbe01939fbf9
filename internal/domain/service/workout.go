package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/workout"
	"github.com/diegoclair/workout-reminder-bot/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure how plans are read and messages are split
type Options struct {
	PlanPath        string
	MaxMessageChars int
	Location        *time.Location
}

type workoutService struct {
	dm       contract.DataManager
	delivery contract.DeliveryService
	loader   contract.PlanLoader
	renderer *workout.Renderer
	selector *daySelector
	opts     Options
	now      func() time.Time
	log      *zap.Logger
}

func newWorkout(
	dm contract.DataManager,
	delivery contract.DeliveryService,
	loader contract.PlanLoader,
	renderer *workout.Renderer,
	opts Options,
	log *zap.Logger,
) *workoutService {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.MaxMessageChars <= 0 {
		opts.MaxMessageChars = domain.DefaultMaxMessageChars
	}

	return &workoutService{
		dm:       dm,
		delivery: delivery,
		loader:   loader,
		renderer: renderer,
		selector: newDaySelector(dm),
		opts:     opts,
		now:      time.Now,
		log:      log,
	}
}

func (s *workoutService) ListAliases(ctx context.Context) ([]entity.AliasEntry, error) {
	plan, err := s.loader.Load(s.opts.PlanPath)
	if err != nil {
		return nil, err
	}

	return workout.ListedAliases(workout.BuildAliases(plan.Days())), nil
}

// SendToday sends the day picked by weekday, or yesterday's day again when rest was requested
func (s *workoutService) SendToday(ctx context.Context) (*entity.Dispatch, error) {
	ctx, log, runID := s.startRun(ctx, "today")

	if err := s.delivery.Validate(ctx); err != nil {
		return nil, err
	}

	plan, err := s.loader.Load(s.opts.PlanPath)
	if err != nil {
		return nil, err
	}

	day, usedRest, err := s.selector.pick(ctx, plan.Days(), s.today())
	if err != nil {
		return nil, err
	}
	if usedRest {
		log.Info("Rest day requested, repeating last workout", zap.String("day", day))
	}

	return s.send(ctx, runID, plan, day)
}

func (s *workoutService) SendAlias(ctx context.Context, key string) (*entity.Dispatch, error) {
	ctx, _, runID := s.startRun(ctx, "alias")

	if err := s.delivery.Validate(ctx); err != nil {
		return nil, err
	}

	plan, err := s.loader.Load(s.opts.PlanPath)
	if err != nil {
		return nil, err
	}

	day, err := resolveAlias(plan, key)
	if err != nil {
		return nil, err
	}

	return s.send(ctx, runID, plan, day)
}

func (s *workoutService) SendDay(ctx context.Context, day string) (*entity.Dispatch, error) {
	ctx, _, runID := s.startRun(ctx, "day")

	if err := s.delivery.Validate(ctx); err != nil {
		return nil, err
	}

	plan, err := s.loader.Load(s.opts.PlanPath)
	if err != nil {
		return nil, err
	}

	if err := checkDay(plan, day); err != nil {
		return nil, err
	}

	return s.send(ctx, runID, plan, day)
}

// Preview renders what SendToday would send, leaving the rest flag in place
func (s *workoutService) Preview(ctx context.Context) (*entity.Preview, error) {
	plan, err := s.loader.Load(s.opts.PlanPath)
	if err != nil {
		return nil, err
	}

	day, _, err := s.selector.peek(plan.Days(), s.today())
	if err != nil {
		return nil, err
	}

	return s.preview(plan, day), nil
}

func (s *workoutService) Show(ctx context.Context, key string) (*entity.Preview, error) {
	plan, err := s.loader.Load(s.opts.PlanPath)
	if err != nil {
		return nil, err
	}

	day, err := resolveAlias(plan, key)
	if err != nil {
		return nil, err
	}

	return s.preview(plan, day), nil
}

func (s *workoutService) ShowDay(ctx context.Context, day string) (*entity.Preview, error) {
	plan, err := s.loader.Load(s.opts.PlanPath)
	if err != nil {
		return nil, err
	}

	if err := checkDay(plan, day); err != nil {
		return nil, err
	}

	return s.preview(plan, day), nil
}

// MarkRestToday makes the next SendToday repeat the last sent day
func (s *workoutService) MarkRestToday(ctx context.Context) (*entity.RunState, error) {
	var state *entity.RunState

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		current, err := tx.State().Get()
		if err != nil {
			return fmt.Errorf("failed to get run state: %w", err)
		}
		if current == nil || current.LastDay == "" {
			return domain.ErrNoState
		}

		current.RestToday = true
		if err := tx.State().Save(current); err != nil {
			return fmt.Errorf("failed to save run state: %w", err)
		}

		state = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("Rest day marked", zap.String("day", state.LastDay))
	return state, nil
}

func (s *workoutService) send(ctx context.Context, runID string, plan *entity.Plan, day string) (*entity.Dispatch, error) {
	log := logger.FromContext(ctx, s.log).With(zap.String("day", day))

	body := s.renderer.Render(plan, day)
	parts := workout.Chunk(body, s.opts.MaxMessageChars)

	log.Info("Sending workout", zap.Int("parts", len(parts)))

	deliveries, err := s.delivery.Deliver(ctx, parts)
	if err != nil {
		return nil, fmt.Errorf("failed to deliver %s: %w", day, err)
	}

	if err := s.selector.record(ctx, day); err != nil {
		return nil, err
	}

	log.Info("Workout sent", zap.Int("deliveries", len(deliveries)))

	return &entity.Dispatch{
		RunID:      runID,
		Day:        day,
		Parts:      parts,
		Deliveries: deliveries,
	}, nil
}

func (s *workoutService) preview(plan *entity.Plan, day string) *entity.Preview {
	body := s.renderer.Render(plan, day)
	return &entity.Preview{
		Day:   day,
		Body:  body,
		Parts: workout.Chunk(body, s.opts.MaxMessageChars),
	}
}

func (s *workoutService) startRun(ctx context.Context, trigger string) (context.Context, *zap.Logger, string) {
	runID := uuid.NewString()
	log := s.log.With(zap.String("run_id", runID), zap.String("trigger", trigger))
	return logger.WithContext(ctx, log), log, runID
}

func (s *workoutService) today() time.Time {
	return s.now().In(s.opts.Location)
}

func resolveAlias(plan *entity.Plan, key string) (string, error) {
	aliases := workout.BuildAliases(plan.Days())
	day, ok := aliases.Lookup(key)
	if !ok {
		var options []string
		for _, entry := range workout.ListedAliases(aliases) {
			options = append(options, entry.Alias)
		}
		return "", &domain.LookupError{Kind: "Alias", Key: key, Options: options}
	}
	return day, nil
}

func checkDay(plan *entity.Plan, day string) error {
	if !plan.HasDay(day) {
		return &domain.LookupError{Kind: "Day", Key: day, Options: plan.Days()}
	}
	return nil
}
