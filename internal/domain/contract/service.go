package contract

import (
	"context"

	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
)

type WorkoutService interface {
	ListAliases(ctx context.Context) ([]entity.AliasEntry, error)
	SendToday(ctx context.Context) (*entity.Dispatch, error)
	SendAlias(ctx context.Context, key string) (*entity.Dispatch, error)
	SendDay(ctx context.Context, day string) (*entity.Dispatch, error)
	Preview(ctx context.Context) (*entity.Preview, error)
	Show(ctx context.Context, key string) (*entity.Preview, error)
	ShowDay(ctx context.Context, day string) (*entity.Preview, error)
	MarkRestToday(ctx context.Context) (*entity.RunState, error)
}

type DeliveryService interface {
	Validate(ctx context.Context) error
	Deliver(ctx context.Context, parts []entity.MessagePart) ([]entity.Delivery, error)
}
