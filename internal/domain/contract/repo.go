package contract

import (
	"context"

	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	State() StateRepo
}

// StateRepo defines the contract for the run state repository
type StateRepo interface {
	// Get returns nil, nil when no workout has been sent yet
	Get() (*entity.RunState, error)
	Save(state *entity.RunState) error
}
