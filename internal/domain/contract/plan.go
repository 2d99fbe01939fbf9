package contract

import "github.com/diegoclair/workout-reminder-bot/internal/domain/entity"

// PlanLoader reads a workout plan from a file
type PlanLoader interface {
	Load(path string) (*entity.Plan, error)
}
