package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/workout-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
)

// run_state holds at most one row, pinned to id 1
const stateRowID = 1

type stateRepo struct {
	db dbConn
}

func newStateRepo(db dbConn) contract.StateRepo {
	return &stateRepo{db: db}
}

func (r *stateRepo) Get() (*entity.RunState, error) {
	state := &entity.RunState{}
	query := `
		SELECT last_day, rest_today, updated_at
		FROM run_state
		WHERE id = ?
	`

	err := r.db.QueryRow(query, stateRowID).Scan(
		&state.LastDay,
		&state.RestToday,
		&state.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run state: %w", err)
	}

	return state, nil
}

func (r *stateRepo) Save(state *entity.RunState) error {
	query := `
		INSERT INTO run_state (id, last_day, rest_today, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_day = excluded.last_day,
			rest_today = excluded.rest_today,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC()
	_, err := r.db.Exec(query, stateRowID, state.LastDay, state.RestToday, now)
	if err != nil {
		return fmt.Errorf("failed to save run state: %w", err)
	}

	state.UpdatedAt = now
	return nil
}
