// Package sqlite applies the embedded schema migrations of the state store.
package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migrate brings the run_state schema up to date. Already applied
// migrations are skipped, so it is safe to call on every start.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	if err := migrator.Migrate(sqlFiles, "sql"); err != nil {
		return fmt.Errorf("failed to migrate state store: %w", err)
	}

	return nil
}
