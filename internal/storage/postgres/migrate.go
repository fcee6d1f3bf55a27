package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order at startup. Each statement is idempotent so
// a restart against an already-initialized database is a no-op.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		done BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS items_created_at_idx ON items (created_at)`,
}

// Migrate brings the schema to a state where every store operation can run.
// It must complete before the first operation is served.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration %d: %w", i+1, err)
		}
	}
	return nil
}
