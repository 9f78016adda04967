package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates the PostgreSQL partial unique
// index that Ent cannot express: at most one active chat session per
// (user, instance, agent) triple. Two sends racing through the
// resolver for the same triple collide here instead of both creating
// an active row.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS chat_sessions_active_triple
		ON chat_sessions (user_id, instance_id, agent_id)
		WHERE is_active`)
	if err != nil {
		return fmt.Errorf("failed to create active session index: %w", err)
	}

	return nil
}
