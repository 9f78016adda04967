// Package database provides database clients for integration tests.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/clawdeck/clawdeck/pkg/database"
	"github.com/clawdeck/clawdeck/test/util"
)

// NewTestClient creates a test database client with a fully migrated
// per-test schema, including the partial unique indexes Ent cannot
// express. Cleanup is handled by SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)

	return database.NewClientFromEnt(entClient, db)
}
