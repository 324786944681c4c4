// Package testdb starts a throwaway PostgreSQL container for
// integration tests and returns a migrated pool bound to it.
package testdb

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"ratguide/internal/database"
)

// Start boots a postgres container, runs the schema migrations and
// returns a pool for it. Container and pool are cleaned up with t.
func Start(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("ratguide_test"),
		postgres.WithUsername("ratguide"),
		postgres.WithPassword("ratguide"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := database.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(ctx, pool))

	return pool
}

// Reset empties both tables and restarts id assignment, so subtests
// start from a clean store.
func Reset(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE custom_food_items, categories RESTART IDENTITY`)
	require.NoError(t, err)
}
