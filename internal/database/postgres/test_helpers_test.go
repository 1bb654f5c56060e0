package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nikhil-r0/Green-Terrace/internal/database"
)

var migrateOnce sync.Once

// newTestPool connects to the test database, migrating the schema on first use
func newTestPool(t *testing.T, connString string) *pgxpool.Pool {
	t.Helper()
	var migrateErr error
	migrateOnce.Do(func() {
		migrateErr = database.RunMigrations(context.Background(), connString, "up")
	})
	if migrateErr != nil {
		t.Fatalf("failed to apply migrations: %v", migrateErr)
	}

	pool, err := database.NewPool(context.Background(), connString, 5, time.Minute, 5*time.Minute)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}
