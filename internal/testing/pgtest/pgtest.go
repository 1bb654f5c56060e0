// Package pgtest runs package tests against a disposable Postgres container.
package pgtest

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	Image    = "postgres:15-alpine"
	Database = "terrace_test"
	User     = "terrace"
	Password = "terrace"
)

// Main starts a container, runs m and exits. connString stays empty in -short
// mode or when Docker is unavailable, so Skip can bail out per test.
func Main(m *testing.M, connString *string) {
	flag.Parse()

	terminate := func() {}
	if !testing.Short() {
		*connString, terminate = start(context.Background())
	}

	code := m.Run()
	terminate()
	os.Exit(code)
}

// Skip skips t when no database was started for the package
func Skip(t testing.TB, connString string) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	if connString == "" {
		t.Skip("integration test skipped: postgres container unavailable")
	}
}

func start(ctx context.Context) (connString string, terminate func()) {
	terminate = func() {}
	// testcontainers panics instead of erroring on some hosts without Docker
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("postgres container panicked", "error", r)
			connString = ""
		}
	}()

	container, err := postgres.Run(ctx, Image,
		postgres.WithDatabase(Database),
		postgres.WithUsername(User),
		postgres.WithPassword(Password),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		slog.Warn("postgres container unavailable", "error", err)
		if container != nil {
			_ = testcontainers.TerminateContainer(container)
		}
		return "", terminate
	}

	connString, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		slog.Warn("postgres connection string unavailable", "error", err)
		_ = testcontainers.TerminateContainer(container)
		return "", terminate
	}

	return connString, func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			slog.Warn("postgres container terminate failed", "error", err)
		}
	}
}
