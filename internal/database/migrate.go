package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// RunMigrations applies the embedded migrations to the database at connString.
// command is any goose command (up, down, status, version, reset, redo).
func RunMigrations(ctx context.Context, connString, command string, args ...string) error {
	db, err := sql.Open(driverName, connString)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	return Migrate(ctx, db, command, args...)
}

// Migrate runs a goose command against an open database
func Migrate(ctx context.Context, db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(migrationFiles)
	if err := goose.SetDialect(MigrationDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	if err := goose.RunContext(ctx, command, db, MigrationDir, args...); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	slog.Default().Info(LogMsgMigrationsApplied, "command", command)
	return nil
}
