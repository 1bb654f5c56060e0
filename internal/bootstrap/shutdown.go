package bootstrap

import (
	"context"
	"log/slog"
)

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduled jobs and their worker pool
// 3. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, app *App) {
	slog.Info(LogMsgShuttingDownServer)
	if app.Server != nil {
		if err := app.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if app.scheduler != nil || app.workerPool != nil {
		slog.Info(LogMsgStoppingBackground)
	}
	if app.scheduler != nil {
		app.scheduler.Stop()
	}
	if app.workerPool != nil {
		app.workerPool.Stop()
	}

	if app.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
	}
	app.close()

	slog.Info(LogMsgServerStopped)
}
