package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RavenCompanion_Go/internal/metrics"
)

// GracefulShutdown stops the application in order:
// 1. scheduler (no new jobs)
// 2. worker pool (finish the running job)
// 3. metrics textfile (final counters)
// 4. progress store (flush and close)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, app *App) {
	slog.Info(LogMsgShuttingDown)

	if app.scheduler != nil {
		app.scheduler.Stop()
	}
	if app.pool != nil {
		app.pool.Stop()
	}

	if err := metrics.WriteTextfile(ctx, app.Config.MetricsFile); err != nil {
		slog.Error(LogMsgMetricsWriteFailed, "path", app.Config.MetricsFile, "error", err)
	}

	if app.Store != nil {
		if err := app.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgShutdownComplete)
}
