package cron

import (
	"context"
	"log/slog"
	"time"
)

// AuditCleaner deletes audit entries older than a number of days.
type AuditCleaner interface {
	CleanupOldLogs(ctx context.Context, days int) (int64, error)
}

// StartAuditRetention prunes audit logs once at startup and then on every
// tick of interval until ctx is cancelled. The returned channel is closed when
// the loop exits.
func StartAuditRetention(ctx context.Context, cleaner AuditCleaner, retentionDays int, interval time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		slog.Info("Starting audit log retention task", "retention_days", retentionDays, "interval", interval)

		runCleanup(ctx, cleaner, retentionDays)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				slog.Info("Audit log retention task stopped")
				return
			case <-ticker.C:
				runCleanup(ctx, cleaner, retentionDays)
			}
		}
	}()
	return done
}

func runCleanup(ctx context.Context, cleaner AuditCleaner, retentionDays int) {
	n, err := cleaner.CleanupOldLogs(ctx, retentionDays)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to cleanup old audit logs", "error", err)
		return
	}
	slog.InfoContext(ctx, "Audit log cleanup completed", "deleted", n)
}
