package application

import (
	"context"
	"log/slog"

	"github.com/linskybing/issue-tracker/internal/domain/audit"
	"github.com/linskybing/issue-tracker/internal/repository"
	"github.com/linskybing/issue-tracker/pkg/utils"
)

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionInvite = "invite"
)

type AuditService struct {
	Repos   *repository.Repos
	Enabled bool
	Clock   Clock
}

func NewAuditService(repos *repository.Repos, enabled bool) *AuditService {
	return &AuditService{
		Repos:   repos,
		Enabled: enabled,
	}
}

// Record appends an audit entry for a committed mutation. Failures are
// logged and never returned to the caller.
func (s *AuditService) Record(ctx context.Context, actorID uint, action, resourceType string, resourceID uint, before, after any) {
	if s == nil || !s.Enabled {
		return
	}

	entry, err := utils.NewAuditLog(ctx, actorID, action, resourceType, resourceID, before, after)
	if err != nil {
		slog.WarnContext(ctx, "audit entry dropped", "action", action, "resource_type", resourceType, "error", err)
		return
	}
	entry.CreatedAt = s.Clock.now()

	if err := s.Repos.Audit.CreateAuditLog(ctx, entry); err != nil {
		slog.WarnContext(ctx, "failed to write audit log",
			"action", action,
			"resource_type", resourceType,
			"resource_id", entry.ResourceID,
			"error", err,
		)
	}
}

func (s *AuditService) QueryAuditLogs(ctx context.Context, params repository.AuditQueryParams) ([]audit.AuditLog, error) {
	return s.Repos.Audit.GetAuditLogs(ctx, params)
}

// CleanupOldLogs deletes entries older than the given number of days and
// reports how many were removed.
func (s *AuditService) CleanupOldLogs(ctx context.Context, days int) (int64, error) {
	if days < 1 {
		return 0, validationError("older_than_days must be at least 1")
	}
	cutoff := s.Clock.now().AddDate(0, 0, -days)
	n, err := s.Repos.Audit.DeleteAuditLogsBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "audit logs cleaned up", "older_than_days", days, "deleted", n)
	return n, nil
}
