package repository

import (
	"context"
	"time"

	"github.com/linskybing/issue-tracker/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditQueryParams struct {
	UserID       *uint
	ResourceType *string
	Action       *string
	StartTime    *time.Time
	EndTime      *time.Time
	Limit        int
	Offset       int
}

type AuditRepo interface {
	GetAuditLogs(ctx context.Context, params AuditQueryParams) ([]audit.AuditLog, error)
	CreateAuditLog(ctx context.Context, entry *audit.AuditLog) error
	DeleteAuditLogsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{
		db: db,
	}
}

func (r *DBAuditRepo) DeleteAuditLogsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

// auditFilter narrows the log to the non-nil fields of params.
func auditFilter(params AuditQueryParams) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params.UserID != nil {
			db = db.Where("user_id = ?", *params.UserID)
		}
		if params.ResourceType != nil {
			db = db.Where("resource_type = ?", *params.ResourceType)
		}
		if params.Action != nil {
			db = db.Where("action = ?", *params.Action)
		}
		if params.StartTime != nil {
			db = db.Where("created_at >= ?", *params.StartTime)
		}
		if params.EndTime != nil {
			db = db.Where("created_at <= ?", *params.EndTime)
		}
		return db
	}
}

// auditPage applies limit and offset when they are positive.
func auditPage(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}

// GetAuditLogs returns matching entries newest first. Entries written in the
// same microsecond fall back to id order.
func (r *DBAuditRepo) GetAuditLogs(ctx context.Context, params AuditQueryParams) ([]audit.AuditLog, error) {
	logs := []audit.AuditLog{}
	err := r.db.WithContext(ctx).
		Scopes(auditFilter(params), auditPage(params.Limit, params.Offset)).
		Order("created_at DESC, id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

func (r *DBAuditRepo) CreateAuditLog(ctx context.Context, entry *audit.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{
		db: tx,
	}
}
