package repository

import (
	"context"

	"github.com/linskybing/issue-tracker/internal/domain/attachment"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	CreateAttachment(ctx context.Context, a *attachment.Attachment) error
	ListAttachmentsByIssue(ctx context.Context, issueID uint) ([]attachment.Attachment, error)
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{
		db: db,
	}
}

func (r *DBAttachmentRepo) CreateAttachment(ctx context.Context, a *attachment.Attachment) error {
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

func (r *DBAttachmentRepo) ListAttachmentsByIssue(ctx context.Context, issueID uint) ([]attachment.Attachment, error) {
	attachments := []attachment.Attachment{}
	err := r.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Order("uploaded_at ASC, id ASC").
		Find(&attachments).Error
	return attachments, err
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{
		db: tx,
	}
}
