package repository

import (
	"context"

	"github.com/linskybing/issue-tracker/internal/domain/comment"
	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, c *comment.Comment) error
	ListCommentsByIssue(ctx context.Context, issueID uint) ([]comment.Comment, error)
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{
		db: db,
	}
}

func (r *DBCommentRepo) CreateComment(ctx context.Context, c *comment.Comment) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

// ListCommentsByIssue returns comments oldest first.
func (r *DBCommentRepo) ListCommentsByIssue(ctx context.Context, issueID uint) ([]comment.Comment, error) {
	comments := []comment.Comment{}
	err := r.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	if tx == nil {
		return r
	}
	return &DBCommentRepo{
		db: tx,
	}
}
