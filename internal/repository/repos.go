package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user.go -destination=mock/user.go -package=mock
//go:generate mockgen -source=project.go -destination=mock/project.go -package=mock
//go:generate mockgen -source=member.go -destination=mock/member.go -package=mock
//go:generate mockgen -source=issue.go -destination=mock/issue.go -package=mock
//go:generate mockgen -source=comment.go -destination=mock/comment.go -package=mock
//go:generate mockgen -source=attachment.go -destination=mock/attachment.go -package=mock
//go:generate mockgen -source=audit.go -destination=mock/audit.go -package=mock

type Repos struct {
	User       UserRepo
	Project    ProjectRepo
	Member     MemberRepo
	Issue      IssueRepo
	Comment    CommentRepo
	Attachment AttachmentRepo
	Audit      AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Project:    NewProjectRepo(db),
		Member:     NewMemberRepo(db),
		Issue:      NewIssueRepo(db),
		Comment:    NewCommentRepo(db),
		Attachment: NewAttachmentRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Project:    r.Project.WithTx(tx),
		Member:     r.Member.WithTx(tx),
		Issue:      r.Issue.WithTx(tx),
		Comment:    r.Comment.WithTx(tx),
		Attachment: r.Attachment.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn against repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise. Repos
// assembled without a database (as in unit tests) run fn directly.
func (r *Repos) ExecTx(ctx context.Context, fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

func (r *Repos) Ping(ctx context.Context) error {
	if r.db == nil {
		return errors.New("no database configured")
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
