package application

import (
	"time"

	"github.com/linskybing/issue-tracker/internal/repository"
)

type Options struct {
	Policy        RolePolicy
	AuditEnabled  bool
	Storage       Presigner
	PresignExpiry time.Duration
	Clock         Clock
}

type Services struct {
	Access     *AccessService
	Audit      *AuditService
	User       *UserService
	Project    *ProjectService
	Issue      *IssueService
	Comment    *CommentService
	Attachment *AttachmentService
}

func New(repos *repository.Repos, opts Options) *Services {
	access := NewAccessService(repos, opts.Policy)
	audit := NewAuditService(repos, opts.AuditEnabled)
	audit.Clock = opts.Clock

	svc := &Services{
		Access:     access,
		Audit:      audit,
		User:       NewUserService(repos, audit),
		Project:    NewProjectService(repos, access, audit),
		Issue:      NewIssueService(repos, access, audit),
		Comment:    NewCommentService(repos, access, audit),
		Attachment: NewAttachmentService(repos, access, audit, opts.Storage),
	}

	svc.User.Clock = opts.Clock
	svc.Project.Clock = opts.Clock
	svc.Issue.Clock = opts.Clock
	svc.Comment.Clock = opts.Clock
	svc.Attachment.Clock = opts.Clock
	if opts.PresignExpiry > 0 {
		svc.Attachment.PresignExpiry = opts.PresignExpiry
	}
	return svc
}
