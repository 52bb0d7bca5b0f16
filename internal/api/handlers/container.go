package handlers

import (
	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/repository"
)

type Handlers struct {
	User       *UserHandler
	Project    *ProjectHandler
	Issue      *IssueHandler
	Comment    *CommentHandler
	Attachment *AttachmentHandler
	Audit      *AuditHandler
	Health     *HealthHandler
}

func New(svc *application.Services, repos *repository.Repos) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User, svc.Project),
		Project:    NewProjectHandler(svc.Project, svc.Issue),
		Issue:      NewIssueHandler(svc.Issue),
		Comment:    NewCommentHandler(svc.Comment),
		Attachment: NewAttachmentHandler(svc.Attachment),
		Audit:      NewAuditHandler(svc.Audit),
		Health:     NewHealthHandler(repos),
	}
}
