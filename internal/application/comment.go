package application

import (
	"context"

	"github.com/linskybing/issue-tracker/internal/domain/comment"
	"github.com/linskybing/issue-tracker/internal/repository"
)

type CommentService struct {
	Repos  *repository.Repos
	Access *AccessService
	Audit  *AuditService
	Clock  Clock
}

func NewCommentService(repos *repository.Repos, access *AccessService, audit *AuditService) *CommentService {
	return &CommentService{
		Repos:  repos,
		Access: access,
		Audit:  audit,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, input comment.CreateCommentInput) (*comment.Comment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	projectID, err := s.Access.ResolveProjectForIssue(ctx, input.IssueID)
	if err != nil {
		return nil, err
	}
	if err := s.Access.Authorize(ctx, ActionCommentCreate, projectID, input.UserID); err != nil {
		return nil, err
	}

	now := s.Clock.now()
	c := comment.Comment{
		IssueID:   input.IssueID,
		UserID:    input.UserID,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repos.Comment.CreateComment(ctx, &c); err != nil {
		return nil, foreignKeyAs(err, ErrIssueNotFound)
	}

	s.Audit.Record(ctx, input.UserID, AuditActionCreate, "comment", c.ID, nil, c)
	return &c, nil
}

// ListIssueComments returns the issue's comments oldest first.
func (s *CommentService) ListIssueComments(ctx context.Context, issueID uint) ([]comment.Comment, error) {
	return s.Repos.Comment.ListCommentsByIssue(ctx, issueID)
}
