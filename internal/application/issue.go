package application

import (
	"context"

	"github.com/linskybing/issue-tracker/internal/domain/issue"
	"github.com/linskybing/issue-tracker/internal/repository"
	"github.com/linskybing/issue-tracker/pkg/types"
)

type IssueService struct {
	Repos  *repository.Repos
	Access *AccessService
	Audit  *AuditService
	Clock  Clock
}

func NewIssueService(repos *repository.Repos, access *AccessService, audit *AuditService) *IssueService {
	return &IssueService{
		Repos:  repos,
		Access: access,
		Audit:  audit,
	}
}

func (s *IssueService) CreateIssue(ctx context.Context, input issue.CreateIssueInput) (*issue.Issue, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.AssignedTo != nil && *input.AssignedTo == 0 {
		return nil, validationError("assigned_to must be a user id")
	}

	p, err := s.Access.loadProject(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := s.Access.authorize(ctx, ActionIssueCreate, p, input.CreatedBy); err != nil {
		return nil, err
	}
	if input.AssignedTo != nil {
		ok, err := s.Access.memberOrCreator(ctx, p, *input.AssignedTo)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrAssigneeNotMember
		}
	}

	status := input.Status
	if status == "" {
		status = issue.StatusOpen
	}
	now := s.Clock.now()
	i := issue.Issue{
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      status,
		AssignedTo:  input.AssignedTo,
		CreatedBy:   input.CreatedBy,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repos.Issue.CreateIssue(ctx, &i); err != nil {
		return nil, foreignKeyAs(err, ErrProjectNotFound)
	}

	s.Audit.Record(ctx, input.CreatedBy, AuditActionCreate, "issue", i.ID, nil, i)
	return &i, nil
}

// GetIssue returns nil without an error when the issue does not exist.
func (s *IssueService) GetIssue(ctx context.Context, id uint) (*issue.Issue, error) {
	i, err := s.Repos.Issue.GetIssueByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (s *IssueService) ListProjectIssues(ctx context.Context, projectID uint, filters issue.Filters) ([]issue.Issue, error) {
	return s.Repos.Issue.ListIssuesByProject(ctx, projectID, filters)
}

// UpdateIssue applies the fields present in input and always advances
// updated_at. Load, checks, write and reload run in one transaction.
func (s *IssueService) UpdateIssue(ctx context.Context, actorID uint, input issue.UpdateIssueInput) (*issue.Issue, error) {
	fields, err := issueUpdateColumns(input)
	if err != nil {
		return nil, err
	}

	var before, after issue.Issue
	err = s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		access := s.Access.withRepos(tx)

		var err error
		before, err = tx.Issue.GetIssueByID(ctx, input.ID)
		if err != nil {
			if repository.IsNotFound(err) {
				return ErrIssueNotFound
			}
			return err
		}

		p, err := access.loadProject(ctx, before.ProjectID)
		if err != nil {
			return err
		}
		if err := access.authorize(ctx, ActionIssueUpdate, p, actorID); err != nil {
			return err
		}
		if input.AssignedTo.IsSet() {
			ok, err := access.memberOrCreator(ctx, p, input.AssignedTo.Value())
			if err != nil {
				return err
			}
			if !ok {
				return ErrAssigneeNotMember
			}
		}

		fields["updated_at"] = advance(before.UpdatedAt, s.Clock.now())
		if err := tx.Issue.UpdateIssueFields(ctx, input.ID, fields); err != nil {
			if repository.IsNotFound(err) {
				return ErrIssueNotFound
			}
			return foreignKeyAs(err, ErrAssigneeNotMember)
		}

		after, err = tx.Issue.GetIssueByID(ctx, input.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Audit.Record(ctx, actorID, AuditActionUpdate, "issue", after.ID, before, after)
	return &after, nil
}

// issueUpdateColumns validates the present fields and maps them to columns.
func issueUpdateColumns(input issue.UpdateIssueInput) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	switch {
	case input.Title.IsCleared():
		return nil, validationError("title cannot be cleared")
	case input.Title.IsSet():
		if !notBlank(input.Title.Value()) {
			return nil, validationError("title is required")
		}
		fields["title"] = input.Title.Value()
	}

	switch {
	case input.Priority.IsCleared():
		return nil, validationError("priority cannot be cleared")
	case input.Priority.IsSet():
		if !input.Priority.Value().Valid() {
			return nil, validationError("priority must be one of [low medium high critical]")
		}
		fields["priority"] = input.Priority.Value()
	}

	switch {
	case input.Status.IsCleared():
		return nil, validationError("status cannot be cleared")
	case input.Status.IsSet():
		if !input.Status.Value().Valid() {
			return nil, validationError("status must be one of [open in_progress resolved closed]")
		}
		fields["status"] = input.Status.Value()
	}

	if input.AssignedTo.IsSet() && input.AssignedTo.Value() == 0 {
		return nil, validationError("assigned_to must be a user id")
	}

	setColumn(fields, "description", input.Description)
	setColumn(fields, "assigned_to", input.AssignedTo)
	setColumn(fields, "due_date", input.DueDate)
	return fields, nil
}

func setColumn[T any](fields map[string]interface{}, column string, f types.Field[T]) {
	switch {
	case f.IsCleared():
		fields[column] = nil
	case f.IsSet():
		fields[column] = f.Value()
	}
}
