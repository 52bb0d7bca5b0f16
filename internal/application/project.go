package application

import (
	"context"
	"errors"

	"github.com/linskybing/issue-tracker/internal/domain/project"
	"github.com/linskybing/issue-tracker/internal/repository"
)

type ProjectService struct {
	Repos  *repository.Repos
	Access *AccessService
	Audit  *AuditService
	Clock  Clock
}

func NewProjectService(repos *repository.Repos, access *AccessService, audit *AuditService) *ProjectService {
	return &ProjectService{
		Repos:  repos,
		Access: access,
		Audit:  audit,
	}
}

// CreateProject inserts the project and the creator's edit membership in a
// single transaction.
func (s *ProjectService) CreateProject(ctx context.Context, input project.CreateProjectInput) (*project.Project, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	owner, repo := input.GithubOwner, input.GithubRepoName
	if owner == "" || repo == "" {
		parsedOwner, parsedRepo, err := project.ParseGithubRepoURL(input.GithubRepoURL)
		if err != nil {
			return nil, validationError("github_owner and github_repo_name are required for non-GitHub repository URLs")
		}
		if owner == "" {
			owner = parsedOwner
		}
		if repo == "" {
			repo = parsedRepo
		}
	}

	now := s.Clock.now()
	p := project.Project{
		Name:           input.Name,
		Description:    input.Description,
		GithubRepoURL:  input.GithubRepoURL,
		GithubRepoName: repo,
		GithubOwner:    owner,
		CreatedBy:      input.CreatedBy,
		CreatedAt:      now,
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		if _, err := tx.User.GetUserByID(ctx, input.CreatedBy); err != nil {
			if repository.IsNotFound(err) {
				return ErrUserNotFound
			}
			return err
		}
		if err := tx.Project.CreateProject(ctx, &p); err != nil {
			return foreignKeyAs(err, ErrUserNotFound)
		}
		creator := project.ProjectMember{
			ProjectID: p.ID,
			UserID:    p.CreatedBy,
			Role:      project.RoleEdit,
			InvitedAt: now,
		}
		return foreignKeyAs(tx.Member.CreateMember(ctx, &creator), ErrUserNotFound)
	})
	if err != nil {
		return nil, err
	}

	s.Audit.Record(ctx, p.CreatedBy, AuditActionCreate, "project", p.ID, nil, p)
	return &p, nil
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]project.Project, error) {
	return s.Repos.Project.ListProjects(ctx)
}

// GetUserProjects lists projects the user created or was invited to, each once.
func (s *ProjectService) GetUserProjects(ctx context.Context, userID uint) ([]project.Project, error) {
	projects, err := s.Repos.Project.ListProjectsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]project.Project, 0, len(projects))
	seen := make(map[uint]bool, len(projects))
	for _, p := range projects {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		result = append(result, p)
	}
	return result, nil
}

func (s *ProjectService) ListMembers(ctx context.Context, projectID uint) ([]project.ProjectMember, error) {
	return s.Repos.Member.ListMembersByProject(ctx, projectID)
}

// InviteUserToProject adds a membership. The existence check and insert
// share a transaction; the unique (project_id, user_id) constraint decides
// concurrent invitations.
func (s *ProjectService) InviteUserToProject(ctx context.Context, actorID uint, input project.InviteUserInput) (*project.ProjectMember, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	member := project.ProjectMember{
		ProjectID: input.ProjectID,
		UserID:    input.UserID,
		Role:      input.Role,
		InvitedAt: s.Clock.now(),
	}

	err := s.Repos.ExecTx(ctx, func(tx *repository.Repos) error {
		access := s.Access.withRepos(tx)

		p, err := access.loadProject(ctx, input.ProjectID)
		if err != nil {
			return err
		}
		if _, err := tx.User.GetUserByID(ctx, input.UserID); err != nil {
			if repository.IsNotFound(err) {
				return ErrUserNotFound
			}
			return err
		}
		if err := access.authorize(ctx, ActionMemberInvite, p, actorID); err != nil {
			return err
		}

		_, err = tx.Member.GetMember(ctx, input.ProjectID, input.UserID)
		if err == nil {
			return ErrAlreadyMember
		}
		if !repository.IsNotFound(err) {
			return err
		}

		if err := tx.Member.CreateMember(ctx, &member); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrAlreadyMember
			}
			return foreignKeyAs(err, ErrUserNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Audit.Record(ctx, actorID, AuditActionInvite, "project_member", member.ID, nil, member)
	return &member, nil
}

// foreignKeyAs replaces a foreign key violation with target.
func foreignKeyAs(err, target error) error {
	if errors.Is(err, repository.ErrForeignKey) {
		return target
	}
	return err
}
