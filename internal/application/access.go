package application

import (
	"context"
	"fmt"
	"slices"

	"github.com/linskybing/issue-tracker/internal/config"
	"github.com/linskybing/issue-tracker/internal/domain/project"
	"github.com/linskybing/issue-tracker/internal/repository"
)

// Action names a mutating operation subject to the role policy.
type Action string

const (
	ActionIssueCreate      Action = "issue.create"
	ActionIssueUpdate      Action = "issue.update"
	ActionCommentCreate    Action = "comment.create"
	ActionAttachmentCreate Action = "attachment.create"
	ActionMemberInvite     Action = "member.invite"
)

var knownActions = []Action{
	ActionIssueCreate,
	ActionIssueUpdate,
	ActionCommentCreate,
	ActionAttachmentCreate,
	ActionMemberInvite,
}

// RolePolicy decides whether a caller may perform an action on a project.
// role is nil when the caller holds no membership row.
type RolePolicy interface {
	Enforces(action Action) bool
	Allows(action Action, role *project.Role, isCreator bool) bool
}

// RoleTable maps enforced actions to the member roles allowed to perform
// them. The project creator is always allowed.
type RoleTable struct {
	rules map[Action][]project.Role
}

func DefaultRoleTable() *RoleTable {
	anyMember := []project.Role{project.RoleView, project.RoleEdit}
	return &RoleTable{rules: map[Action][]project.Role{
		ActionIssueCreate:      anyMember,
		ActionCommentCreate:    anyMember,
		ActionAttachmentCreate: anyMember,
	}}
}

// NewRoleTableFromSpec overlays the actions listed in a policy file on the
// defaults. An action listed with no roles is creator-only.
func NewRoleTableFromSpec(spec *config.PolicyFileSpec) (*RoleTable, error) {
	table := DefaultRoleTable()
	if spec == nil {
		return table, nil
	}
	for name, roles := range spec.Actions {
		action := Action(name)
		if !slices.Contains(knownActions, action) {
			return nil, fmt.Errorf("unknown policy action %q", name)
		}
		allowed := make([]project.Role, 0, len(roles))
		for _, r := range roles {
			role := project.Role(r)
			if !role.Valid() {
				return nil, fmt.Errorf("action %q: unknown role %q", name, r)
			}
			allowed = append(allowed, role)
		}
		table.rules[action] = allowed
	}
	return table, nil
}

func (t *RoleTable) Enforces(action Action) bool {
	_, ok := t.rules[action]
	return ok
}

func (t *RoleTable) Allows(action Action, role *project.Role, isCreator bool) bool {
	if isCreator {
		return true
	}
	allowed, ok := t.rules[action]
	if !ok {
		return true
	}
	return role != nil && slices.Contains(allowed, *role)
}

// AccessService answers whether a user may act on a project, or on the
// project owning an issue. Lookups of missing projects or issues fail with
// ErrNotFound before any authorization decision is made.
type AccessService struct {
	Repos  *repository.Repos
	Policy RolePolicy
}

func NewAccessService(repos *repository.Repos, policy RolePolicy) *AccessService {
	if policy == nil {
		policy = DefaultRoleTable()
	}
	return &AccessService{
		Repos:  repos,
		Policy: policy,
	}
}

// withRepos returns a copy bound to repos, typically a transaction.
func (s *AccessService) withRepos(repos *repository.Repos) *AccessService {
	return &AccessService{Repos: repos, Policy: s.Policy}
}

func (s *AccessService) loadProject(ctx context.Context, projectID uint) (project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(ctx, projectID)
	if err != nil {
		if repository.IsNotFound(err) {
			return project.Project{}, ErrProjectNotFound
		}
		return project.Project{}, err
	}
	return p, nil
}

// membership returns the user's role on p, or nil when the user is not a member.
func (s *AccessService) membership(ctx context.Context, p project.Project, userID uint) (*project.Role, error) {
	m, err := s.Repos.Member.GetMember(ctx, p.ID, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &m.Role, nil
}

func (s *AccessService) memberOrCreator(ctx context.Context, p project.Project, userID uint) (bool, error) {
	if p.CreatedBy == userID {
		return true, nil
	}
	role, err := s.membership(ctx, p, userID)
	if err != nil {
		return false, err
	}
	return role != nil, nil
}

func (s *AccessService) HasProjectAccess(ctx context.Context, projectID, userID uint) (bool, error) {
	p, err := s.loadProject(ctx, projectID)
	if err != nil {
		return false, err
	}
	return s.memberOrCreator(ctx, p, userID)
}

// IsProjectMemberOrCreator is the assignee predicate. It matches
// HasProjectAccess but is evaluated for a candidate rather than the caller.
func (s *AccessService) IsProjectMemberOrCreator(ctx context.Context, projectID, userID uint) (bool, error) {
	return s.HasProjectAccess(ctx, projectID, userID)
}

func (s *AccessService) ResolveProjectForIssue(ctx context.Context, issueID uint) (uint, error) {
	projectID, err := s.Repos.Issue.GetProjectIDByIssueID(ctx, issueID)
	if err != nil {
		if repository.IsNotFound(err) {
			return 0, ErrIssueNotFound
		}
		return 0, err
	}
	return projectID, nil
}

// Authorize checks that the project exists and that the policy lets userID
// perform action on it.
func (s *AccessService) Authorize(ctx context.Context, action Action, projectID, userID uint) error {
	p, err := s.loadProject(ctx, projectID)
	if err != nil {
		return err
	}
	return s.authorize(ctx, action, p, userID)
}

func (s *AccessService) authorize(ctx context.Context, action Action, p project.Project, userID uint) error {
	if !s.Policy.Enforces(action) {
		return nil
	}
	isCreator := p.CreatedBy == userID
	var role *project.Role
	if !isCreator {
		var err error
		if role, err = s.membership(ctx, p, userID); err != nil {
			return err
		}
	}
	if !s.Policy.Allows(action, role, isCreator) {
		return ErrNoProjectAccess
	}
	return nil
}
