package application

import (
	"context"
	"errors"

	"github.com/linskybing/issue-tracker/internal/domain/user"
	"github.com/linskybing/issue-tracker/internal/repository"
)

type UserService struct {
	Repos *repository.Repos
	Audit *AuditService
	Clock Clock
}

func NewUserService(repos *repository.Repos, audit *AuditService) *UserService {
	return &UserService{
		Repos: repos,
		Audit: audit,
	}
}

func (s *UserService) CreateUser(ctx context.Context, input user.CreateUserInput) (*user.User, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	_, err := s.Repos.User.GetUserByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !repository.IsNotFound(err) {
		return nil, err
	}

	u := user.User{
		Email:          input.Email,
		Name:           input.Name,
		GithubUsername: input.GithubUsername,
		AvatarURL:      input.AvatarURL,
		CreatedAt:      s.Clock.now(),
	}
	if err := s.Repos.User.CreateUser(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.Audit.Record(ctx, u.ID, AuditActionCreate, "user", u.ID, nil, u)
	return &u, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.Repos.User.ListUsers(ctx)
}
