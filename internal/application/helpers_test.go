package application_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/repository"
	"github.com/linskybing/issue-tracker/internal/repository/mock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type repoMocks struct {
	User       *mock.MockUserRepo
	Project    *mock.MockProjectRepo
	Member     *mock.MockMemberRepo
	Issue      *mock.MockIssueRepo
	Comment    *mock.MockCommentRepo
	Attachment *mock.MockAttachmentRepo
	Audit      *mock.MockAuditRepo
}

func setupServices(t *testing.T, opts application.Options) (*application.Services, *repoMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := &repoMocks{
		User:       mock.NewMockUserRepo(ctrl),
		Project:    mock.NewMockProjectRepo(ctrl),
		Member:     mock.NewMockMemberRepo(ctrl),
		Issue:      mock.NewMockIssueRepo(ctrl),
		Comment:    mock.NewMockCommentRepo(ctrl),
		Attachment: mock.NewMockAttachmentRepo(ctrl),
		Audit:      mock.NewMockAuditRepo(ctrl),
	}
	repos := &repository.Repos{
		User:       m.User,
		Project:    m.Project,
		Member:     m.Member,
		Issue:      m.Issue,
		Comment:    m.Comment,
		Attachment: m.Attachment,
		Audit:      m.Audit,
	}

	if opts.Clock == nil {
		opts.Clock = func() time.Time { return fixedNow }
	}
	return application.New(repos, opts), m
}
