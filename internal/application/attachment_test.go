package application_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/domain/attachment"
	"github.com/linskybing/issue-tracker/internal/domain/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePresigner struct {
	key    string
	expiry time.Duration
	err    error
}

func (f *fakePresigner) PresignPut(_ context.Context, objectKey string, expiry time.Duration) (string, error) {
	f.key = objectKey
	f.expiry = expiry
	if f.err != nil {
		return "", f.err
	}
	return "https://s3.local/attachments/" + objectKey + "?X-Amz-Signature=abc", nil
}

func (f *fakePresigner) ObjectURL(objectKey string) string {
	return "https://s3.local/attachments/" + objectKey
}

func TestAttachmentService_CreateAttachment(t *testing.T) {
	ctx := context.Background()
	input := attachment.CreateAttachmentInput{
		IssueID:    5,
		Filename:   "trace.log",
		FileURL:    "https://files.example.com/trace.log",
		FileSize:   2048,
		MimeType:   "text/plain",
		UploadedBy: 1,
	}

	t.Run("creator uploads", func(t *testing.T) {
		svc, m := setupServices(t, application.Options{})
		m.Issue.EXPECT().GetProjectIDByIssueID(gomock.Any(), uint(5)).Return(uint(1), nil)
		m.Project.EXPECT().GetProjectByID(gomock.Any(), uint(1)).Return(project.Project{ID: 1, CreatedBy: 1}, nil)
		m.Attachment.EXPECT().CreateAttachment(gomock.Any(), gomock.Any()).Return(nil)

		a, err := svc.Attachment.CreateAttachment(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, fixedNow, a.UploadedAt)
		assert.Equal(t, int64(2048), a.FileSize)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		svc, m := setupServices(t, application.Options{})
		m.Issue.EXPECT().GetProjectIDByIssueID(gomock.Any(), uint(5)).Return(uint(1), nil)
		m.Project.EXPECT().GetProjectByID(gomock.Any(), uint(1)).Return(project.Project{ID: 1, CreatedBy: 9}, nil)
		m.Member.EXPECT().GetMember(gomock.Any(), uint(1), uint(1)).Return(project.ProjectMember{}, gorm.ErrRecordNotFound)

		_, err := svc.Attachment.CreateAttachment(ctx, input)
		assert.ErrorIs(t, err, application.ErrForbidden)
	})

	t.Run("negative size", func(t *testing.T) {
		svc, _ := setupServices(t, application.Options{})
		bad := input
		bad.FileSize = -1

		_, err := svc.Attachment.CreateAttachment(ctx, bad)
		assert.EqualError(t, err, "file_size must be at least 0")
	})

	t.Run("blank filename or mime type", func(t *testing.T) {
		svc, _ := setupServices(t, application.Options{})
		blankName := input
		blankName.Filename = "   "
		blankMime := input
		blankMime.MimeType = "\t"

		_, err := svc.Attachment.CreateAttachment(ctx, blankName)
		assert.ErrorIs(t, err, application.ErrValidation)
		assert.EqualError(t, err, "filename is required")

		_, err = svc.Attachment.CreateAttachment(ctx, blankMime)
		assert.ErrorIs(t, err, application.ErrValidation)
		assert.EqualError(t, err, "mime_type is required")
	})
}

func TestAttachmentService_PresignUpload(t *testing.T) {
	ctx := context.Background()
	input := attachment.PresignUploadInput{IssueID: 5, Filename: "trace.log", MimeType: "text/plain", UploadedBy: 1}

	t.Run("storage not configured", func(t *testing.T) {
		svc, _ := setupServices(t, application.Options{})

		_, err := svc.Attachment.PresignUpload(ctx, input)
		assert.ErrorIs(t, err, application.ErrStorageDisabled)
	})

	t.Run("returns upload ticket", func(t *testing.T) {
		store := &fakePresigner{}
		svc, m := setupServices(t, application.Options{Storage: store, PresignExpiry: 5 * time.Minute})
		m.Issue.EXPECT().GetProjectIDByIssueID(gomock.Any(), uint(5)).Return(uint(1), nil)
		m.Project.EXPECT().GetProjectByID(gomock.Any(), uint(1)).Return(project.Project{ID: 1, CreatedBy: 1}, nil)

		ticket, err := svc.Attachment.PresignUpload(ctx, input)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(store.key, "issues/5/"))
		assert.Equal(t, 5*time.Minute, store.expiry)
		assert.Equal(t, "https://s3.local/attachments/"+store.key, ticket.FileURL)
		assert.Equal(t, store.key, ticket.ObjectKey)
		assert.Equal(t, fixedNow.Add(5*time.Minute), ticket.ExpiresAt)
	})

	t.Run("blank filename or mime type", func(t *testing.T) {
		svc, _ := setupServices(t, application.Options{Storage: &fakePresigner{}})
		blankName := input
		blankName.Filename = " "
		blankMime := input
		blankMime.MimeType = "  "

		_, err := svc.Attachment.PresignUpload(ctx, blankName)
		assert.ErrorIs(t, err, application.ErrValidation)

		_, err = svc.Attachment.PresignUpload(ctx, blankMime)
		assert.ErrorIs(t, err, application.ErrValidation)
		assert.EqualError(t, err, "mime_type is required")
	})

	t.Run("presign failure", func(t *testing.T) {
		store := &fakePresigner{err: errors.New("bucket missing")}
		svc, m := setupServices(t, application.Options{Storage: store})
		m.Issue.EXPECT().GetProjectIDByIssueID(gomock.Any(), uint(5)).Return(uint(1), nil)
		m.Project.EXPECT().GetProjectByID(gomock.Any(), uint(1)).Return(project.Project{ID: 1, CreatedBy: 1}, nil)

		_, err := svc.Attachment.PresignUpload(ctx, input)
		assert.EqualError(t, err, "bucket missing")
	})
}
