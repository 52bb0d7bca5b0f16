package application

import (
	"context"
	"time"

	"github.com/linskybing/issue-tracker/internal/domain/attachment"
	"github.com/linskybing/issue-tracker/internal/repository"
	"github.com/linskybing/issue-tracker/pkg/utils"
)

const defaultPresignExpiry = 15 * time.Minute

// Presigner issues time-limited upload URLs against an object store.
type Presigner interface {
	PresignPut(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
	ObjectURL(objectKey string) string
}

type AttachmentService struct {
	Repos         *repository.Repos
	Access        *AccessService
	Audit         *AuditService
	Storage       Presigner
	PresignExpiry time.Duration
	Clock         Clock
}

func NewAttachmentService(repos *repository.Repos, access *AccessService, audit *AuditService, storage Presigner) *AttachmentService {
	return &AttachmentService{
		Repos:         repos,
		Access:        access,
		Audit:         audit,
		Storage:       storage,
		PresignExpiry: defaultPresignExpiry,
	}
}

func (s *AttachmentService) CreateAttachment(ctx context.Context, input attachment.CreateAttachmentInput) (*attachment.Attachment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := s.authorizeUpload(ctx, input.IssueID, input.UploadedBy); err != nil {
		return nil, err
	}

	a := attachment.Attachment{
		IssueID:    input.IssueID,
		Filename:   input.Filename,
		FileURL:    input.FileURL,
		FileSize:   input.FileSize,
		MimeType:   input.MimeType,
		UploadedBy: input.UploadedBy,
		UploadedAt: s.Clock.now(),
	}
	if err := s.Repos.Attachment.CreateAttachment(ctx, &a); err != nil {
		return nil, foreignKeyAs(err, ErrIssueNotFound)
	}

	s.Audit.Record(ctx, input.UploadedBy, AuditActionCreate, "attachment", a.ID, nil, a)
	return &a, nil
}

func (s *AttachmentService) ListIssueAttachments(ctx context.Context, issueID uint) ([]attachment.Attachment, error) {
	return s.Repos.Attachment.ListAttachmentsByIssue(ctx, issueID)
}

// PresignUpload returns an upload URL for a new attachment on the issue.
// The attachment row is created separately once the client has uploaded.
func (s *AttachmentService) PresignUpload(ctx context.Context, input attachment.PresignUploadInput) (*attachment.UploadTicket, error) {
	if s.Storage == nil {
		return nil, ErrStorageDisabled
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := s.authorizeUpload(ctx, input.IssueID, input.UploadedBy); err != nil {
		return nil, err
	}

	expiry := s.PresignExpiry
	if expiry <= 0 {
		expiry = defaultPresignExpiry
	}
	key := utils.AttachmentObjectKey(input.IssueID, input.Filename)
	uploadURL, err := s.Storage.PresignPut(ctx, key, expiry)
	if err != nil {
		return nil, err
	}

	return &attachment.UploadTicket{
		UploadURL: uploadURL,
		FileURL:   s.Storage.ObjectURL(key),
		ObjectKey: key,
		ExpiresAt: s.Clock.now().Add(expiry),
	}, nil
}

func (s *AttachmentService) authorizeUpload(ctx context.Context, issueID, userID uint) error {
	projectID, err := s.Access.ResolveProjectForIssue(ctx, issueID)
	if err != nil {
		return err
	}
	return s.Access.Authorize(ctx, ActionAttachmentCreate, projectID, userID)
}
