package attachment

import "time"

type CreateAttachmentInput struct {
	IssueID    uint   `json:"issue_id" validate:"required" example:"1"`
	Filename   string `json:"filename" validate:"required,notblank" example:"trace.log"`
	FileURL    string `json:"file_url" validate:"required" example:"https://files.example.com/issues/1/trace.log"`
	FileSize   int64  `json:"file_size" validate:"min=0" example:"2048"`
	MimeType   string `json:"mime_type" validate:"required,notblank" example:"text/plain"`
	UploadedBy uint   `json:"uploaded_by" validate:"required" example:"1"`
}

type PresignUploadInput struct {
	IssueID    uint   `json:"-"`
	Filename   string `json:"filename" validate:"required,notblank" example:"trace.log"`
	MimeType   string `json:"mime_type" validate:"required,notblank" example:"text/plain"`
	UploadedBy uint   `json:"uploaded_by" validate:"required" example:"1"`
}

// UploadTicket lets a client PUT a file straight to object storage and then
// register it with FileURL.
type UploadTicket struct {
	UploadURL string    `json:"upload_url"`
	FileURL   string    `json:"file_url"`
	ObjectKey string    `json:"object_key"`
	ExpiresAt time.Time `json:"expires_at"`
}
