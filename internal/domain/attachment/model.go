package attachment

import "time"

// Attachment records a file that lives at FileURL. The service never stores file bytes.
type Attachment struct {
	ID         uint      `gorm:"primaryKey;column:id" json:"id"`
	IssueID    uint      `gorm:"column:issue_id;not null;index" json:"issue_id"`
	Filename   string    `gorm:"column:filename;not null" json:"filename"`
	FileURL    string    `gorm:"column:file_url;not null" json:"file_url"`
	FileSize   int64     `gorm:"column:file_size;not null" json:"file_size"`
	MimeType   string    `gorm:"column:mime_type;not null" json:"mime_type"`
	UploadedBy uint      `gorm:"column:uploaded_by;not null" json:"uploaded_by"`
	UploadedAt time.Time `gorm:"column:uploaded_at;not null" json:"uploaded_at"`
}

func (Attachment) TableName() string {
	return "attachments"
}
