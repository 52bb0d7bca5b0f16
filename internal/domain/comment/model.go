package comment

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	IssueID   uint      `gorm:"column:issue_id;not null;index" json:"issue_id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

type CreateCommentInput struct {
	IssueID uint   `json:"issue_id" validate:"required" example:"1"`
	UserID  uint   `json:"user_id" validate:"required" example:"1"`
	Content string `json:"content" validate:"required,notblank" example:"Reproduced on main."`
}
