package user

import "time"

// User is an account that can own projects, hold memberships and author issue activity.
type User struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	Email          string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Name           string    `gorm:"column:name;not null" json:"name"`
	GithubUsername *string   `gorm:"column:github_username" json:"github_username"`
	AvatarURL      *string   `gorm:"column:avatar_url" json:"avatar_url"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
