package project

import "time"

// Role is the level of access a member holds on a project.
type Role string

const (
	RoleView Role = "view"
	RoleEdit Role = "edit"
)

func (r Role) Valid() bool {
	return r == RoleView || r == RoleEdit
}

// Project is a tracked GitHub repository. The creator always has edit access.
type Project struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	Name           string    `gorm:"column:name;not null" json:"name"`
	Description    *string   `gorm:"column:description;type:text" json:"description"`
	GithubRepoURL  string    `gorm:"column:github_repo_url;not null" json:"github_repo_url"`
	GithubRepoName string    `gorm:"column:github_repo_name;not null" json:"github_repo_name"`
	GithubOwner    string    `gorm:"column:github_owner;not null" json:"github_owner"`
	CreatedBy      uint      `gorm:"column:created_by;not null;index" json:"created_by"`
	CreatedAt      time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}

// ProjectMember grants a user a role on a project. At most one row exists per pair.
type ProjectMember struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	ProjectID uint      `gorm:"column:project_id;not null;uniqueIndex:uq_project_members_pair" json:"project_id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:uq_project_members_pair;index" json:"user_id"`
	Role      Role      `gorm:"column:role;type:member_role;not null" json:"role"`
	InvitedAt time.Time `gorm:"column:invited_at;not null" json:"invited_at"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}
