package project

type CreateProjectInput struct {
	Name           string  `json:"name" validate:"required,notblank" example:"Platform"`
	Description    *string `json:"description,omitempty" example:"Issue board for the platform repo"`
	GithubRepoURL  string  `json:"github_repo_url" validate:"required,url" example:"https://github.com/linskybing/platform-go"`
	GithubRepoName string  `json:"github_repo_name,omitempty" example:"platform-go"`
	GithubOwner    string  `json:"github_owner,omitempty" example:"linskybing"`
	CreatedBy      uint    `json:"created_by" validate:"required" example:"1"`
}

type InviteUserInput struct {
	ProjectID uint `json:"project_id" validate:"required" example:"1"`
	UserID    uint `json:"user_id" validate:"required" example:"2"`
	Role      Role `json:"role" validate:"required,oneof=view edit" example:"view"`
}
