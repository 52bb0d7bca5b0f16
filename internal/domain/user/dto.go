package user

type CreateUserInput struct {
	Email          string  `json:"email" validate:"required,email" example:"alice@example.com"`
	Name           string  `json:"name" validate:"required,notblank" example:"Alice"`
	GithubUsername *string `json:"github_username,omitempty" example:"alice"`
	AvatarURL      *string `json:"avatar_url,omitempty" validate:"omitempty,url" example:"https://avatars.githubusercontent.com/u/1"`
}
