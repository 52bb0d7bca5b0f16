package project

import (
	"errors"
	"net/url"
	"strings"
)

var ErrNotGithubURL = errors.New("github_repo_url must look like https://github.com/<owner>/<repo>")

// ParseGithubRepoURL extracts the owner and repository name from a GitHub
// repository URL. A trailing ".git" is dropped from the repository name.
func ParseGithubRepoURL(raw string) (owner, repo string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", ErrNotGithubURL
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if host != "github.com" {
		return "", "", ErrNotGithubURL
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrNotGithubURL
	}
	repo = strings.TrimSuffix(parts[1], ".git")
	if repo == "" {
		return "", "", ErrNotGithubURL
	}
	return parts[0], repo, nil
}
