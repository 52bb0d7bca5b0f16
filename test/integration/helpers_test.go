//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/linskybing/issue-tracker/internal/domain/issue"
	"github.com/linskybing/issue-tracker/internal/domain/project"
	"github.com/linskybing/issue-tracker/internal/domain/user"
	"github.com/stretchr/testify/require"
)

func createUser(t *testing.T, ctx *TestContext, email, name string) user.User {
	t.Helper()
	resp, err := NewHTTPClient(ctx.Router, 0).POST("/users", map[string]interface{}{
		"email": email,
		"name":  name,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())

	var u user.User
	require.NoError(t, resp.DecodeJSON(&u))
	return u
}

func createProject(t *testing.T, ctx *TestContext, creator uint, name string) project.Project {
	t.Helper()
	resp, err := NewHTTPClient(ctx.Router, creator).POST("/projects", map[string]interface{}{
		"name":            name,
		"github_repo_url": "https://github.com/linskybing/" + name,
		"created_by":      creator,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())

	var p project.Project
	require.NoError(t, resp.DecodeJSON(&p))
	return p
}

func invite(t *testing.T, ctx *TestContext, actor, projectID, userID uint, role project.Role) *Response {
	t.Helper()
	resp, err := NewHTTPClient(ctx.Router, actor).POST(fmt.Sprintf("/projects/%d/members", projectID), map[string]interface{}{
		"user_id": userID,
		"role":    role,
	})
	require.NoError(t, err)
	return resp
}

func createIssue(t *testing.T, ctx *TestContext, body map[string]interface{}) *Response {
	t.Helper()
	resp, err := NewHTTPClient(ctx.Router, 0).POST("/issues", body)
	require.NoError(t, err)
	return resp
}

func decodeIssue(t *testing.T, resp *Response) issue.Issue {
	t.Helper()
	var i issue.Issue
	require.NoError(t, resp.DecodeJSON(&i))
	return i
}

func countRows(t *testing.T, ctx *TestContext, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, ctx.DB.Table(table).Count(&n).Error)
	return n
}
