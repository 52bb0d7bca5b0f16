//go:build integration

package integration

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/domain/audit"
	"github.com/linskybing/issue-tracker/internal/domain/comment"
	"github.com/linskybing/issue-tracker/internal/domain/issue"
	"github.com/linskybing/issue-tracker/internal/domain/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectLifecycle_Integration(t *testing.T) {
	ctx := GetTestContext(t)

	alice := createUser(t, ctx, "a@x.com", "Alice")
	p := createProject(t, ctx, alice.ID, "tracker")
	assert.Equal(t, "linskybing", p.GithubOwner)
	assert.Equal(t, "tracker", p.GithubRepoName)

	t.Run("creator is the only edit member", func(t *testing.T) {
		resp, err := NewHTTPClient(ctx.Router, 0).GET(fmt.Sprintf("/projects/%d/members", p.ID))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var members []project.ProjectMember
		require.NoError(t, resp.DecodeJSON(&members))
		require.Len(t, members, 1)
		assert.Equal(t, alice.ID, members[0].UserID)
		assert.Equal(t, project.RoleEdit, members[0].Role)
	})

	bob := createUser(t, ctx, "b@x.com", "Bob")
	issueBody := map[string]interface{}{
		"project_id": p.ID,
		"title":      "Crash on save",
		"priority":   "high",
		"created_by": bob.ID,
	}

	t.Run("outsider cannot create issues", func(t *testing.T) {
		resp := createIssue(t, ctx, issueBody)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "user does not have access to this project", resp.GetErrorMessage())
		assert.Zero(t, countRows(t, ctx, "issues"))
	})

	t.Run("invited viewer can create issues", func(t *testing.T) {
		resp := invite(t, ctx, alice.ID, p.ID, bob.ID, project.RoleView)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())

		resp = createIssue(t, ctx, issueBody)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
		created := decodeIssue(t, resp)
		assert.Equal(t, issue.StatusOpen, created.Status)
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	})

	t.Run("second invite conflicts", func(t *testing.T) {
		resp := invite(t, ctx, alice.ID, p.ID, bob.ID, project.RoleEdit)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, resp.GetErrorMessage(), "already a member")
	})

	t.Run("user projects are not duplicated", func(t *testing.T) {
		// Alice is both creator and edit member of p.
		resp, err := NewHTTPClient(ctx.Router, 0).GET(fmt.Sprintf("/users/%d/projects", alice.ID))
		require.NoError(t, err)
		var projects []project.Project
		require.NoError(t, resp.DecodeJSON(&projects))
		require.Len(t, projects, 1)
		assert.Equal(t, p.ID, projects[0].ID)
	})
}

func TestCreateUser_DuplicateEmail_Integration(t *testing.T) {
	ctx := GetTestContext(t)
	createUser(t, ctx, "a@x.com", "Alice")

	resp, err := NewHTTPClient(ctx.Router, 0).POST("/users", map[string]interface{}{
		"email": "a@x.com",
		"name":  "Another Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "email already exists", resp.GetErrorMessage())
	assert.Equal(t, int64(1), countRows(t, ctx, "users"))
}

func TestCreateProject_UnknownCreator_Integration(t *testing.T) {
	ctx := GetTestContext(t)

	resp, err := NewHTTPClient(ctx.Router, 0).POST("/projects", map[string]interface{}{
		"name":            "orphan",
		"github_repo_url": "https://github.com/linskybing/orphan",
		"created_by":      404,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Zero(t, countRows(t, ctx, "projects"))
	assert.Zero(t, countRows(t, ctx, "project_members"))
}

func TestIssueAssignment_Integration(t *testing.T) {
	ctx := GetTestContext(t)
	alice := createUser(t, ctx, "a@x.com", "Alice")
	carol := createUser(t, ctx, "c@x.com", "Carol")
	p := createProject(t, ctx, alice.ID, "tracker")

	t.Run("create with outside assignee fails", func(t *testing.T) {
		resp := createIssue(t, ctx, map[string]interface{}{
			"project_id":  p.ID,
			"title":       "Assign me",
			"priority":    "low",
			"created_by":  alice.ID,
			"assigned_to": carol.ID,
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "assigned user is not a member of this project", resp.GetErrorMessage())
		assert.Zero(t, countRows(t, ctx, "issues"))
	})

	resp := createIssue(t, ctx, map[string]interface{}{
		"project_id":  p.ID,
		"title":       "Assign me",
		"description": "steps to reproduce",
		"priority":    "low",
		"created_by":  alice.ID,
		"assigned_to": alice.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
	path := fmt.Sprintf("/issues/%d", decodeIssue(t, resp).ID)
	client := NewHTTPClient(ctx.Router, alice.ID)

	resp, err := client.GET(path)
	require.NoError(t, err)
	original := decodeIssue(t, resp)

	t.Run("update with outside assignee changes nothing", func(t *testing.T) {
		resp, err := client.PATCH(path, map[string]interface{}{"assigned_to": carol.ID, "title": "renamed"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, err = client.GET(path)
		require.NoError(t, err)
		assert.Equal(t, original, decodeIssue(t, resp))
	})

	t.Run("status-only update preserves other fields", func(t *testing.T) {
		resp, err := client.PATCH(path, map[string]interface{}{"status": "resolved"})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		updated := decodeIssue(t, resp)

		assert.Equal(t, issue.StatusResolved, updated.Status)
		assert.True(t, updated.UpdatedAt.After(original.UpdatedAt))
		assert.Equal(t, original.CreatedAt, updated.CreatedAt)

		updated.Status = original.Status
		updated.UpdatedAt = original.UpdatedAt
		assert.Equal(t, original, updated)
	})

	t.Run("explicit null clears the assignee", func(t *testing.T) {
		resp, err := client.PATCH(path, `{"assigned_to":null}`)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())
		updated := decodeIssue(t, resp)
		assert.Nil(t, updated.AssignedTo)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "steps to reproduce", *updated.Description)
	})

	t.Run("reads are byte-identical", func(t *testing.T) {
		first, err := client.GET(path)
		require.NoError(t, err)
		second, err := client.GET(path)
		require.NoError(t, err)
		assert.Equal(t, first.Body, second.Body)
	})

	t.Run("unknown issue reads as null", func(t *testing.T) {
		resp, err := client.GET("/issues/999999")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "null", string(resp.Body))
	})
}

func TestComments_Integration(t *testing.T) {
	ctx := GetTestContext(t)
	alice := createUser(t, ctx, "a@x.com", "Alice")
	client := NewHTTPClient(ctx.Router, alice.ID)

	t.Run("comment on missing issue", func(t *testing.T) {
		resp, err := client.POST("/issues/424242/comments", map[string]interface{}{"user_id": alice.ID, "content": "x"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "issue not found", resp.GetErrorMessage())
	})

	p := createProject(t, ctx, alice.ID, "tracker")
	resp := createIssue(t, ctx, map[string]interface{}{
		"project_id": p.ID, "title": "Talk about it", "priority": "medium", "created_by": alice.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	i := decodeIssue(t, resp)
	path := fmt.Sprintf("/issues/%d/comments", i.ID)

	for _, content := range []string{"first", "second", "third"} {
		resp, err := client.POST(path, map[string]interface{}{"user_id": alice.ID, "content": content})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())
	}

	resp, err := client.GET(path)
	require.NoError(t, err)
	var comments []comment.Comment
	require.NoError(t, resp.DecodeJSON(&comments))
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, "third", comments[2].Content)
}

func TestAttachments_Integration(t *testing.T) {
	ctx := GetTestContext(t)
	alice := createUser(t, ctx, "a@x.com", "Alice")
	p := createProject(t, ctx, alice.ID, "tracker")
	resp := createIssue(t, ctx, map[string]interface{}{
		"project_id": p.ID, "title": "Logs attached", "priority": "critical", "created_by": alice.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	i := decodeIssue(t, resp)
	client := NewHTTPClient(ctx.Router, alice.ID)
	path := fmt.Sprintf("/issues/%d/attachments", i.ID)

	resp, err := client.POST(path, map[string]interface{}{
		"filename":    "trace.log",
		"file_url":    "not even a url",
		"file_size":   0,
		"mime_type":   "text/plain",
		"uploaded_by": alice.ID,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())

	resp, err = client.POST(path, map[string]interface{}{
		"filename": "bad.log", "file_url": "x", "file_size": -1, "mime_type": "text/plain", "uploaded_by": alice.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = client.POST(path+"/upload-url", map[string]interface{}{
		"filename": "trace.log", "mime_type": "text/plain", "uploaded_by": alice.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)

	resp, err = client.GET(path)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), countRows(t, ctx, "attachments"))
}

func TestConcurrentInvites_Integration(t *testing.T) {
	ctx := GetTestContext(t)
	alice := createUser(t, ctx, "a@x.com", "Alice")
	bob := createUser(t, ctx, "b@x.com", "Bob")
	p := createProject(t, ctx, alice.ID, "tracker")

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for n := 0; n < attempts; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ctx.Services.Project.InviteUserToProject(context.Background(), alice.ID, project.InviteUserInput{
				ProjectID: p.ID,
				UserID:    bob.ID,
				Role:      project.RoleView,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, application.ErrAlreadyMember):
				conflicts++
			default:
				t.Errorf("unexpected invite error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, int64(2), countRows(t, ctx, "project_members"))
}

func TestAuditTrail_Integration(t *testing.T) {
	ctx := GetTestContext(t)
	alice := createUser(t, ctx, "a@x.com", "Alice")
	createProject(t, ctx, alice.ID, "tracker")

	client := NewHTTPClient(ctx.Router, alice.ID)
	resp, err := client.GET("/audit/logs?resource_type=project")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var logs []audit.AuditLog
	require.NoError(t, resp.DecodeJSON(&logs))
	require.Len(t, logs, 1)
	assert.Equal(t, "create", logs[0].Action)
	assert.Equal(t, alice.ID, logs[0].UserID)

	resp, err = client.DELETE("/audit/logs?older_than_days=1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"deleted":0}`, string(resp.Body))
}

func TestHealthz_Integration(t *testing.T) {
	ctx := GetTestContext(t)

	resp, err := NewHTTPClient(ctx.Router, 0).GET("/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
