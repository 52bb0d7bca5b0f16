package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/domain/issue"
	"github.com/linskybing/issue-tracker/internal/domain/project"
	"github.com/linskybing/issue-tracker/pkg/utils"
)

type ProjectHandler struct {
	svc    *application.ProjectService
	issues *application.IssueService
}

func NewProjectHandler(svc *application.ProjectService, issues *application.IssueService) *ProjectHandler {
	return &ProjectHandler{svc: svc, issues: issues}
}

// CreateProject godoc
// @Summary Create a project
// @Description The creator is added as an edit member in the same transaction. Owner and repository name are derived from a GitHub URL when omitted.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body project.CreateProjectInput true "Project"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Creator not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input project.CreateProjectInput
	if !bindJSON(c, &input) {
		return
	}
	p, err := h.svc.CreateProject(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} project.Project
// @Failure 500 {object} response.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.svc.ListProjects(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// ListMembers godoc
// @Summary List project members
// @Tags projects
// @Produce json
// @Param id path uint true "Project ID"
// @Success 200 {array} project.ProjectMember
// @Failure 400 {object} response.ErrorResponse "Invalid project id"
// @Failure 500 {object} response.ErrorResponse
// @Router /projects/{id}/members [get]
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}
	members, err := h.svc.ListMembers(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

type inviteRequest struct {
	UserID uint         `json:"user_id" example:"2"`
	Role   project.Role `json:"role" example:"view"`
}

// InviteUser godoc
// @Summary Invite a user to a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path uint true "Project ID"
// @Param X-User-ID header uint false "Acting user"
// @Param member body inviteRequest true "Invitation"
// @Success 201 {object} project.ProjectMember
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Caller may not invite"
// @Failure 404 {object} response.ErrorResponse "Project or user not found"
// @Failure 409 {object} response.ErrorResponse "Already a member"
// @Failure 500 {object} response.ErrorResponse
// @Router /projects/{id}/members [post]
func (h *ProjectHandler) InviteUser(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}
	var req inviteRequest
	if !bindJSON(c, &req) {
		return
	}
	actor, _ := utils.GetActorIDFromContext(c)

	member, err := h.svc.InviteUserToProject(c.Request.Context(), actor, project.InviteUserInput{
		ProjectID: id,
		UserID:    req.UserID,
		Role:      req.Role,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// ListIssues godoc
// @Summary List a project's issues
// @Tags projects
// @Produce json
// @Param id path uint true "Project ID"
// @Param status query string false "Filter by status" Enums(open, in_progress, resolved, closed)
// @Param priority query string false "Filter by priority" Enums(low, medium, high, critical)
// @Param assigned_to query uint false "Filter by assignee"
// @Success 200 {array} issue.Issue
// @Failure 400 {object} response.ErrorResponse "Invalid filter"
// @Failure 500 {object} response.ErrorResponse
// @Router /projects/{id}/issues [get]
func (h *ProjectHandler) ListIssues(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid project id")
		return
	}

	var filters issue.Filters
	if raw := c.Query("status"); raw != "" {
		status := issue.Status(raw)
		if !status.Valid() {
			badRequest(c, "invalid status")
			return
		}
		filters.Status = &status
	}
	if raw := c.Query("priority"); raw != "" {
		priority := issue.Priority(raw)
		if !priority.Valid() {
			badRequest(c, "invalid priority")
			return
		}
		filters.Priority = &priority
	}
	if assignee, err := utils.ParseQueryUintParam(c, "assigned_to"); err != nil {
		if !errors.Is(err, utils.ErrEmptyParameter) {
			badRequest(c, "invalid assigned_to")
			return
		}
	} else {
		filters.AssignedTo = &assignee
	}

	issues, err := h.issues.ListProjectIssues(c.Request.Context(), id, filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}
