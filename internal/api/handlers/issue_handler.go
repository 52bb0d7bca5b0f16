package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/domain/issue"
	"github.com/linskybing/issue-tracker/pkg/utils"
)

type IssueHandler struct {
	svc *application.IssueService
}

func NewIssueHandler(svc *application.IssueService) *IssueHandler {
	return &IssueHandler{svc: svc}
}

// CreateIssue godoc
// @Summary Create an issue
// @Tags issues
// @Accept json
// @Produce json
// @Param issue body issue.CreateIssueInput true "Issue"
// @Success 201 {object} issue.Issue
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "No project access or assignee not a member"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /issues [post]
func (h *IssueHandler) CreateIssue(c *gin.Context) {
	var input issue.CreateIssueInput
	if !bindJSON(c, &input) {
		return
	}
	created, err := h.svc.CreateIssue(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetIssue godoc
// @Summary Get an issue
// @Description Responds with null when the issue does not exist.
// @Tags issues
// @Produce json
// @Param id path uint true "Issue ID"
// @Success 200 {object} issue.Issue
// @Failure 400 {object} response.ErrorResponse "Invalid issue id"
// @Failure 500 {object} response.ErrorResponse
// @Router /issues/{id} [get]
func (h *IssueHandler) GetIssue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid issue id")
		return
	}
	found, err := h.svc.GetIssue(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateIssue godoc
// @Summary Update an issue
// @Description Only fields present in the body change. An explicit null clears description, assigned_to or due_date.
// @Tags issues
// @Accept json
// @Produce json
// @Param id path uint true "Issue ID"
// @Param X-User-ID header uint false "Acting user"
// @Param issue body issue.UpdateIssueInput true "Fields to change"
// @Success 200 {object} issue.Issue
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Assignee not a member"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /issues/{id} [patch]
func (h *IssueHandler) UpdateIssue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid issue id")
		return
	}
	var input issue.UpdateIssueInput
	if !bindJSON(c, &input) {
		return
	}
	input.ID = id
	actor, _ := utils.GetActorIDFromContext(c)

	updated, err := h.svc.UpdateIssue(c.Request.Context(), actor, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
