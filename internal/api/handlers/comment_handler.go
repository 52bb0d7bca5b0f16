package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/domain/comment"
	"github.com/linskybing/issue-tracker/pkg/utils"
)

type CommentHandler struct {
	svc *application.CommentService
}

func NewCommentHandler(svc *application.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type commentRequest struct {
	UserID  uint   `json:"user_id" example:"1"`
	Content string `json:"content" example:"Reproduced on main."`
}

// ListComments godoc
// @Summary List an issue's comments, oldest first
// @Tags comments
// @Produce json
// @Param id path uint true "Issue ID"
// @Success 200 {array} comment.Comment
// @Failure 400 {object} response.ErrorResponse "Invalid issue id"
// @Failure 500 {object} response.ErrorResponse
// @Router /issues/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid issue id")
		return
	}
	comments, err := h.svc.ListIssueComments(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary Comment on an issue
// @Tags comments
// @Accept json
// @Produce json
// @Param id path uint true "Issue ID"
// @Param comment body commentRequest true "Comment"
// @Success 201 {object} comment.Comment
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "No project access"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /issues/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid issue id")
		return
	}
	var req commentRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.svc.CreateComment(c.Request.Context(), comment.CreateCommentInput{
		IssueID: id,
		UserID:  req.UserID,
		Content: req.Content,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
