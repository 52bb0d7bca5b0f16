package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/domain/attachment"
	"github.com/linskybing/issue-tracker/pkg/utils"
)

type AttachmentHandler struct {
	svc *application.AttachmentService
}

func NewAttachmentHandler(svc *application.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

type attachmentRequest struct {
	Filename   string `json:"filename" example:"trace.log"`
	FileURL    string `json:"file_url" example:"https://files.example.com/issues/1/trace.log"`
	FileSize   int64  `json:"file_size" example:"2048"`
	MimeType   string `json:"mime_type" example:"text/plain"`
	UploadedBy uint   `json:"uploaded_by" example:"1"`
}

// ListAttachments godoc
// @Summary List an issue's attachments in upload order
// @Tags attachments
// @Produce json
// @Param id path uint true "Issue ID"
// @Success 200 {array} attachment.Attachment
// @Failure 400 {object} response.ErrorResponse "Invalid issue id"
// @Failure 500 {object} response.ErrorResponse
// @Router /issues/{id}/attachments [get]
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid issue id")
		return
	}
	attachments, err := h.svc.ListIssueAttachments(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}

// CreateAttachment godoc
// @Summary Register an attachment on an issue
// @Description file_url is stored as given; the service does not fetch or store file contents.
// @Tags attachments
// @Accept json
// @Produce json
// @Param id path uint true "Issue ID"
// @Param attachment body attachmentRequest true "Attachment"
// @Success 201 {object} attachment.Attachment
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "No project access"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Failure 500 {object} response.ErrorResponse
// @Router /issues/{id}/attachments [post]
func (h *AttachmentHandler) CreateAttachment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid issue id")
		return
	}
	var req attachmentRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.svc.CreateAttachment(c.Request.Context(), attachment.CreateAttachmentInput{
		IssueID:    id,
		Filename:   req.Filename,
		FileURL:    req.FileURL,
		FileSize:   req.FileSize,
		MimeType:   req.MimeType,
		UploadedBy: req.UploadedBy,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PresignUpload godoc
// @Summary Get a presigned upload URL for a new attachment
// @Tags attachments
// @Accept json
// @Produce json
// @Param id path uint true "Issue ID"
// @Param upload body attachment.PresignUploadInput true "Upload"
// @Success 200 {object} attachment.UploadTicket
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "No project access"
// @Failure 404 {object} response.ErrorResponse "Issue not found"
// @Failure 501 {object} response.ErrorResponse "Object storage not configured"
// @Failure 500 {object} response.ErrorResponse
// @Router /issues/{id}/attachments/upload-url [post]
func (h *AttachmentHandler) PresignUpload(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid issue id")
		return
	}
	var input attachment.PresignUploadInput
	if !bindJSON(c, &input) {
		return
	}
	input.IssueID = id

	ticket, err := h.svc.PresignUpload(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
