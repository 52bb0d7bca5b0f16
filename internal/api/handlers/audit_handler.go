package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/repository"
	"github.com/linskybing/issue-tracker/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

type cleanupResponse struct {
	Deleted int64 `json:"deleted"`
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Retrieve audit logs filtered by optional parameters, newest first.
// @Tags         audit
// @Produce      json
// @Param        user_id       query     uint     false  "User ID to filter logs by user" example(123)
// @Param        resource_type query     string   false  "Resource type to filter" example("issue")
// @Param        action        query     string   false  "Action type to filter" example("create")
// @Param        start_time    query     string   false  "Start time in RFC3339 format" example("2026-01-01T00:00:00Z")
// @Param        end_time      query     string   false  "End time in RFC3339 format" example("2026-02-01T00:00:00Z")
// @Param        limit         query     int      false  "Max number of records to return (default 100, max 1000)" example(100)
// @Param        offset        query     int      false  "Offset (default 0)" example(0)
// @Success      200 {array}   audit.AuditLog
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Failure      500 {object}  response.ErrorResponse "Internal server error"
// @Router       /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if uid, err := utils.ParseQueryUintParam(c, "user_id"); err != nil {
		if !errors.Is(err, utils.ErrEmptyParameter) {
			badRequest(c, "invalid user_id")
			return
		}
	} else {
		params.UserID = &uid
	}

	if rt := c.Query("resource_type"); rt != "" {
		params.ResourceType = &rt
	}
	if act := c.Query("action"); act != "" {
		params.Action = &act
	}

	if start := c.Query("start_time"); start != "" {
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			badRequest(c, "invalid start_time")
			return
		}
		params.StartTime = &t
	}
	if end := c.Query("end_time"); end != "" {
		t, err := time.Parse(time.RFC3339, end)
		if err != nil {
			badRequest(c, "invalid end_time")
			return
		}
		params.EndTime = &t
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 0 {
		badRequest(c, "invalid limit")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		badRequest(c, "invalid offset")
		return
	}
	params.Limit = min(limit, 1000)
	params.Offset = offset

	logs, err := h.svc.QueryAuditLogs(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// CleanupAuditLogs godoc
// @Summary      Delete old audit logs
// @Tags         audit
// @Produce      json
// @Param        older_than_days query int true "Delete entries older than this many days" example(90)
// @Success      200 {object}  cleanupResponse
// @Failure      400 {object}  response.ErrorResponse "Invalid older_than_days"
// @Failure      500 {object}  response.ErrorResponse "Internal server error"
// @Router       /audit/logs [delete]
func (h *AuditHandler) CleanupAuditLogs(c *gin.Context) {
	days, err := strconv.Atoi(c.Query("older_than_days"))
	if err != nil {
		badRequest(c, "invalid older_than_days")
		return
	}
	n, err := h.svc.CleanupOldLogs(c.Request.Context(), days)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cleanupResponse{Deleted: n})
}
