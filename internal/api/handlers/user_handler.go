package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/domain/user"
	"github.com/linskybing/issue-tracker/pkg/utils"
)

type UserHandler struct {
	svc      *application.UserService
	projects *application.ProjectService
}

func NewUserHandler(svc *application.UserService, projects *application.ProjectService) *UserHandler {
	return &UserHandler{svc: svc, projects: projects}
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body user.CreateUserInput true "User"
// @Success 201 {object} user.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already exists"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input user.CreateUserInput
	if !bindJSON(c, &input) {
		return
	}
	u, err := h.svc.CreateUser(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} user.User
// @Failure 500 {object} response.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserProjects godoc
// @Summary List projects a user created or belongs to
// @Tags users
// @Produce json
// @Param id path uint true "User ID"
// @Success 200 {array} project.Project
// @Failure 400 {object} response.ErrorResponse "Invalid user id"
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{id}/projects [get]
func (h *UserHandler) GetUserProjects(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		badRequest(c, "invalid user id")
		return
	}
	projects, err := h.projects.GetUserProjects(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}
