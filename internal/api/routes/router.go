package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/issue-tracker/internal/api/handlers"
	"github.com/linskybing/issue-tracker/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/linskybing/issue-tracker/docs"
)

type Options struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

// NewRouter builds the engine with the standard middleware chain and all routes.
func NewRouter(h *handlers.Handlers, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.CORSMiddleware(opts.AllowedOrigins),
		middleware.Identity(),
	)
	RegisterRoutes(r, h)
	return r
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.GET("/healthz", h.Health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := r.Group("/users")
	{
		users.POST("", h.User.CreateUser)
		users.GET("", h.User.ListUsers)
		users.GET("/:id/projects", h.User.GetUserProjects)
	}

	projects := r.Group("/projects")
	{
		projects.POST("", h.Project.CreateProject)
		projects.GET("", h.Project.ListProjects)
		projects.GET("/:id/members", h.Project.ListMembers)
		projects.POST("/:id/members", h.Project.InviteUser)
		projects.GET("/:id/issues", h.Project.ListIssues)
	}

	issues := r.Group("/issues")
	{
		issues.POST("", h.Issue.CreateIssue)
		issues.GET("/:id", h.Issue.GetIssue)
		issues.PATCH("/:id", h.Issue.UpdateIssue)
		issues.GET("/:id/comments", h.Comment.ListComments)
		issues.POST("/:id/comments", h.Comment.CreateComment)
		issues.GET("/:id/attachments", h.Attachment.ListAttachments)
		issues.POST("/:id/attachments", h.Attachment.CreateAttachment)
		issues.POST("/:id/attachments/upload-url", h.Attachment.PresignUpload)
	}

	audit := r.Group("/audit")
	{
		audit.GET("/logs", h.Audit.GetAuditLogs)
		audit.DELETE("/logs", h.Audit.CleanupAuditLogs)
	}
}
