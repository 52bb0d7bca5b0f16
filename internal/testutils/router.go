package testutils

import (
	"io"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/issue-tracker/internal/api/handlers"
	"github.com/linskybing/issue-tracker/internal/api/routes"
	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/repository"
	"gorm.io/gorm"
)

// SetupRouter wires the full stack against gormDB with quiet request logging.
func SetupRouter(gormDB *gorm.DB, opts application.Options) (*gin.Engine, *application.Services) {
	gin.SetMode(gin.TestMode)

	repos := repository.NewRepositories(gormDB)
	svc := application.New(repos, opts)
	r := routes.NewRouter(handlers.New(svc, repos), routes.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return r, svc
}
