package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/issue-tracker/internal/api/handlers"
	"github.com/linskybing/issue-tracker/internal/api/routes"
	"github.com/linskybing/issue-tracker/internal/application"
	"github.com/linskybing/issue-tracker/internal/config"
	"github.com/linskybing/issue-tracker/internal/config/db"
	"github.com/linskybing/issue-tracker/internal/cron"
	"github.com/linskybing/issue-tracker/internal/repository"
	"github.com/linskybing/issue-tracker/internal/storage"
)

// @title Issue Tracker API
// @version 1.0
// @description Projects, issues, comments and attachments with project-scoped access control.
// @BasePath /
func main() {
	config.LoadConfig()
	logger := config.SetupLogger("issue-tracker")

	db.Init()

	policy, err := loadPolicy()
	if err != nil {
		logger.Error("Failed to load role policy", "file", config.PolicyFile, "error", err)
		os.Exit(1)
	}

	opts := application.Options{
		Policy:        policy,
		AuditEnabled:  config.AuditEnabled,
		PresignExpiry: config.PresignExpiry,
	}
	if config.MinioEndpoint != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		store, err := storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			Bucket:    config.MinioBucket,
			Region:    config.MinioRegion,
			UseSSL:    config.MinioUseSSL,
			PublicURL: config.MinioPublicURL,
		})
		cancel()
		if err != nil {
			logger.Error("Failed to initialize object storage", "endpoint", config.MinioEndpoint, "error", err)
			os.Exit(1)
		}
		opts.Storage = store
	} else {
		logger.Info("MINIO_ENDPOINT not set, presigned uploads disabled")
	}

	repos := repository.NewRepositories(db.DB)
	svc := application.New(repos, opts)

	gin.SetMode(config.GinMode)
	router := routes.NewRouter(handlers.New(svc, repos), routes.Options{
		Logger:         logger,
		AllowedOrigins: config.CORSAllowedOrigins,
	})

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	if config.AuditRetentionDays > 0 {
		cron.StartAuditRetention(bgCtx, svc.Audit, config.AuditRetentionDays, config.AuditRetentionInterval)
	}

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting API server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down API server")
	stopBackground()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func loadPolicy() (application.RolePolicy, error) {
	if config.PolicyFile == "" {
		return application.DefaultRoleTable(), nil
	}
	spec, err := config.LoadPolicy(config.PolicyFile)
	if err != nil {
		return nil, err
	}
	table, err := application.NewRoleTableFromSpec(spec)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded role policy", "file", config.PolicyFile)
	return table, nil
}
