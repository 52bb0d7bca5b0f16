package db

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/linskybing/issue-tracker/internal/config"
	"github.com/linskybing/issue-tracker/internal/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
		config.DbSSLMode,
	)
}

// Init connects to postgres and applies pending migrations. It exits the
// process when the database is unreachable.
func Init() {
	gormDB, err := Open(postgres.Open(DSN()))
	if err != nil {
		slog.Error("Failed to connect to DB", "error", err)
		os.Exit(1)
	}
	DB = gormDB

	sqlDB, err := DB.DB()
	if err != nil {
		slog.Error("Failed to get sql.DB from gorm", "error", err)
		os.Exit(1)
	}
	if err := migrations.Run(sqlDB); err != nil {
		slog.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	slog.Info("Database connected and migrated")
}

// Open returns a gorm handle with the service's logger and UTC clock.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:  NewLogger(slog.Default(), 200*time.Millisecond),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
