package testutils

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/linskybing/issue-tracker/internal/config/db"
	"github.com/linskybing/issue-tracker/internal/migrations"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgres returns a migrated database for integration tests. TEST_DB_DSN
// selects an existing server; otherwise a throwaway postgres container is
// started and terminated when the returned cleanup runs.
func SetupPostgres(ctx context.Context) (*gorm.DB, func(), error) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gormDB, err := openAndMigrate(dsn, true)
		if err != nil {
			return nil, nil, err
		}
		return gormDB, func() { closeDB(gormDB) }, nil
	}

	req := testcontainers.ContainerRequest{
		Image: "postgres:16-alpine",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "issue_tracker",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres container: %w", err)
	}
	terminate := func() { _ = pg.Terminate(context.Background()) }

	host, err := pg.Host(ctx)
	if err != nil {
		terminate()
		return nil, nil, err
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		return nil, nil, err
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/issue_tracker?sslmode=disable", host, port.Port())
	gormDB, err := openAndMigrate(dsn, false)
	if err != nil {
		terminate()
		return nil, nil, err
	}
	return gormDB, func() {
		closeDB(gormDB)
		terminate()
	}, nil
}

func openAndMigrate(dsn string, reset bool) (*gorm.DB, error) {
	var (
		gormDB *gorm.DB
		err    error
	)
	for i := 0; i < 10; i++ {
		gormDB, err = db.Open(postgres.Open(dsn))
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect test database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	if reset {
		if err := migrations.Reset(sqlDB); err != nil {
			return nil, fmt.Errorf("reset test database: %w", err)
		}
	}
	if err := migrations.Run(sqlDB); err != nil {
		return nil, err
	}
	return gormDB, nil
}

// TruncateAll empties every application table and restarts identity columns.
func TruncateAll(t *testing.T, gormDB *gorm.DB) {
	t.Helper()
	err := gormDB.Exec(`TRUNCATE TABLE audit_logs, attachments, comments, issues, project_members, projects, users RESTART IDENTITY CASCADE`).Error
	if err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}

func closeDB(gormDB *gorm.DB) {
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
