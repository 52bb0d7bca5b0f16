package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("AUDIT_ENABLED", "false")
	t.Setenv("PRESIGN_EXPIRY", "5m")
	t.Setenv("AUDIT_RETENTION_DAYS", "90")

	LoadConfig()

	assert.Equal(t, "db.internal", DbHost)
	assert.Equal(t, "9090", ServerPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, CORSAllowedOrigins)
	assert.False(t, AuditEnabled)
	assert.Equal(t, 5*time.Minute, PresignExpiry)
	assert.Equal(t, 90, AuditRetentionDays)
	assert.Equal(t, 24*time.Hour, AuditRetentionInterval)
}

func TestLoadConfigFallsBackOnBadValues(t *testing.T) {
	t.Setenv("AUDIT_ENABLED", "maybe")
	t.Setenv("PRESIGN_EXPIRY", "soon")
	t.Setenv("AUDIT_RETENTION_DAYS", "-4")

	LoadConfig()

	assert.True(t, AuditEnabled)
	assert.Equal(t, 0, AuditRetentionDays)
	assert.Equal(t, 15*time.Minute, PresignExpiry)
}

func TestParsePolicy(t *testing.T) {
	spec, err := ParsePolicy([]byte("actions:\n  issue.update: [edit]\n  comment.create: [view, edit]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"edit"}, spec.Actions["issue.update"])
	assert.Len(t, spec.Actions["comment.create"], 2)
}

func TestParsePolicyRejectsUnknownKeys(t *testing.T) {
	_, err := ParsePolicy([]byte("rules:\n  issue.update: [edit]\n"))
	assert.Error(t, err)
}

func TestLoadPolicyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actions:\n  member.invite: [edit]\n"), 0o600))

	spec, err := LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"edit"}, spec.Actions["member.invite"])

	_, err = LoadPolicy(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSetupLoggerHonoursLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	LogLevel, LogFormat = "warn", "text"
	var buf bytes.Buffer
	logger := setupLogger(&buf, "issue-tracker")

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "service=issue-tracker")
}
