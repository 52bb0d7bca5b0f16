package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string

	ServerPort         string
	GinMode            string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string

	// PolicyFile optionally points at a YAML role policy. Empty keeps the built-in defaults.
	PolicyFile   string
	AuditEnabled bool
	// AuditRetentionDays > 0 starts a background task pruning older audit entries.
	AuditRetentionDays     int
	AuditRetentionInterval time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	MinioPublicURL string
	MinioRegion    string
	PresignExpiry  time.Duration
)

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "issue_tracker")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")

	ServerPort = getEnv("SERVER_PORT", "8080")
	GinMode = getEnv("GIN_MODE", "release")
	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "json")
	CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"))

	PolicyFile = getEnv("POLICY_FILE", "")
	AuditEnabled = getBool("AUDIT_ENABLED", true)
	AuditRetentionDays = getInt("AUDIT_RETENTION_DAYS", 0)
	AuditRetentionInterval = getDuration("AUDIT_RETENTION_INTERVAL", 24*time.Hour)

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "attachments")
	MinioUseSSL = getBool("MINIO_USE_SSL", false)
	MinioPublicURL = getEnv("MINIO_PUBLIC_URL", "")
	MinioRegion = getEnv("MINIO_REGION", "us-east-1")
	PresignExpiry = getDuration("PRESIGN_EXPIRY", 15*time.Minute)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil || v < 0 {
		slog.Warn("invalid integer in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "default", fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
