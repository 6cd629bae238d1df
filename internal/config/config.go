package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	Port        string
	ContentPath string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Security
	JWTSecret string
	JWTExpiry time.Duration

	// Dashboard
	DashboardCacheTTL time.Duration

	// Observability (optional)
	SentryDSN string

	// Document storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string        // Optional: for S3-compatible services
	S3PresignExpiry time.Duration // Expiry for presigned document URLs
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Mithaq"),
		AppEnv:      envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:      envString("APP_URL", "http://localhost:8090"),
		Port:        envString("PORT", "8090"),
		ContentPath: envString("CONTENT_PATH", "content"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/mithaq.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Security
		JWTSecret: envRequired("JWT_SECRET"),
		JWTExpiry: envDuration("JWT_EXPIRY", 168*time.Hour), // 7 days

		// Dashboard snapshots stay fresh for this long unless invalidated
		DashboardCacheTTL: envDuration("DASHBOARD_CACHE_TTL", 5*time.Minute),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Document storage (optional: document uploads disabled when unset)
		S3Region:        envString("S3_REGION", ""),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 1*time.Hour),
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// HasDocumentStorage reports whether S3-compatible storage is configured.
func (c *Config) HasDocumentStorage() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// Secrets and credentials are excluded; safe to expose in request contexts.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:     c.AppName,
		AppEnv:      c.AppEnv,
		AppURL:      c.AppURL,
		Port:        c.Port,
		ContentPath: c.ContentPath,

		S3Endpoint: c.S3Endpoint,
	}
}
