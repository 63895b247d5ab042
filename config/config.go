package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Default values used when the corresponding environment variable is unset.
const (
	DefaultPort          = "3000"
	DefaultSQLitePath    = "party.db"
	DefaultStoreTimeout  = 5 * time.Second
	DefaultBackupTimeout = time.Minute
	DefaultStaticDir     = "public"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	// DBUrl selects PostgreSQL when set; otherwise the SQLite file at SQLitePath is used.
	DBUrl      string
	SQLitePath string

	StoreTimeout  time.Duration
	BackupTimeout time.Duration

	StaticDir      string
	AllowedOrigins []string

	Mail MailConfig
}

// MailConfig holds settings for the RSVP host notification.
type MailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	HostEmail          string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	InsecureSkipVerify bool
}

// UsePostgres reports whether DBUrl points the store at PostgreSQL.
func (c *Config) UsePostgres() bool {
	return c.DBUrl != ""
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file is usually absent and the process environment is authoritative.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:    env,
		Port:           os.Getenv("PORT"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
		DBUrl:          os.Getenv("DATABASE_URL"),
		SQLitePath:     os.Getenv("SQLITE_PATH"),
		StaticDir:      os.Getenv("STATIC_DIR"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Mail: MailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			HostEmail:          os.Getenv("HOST_EMAIL"),
			AWSRegion:          os.Getenv("AWS_REGION"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			InsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
		},
	}

	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = DefaultSQLitePath
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = DefaultStaticDir
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}
	if cfg.Mail.Provider == "" {
		cfg.Mail.Provider = "noop"
	}

	var err error
	if cfg.StoreTimeout, err = durationEnv("STORE_TIMEOUT", DefaultStoreTimeout); err != nil {
		return nil, err
	}
	if cfg.BackupTimeout, err = durationEnv("BACKUP_TIMEOUT", DefaultBackupTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
