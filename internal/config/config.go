package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"ledgerly/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Email  EmailConfig
	Import ImportConfig
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ImportConfig holds Tally import settings.
type ImportConfig struct {
	CommitPolicy     domain.CommitPolicy `mapstructure:"commit_policy"`
	MaxFileSizeMB    int64               `mapstructure:"max_file_size_mb"`
	ArchiveUploads   bool                `mapstructure:"archive_uploads"`
	NotifyOnComplete bool                `mapstructure:"notify_on_complete"`
}

// MaxFileSizeBytes returns the upload limit in bytes.
func (c *ImportConfig) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds the settings used to verify bearer tokens issued by the
// authentication service.
type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for the upload archive.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the LEDGER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "ledger")
	v.SetDefault("db.password", "ledger_secret")
	v.SetDefault("db.name", "ledger_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "ledger-imports")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@ledgerly.app")
	v.SetDefault("email.from_name", "Ledgerly")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Import defaults
	v.SetDefault("import.commit_policy", string(domain.CommitTransactional))
	v.SetDefault("import.max_file_size_mb", 20)
	v.SetDefault("import.archive_uploads", false)
	v.SetDefault("import.notify_on_complete", false)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "LEDGER_SERVER_PORT",
		"server.read_timeout":       "LEDGER_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "LEDGER_SERVER_WRITE_TIMEOUT",
		"server.environment":        "LEDGER_SERVER_ENVIRONMENT",
		"db.host":                   "LEDGER_DB_HOST",
		"db.port":                   "LEDGER_DB_PORT",
		"db.user":                   "LEDGER_DB_USER",
		"db.password":               "LEDGER_DB_PASSWORD",
		"db.name":                   "LEDGER_DB_NAME",
		"db.sslmode":                "LEDGER_DB_SSLMODE",
		"db.max_open":               "LEDGER_DB_MAX_OPEN",
		"db.max_idle":               "LEDGER_DB_MAX_IDLE",
		"jwt.secret":                "LEDGER_JWT_SECRET",
		"jwt.issuer":                "LEDGER_JWT_ISSUER",
		"s3.region":                 "LEDGER_S3_REGION",
		"s3.bucket":                 "LEDGER_S3_BUCKET",
		"s3.endpoint":               "LEDGER_S3_ENDPOINT",
		"s3.access_key":             "LEDGER_S3_ACCESS_KEY",
		"s3.secret_key":             "LEDGER_S3_SECRET_KEY",
		"log.level":                 "LEDGER_LOG_LEVEL",
		"log.format":                "LEDGER_LOG_FORMAT",
		"cors.allowed_origins":      "LEDGER_CORS_ALLOWED_ORIGINS",
		"email.provider":            "LEDGER_EMAIL_PROVIDER",
		"email.region":              "LEDGER_EMAIL_REGION",
		"email.from_address":        "LEDGER_EMAIL_FROM_ADDRESS",
		"email.from_name":           "LEDGER_EMAIL_FROM_NAME",
		"email.frontend_url":        "LEDGER_EMAIL_FRONTEND_URL",
		"import.commit_policy":      "LEDGER_IMPORT_COMMIT_POLICY",
		"import.max_file_size_mb":   "LEDGER_IMPORT_MAX_FILE_SIZE_MB",
		"import.archive_uploads":    "LEDGER_IMPORT_ARCHIVE_UPLOADS",
		"import.notify_on_complete": "LEDGER_IMPORT_NOTIFY_ON_COMPLETE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LEDGER_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LEDGER_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret: v.GetString("jwt.secret"),
		Issuer: v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	cfg.Import = ImportConfig{
		CommitPolicy:     domain.CommitPolicy(strings.ToLower(v.GetString("import.commit_policy"))),
		MaxFileSizeMB:    v.GetInt64("import.max_file_size_mb"),
		ArchiveUploads:   v.GetBool("import.archive_uploads"),
		NotifyOnComplete: v.GetBool("import.notify_on_complete"),
	}
	if !cfg.Import.CommitPolicy.Valid() {
		return nil, fmt.Errorf("invalid import.commit_policy %q; allowed: transactional, compensating, sequential", cfg.Import.CommitPolicy)
	}

	return cfg, nil
}
