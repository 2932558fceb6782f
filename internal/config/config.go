package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// StorageConfig selects the object store backend and how long signed URLs stay valid.
type StorageConfig struct {
	Driver        string // "minio" or "memory"
	PresignExpiry time.Duration
}

// AuthConfig holds bearer token verification settings.
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	Audience  string
}

// ReportConfig tunes template fetching, rendering and batch uploads.
type ReportConfig struct {
	FetchTimeout      time.Duration
	MaxRedirects      int
	MaxTemplateBytes  int64
	StrictTokens      bool
	UploadConcurrency int
	MaxUploadBytes    int64
	MaxUploadFiles    int
	TimeZone          string
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level    string
	TimeZone string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Report   ReportConfig
	Log      LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "minio"),
			PresignExpiry: getEnvDuration("STORAGE_PRESIGN_EXPIRY", time.Hour),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("AUTH_JWT_SECRET", ""),
			Issuer:    getEnv("AUTH_ISSUER", ""),
			Audience:  getEnv("AUTH_AUDIENCE", ""),
		},
		Report: ReportConfig{
			FetchTimeout:      getEnvDuration("REPORT_FETCH_TIMEOUT", 30*time.Second),
			MaxRedirects:      getEnvInt("REPORT_FETCH_MAX_REDIRECTS", 5),
			MaxTemplateBytes:  int64(getEnvInt("REPORT_MAX_TEMPLATE_BYTES", 20<<20)),
			StrictTokens:      getEnvBool("REPORT_STRICT_TOKENS", false),
			UploadConcurrency: getEnvInt("UPLOAD_CONCURRENCY", 10),
			MaxUploadBytes:    int64(getEnvInt("MAX_FILE_SIZE", 100<<20)),
			MaxUploadFiles:    getEnvInt("MAX_UPLOAD_FILES", 10),
			TimeZone:          getEnv("REPORT_TIMEZONE", "Asia/Kolkata"),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			TimeZone: getEnv("LOG_TIMEZONE", "UTC"),
		},
	}
}

// Location resolves an IANA zone name, falling back to UTC for unknown names.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvDuration accepts Go duration strings ("45s") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}
