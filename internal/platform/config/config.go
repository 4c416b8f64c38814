package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTExpiry = 12 * time.Hour
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Report archive backends.
const (
	ReportArchiveLocal = "local"
	ReportArchiveGCS   = "gcs"
	ReportArchiveNone  = "none"
)

// Config holds application configuration.
type Config struct {
	Port           string
	IsProduction   bool
	LogLevel       slog.Level
	DatabaseURL    string
	EnableDBCheck  bool
	StorageDriver  string
	MigrationsPath string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Single till operator. OperatorPassword is a development fallback,
	// hashed at startup when no hash is configured.
	OperatorUsername     string
	OperatorPasswordHash string
	OperatorPassword     string

	TillTimezone      string
	TillLocation      *time.Location
	LocalCurrencyCode string

	ReportArchive string
	ReportDir     string
	ReportBucket  string

	CORSAllowedOrigins []string
	LoginRateLimit     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "bureau-de-change")
	viper.SetDefault("OPERATOR_USERNAME", "caissier")
	viper.SetDefault("OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("OPERATOR_PASSWORD", "")
	viper.SetDefault("TILL_TIMEZONE", "UTC")
	viper.SetDefault("LOCAL_CURRENCY_CODE", "FC")
	viper.SetDefault("REPORT_ARCHIVE", ReportArchiveLocal)
	viper.SetDefault("REPORT_DIR", "reports")
	viper.SetDefault("REPORT_BUCKET", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                 viper.GetString("PORT"),
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		LogLevel:             parseLogLevel(viper.GetString("LOG_LEVEL")),
		DatabaseURL:          viper.GetString("PGSQL_URL"),
		EnableDBCheck:        viper.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:        strings.ToLower(viper.GetString("STORAGE_DRIVER")),
		MigrationsPath:       viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:            viper.GetString("JWT_SECRET"),
		JWTIssuer:            viper.GetString("JWT_ISSUER"),
		OperatorUsername:     viper.GetString("OPERATOR_USERNAME"),
		OperatorPasswordHash: viper.GetString("OPERATOR_PASSWORD_HASH"),
		OperatorPassword:     viper.GetString("OPERATOR_PASSWORD"),
		TillTimezone:         viper.GetString("TILL_TIMEZONE"),
		LocalCurrencyCode:    viper.GetString("LOCAL_CURRENCY_CODE"),
		ReportArchive:        strings.ToLower(viper.GetString("REPORT_ARCHIVE")),
		ReportDir:            viper.GetString("REPORT_DIR"),
		ReportBucket:         viper.GetString("REPORT_BUCKET"),
		LoginRateLimit:       viper.GetString("LOGIN_RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		slog.Warn("JWT_SECRET not set, using default insecure key")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	cfg.JWTExpiryDuration = defaultJWTExpiry
	if d, err := time.ParseDuration(jwtExpiryStr); err == nil && d > 0 {
		cfg.JWTExpiryDuration = d
	} else {
		slog.Warn("Invalid JWT_EXPIRY_DURATION, using default",
			slog.String("value", jwtExpiryStr), slog.Duration("default", defaultJWTExpiry))
	}

	loc, err := time.LoadLocation(cfg.TillTimezone)
	if err != nil {
		slog.Warn("Invalid TILL_TIMEZONE, using UTC", slog.String("value", cfg.TillTimezone))
		cfg.TillTimezone = "UTC"
		loc = time.UTC
	}
	cfg.TillLocation = loc

	switch cfg.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		slog.Warn("Unknown STORAGE_DRIVER, using postgres", slog.String("value", cfg.StorageDriver))
		cfg.StorageDriver = StorageDriverPostgres
	}
	if cfg.StorageDriver == StorageDriverPostgres && cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set")
	}

	switch cfg.ReportArchive {
	case ReportArchiveLocal, ReportArchiveGCS, ReportArchiveNone:
	default:
		slog.Warn("Unknown REPORT_ARCHIVE, using local", slog.String("value", cfg.ReportArchive))
		cfg.ReportArchive = ReportArchiveLocal
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
