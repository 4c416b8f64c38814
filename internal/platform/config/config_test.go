package config_test

import (
	"log/slog"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/SscSPs/bureau_de_change/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "bureau-de-change", cfg.JWTIssuer)
	assert.Equal(t, "caissier", cfg.OperatorUsername)
	assert.Equal(t, time.UTC, cfg.TillLocation)
	assert.Equal(t, "FC", cfg.LocalCurrencyCode)
	assert.Equal(t, config.ReportArchiveLocal, cfg.ReportArchive)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-M", cfg.LoginRateLimit)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("TILL_TIMEZONE", "Africa/Kinshasa")
	t.Setenv("REPORT_ARCHIVE", "gcs")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, config.StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, "Africa/Kinshasa", cfg.TillLocation.String())
	assert.Equal(t, config.ReportArchiveGCS, cfg.ReportArchive)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_DURATION", "soon")
	t.Setenv("TILL_TIMEZONE", "Mars/Olympus")
	t.Setenv("STORAGE_DRIVER", "floppy")
	t.Setenv("REPORT_ARCHIVE", "tape")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 12*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, time.UTC, cfg.TillLocation)
	assert.Equal(t, "UTC", cfg.TillTimezone)
	assert.Equal(t, config.StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, config.ReportArchiveLocal, cfg.ReportArchive)
}
