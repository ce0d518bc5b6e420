package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	env := map[string]string{
		"ECOLETA_PRIMARY__ENV":                   "development",
		"ECOLETA_SERVER__PORT":                   "3333",
		"ECOLETA_SERVER__READ_TIMEOUT":           "30",
		"ECOLETA_SERVER__WRITE_TIMEOUT":          "30",
		"ECOLETA_SERVER__IDLE_TIMEOUT":           "60",
		"ECOLETA_SERVER__CORS_ALLOWED_ORIGINS":   "http://localhost:3000,http://localhost:19006",
		"ECOLETA_SERVER__PUBLIC_URL":             "http://192.168.0.19:3333",
		"ECOLETA_DATABASE__HOST":                 "localhost",
		"ECOLETA_DATABASE__PORT":                 "5432",
		"ECOLETA_DATABASE__USER":                 "ecoleta",
		"ECOLETA_DATABASE__PASSWORD":             "p@ss:word",
		"ECOLETA_DATABASE__NAME":                 "ecoleta",
		"ECOLETA_DATABASE__SSL_MODE":             "disable",
		"ECOLETA_DATABASE__MAX_OPEN_CONNS":       "10",
		"ECOLETA_DATABASE__MAX_IDLE_CONNS":       "2",
		"ECOLETA_DATABASE__CONN_MAX_LIFETIME":    "300",
		"ECOLETA_DATABASE__CONN_MAX_IDLE_TIME":   "60",
		"ECOLETA_REDIS__ADDRESS":                 "localhost:6379",
		"ECOLETA_UPLOAD__DIR":                    "uploads",
		"ECOLETA_UPLOAD__MAX_SIZE":               "5M",
		"ECOLETA_UPLOAD__ALLOWED_TYPES":          "image/jpeg,image/png",
		"ECOLETA_INTEGRATION__RESEND_API_KEY":    "re_test",
		"ECOLETA_INTEGRATION__EMAIL_FROM":        "Ecoleta <no-reply@ecoleta.dev>",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3333", cfg.Server.Port)
	assert.Equal(t, "http://192.168.0.19:3333", cfg.Server.PublicURL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:19006"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, []string{"image/jpeg", "image/png"}, cfg.Upload.AllowedTypes)
	assert.Equal(t, float64(defaultRateLimit), cfg.Server.RateLimit)
}

func TestLoadConfig_InjectsObservabilityDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg.Observability)

	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, 30*time.Second, cfg.Observability.HealthChecks.Interval)
	assert.True(t, cfg.Observability.HealthCheckEnabled("database"))
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ECOLETA_SERVER__PUBLIC_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSNEscapesPassword(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "ecoleta",
		Password: "p@ss:word",
		Name:     "ecoleta",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://ecoleta:p%40ss%3Aword@db:5432/ecoleta?sslmode=disable", d.DSN())
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())
}

func TestHealthCheckEnabled_DisabledGlobally(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.HealthChecks.Enabled = false

	assert.False(t, cfg.HealthCheckEnabled("database"))
}
