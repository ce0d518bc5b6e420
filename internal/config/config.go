// Package config loads the service configuration from the environment.
//
// Values are read from `ECOLETA_`-prefixed environment variables (a `.env`
// file is loaded automatically when present), decoded into typed structs and
// validated so the process fails fast on missing settings.
//
// Nested keys use a double underscore:
//
//	ECOLETA_SERVER__PORT=3333          -> server.port
//	ECOLETA_DATABASE__SSL_MODE=disable -> database.ssl_mode
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "ECOLETA_"

// ServiceName identifies the API in logs, traces and the health endpoint.
const ServiceName = "ecoleta"

// Config is the root configuration object.
//
// Observability is optional; defaults are injected when it is absent.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Upload        UploadConfig         `koanf:"upload" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds the runtime environment name ("local", "development", "production").
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups the HTTP server settings.
//
// Timeouts are expressed in seconds. PublicURL is the externally reachable
// base address (scheme, host and port) used to build image URLs, e.g.
// "http://192.168.0.19:3333".
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
	PublicURL          string   `koanf:"public_url" validate:"required,url"`

	// RateLimit is the number of requests per second allowed per client IP.
	RateLimit float64 `koanf:"rate_limit"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// ConnMaxLifetime and ConnMaxIdleTime are expressed in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// DSN builds the postgres:// connection string, escaping the password.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		url.QueryEscape(d.Password),
		net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		d.Name,
		d.SSLMode,
	)
}

// RedisConfig contains the Redis address ("host:port") used by the job queue.
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// UploadConfig controls where point images are stored and what is accepted.
//
// MaxSize uses Echo's body limit notation ("5M", "512K").
type UploadConfig struct {
	Dir          string   `koanf:"dir" validate:"required"`
	MaxSize      string   `koanf:"max_size" validate:"required"`
	AllowedTypes []string `koanf:"allowed_types" validate:"required,min=1"`
}

// IntegrationConfig holds third-party credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
	EmailFrom    string `koanf:"email_from" validate:"required"`
}

// defaultRateLimit is used when server.rate_limit is not set.
const defaultRateLimit = 20

// LoadConfig reads, decodes and validates the configuration.
//
// Steps:
//   - load ECOLETA_* variables, mapping "__" to the "." key delimiter
//   - unmarshal into Config
//   - validate struct tags
//   - inject observability defaults and force service name/environment
//   - run the observability block's own validation
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Server.RateLimit <= 0 {
		mainConfig.Server.RateLimit = defaultRateLimit
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
