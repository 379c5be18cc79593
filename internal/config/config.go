package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Port             string
	BasePath         string
	GinMode          string
	LogLevel         string
	LogFormat        string
	CORSAllowOrigins []string
	Database         DatabaseConfig
	Sentry           SentryConfig
	Handoff          HandoffConfig
	RabbitMQ         RabbitMQConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// SentryConfig holds error tracking settings. An empty DSN disables Sentry.
type SentryConfig struct {
	DSN         string
	Environment string
}

// HandoffConfig holds settings for playground handoff tokens
type HandoffConfig struct {
	Secret string
	TTL    time.Duration
}

// RabbitMQConfig holds event bus settings. An empty URL disables publishing.
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

// Load reads configuration from a .env file (if present) and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("BASE_PATH", "")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SENTRY_ENVIRONMENT", "development")
	v.SetDefault("HANDOFF_TTL", "5m")
	v.SetDefault("RABBITMQ_EXCHANGE", "dandi.api_keys")

	return v
}

// FromViper builds a Config from an already populated viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	ttl, err := time.ParseDuration(v.GetString("HANDOFF_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid HANDOFF_TTL: %w", err)
	}

	cfg := &Config{
		Port:             v.GetString("PORT"),
		BasePath:         strings.TrimSuffix(v.GetString("BASE_PATH"), "/"),
		GinMode:          v.GetString("GIN_MODE"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		CORSAllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:      v.GetString("DB_DSN"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Sentry: SentryConfig{
			DSN:         v.GetString("SENTRY_DSN"),
			Environment: v.GetString("SENTRY_ENVIRONMENT"),
		},
		Handoff: HandoffConfig{
			Secret: v.GetString("HANDOFF_SECRET"),
			TTL:    ttl,
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings needed to start are present
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.DSN != "" {
			break
		}
		d := c.Database
		if d.Host == "" || d.Port == "" || d.User == "" || d.Password == "" || d.Name == "" {
			return fmt.Errorf("missing required database environment variables. Set DB_DSN or DB_HOST, DB_PORT, DB_USER, DB_PASSWORD and DB_NAME")
		}
	case DriverSQLite:
		if c.Database.DSN == "" {
			return fmt.Errorf("DB_DSN is required when DB_DRIVER is %q", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q", c.GinMode)
	}

	if len(c.CORSAllowOrigins) == 0 {
		c.CORSAllowOrigins = []string{"*"}
	}

	if c.Handoff.TTL <= 0 {
		return fmt.Errorf("HANDOFF_TTL must be positive")
	}
	return nil
}

// ConnectionString returns the DSN for the configured driver
func (d DatabaseConfig) ConnectionString() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
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
