package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	HTTPAddr string `env:"SHELL_HTTP_ADDR" envDefault:":8080" validate:"required"`

	// BackendURL and ProfilePath locate the current-user endpoint.
	BackendURL   string        `env:"SHELL_BACKEND_URL" envDefault:"http://localhost:5000" validate:"required,url"`
	ProfilePath  string        `env:"SHELL_PROFILE_PATH" envDefault:"/api/user" validate:"required,startswith=/"`
	FetchTimeout time.Duration `env:"SHELL_FETCH_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	SessionSecret string `env:"SESSION_SECRET" validate:"required,min=16"`
	SessionName   string `env:"SESSION_NAME" envDefault:"shell-session" validate:"required"`
	CookieSecure  bool   `env:"SESSION_COOKIE_SECURE" envDefault:"false"`

	// LoadTTL bounds how long an uncollected shell load is kept in memory.
	LoadTTL time.Duration `env:"SHELL_LOAD_TTL" envDefault:"1m" validate:"gt=0"`

	// AssetsDir overrides the embedded web assets when set.
	AssetsDir string `env:"SHELL_ASSETS_DIR"`

	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// New loads configuration from the environment, reading a .env file first
// when one is present.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet, so the standard logger is used here.
		log.Println("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads and validates configuration from the process environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ProfileURL returns the absolute URL of the current-user endpoint.
func (c *Config) ProfileURL() string {
	return strings.TrimRight(c.BackendURL, "/") + c.ProfilePath
}
