// Package config loads the application configuration shared by the server and the CLIs.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/qiangxue/go-env"
	"gopkg.in/yaml.v2"
)

const (
	defaultServerPort       = 3000
	defaultServerID         = "server-1"
	defaultStaticDir        = "public"
	defaultLogLevel         = "info"
	defaultTargetURL        = "http://localhost"
	defaultTotalUsers       = 100
	defaultRequestTimeoutMS = 10000
	defaultMaxConnsPerHost  = 10000
	defaultResultsDriver    = "file"
	defaultResultsPath      = "./test-results.json"
	defaultSnapshotPath     = "./analytics-snapshot.json"
	defaultSQLitePath       = "./load-tests.db"
	defaultSmokeRetries     = 30
)

// Config represents an application configuration.
// Values are resolved in this order: defaults, YAML file, .env file, APP_ environment variables.
type Config struct {
	ServerPort int    `yaml:"server_port" env:"SERVER_PORT" validate:"min=1,max=65535"`
	ServerID   string `yaml:"server_id" env:"SERVER_ID" validate:"required"`
	StaticDir  string `yaml:"static_dir" env:"STATIC_DIR"`
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`

	TargetURL        string `yaml:"target_url" env:"TARGET_URL" validate:"required,url"`
	TotalUsers       int    `yaml:"total_users" env:"TOTAL_USERS" validate:"min=1"`
	RequestTimeoutMS int    `yaml:"request_timeout_ms" env:"REQUEST_TIMEOUT_MS" validate:"min=1"`
	MaxConnsPerHost  int    `yaml:"max_conns_per_host" env:"MAX_CONNS_PER_HOST" validate:"min=1"`

	ResultsDriver string `yaml:"results_driver" env:"RESULTS_DRIVER" validate:"oneof=file postgres sqlite"`
	ResultsPath   string `yaml:"results_path" env:"RESULTS_PATH" validate:"required"`
	SnapshotPath  string `yaml:"snapshot_path" env:"SNAPSHOT_PATH" validate:"required"`
	PostgresDSN   string `yaml:"postgres_dsn" env:"POSTGRES_DSN,secret" validate:"required_if=ResultsDriver postgres"`
	SQLitePath    string `yaml:"sqlite_path" env:"SQLITE_PATH" validate:"required_if=ResultsDriver sqlite"`

	SmokeRetries int `yaml:"smoke_retries" env:"SMOKE_RETRIES" validate:"min=0"`
}

// Default returns a configuration populated with default values.
func Default() *Config {
	return &Config{
		ServerPort:       defaultServerPort,
		ServerID:         defaultServerID,
		StaticDir:        defaultStaticDir,
		LogLevel:         defaultLogLevel,
		TargetURL:        defaultTargetURL,
		TotalUsers:       defaultTotalUsers,
		RequestTimeoutMS: defaultRequestTimeoutMS,
		MaxConnsPerHost:  defaultMaxConnsPerHost,
		ResultsDriver:    defaultResultsDriver,
		ResultsPath:      defaultResultsPath,
		SnapshotPath:     defaultSnapshotPath,
		SQLitePath:       defaultSQLitePath,
		SmokeRetries:     defaultSmokeRetries,
	}
}

// Load returns an application configuration populated from the given YAML file (optional,
// pass "" to skip) and the environment. logf receives the names of the variables that were read.
func Load(file string, logf func(format string, args ...any)) (*Config, error) {
	c := Default()

	if file != "" {
		bytes, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("config: read %q: %w", file, err)
		}
		if err := yaml.Unmarshal(bytes, c); err != nil {
			return nil, fmt.Errorf("config: decode %q: %w", file, err)
		}
	}

	// a missing .env is the normal case outside development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if logf == nil {
		logf = func(string, ...any) {}
	}
	if err := env.New("APP_", logf).Load(c); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
