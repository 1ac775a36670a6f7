package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

type Config struct {
	AppName string

	HTTP    HTTPConfig
	Log     LogConfig
	Storage StorageConfig

	// CatalogPath points at a semicolon separated hotel file. Empty means the
	// built-in catalog.
	CatalogPath    string
	SearchDebounce time.Duration

	// Warnings collects values that could not be parsed and fell back to
	// defaults. The logger does not exist yet while config loads.
	Warnings []string
}

type HTTPConfig struct {
	Host               string
	Port               string
	ReadHeaderTimeout  time.Duration
	LivenessEndpoint   string
	CORSAllowedOrigins []string
}

type LogConfig struct {
	Level     string
	Color     bool
	JSON      bool
	FluentBit FluentBitConfig
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

type StorageConfig struct {
	Driver     string
	SQLitePath string
}

// Load reads envPath (".env" when empty) if it exists, then the process
// environment. Variables already set in the environment win over the file.
func Load(envPath string) (*Config, error) {
	if envPath == "" {
		envPath = ".env"
	}

	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", envPath, err)
	}

	r := &reader{}

	//nolint:exhaustruct
	cfg := &Config{
		AppName: r.getEnv("APP_NAME", "hotelsearch"),
		HTTP: HTTPConfig{
			Host:               r.getEnv("HOST", "localhost"),
			Port:               r.getEnv("PORT", "8092"),
			ReadHeaderTimeout:  r.getEnvAsDuration("READ_HEADER_TIMEOUT", 20*time.Second), //nolint:gomnd
			LivenessEndpoint:   r.getEnv("LIVENESS_ENDPOINT", "/liveness"),
			CORSAllowedOrigins: r.getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Log: LogConfig{
			Level: r.getEnv("LOG_LEVEL", "info"),
			Color: r.getEnvAsBool("LOG_COLOR", true),
			JSON:  r.getEnvAsBool("LOG_JSON", false),
		},
		Storage: StorageConfig{
			Driver:     strings.ToLower(r.getEnv("STORAGE_DRIVER", StorageMemory)),
			SQLitePath: r.getEnv("SQLITE_PATH", "hotelsearch.db"),
		},
		CatalogPath:    r.getEnv("CATALOG_PATH", ""),
		SearchDebounce: r.getEnvAsDuration("SEARCH_DEBOUNCE", 300*time.Millisecond), //nolint:gomnd
	}

	cfg.Log.FluentBit.Enabled = r.getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.Log.FluentBit.Enabled {
		cfg.Log.FluentBit.Host = r.getEnv("FLUENTBIT_HOST", "")
		if cfg.Log.FluentBit.Host == "" {
			r.warnf("FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit")
			cfg.Log.FluentBit.Enabled = false
		}

		cfg.Log.FluentBit.Port = r.getEnvAsInt("FLUENTBIT_PORT", 24224) //nolint:gomnd
		cfg.Log.FluentBit.Level = r.getEnv("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.Warnings = r.warnings

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory:
	case StorageSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH: %w", ErrMissingValue)
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER %q: %w", c.Storage.Driver, ErrUnknownStorageDriver)
	}

	if c.HTTP.Port == "" {
		return fmt.Errorf("PORT: %w", ErrMissingValue)
	}

	if c.SearchDebounce < 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE %s: %w", c.SearchDebounce, ErrNegativeDuration)
	}

	return nil
}

type reader struct {
	warnings []string
}

func (r *reader) warnf(format string, v ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, v...))
}

func (r *reader) getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func (r *reader) getEnvAsInt(key string, fallback int) int {
	valueStr, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		r.warnf("%s=%q is not an int, using %d", key, valueStr, fallback)

		return fallback
	}

	return value
}

func (r *reader) getEnvAsBool(key string, fallback bool) bool {
	valueStr, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		r.warnf("%s=%q is not a bool, using %t", key, valueStr, fallback)

		return fallback
	}

	return value
}

func (r *reader) getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		r.warnf("%s=%q is not a duration, using %s", key, valueStr, fallback)

		return fallback
	}

	return value
}

func (r *reader) getEnvAsList(key string, fallback []string) []string {
	valueStr, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	var out []string

	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	if len(out) == 0 {
		return fallback
	}

	return out
}
