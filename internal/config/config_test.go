package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTP.Port != "8092" || cfg.HTTP.LivenessEndpoint != "/liveness" || cfg.Storage.Driver != StorageMemory {
		t.Fatalf("unexpected defaults %+v", cfg)
	}

	if cfg.SearchDebounce != 300*time.Millisecond || cfg.HTTP.ReadHeaderTimeout != 20*time.Second {
		t.Fatalf("unexpected durations %s / %s", cfg.SearchDebounce, cfg.HTTP.ReadHeaderTimeout)
	}

	if cfg.Log.FluentBit.Enabled || len(cfg.Warnings) != 0 {
		t.Fatalf("unexpected fluent/warnings: %+v", cfg.Log)
	}
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")

	content := "PORT=9000\nSTORAGE_DRIVER=SQLite\nSQLITE_PATH=/tmp/h.db\nSEARCH_DEBOUNCE=50ms\n" +
		"CORS_ALLOWED_ORIGINS=http://a.test, http://b.test\nFLUENTBIT_ENABLED=true\nFLUENTBIT_HOST=fluent\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	t.Setenv("PORT", "9100")

	// godotenv sets process variables; clear the ones this test introduces.
	for _, key := range []string{"STORAGE_DRIVER", "SQLITE_PATH", "SEARCH_DEBOUNCE", "CORS_ALLOWED_ORIGINS", "FLUENTBIT_ENABLED", "FLUENTBIT_HOST"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(envFile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTP.Port != "9100" {
		t.Fatalf("environment must win over the file, got %s", cfg.HTTP.Port)
	}

	if cfg.Storage.Driver != StorageSQLite || cfg.Storage.SQLitePath != "/tmp/h.db" || cfg.SearchDebounce != 50*time.Millisecond {
		t.Fatalf("file values not applied: %+v", cfg)
	}

	if !slices.Equal(cfg.HTTP.CORSAllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("unexpected origins %v", cfg.HTTP.CORSAllowedOrigins)
	}

	if !cfg.Log.FluentBit.Enabled || cfg.Log.FluentBit.Host != "fluent" || cfg.Log.FluentBit.Port != 24224 {
		t.Fatalf("unexpected fluent config %+v", cfg.Log.FluentBit)
	}
}

func TestLoad_BadValuesFallBackWithWarnings(t *testing.T) {
	t.Setenv("LOG_COLOR", "maybe")
	t.Setenv("SEARCH_DEBOUNCE", "soon")
	t.Setenv("FLUENTBIT_ENABLED", "true")
	t.Setenv("FLUENTBIT_HOST", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !cfg.Log.Color || cfg.SearchDebounce != 300*time.Millisecond || cfg.Log.FluentBit.Enabled {
		t.Fatalf("bad values must fall back: %+v", cfg)
	}

	if len(cfg.Warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %v", cfg.Warnings)
	}
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "redis")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); !errors.Is(err, ErrUnknownStorageDriver) {
		t.Fatalf("expected ErrUnknownStorageDriver, got %v", err)
	}

	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("SEARCH_DEBOUNCE", "-1s")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); !errors.Is(err, ErrNegativeDuration) {
		t.Fatalf("expected ErrNegativeDuration, got %v", err)
	}
}
