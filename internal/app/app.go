package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avstrong/hotelsearch/internal/catalog"
	"github.com/avstrong/hotelsearch/internal/config"
	"github.com/avstrong/hotelsearch/internal/dashboard"
	"github.com/avstrong/hotelsearch/internal/idgen/random"
	"github.com/avstrong/hotelsearch/internal/logger"
	"github.com/avstrong/hotelsearch/internal/storage/memory"
	"github.com/avstrong/hotelsearch/internal/storage/sqlite"
	"github.com/avstrong/hotelsearch/internal/transport/web"
)

const shutdownTimeout = 4 * time.Second

type storage interface {
	Get(ctx context.Context, namespace, key string) ([]byte, bool, error)
	Set(ctx context.Context, namespace, key string, value []byte) error
	Close() error
}

// NewLogger builds the console logger and, when enabled, the Fluent Bit sink.
// The returned func flushes and closes the sink.
func NewLogger(cfg *config.Config) (*logger.Logger, func(), error) {
	conf := logger.Config{
		Writer: os.Stdout,
		Level:  logger.ParseLevel(cfg.Log.Level),
		Color:  cfg.Log.Color,
		JSON:   cfg.Log.JSON,
	}

	closeSink := func() {}

	if cfg.Log.FluentBit.Enabled {
		client, err := logger.NewFluentClient(logger.FluentConfig{
			Host:      cfg.Log.FluentBit.Host,
			Port:      cfg.Log.FluentBit.Port,
			TagPrefix: cfg.AppName,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("init fluent bit sink: %w", err)
		}

		conf.Sink = client
		conf.SinkLevel = logger.ParseLevel(cfg.Log.FluentBit.Level)
		closeSink = func() { _ = client.Close() }
	}

	return logger.New(conf).With(slog.String("app", cfg.AppName)), closeSink, nil
}

func loadCatalog(l *logger.Logger, path string) (*catalog.Catalog, error) {
	if path == "" {
		l.LogInfo("Using the built-in catalog")

		return catalog.Default(), nil
	}

	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	l.LogInfo("Loaded %d hotels from %s", c.Len(), path)

	return c, nil
}

func openStorage(ctx context.Context, l *logger.Logger, conf config.StorageConfig) (storage, error) {
	switch conf.Driver {
	case config.StorageSQLite:
		db, err := sqlite.Open(ctx, sqlite.Config{L: l, Path: conf.SQLitePath})
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}

		return db, nil
	default:
		l.LogInfo("Using in-memory storage, filters will not survive a restart")

		return memory.New(memory.Config{L: l}), nil
	}
}

func Run(l *logger.Logger, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	hotels, err := loadCatalog(l, cfg.CatalogPath)
	if err != nil {
		return err
	}

	store, err := openStorage(ctx, l, cfg.Storage)
	if err != nil {
		return err
	}

	defer func() {
		if err := store.Close(); err != nil {
			l.LogErrorf("Failed to close storage: %v", err.Error())
		}
	}()

	dashboardManager := dashboard.New(dashboard.Config{
		L:           l,
		Catalog:     hotels,
		Storage:     store,
		IDGenerator: random.New(),
		SearchDelay: cfg.SearchDebounce,
	})
	defer dashboardManager.Close()

	webConf := web.Conf{
		L:                  l,
		ServerLogger:       log.Default(),
		Host:               cfg.HTTP.Host,
		Port:               cfg.HTTP.Port,
		ReadHeaderTimeout:  cfg.HTTP.ReadHeaderTimeout,
		LivenessEndpoint:   cfg.HTTP.LivenessEndpoint,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	}

	srv, err := web.New(ctx, webConf, dashboardManager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
