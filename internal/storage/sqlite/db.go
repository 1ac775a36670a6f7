// Package sqlite persists client storage in a SQLite key-value table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avstrong/hotelsearch/internal/logger"
	"github.com/avstrong/hotelsearch/internal/migration"

	_ "modernc.org/sqlite"
)

const (
	driverName   = "sqlite"
	maxOpenConns = 10
	maxIdleConns = 5
)

type Config struct {
	L    *logger.Logger
	Path string
}

type DB struct {
	l   *logger.Logger
	sql *sql.DB
}

// Open connects, enables WAL and runs the schema migration.
func Open(ctx context.Context, conf Config) (*DB, error) {
	if conf.Path == "" {
		return nil, ErrEmptyPath
	}

	l := conf.L
	if l == nil {
		l = logger.Discard()
	}

	conn, err := sql.Open(driverName, conf.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", conf.Path, err)
	}

	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetMaxIdleConns(maxIdleConns)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err = conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()

			return nil, fmt.Errorf("exec %q: %w", pragma, err)
		}
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err = migration.Up(ctx, l, conn); err != nil {
		_ = conn.Close()

		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}

	l.LogInfo("SQLite storage is ready at %s", conf.Path)

	return &DB{l: l, sql: conn}, nil
}

func (db *DB) Get(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	if err := checkKey(namespace, key); err != nil {
		return nil, false, err
	}

	var value []byte

	err := db.sql.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE namespace = ? AND item_key = ?`, namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("select %s/%s: %w", namespace, key, err)
	}

	return value, true, nil
}

func (db *DB) Set(ctx context.Context, namespace, key string, value []byte) error {
	if err := checkKey(namespace, key); err != nil {
		return err
	}

	if value == nil {
		value = []byte{}
	}

	_, err := db.sql.ExecContext(ctx,
		`INSERT INTO kv_store (namespace, item_key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (namespace, item_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		namespace, key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upsert %s/%s: %w", namespace, key, err)
	}

	return nil
}

func (db *DB) Close() error {
	if err := db.sql.Close(); err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}

	return nil
}

func checkKey(namespace, key string) error {
	if namespace == "" {
		return ErrEmptyNamespace
	}

	if key == "" {
		return ErrEmptyKey
	}

	return nil
}
