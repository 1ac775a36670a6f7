package migration

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avstrong/hotelsearch/internal/logger"
)

type storage interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

var statements = []string{
	`CREATE TABLE IF NOT EXISTS kv_store (
		namespace  TEXT NOT NULL,
		item_key   TEXT NOT NULL,
		value      BLOB NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (namespace, item_key)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_kv_store_updated_at ON kv_store (updated_at)`,
}

// Up creates the key-value schema. It is idempotent.
func Up(ctx context.Context, l *logger.Logger, storage storage) (err error) {
	tx, err := storage.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				l.LogErrorf("Could not rollback migration transaction after panic %v", p)
			}

			l.LogInfo("Migration transaction has been roll backed after panic")

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				l.LogErrorf("Could not rollback migration transaction after error %v", rbErr.Error())
			}

			l.LogInfo("Migration transaction has been roll backed after error")

			return
		}

		if err = tx.Commit(); err != nil {
			l.LogErrorf("Could not commit migration transaction, err %v", err.Error())

			err = fmt.Errorf("commit migration: %w", err)

			return
		}

		l.LogInfo("Migration transaction has been committed")
	}()

	for i, stmt := range statements {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration statement %d: %w", i, err)
		}
	}

	return nil
}
